// Package engauge parses the CSV export format of the Engauge Digitizer
// tool, used to recover curve data from published charts.
//
// An export holds one or more curves. Each curve starts with a header row
// whose second field is the curve's parameter value (for a chart family,
// typically the z value the curve was drawn at), followed by x,y data rows.
// Curves are separated by blank lines.
package engauge

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Curve is one digitized curve: its parameter value and its sampled points.
type Curve struct {
	Z  float64
	Xs []float64
	Ys []float64
}

// Parse reads an Engauge export and returns its curves in file order.
func Parse(r io.Reader) ([]Curve, error) {
	var (
		curves   []Curve
		current  *Curve
		newCurve = true
		lineNo   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			newCurve = true
		case newCurve:
			fields := strings.Split(line, ",")
			if len(fields) < 2 {
				return nil, fmt.Errorf("engauge: line %d: curve header needs a name and a value", lineNo)
			}
			z, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
			if err != nil {
				return nil, fmt.Errorf("engauge: line %d: %w", lineNo, err)
			}
			curves = append(curves, Curve{Z: z})
			current = &curves[len(curves)-1]
			newCurve = false
		default:
			fields := strings.Split(line, ",")
			if len(fields) != 2 {
				return nil, fmt.Errorf("engauge: line %d: expected x,y pair, got %q", lineNo, line)
			}
			x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
			if err != nil {
				return nil, fmt.Errorf("engauge: line %d: %w", lineNo, err)
			}
			y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
			if err != nil {
				return nil, fmt.Errorf("engauge: line %d: %w", lineNo, err)
			}
			current.Xs = append(current.Xs, x)
			current.Ys = append(current.Ys, y)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("engauge: %w", err)
	}
	return curves, nil
}

// ParseFlat reads an Engauge export and returns all points of all curves in
// three parallel slices, repeating each curve's parameter value once per
// point.
func ParseFlat(r io.Reader) (zs, xs, ys []float64, err error) {
	curves, err := Parse(r)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, c := range curves {
		for i := range c.Xs {
			zs = append(zs, c.Z)
			xs = append(xs, c.Xs[i])
			ys = append(ys, c.Ys[i])
		}
	}
	return zs, xs, ys, nil
}
