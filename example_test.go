package dimless_test

import (
	"fmt"

	"github.com/petrijr/dimless"
)

// Example_inputRoutes demonstrates the two ways of supplying the viscosity
// inputs of the Reynolds number.
func Example_inputRoutes() {
	re, err := dimless.Reynolds(2.5, 0.25, dimless.Rho(1.1613), dimless.Mu(1.9e-5))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Re from rho and mu: %.2f\n", re)

	re, err = dimless.Reynolds(2.5, 0.25, dimless.Nu(1.636e-5))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Re from nu:         %.2f\n", re)

	// Output:
	// Re from rho and mu: 38200.66
	// Re from nu:         38202.93
}

// Example_missingInput shows the error returned when no input route can be
// formed; the message lists the accepted sets.
func Example_missingInput() {
	_, err := dimless.Reynolds(2.5, 0.25)
	fmt.Println(err)
	fmt.Println(dimless.IsMissingInput(err))

	// Output:
	// groups: Reynolds: insufficient input combination; accepted: (Rho, Mu) or (Nu)
	// true
}

func ExampleFroude() {
	fmt.Printf("%.4f\n", dimless.Froude(1.83, 2., dimless.Gravity(1.63)))
	fmt.Printf("%.4f\n", dimless.Froude(1.83, 2., dimless.Squared()))

	// Output:
	// 1.0135
	// 0.1707
}

func ExampleDPFromK() {
	fmt.Printf("%.0f Pa\n", dimless.DPFromK(10, 1000, 3))

	// Output:
	// 45000 Pa
}

func ExampleConvertSlice() {
	ks, err := dimless.ConvertSlice([]float64{-40, 40}, dimless.Celsius, dimless.Kelvin)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f\n", ks[0], ks[1])

	// Output:
	// 233.15 313.15
}
