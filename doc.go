// Package dimless is a reference library of closed-form engineering
// correlations for fluid dynamics and heat/mass transfer analysis.
//
// It provides dimensionless-group calculators (Reynolds, Prandtl, Nusselt,
// Grashof and some forty others), temperature-scale conversions, and the
// algebraic relations between pressure drop, head and loss coefficients used
// in pipe-flow work. Every function is a pure, stateless transform of scalar
// inputs; the library holds no mutable state, performs no I/O, and is safe
// for concurrent use without locking.
//
// # Packages
//
// The root package re-exports the full API, so most programs only import
// dimless. The implementation lives in subpackages:
//
//  1. pkg/groups — the dimensionless-group catalog and related fluid
//     properties (thermal diffusivity, ideal-gas speed of sound, local
//     gravity).
//  2. pkg/units — temperature conversions between the Celsius, Kelvin,
//     Fahrenheit and Rankine scales, for scalars and slices.
//  3. pkg/losses — loss-coefficient, equivalent-length, head and pressure
//     relations.
//  4. pkg/constants — the shared physical constants (standard gravity, molar
//     gas constant, temperature-scale anchors).
//  5. pkg/engauge — a parser for Engauge Digitizer chart exports.
//
// # Input routes
//
// Several groups accept alternative sets of inputs that are dimensionally
// equivalent routes to the same intermediate quantity. The Reynolds number,
// for instance, needs a kinematic viscosity, which can be given directly or
// derived from density and dynamic viscosity:
//
//	Re, err := dimless.Reynolds(2.5, 0.25, dimless.Rho(1.1613), dimless.Mu(1.9e-5))
//	Re, err := dimless.Reynolds(2.5, 0.25, dimless.Nu(1.636e-5))
//
// Routes are resolved in a fixed priority order documented on each function;
// exactly one route is evaluated per call. A supplied option counts as
// present whatever its value, including zero. When no route can be formed
// the call returns a *MissingInputError whose message enumerates the
// accepted input sets:
//
//	_, err := dimless.Reynolds(2.5, 0.25)
//	// groups: Reynolds: insufficient input combination; accepted: (Rho, Mu) or (Nu)
//
// # Units and errors
//
// All quantities are SI unless documented otherwise (latitude in degrees,
// molecular weight in g/mol). Physical plausibility is not validated:
// out-of-domain arithmetic follows IEEE-754 semantics and yields NaN or Inf
// rather than panicking. Errors are returned to the caller immediately and
// are never logged or suppressed internally; every failure is deterministic,
// so retrying an identical call is never useful.
package dimless
