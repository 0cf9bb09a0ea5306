// Package fluid implements models of fluid properties (density, viscosity,
// heat capacity, compressibility, molar mass) as functions of pressure and
// temperature, for both incompressible liquids and compressible gases.
package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model computes pressure/temperature-dependent fluid properties. p is in
// bar (gauge or absolute depending on caller convention, consistently),
// T is in kelvin.
type Model interface {
	Name() string
	GasMode() bool                    // true => compressible gas treatment
	Density(p, T float64) float64     // [kg/m3]
	Viscosity(p, T float64) float64   // [Pa.s]
	HeatCapacity(p, T float64) float64 // cp [J/(kg.K)]
	MolarMass() float64               // [kg/mol]
	Compressibility(p, T float64) float64
}

// allocators holds registered fluid model constructors, keyed by kind name:
// "constant", "linear", "table", "polynomial".
var allocators = map[string]func(prms fun.Params) (Model, error){}

// Register adds a new fluid model kind to the factory. Panics if the kind
// name is already registered (programmer error).
func Register(kind string, alloc func(prms fun.Params) (Model, error)) {
	if _, ok := allocators[kind]; ok {
		chk.Panic("fluid: cannot register kind %q twice", kind)
	}
	allocators[kind] = alloc
}

// New builds a fluid model of the given kind from named parameters.
func New(kind string, prms fun.Params) (Model, error) {
	alloc, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("fluid: unknown model kind %q", kind)
	}
	return alloc(prms)
}

func init() {
	Register("constant", newConstant)
	Register("linear", newLinear)
	Register("table", newTable)
	Register("polynomial", newPolynomial)
}
