// Package friction implements the Darcy friction-factor closures as a
// user-selected, name-keyed registry of interfaces, specialised to the
// single Lambda(Re, relativeRoughness) contract this domain needs.
package friction

import "github.com/cpmech/gosl/chk"

// Model computes the Darcy friction factor and its derivative with
// respect to Reynolds number, for a fixed relative roughness.
type Model interface {
	// Lambda returns the friction factor for the given Reynolds number Re
	// and relative roughness k/D.
	Lambda(re, relRoughness float64) float64
	// DLambdaDRe returns dλ/dRe by finite difference or closed form.
	DLambdaDRe(re, relRoughness float64) float64
}

var allocators = map[string]func() Model{}

// Register adds a new friction closure kind to the factory.
func Register(name string, alloc func() Model) {
	if _, ok := allocators[name]; ok {
		chk.Panic("friction: cannot register kind %q twice", name)
	}
	allocators[name] = alloc
}

// New builds the named closure.
func New(name string) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("friction: unknown closure %q", name)
	}
	return alloc(), nil
}

func init() {
	Register("nikuradse", func() Model { return Nikuradse{} })
	Register("swamee_jain", func() Model { return SwameeJain{} })
	Register("colebrook", func() Model { return NewColebrook(30) })
}
