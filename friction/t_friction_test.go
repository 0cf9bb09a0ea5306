package friction

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_friction01(tst *testing.T) {

	chk.PrintTitle("friction01: laminar limit 64/Re")

	re := 1000.0
	for _, name := range []string{"nikuradse", "swamee_jain", "colebrook"} {
		m, err := New(name)
		require.NoError(tst, err)
		got := m.Lambda(re, 0.0001)
		want := 64 / re
		chk.Scalar(tst, name, 0.05, got, want)
	}
}

func Test_friction02(tst *testing.T) {

	chk.PrintTitle("friction02: colebrook matches swamee-jain order of magnitude")

	re, relRough := 1e5, 0.0002
	sj := SwameeJain{}.Lambda(re, relRough)
	cb := NewColebrook(50).Lambda(re, relRough)
	chk.Scalar(tst, "colebrook vs swamee-jain", 0.02*sj, cb, sj)
}

func Test_friction03(tst *testing.T) {

	chk.PrintTitle("friction03: unknown closure rejected")

	_, err := New("bogus")
	require.Error(tst, err)
}

func Test_friction04(tst *testing.T) {

	chk.PrintTitle("friction04: derivative sign is negative (lambda decreases with Re)")

	n := Nikuradse{}
	d := n.DLambdaDRe(5e4, 0.0001)
	require.True(tst, d < 0 || math.Abs(d) < 1e-9)
}
