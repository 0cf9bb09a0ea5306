package fluid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/stretchr/testify/require"
)

func Test_fluid01(tst *testing.T) {

	chk.PrintTitle("fluid01: constant water")

	m, err := New("constant", fun.Params{
		{N: "rho", V: 998.2},
		{N: "mu", V: 1.002e-3},
		{N: "cp", V: 4186},
	})
	require.NoError(tst, err)

	chk.Scalar(tst, "rho", 1e-12, m.Density(1.0, 293.15), 998.2)
	chk.Scalar(tst, "mu", 1e-15, m.Viscosity(1.0, 293.15), 1.002e-3)
	chk.Scalar(tst, "cp", 1e-9, m.HeatCapacity(1.0, 293.15), 4186)
	require.False(tst, m.GasMode())
}

func Test_fluid02(tst *testing.T) {

	chk.PrintTitle("fluid02: linear liquid vs. ideal gas")

	liquid, err := New("linear", fun.Params{
		{N: "r0", V: 998.2},
		{N: "p0", V: 1.0},
		{N: "c", V: 0.05},
		{N: "mu", V: 1.0e-3},
		{N: "cp", V: 4186},
	})
	require.NoError(tst, err)
	chk.Scalar(tst, "rho(2bar)", 1e-9, liquid.Density(2.0, 293.15), 998.2+0.05)

	gas, err := New("linear", fun.Params{
		{N: "gas", V: 1},
		{N: "mm", V: 0.01604}, // methane
		{N: "mu", V: 1.1e-5},
		{N: "cp", V: 2220},
	})
	require.NoError(tst, err)
	require.True(tst, gas.GasMode())

	const Rgas = 8.314462618
	want := (5.0 * 1e5 * 0.01604) / (Rgas * 300.0)
	chk.Scalar(tst, "rho(gas)", 1e-6, gas.Density(5.0, 300.0), want)
}

func Test_fluid03(tst *testing.T) {

	chk.PrintTitle("fluid03: table interpolation")

	m, err := New("table", fun.Params{
		{N: "t0", V: 273.15}, {N: "rho0", V: 999.8}, {N: "mu0", V: 1.79e-3}, {N: "cp0", V: 4217},
		{N: "t1", V: 373.15}, {N: "rho1", V: 958.4}, {N: "mu1", V: 2.82e-4}, {N: "cp1", V: 4216},
	})
	require.NoError(tst, err)

	mid := 0.5 * (999.8 + 958.4)
	chk.Scalar(tst, "rho(mid)", 1e-6, m.Density(1.0, 323.15), mid)
}

func Test_fluid04(tst *testing.T) {

	chk.PrintTitle("fluid04: unknown kind rejected")

	_, err := New("bogus", fun.Params{})
	require.Error(tst, err)
}
