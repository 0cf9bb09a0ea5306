package netio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/pandapipes-go/pipeflow/network"
	"github.com/stretchr/testify/require"
)

const sampleNetwork = `{
  "fluid": {"kind": "constant", "name": "water", "params": {"rho": 1000, "mu": 0.001, "cp": 4186}},
  "junctions": [
    {"index": 0, "name": "a", "pn_bar": 5, "tn_k": 300, "in_service": true},
    {"index": 1, "name": "b", "pn_bar": 5, "tn_k": 300, "in_service": true}
  ],
  "pipes": [
    {"index": 0, "name": "p0", "from_junction": 0, "to_junction": 1, "in_service": true, "length_m": 100, "diameter_m": 0.1, "sections": 1}
  ],
  "ext_grids": [
    {"index": 0, "name": "slack", "junction": 0, "type": "p", "p_bar": 5, "in_service": true}
  ]
}`

func Test_netio01(tst *testing.T) {

	chk.PrintTitle("netio01: load round-trips junctions, pipes, and the fluid model")

	dir := tst.TempDir()
	path := filepath.Join(dir, "net.json")
	require.NoError(tst, os.WriteFile(path, []byte(sampleNetwork), 0644))

	net, err := Load(path)
	require.NoError(tst, err)
	require.Equal(tst, 2, len(net.Junctions))
	require.Equal(tst, 1, len(net.Pipes))
	require.NotNil(tst, net.Fluid)
	chk.Scalar(tst, "water density", 1e-12, net.Fluid.Density(1, 300), 1000)
}

func Test_netio02(tst *testing.T) {

	chk.PrintTitle("netio02: unknown fluid kind surfaces as a load error")

	dir := tst.TempDir()
	path := filepath.Join(dir, "net.json")
	require.NoError(tst, os.WriteFile(path, []byte(`{"fluid": {"kind": "bogus"}}`), 0644))

	_, err := Load(path)
	require.Error(tst, err)
}

func Test_netio03(tst *testing.T) {

	chk.PrintTitle("netio03: save writes the results as indented JSON")

	dir := tst.TempDir()
	net := &network.Network{
		Results: network.Results{
			Junction: []network.JunctionResult{{PBar: 5, TK: 300}},
		},
	}

	outPath := filepath.Join(dir, "results.json")
	require.NoError(tst, SaveResults(net, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(tst, err)
	require.Contains(tst, string(data), "junction")
}
