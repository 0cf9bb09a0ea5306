// Package netio reads and writes the JSON network file format the CLI
// operates on, following the same JSON-based file convention used for
// configuration elsewhere in this codebase, generalised here to this
// domain's element tables and the fluid library's named-parameter
// construction (fluid.New(kind, fun.Params)).
package netio

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/fun"
	"github.com/pandapipes-go/pipeflow/fluid"
	"github.com/pandapipes-go/pipeflow/network"
)

// FluidSpec names a fluid model kind plus its named parameters, the
// on-disk counterpart of fluid.Model.
type FluidSpec struct {
	Kind   string             `json:"kind"`
	Name   string             `json:"name"`
	Params map[string]float64 `json:"params"`
}

// File is the on-disk network file shape: one fluid plus every element
// table.
type File struct {
	Fluid FluidSpec `json:"fluid"`

	Junctions           []network.Junction           `json:"junctions"`
	Pipes               []network.Pipe               `json:"pipes"`
	Valves              []network.Valve              `json:"valves"`
	Pumps               []network.Pump               `json:"pumps"`
	Compressors         []network.Compressor         `json:"compressors"`
	HeatExchangers      []network.HeatExchanger      `json:"heat_exchangers"`
	HeatConsumers       []network.HeatConsumer       `json:"heat_consumers"`
	FlowControllers     []network.FlowController     `json:"flow_controllers"`
	PressureControllers []network.PressureController `json:"pressure_controllers"`
	CirculationPumps    []network.CirculationPump    `json:"circulation_pumps"`
	ExtGrids            []network.ExtGrid            `json:"ext_grids"`
	Sinks               []network.Sink               `json:"sinks"`
	Sources             []network.Source             `json:"sources"`
}

type named interface {
	SetName(string)
}

// Load reads a network file and builds the fluid model plus element
// tables into a *network.Network ready for Pipeflow.
func Load(path string) (*network.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	prms := make(fun.Params, 0, len(f.Fluid.Params))
	for k, v := range f.Fluid.Params {
		prms = append(prms, &fun.P{N: k, V: v})
	}
	model, err := fluid.New(f.Fluid.Kind, prms)
	if err != nil {
		return nil, err
	}
	if n, ok := model.(named); ok {
		n.SetName(f.Fluid.Name)
	}

	net := &network.Network{
		Fluid:               model,
		Junctions:           f.Junctions,
		Pipes:               f.Pipes,
		Valves:              f.Valves,
		Pumps:               f.Pumps,
		Compressors:         f.Compressors,
		HeatExchangers:      f.HeatExchangers,
		HeatConsumers:       f.HeatConsumers,
		FlowControllers:     f.FlowControllers,
		PressureControllers: f.PressureControllers,
		CirculationPumps:    f.CirculationPumps,
		ExtGrids:            f.ExtGrids,
		Sinks:               f.Sinks,
		Sources:             f.Sources,
	}
	return net, nil
}

// SaveResults writes net.Results to path as indented JSON.
func SaveResults(net *network.Network, path string) error {
	data, err := json.MarshalIndent(net.Results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
