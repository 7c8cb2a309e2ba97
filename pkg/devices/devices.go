// Package devices describes the IQM hardware targets circuits can be
// submitted to: their qubit counts, connectivity and native gate sets.
package devices

import (
	"gonum.org/v1/gonum/mat"
)

// Device describes the topology and capabilities of a target quantum device.
//
// Gate time lookups double as availability checks: a gate is available on the
// device exactly when the lookup reports ok. For qubit-resonator gates the
// target index is the resonator mode.
type Device interface {
	// Name returns the device name.
	Name() string
	// RemoteHost returns the API endpoint URL of the device, or an empty
	// string for devices without a remote endpoint.
	RemoteHost() string
	// NumberQubits returns the number of qubits the device supports.
	NumberQubits() int
	// TwoQubitEdges returns the pairs of qubits linked with a native
	// two-qubit gate, as an undirected edge list.
	TwoQubitEdges() [][2]int
	// SingleQubitGateTime returns the gate time of a single qubit gate, if
	// available on the device.
	SingleQubitGateTime(gate string, qubit int) (float64, bool)
	// TwoQubitGateTime returns the gate time of a two qubit gate, if
	// available on the device.
	TwoQubitGateTime(gate string, control, target int) (float64, bool)
	// MultiQubitGateTime returns the gate time of a multi qubit gate, if
	// available on the device.
	MultiQubitGateTime(gate string, qubits []int) (float64, bool)
	// QubitDecoherenceRates returns the decoherence rate matrix of the
	// Lindblad equation for a qubit, or nil if unknown.
	QubitDecoherenceRates(qubit int) *mat.Dense
	// Generic converts the device into a map-backed GenericDevice.
	Generic() *GenericDevice
}

// ConnectivityMatrix returns the symmetric adjacency matrix of the device's
// two-qubit connectivity graph. It can be fed into graph or linear-algebra
// tooling for applications like routing.
func ConnectivityMatrix(d Device) *mat.Dense {
	n := d.NumberQubits()
	adj := mat.NewDense(n, n, nil)
	for _, edge := range d.TwoQubitEdges() {
		adj.Set(edge[0], edge[1], 1)
		adj.Set(edge[1], edge[0], 1)
	}
	return adj
}

// GenericDevice is a map-backed device representation. It can serve as a
// generic interface for devices when a concrete device type cannot be used,
// for example when the device description needs to be serialized.
type GenericDevice struct {
	numberQubits     int
	singleQubitGates map[string]map[int]float64
	twoQubitGates    map[string]map[[2]int]float64
}

// NewGeneric creates an empty GenericDevice with the given number of qubits.
func NewGeneric(numberQubits int) *GenericDevice {
	return &GenericDevice{
		numberQubits:     numberQubits,
		singleQubitGates: make(map[string]map[int]float64),
		twoQubitGates:    make(map[string]map[[2]int]float64),
	}
}

// SetSingleQubitGateTime records the gate time of a single qubit gate.
func (g *GenericDevice) SetSingleQubitGateTime(gate string, qubit int, gateTime float64) {
	if g.singleQubitGates[gate] == nil {
		g.singleQubitGates[gate] = make(map[int]float64)
	}
	g.singleQubitGates[gate][qubit] = gateTime
}

// SetTwoQubitGateTime records the gate time of a two qubit gate in one
// direction.
func (g *GenericDevice) SetTwoQubitGateTime(gate string, control, target int, gateTime float64) {
	if g.twoQubitGates[gate] == nil {
		g.twoQubitGates[gate] = make(map[[2]int]float64)
	}
	g.twoQubitGates[gate][[2]int{control, target}] = gateTime
}

// NumberQubits returns the number of qubits of the device.
func (g *GenericDevice) NumberQubits() int {
	return g.numberQubits
}

// SingleQubitGateTime returns the recorded gate time of a single qubit gate.
func (g *GenericDevice) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	t, ok := g.singleQubitGates[gate][qubit]
	return t, ok
}

// TwoQubitGateTime returns the recorded gate time of a two qubit gate.
func (g *GenericDevice) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	t, ok := g.twoQubitGates[gate][[2]int{control, target}]
	return t, ok
}

// genericFromDevice builds a GenericDevice out of a device's gate tables,
// recording two-qubit gates in both directions.
func genericFromDevice(d Device, singleQubitGates, twoQubitGates []string) *GenericDevice {
	g := NewGeneric(d.NumberQubits())
	for _, gate := range singleQubitGates {
		for qubit := 0; qubit < d.NumberQubits(); qubit++ {
			if t, ok := d.SingleQubitGateTime(gate, qubit); ok {
				g.SetSingleQubitGateTime(gate, qubit, t)
			}
		}
	}
	for _, gate := range twoQubitGates {
		for _, edge := range d.TwoQubitEdges() {
			if t, ok := d.TwoQubitGateTime(gate, edge[0], edge[1]); ok {
				g.SetTwoQubitGateTime(gate, edge[0], edge[1], t)
			}
			if t, ok := d.TwoQubitGateTime(gate, edge[1], edge[0]); ok {
				g.SetTwoQubitGateTime(gate, edge[1], edge[0], t)
			}
		}
	}
	return g
}
