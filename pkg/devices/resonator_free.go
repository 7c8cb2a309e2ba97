package devices

import (
	"gonum.org/v1/gonum/mat"
)

// ResonatorFreeDevice is a six qubit device with direct qubit-qubit coupling
// in a star topology, used for circuits that avoid the central resonator. It
// has no remote endpoint of its own.
type ResonatorFreeDevice struct{}

// NewResonatorFree creates a ResonatorFreeDevice.
func NewResonatorFree() *ResonatorFreeDevice {
	return &ResonatorFreeDevice{}
}

// Name returns the device name.
func (d *ResonatorFreeDevice) Name() string { return "ResonatorFree" }

// RemoteHost returns an empty string: the device has no remote endpoint.
func (d *ResonatorFreeDevice) RemoteHost() string { return "" }

// NumberQubits returns the number of qubits the device supports.
func (d *ResonatorFreeDevice) NumberQubits() int { return 6 }

// TwoQubitEdges returns the pairs of qubits linked with a native two-qubit
// gate: a star with qubit 5 at the center.
func (d *ResonatorFreeDevice) TwoQubitEdges() [][2]int {
	edges := make([][2]int, 0, 5)
	for i := 0; i < 5; i++ {
		edges = append(edges, [2]int{i, 5})
	}
	return edges
}

// SingleQubitGateTime returns the gate time of a single qubit gate, if
// available on the device.
func (d *ResonatorFreeDevice) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	if gate == "RotateXY" && qubit >= 0 && qubit < d.NumberQubits() {
		return 1.0, true
	}
	return 0, false
}

// TwoQubitGateTime returns the gate time of a two qubit gate, if available on
// the device.
func (d *ResonatorFreeDevice) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	if gate != "ControlledPauliZ" {
		return 0, false
	}
	if !edgesContain(d.TwoQubitEdges(), control, target) {
		return 0, false
	}
	return 1.0, true
}

// MultiQubitGateTime returns the gate time of a multi qubit gate. The device
// has no native multi qubit gates.
func (d *ResonatorFreeDevice) MultiQubitGateTime(gate string, qubits []int) (float64, bool) {
	return 0, false
}

// QubitDecoherenceRates returns the decoherence rate matrix for a qubit. No
// calibration data is published for this device.
func (d *ResonatorFreeDevice) QubitDecoherenceRates(qubit int) *mat.Dense {
	return nil
}

// Generic converts the device into a GenericDevice.
func (d *ResonatorFreeDevice) Generic() *GenericDevice {
	return genericFromDevice(d, []string{"RotateXY"}, []string{"ControlledPauliZ"})
}
