package devices

import (
	"gonum.org/v1/gonum/mat"
)

// DemoEndpoint is the default API endpoint of the IQM demo environment.
const DemoEndpoint = "https://demo.qc.iqm.fi/cocos/jobs"

// DemoDevice is the IQM demo environment.
//
// The endpoint receives instructions and returns simulated results. Results
// are pseudo-random numbers, not actual quantum simulations.
type DemoDevice struct {
	url string
}

// NewDemo creates a DemoDevice with default settings.
func NewDemo() *DemoDevice {
	return &DemoDevice{url: DemoEndpoint}
}

// Name returns the device name.
func (d *DemoDevice) Name() string { return "Demo" }

// RemoteHost returns the API endpoint URL of the device.
func (d *DemoDevice) RemoteHost() string { return d.url }

// SetEndpointURL changes the API endpoint URL of the device.
func (d *DemoDevice) SetEndpointURL(url string) { d.url = url }

// NumberQubits returns the number of qubits the device supports.
func (d *DemoDevice) NumberQubits() int { return 5 }

// TwoQubitEdges returns the pairs of qubits linked with a native two-qubit
// gate. The demo device is a star with qubit 2 at the center.
func (d *DemoDevice) TwoQubitEdges() [][2]int {
	return [][2]int{{0, 2}, {1, 2}, {2, 3}, {2, 4}}
}

// SingleQubitGateTime returns the gate time of a single qubit gate, if
// available on the device.
func (d *DemoDevice) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	if gate == "RotateXY" && qubit >= 0 && qubit < d.NumberQubits() {
		return 1.0, true
	}
	return 0, false
}

// TwoQubitGateTime returns the gate time of a two qubit gate, if available on
// the device.
func (d *DemoDevice) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	if gate != "ControlledPauliZ" {
		return 0, false
	}
	if !edgesContain(d.TwoQubitEdges(), control, target) {
		return 0, false
	}
	return 1.0, true
}

// MultiQubitGateTime returns the gate time of a multi qubit gate. The demo
// device has no native multi qubit gates.
func (d *DemoDevice) MultiQubitGateTime(gate string, qubits []int) (float64, bool) {
	return 0, false
}

// QubitDecoherenceRates returns the decoherence rate matrix for a qubit. The
// demo environment publishes no calibration data.
func (d *DemoDevice) QubitDecoherenceRates(qubit int) *mat.Dense {
	return nil
}

// Generic converts the device into a GenericDevice.
func (d *DemoDevice) Generic() *GenericDevice {
	return genericFromDevice(d, []string{"RotateXY"}, []string{"ControlledPauliZ"})
}

// edgesContain reports whether the undirected edge list contains the pair,
// in either orientation.
func edgesContain(edges [][2]int, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	for _, e := range edges {
		lo, hi := e[0], e[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo == a && hi == b {
			return true
		}
	}
	return false
}
