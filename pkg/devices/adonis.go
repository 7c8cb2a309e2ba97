package devices

import (
	"gonum.org/v1/gonum/mat"
)

// AdonisEndpoint is the default API endpoint of the IQM Adonis device.
const AdonisEndpoint = "https://cocos.resonance.meetiqm.com/adonis/jobs"

// AdonisDevice is a six qubit device where two-qubit interactions go through
// a central resonator, addressed as mode 0 of the qubit-resonator gates.
type AdonisDevice struct {
	url string
}

// NewAdonis creates an AdonisDevice with default settings.
func NewAdonis() *AdonisDevice {
	return &AdonisDevice{url: AdonisEndpoint}
}

// Name returns the device name.
func (d *AdonisDevice) Name() string { return "Adonis" }

// RemoteHost returns the API endpoint URL of the device.
func (d *AdonisDevice) RemoteHost() string { return d.url }

// SetEndpointURL changes the API endpoint URL of the device.
func (d *AdonisDevice) SetEndpointURL(url string) { d.url = url }

// NumberQubits returns the number of qubits the device supports.
func (d *AdonisDevice) NumberQubits() int { return 6 }

// TwoQubitEdges returns the pairs of qubits linked with a native two-qubit
// gate. Adonis qubits only couple through the resonator, so there are none.
func (d *AdonisDevice) TwoQubitEdges() [][2]int { return nil }

// SingleQubitGateTime returns the gate time of a single qubit gate, if
// available on the device.
func (d *AdonisDevice) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	if gate == "RotateXY" && qubit >= 0 && qubit < d.NumberQubits() {
		return 1.0, true
	}
	return 0, false
}

// TwoQubitGateTime returns the gate time of a qubit-resonator gate, if
// available on the device. The control index is the qubit involved and the
// target index is the central resonator, which must be 0.
func (d *AdonisDevice) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	if target != 0 || control < 0 || control >= d.NumberQubits() {
		return 0, false
	}
	switch gate {
	case "CZQubitResonator", "SingleExcitationLoad", "SingleExcitationStore":
		return 1.0, true
	}
	return 0, false
}

// MultiQubitGateTime returns the gate time of a multi qubit gate. Adonis has
// no native multi qubit gates.
func (d *AdonisDevice) MultiQubitGateTime(gate string, qubits []int) (float64, bool) {
	return 0, false
}

// QubitDecoherenceRates returns the decoherence rate matrix for a qubit. No
// calibration data is published for Adonis.
func (d *AdonisDevice) QubitDecoherenceRates(qubit int) *mat.Dense {
	return nil
}

// Generic converts the device into a GenericDevice.
func (d *AdonisDevice) Generic() *GenericDevice {
	g := NewGeneric(d.NumberQubits())
	for qubit := 0; qubit < d.NumberQubits(); qubit++ {
		if t, ok := d.SingleQubitGateTime("RotateXY", qubit); ok {
			g.SetSingleQubitGateTime("RotateXY", qubit, t)
		}
		for _, gate := range []string{"CZQubitResonator", "SingleExcitationLoad", "SingleExcitationStore"} {
			if t, ok := d.TwoQubitGateTime(gate, qubit, 0); ok {
				g.SetTwoQubitGateTime(gate, qubit, 0, t)
			}
		}
	}
	return g
}
