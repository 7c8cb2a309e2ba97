package devices

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hqsquantum/iqm-go/pkg/circuit"
)

// DenebEndpoint is the default API endpoint of the IQM Deneb device.
const DenebEndpoint = "https://cocos.resonance.meetiqm.com/deneb/jobs"

// DenebDevice is a hardware device composed of six qubits each coupled to a
// central resonator. Two-qubit interactions go through the resonator, which
// is addressed as mode 0 of the qubit-resonator gates.
type DenebDevice struct {
	url  string
	name string
}

// NewDeneb creates a DenebDevice with default settings.
func NewDeneb() *DenebDevice {
	return &DenebDevice{url: DenebEndpoint, name: "Deneb"}
}

// Name returns the device name.
func (d *DenebDevice) Name() string { return d.name }

// RemoteHost returns the API endpoint URL of the device.
func (d *DenebDevice) RemoteHost() string { return d.url }

// SetEndpointURL changes the API endpoint URL of the device.
func (d *DenebDevice) SetEndpointURL(url string) { d.url = url }

// NumberQubits returns the number of qubits the device supports.
func (d *DenebDevice) NumberQubits() int { return 6 }

// TwoQubitEdges returns the pairs of qubits linked with a native two-qubit
// gate. Deneb qubits only couple through the resonator, so there are none.
func (d *DenebDevice) TwoQubitEdges() [][2]int { return nil }

// SingleQubitGateTime returns the gate time of a single qubit gate, if
// available on the device.
func (d *DenebDevice) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	if gate == "RotateXY" && qubit >= 0 && qubit < d.NumberQubits() {
		return 1.0, true
	}
	return 0, false
}

// TwoQubitGateTime returns the gate time of a qubit-resonator gate, if
// available on the device. The control index is the qubit involved and the
// target index is the central resonator, which must be 0.
func (d *DenebDevice) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	if target != 0 || control < 0 || control >= d.NumberQubits() {
		return 0, false
	}
	switch gate {
	case "CZQubitResonator", "SingleExcitationLoad", "SingleExcitationStore":
		return 1.0, true
	}
	return 0, false
}

// MultiQubitGateTime returns the gate time of a multi qubit gate. Deneb has
// no native multi qubit gates.
func (d *DenebDevice) MultiQubitGateTime(gate string, qubits []int) (float64, bool) {
	return 0, false
}

// QubitDecoherenceRates returns the decoherence rate matrix for a qubit. No
// calibration data is published for Deneb.
func (d *DenebDevice) QubitDecoherenceRates(qubit int) *mat.Dense {
	return nil
}

// Generic converts the device into a GenericDevice.
func (d *DenebDevice) Generic() *GenericDevice {
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

// ValidateCircuit checks that a circuit is well-defined for Deneb's
// architecture: the device connectivity is respected, and load/store
// operations on the single resonator excitation appear in a valid order.
func (d *DenebDevice) ValidateCircuit(c *circuit.Circuit) error {
	if err := d.validateConnectivity(c); err != nil {
		return err
	}
	return d.validateLoadStore(c)
}

// validateLoadStore rejects circuits that load twice in a row from the
// resonator, store two excitations in the resonator, or rotate a stored
// qubit before loading the excitation back into it.
func (d *DenebDevice) validateLoadStore(c *circuit.Circuit) error {
	const (
		stateZero = iota
		stateFoundLoad
		stateFoundStore
	)

	state := stateZero
	storedQubit := -1
	qubitRotated := false

	for _, op := range c.Operations() {
		switch o := op.(type) {
		case circuit.SingleExcitationLoad:
			switch state {
			case stateFoundStore:
				if qubitRotated && storedQubit == o.QubitIndex {
					return fmt.Errorf(
						"circuit tries to rotate qubit %d before loading an excitation into it from the resonator",
						o.QubitIndex)
				}
			case stateFoundLoad:
				return fmt.Errorf("circuit tries to load twice in a row from the resonator")
			}
			state = stateFoundLoad
		case circuit.SingleExcitationStore:
			if state == stateFoundStore {
				return fmt.Errorf("circuit tries to store two excitations in the resonator")
			}
			storedQubit = o.QubitIndex
			state = stateFoundStore
		default:
			if storedQubit >= 0 {
				if single, ok := op.(circuit.SingleQubitOperation); ok && single.Qubit() == storedQubit {
					qubitRotated = true
				}
			}
		}
	}
	return nil
}

// validateConnectivity checks qubit and resonator indices of every operation
// against the device topology.
func (d *DenebDevice) validateConnectivity(c *circuit.Circuit) error {
	allowedMeasurementOps := map[string]bool{
		"PragmaSetNumberOfMeasurements": true,
		"PragmaRepeatedMeasurement":     true,
		"MeasureQubit":                  true,
		"DefinitionBit":                 true,
		"InputBit":                      true,
	}

	for _, op := range c.Operations() {
		switch o := op.(type) {
		case circuit.RotateXY:
			if o.QubitIndex >= d.NumberQubits() {
				return fmt.Errorf(
					"too many qubits involved in the circuit: found %s acting on qubit %d, qubits in Deneb device: %d",
					op.Tag(), o.QubitIndex, d.NumberQubits())
			}
		case circuit.CZQubitResonator:
			if o.QubitIndex >= d.NumberQubits() {
				return fmt.Errorf(
					"too many qubits involved in the circuit: found %s acting on qubit %d, qubits in Deneb device: %d",
					op.Tag(), o.QubitIndex, d.NumberQubits())
			}
			if o.Mode != 0 {
				return fmt.Errorf(
					"wrong resonator index in operation %s: DenebDevice has a single resonator with index 0", op.Tag())
			}
		case circuit.SingleExcitationLoad:
			if o.Mode != 0 {
				return fmt.Errorf(
					"wrong resonator index in operation %s: DenebDevice has a single resonator with index 0", op.Tag())
			}
		case circuit.SingleExcitationStore:
			if o.Mode != 0 {
				return fmt.Errorf(
					"wrong resonator index in operation %s: DenebDevice has a single resonator with index 0", op.Tag())
			}
		default:
			if !allowedMeasurementOps[op.Tag()] {
				return fmt.Errorf("operation %s is not supported by the IQM backend", op.Tag())
			}
		}
	}
	return nil
}
