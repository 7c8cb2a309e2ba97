package backend

import (
	"fmt"

	"github.com/hqsquantum/iqm-go/pkg/circuit"
)

// allowedNonGateOps are the operations accepted by the backend that are not
// gates and carry no gate time on any device.
var allowedNonGateOps = map[string]bool{
	"PragmaSetNumberOfMeasurements": true,
	"PragmaRepeatedMeasurement":     true,
	"MeasureQubit":                  true,
	"DefinitionBit":                 true,
	"DefinitionFloat":               true,
	"DefinitionComplex":             true,
	"InputBit":                      true,
}

// ValidateCircuit checks that a circuit is well-defined for the backend's
// device: the circuit is non-empty, every gate respects the device
// connectivity, every qubit is measured at most once, and readout registers
// are large enough.
func (b *Backend) ValidateCircuit(c *circuit.Circuit) error {
	numberQubits := c.NumberQubits()
	if numberQubits == 0 {
		return ErrEmptyCircuit
	}

	if deneb, ok := b.device.(interface {
		ValidateCircuit(*circuit.Circuit) error
	}); ok {
		if err := deneb.ValidateCircuit(c); err != nil {
			return err
		}
	} else if err := b.validateConnectivity(c); err != nil {
		return err
	}

	return b.validateMeasurements(c, numberQubits)
}

// validateConnectivity checks every gate of the circuit against the device's
// gate time tables.
func (b *Backend) validateConnectivity(c *circuit.Circuit) error {
	for _, op := range c.Operations() {
		if err := b.validateOperation(op); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) validateOperation(op circuit.Operation) error {
	if allowedNonGateOps[op.Tag()] {
		return nil
	}
	switch o := op.(type) {
	case circuit.PragmaLoop:
		if o.Circuit == nil {
			return nil
		}
		for _, inner := range o.Circuit.Operations() {
			if err := b.validateOperation(inner); err != nil {
				return err
			}
		}
	case circuit.TwoQubitOperation:
		if _, ok := b.device.TwoQubitGateTime(op.Tag(), o.Control(), o.Target()); !ok {
			return &InvalidCircuitError{
				Message: fmt.Sprintf("operation %s on qubits (%d, %d) is not supported by device %s",
					op.Tag(), o.Control(), o.Target(), b.device.Name()),
			}
		}
	case circuit.SingleQubitOperation:
		if _, ok := b.device.SingleQubitGateTime(op.Tag(), o.Qubit()); !ok {
			return &InvalidCircuitError{
				Message: fmt.Sprintf("operation %s on qubit %d is not supported by device %s",
					op.Tag(), o.Qubit(), b.device.Name()),
			}
		}
	case circuit.MultiQubitOperation:
		if _, ok := b.device.MultiQubitGateTime(op.Tag(), o.Qubits()); !ok {
			return &InvalidCircuitError{
				Message: fmt.Sprintf("operation %s is not supported by device %s", op.Tag(), b.device.Name()),
			}
		}
	default:
		return &InvalidCircuitError{
			Message: fmt.Sprintf("operation %s is not supported by the IQM backend", op.Tag()),
		}
	}
	return nil
}

// validateMeasurements checks that every qubit is measured at most once and
// that readout registers can hold the measured outcomes.
func (b *Backend) validateMeasurements(c *circuit.Circuit, numberQubits int) error {
	measured := make(map[int]bool)

	for _, op := range c.Operations() {
		switch o := op.(type) {
		case circuit.MeasureQubit:
			if measured[o.QubitIndex] {
				return &DoubleMeasurementError{Qubit: o.QubitIndex}
			}
			measured[o.QubitIndex] = true
		case circuit.PragmaRepeatedMeasurement:
			if len(measured) > 0 {
				return &InvalidCircuitError{
					Message: "qubits are being measured more than once: when using PragmaRepeatedMeasurement " +
						"there should be no individual qubit measurements, and the operation can appear only once in the circuit",
				}
			}
			for q := 0; q < b.device.NumberQubits(); q++ {
				measured[q] = true
			}

			readoutLength := 0
			for _, def := range c.Definitions() {
				if reg, ok := def.(circuit.DefinitionBit); ok && reg.Name == o.Readout {
					readoutLength = reg.Length
				}
			}
			if numberQubits > readoutLength {
				return &RegisterTooSmallError{Name: o.Readout}
			}
		}
	}
	return nil
}

// validateBatch checks that the circuits of a batch write to distinct output
// registers.
func validateBatch(batch []*circuit.Circuit) error {
	outputRegisters := make(map[string]bool)
	for _, c := range batch {
		for _, op := range c.Operations() {
			if def, ok := op.(circuit.DefinitionBit); ok && def.IsOutput {
				outputRegisters[def.Name] = true
			}
		}
	}
	if len(outputRegisters) < len(batch) {
		return &InvalidCircuitError{
			Message: "invalid circuit batch: when submitting a batch of circuits, they need to write to different output registers",
		}
	}
	return nil
}
