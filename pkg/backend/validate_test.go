package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hqsquantum/iqm-go/pkg/circuit"
	"github.com/hqsquantum/iqm-go/pkg/devices"
)

func demoBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := New(devices.NewDemo(), "token")
	require.NoError(t, err)
	return b
}

func TestValidateCircuit(t *testing.T) {
	t.Run("valid circuit", func(t *testing.T) {
		c := circuit.New()
		c.Add(
			circuit.DefinitionBit{Name: "ro", Length: 2, IsOutput: true},
			circuit.RotateXY{QubitIndex: 2, Theta: 1.0, Phi: 0.0},
			circuit.ControlledPauliZ{ControlQubit: 0, TargetQubit: 2},
			circuit.MeasureQubit{QubitIndex: 0, Readout: "ro", ReadoutIndex: 0},
			circuit.MeasureQubit{QubitIndex: 2, Readout: "ro", ReadoutIndex: 1},
		)
		assert.NoError(t, demoBackend(t).ValidateCircuit(c))
	})

	t.Run("empty circuit", func(t *testing.T) {
		assert.ErrorIs(t, demoBackend(t).ValidateCircuit(circuit.New()), ErrEmptyCircuit)
	})

	t.Run("gate outside device connectivity", func(t *testing.T) {
		c := circuit.New()
		c.Add(circuit.ControlledPauliZ{ControlQubit: 3, TargetQubit: 4})

		err := demoBackend(t).ValidateCircuit(c)
		var invalid *InvalidCircuitError
		require.ErrorAs(t, err, &invalid)
		assert.Contains(t, invalid.Message, "ControlledPauliZ")
	})

	t.Run("reversed edge orientation is accepted", func(t *testing.T) {
		c := circuit.New()
		c.Add(circuit.ControlledPauliZ{ControlQubit: 2, TargetQubit: 0})
		assert.NoError(t, demoBackend(t).ValidateCircuit(c))
	})

	t.Run("single qubit gate outside the device", func(t *testing.T) {
		c := circuit.New()
		c.Add(circuit.RotateXY{QubitIndex: 7, Theta: 1.0, Phi: 0.0})

		var invalid *InvalidCircuitError
		assert.ErrorAs(t, demoBackend(t).ValidateCircuit(c), &invalid)
	})

	t.Run("gates inside a loop are validated", func(t *testing.T) {
		inner := circuit.New()
		inner.Add(circuit.ControlledPauliZ{ControlQubit: 3, TargetQubit: 4})

		c := circuit.New()
		c.Add(circuit.PragmaLoop{Repetitions: 2, Circuit: inner})

		var invalid *InvalidCircuitError
		assert.ErrorAs(t, demoBackend(t).ValidateCircuit(c), &invalid)
	})

	t.Run("double measurement of a qubit", func(t *testing.T) {
		c := circuit.New()
		c.Add(
			circuit.DefinitionBit{Name: "ro", Length: 2, IsOutput: true},
			circuit.MeasureQubit{QubitIndex: 1, Readout: "ro", ReadoutIndex: 0},
			circuit.MeasureQubit{QubitIndex: 1, Readout: "ro", ReadoutIndex: 1},
		)

		err := demoBackend(t).ValidateCircuit(c)
		var double *DoubleMeasurementError
		require.ErrorAs(t, err, &double)
		assert.Equal(t, 1, double.Qubit)
	})

	t.Run("repeated measurement after individual measurement", func(t *testing.T) {
		c := circuit.New()
		c.Add(
			circuit.DefinitionBit{Name: "ro", Length: 5, IsOutput: true},
			circuit.MeasureQubit{QubitIndex: 0, Readout: "ro", ReadoutIndex: 0},
			circuit.PragmaRepeatedMeasurement{Readout: "ro", Shots: 10},
		)

		var invalid *InvalidCircuitError
		assert.ErrorAs(t, demoBackend(t).ValidateCircuit(c), &invalid)
	})

	t.Run("readout register too small for repeated measurement", func(t *testing.T) {
		c := circuit.New()
		c.Add(
			circuit.DefinitionBit{Name: "ro", Length: 2, IsOutput: true},
			circuit.RotateXY{QubitIndex: 4, Theta: 1.0, Phi: 0.0},
			circuit.PragmaRepeatedMeasurement{Readout: "ro", Shots: 10},
		)

		err := demoBackend(t).ValidateCircuit(c)
		var small *RegisterTooSmallError
		require.ErrorAs(t, err, &small)
		assert.Equal(t, "ro", small.Name)
	})

	t.Run("repeated measurement with large enough register", func(t *testing.T) {
		c := circuit.New()
		c.Add(
			circuit.DefinitionBit{Name: "ro", Length: 5, IsOutput: true},
			circuit.RotateXY{QubitIndex: 4, Theta: 1.0, Phi: 0.0},
			circuit.PragmaRepeatedMeasurement{Readout: "ro", Shots: 10},
		)
		assert.NoError(t, demoBackend(t).ValidateCircuit(c))
	})

	t.Run("deneb validation is delegated to the device", func(t *testing.T) {
		b, err := New(devices.NewDeneb(), "token")
		require.NoError(t, err)

		c := circuit.New()
		c.Add(
			circuit.SingleExcitationStore{QubitIndex: 1, Mode: 0},
			circuit.SingleExcitationStore{QubitIndex: 2, Mode: 0},
		)
		assert.ErrorContains(t, b.ValidateCircuit(c), "store two excitations")
	})
}

func TestValidateBatch(t *testing.T) {
	withRegister := func(name string) *circuit.Circuit {
		c := circuit.New()
		c.Add(
			circuit.DefinitionBit{Name: name, Length: 1, IsOutput: true},
			circuit.MeasureQubit{QubitIndex: 0, Readout: name, ReadoutIndex: 0},
		)
		return c
	}

	t.Run("distinct output registers", func(t *testing.T) {
		err := validateBatch([]*circuit.Circuit{withRegister("a"), withRegister("b")})
		assert.NoError(t, err)
	})

	t.Run("shared output register", func(t *testing.T) {
		err := validateBatch([]*circuit.Circuit{withRegister("a"), withRegister("a")})
		var invalid *InvalidCircuitError
		assert.ErrorAs(t, err, &invalid)
	})
}
