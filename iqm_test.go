package iqm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotice(t *testing.T) {
	var buf bytes.Buffer
	printNotice(&buf)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Note:"))
	assert.Contains(t, out, "test the connection")
	assert.Contains(t, out, "NOT return data from a valid simulation")
}

func TestBackendConstruction(t *testing.T) {
	t.Setenv("IQM_TOKEN", "")
	t.Setenv("IQM_TOKENS_FILE", "")

	c := NewCircuit()
	c.Add(
		DefinitionFloat{Name: "rf", Length: 1, IsOutput: true},
		DefinitionComplex{Name: "rc", Length: 1, IsOutput: true},
		DefinitionBit{Name: "ro", Length: 1, IsOutput: true},
		ControlledPauliZ{ControlQubit: 0, TargetQubit: 1},
		MeasureQubit{QubitIndex: 0, Readout: "ro", ReadoutIndex: 0},
	)
	assert.Equal(t, 2, c.NumberQubits())

	device := NewDemoDevice()
	b, err := NewBackend(device, "")
	require.NoError(t, err)
	assert.Equal(t, "Demo", b.Device().Name())
}

func TestReexportedConstructors(t *testing.T) {
	assert.Equal(t, 5, NewDemoDevice().NumberQubits())
	assert.Equal(t, 6, NewDenebDevice().NumberQubits())
	assert.Equal(t, 6, NewAdonisDevice().NumberQubits())
	assert.Equal(t, 6, NewResonatorFree().NumberQubits())

	registers := NewRegisters()
	assert.NotNil(t, registers.Bit)
	assert.NotNil(t, registers.Float)
	assert.NotNil(t, registers.Complex)
}
