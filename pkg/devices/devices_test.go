package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceProperties(t *testing.T) {
	testCases := []struct {
		name         string
		device       Device
		numberQubits int
		edges        [][2]int
		remoteHost   string
	}{
		{
			name:         "demo",
			device:       NewDemo(),
			numberQubits: 5,
			edges:        [][2]int{{0, 2}, {1, 2}, {2, 3}, {2, 4}},
			remoteHost:   "https://demo.qc.iqm.fi/cocos/jobs",
		},
		{
			name:         "deneb",
			device:       NewDeneb(),
			numberQubits: 6,
			edges:        nil,
			remoteHost:   "https://cocos.resonance.meetiqm.com/deneb/jobs",
		},
		{
			name:         "adonis",
			device:       NewAdonis(),
			numberQubits: 6,
			edges:        nil,
			remoteHost:   "https://cocos.resonance.meetiqm.com/adonis/jobs",
		},
		{
			name:         "resonator free",
			device:       NewResonatorFree(),
			numberQubits: 6,
			edges:        [][2]int{{0, 5}, {1, 5}, {2, 5}, {3, 5}, {4, 5}},
			remoteHost:   "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.numberQubits, tc.device.NumberQubits())
			assert.Equal(t, tc.edges, tc.device.TwoQubitEdges())
			assert.Equal(t, tc.remoteHost, tc.device.RemoteHost())
		})
	}
}

func TestDemoGateTimes(t *testing.T) {
	d := NewDemo()

	t.Run("single qubit gates", func(t *testing.T) {
		gateTime, ok := d.SingleQubitGateTime("RotateXY", 0)
		require.True(t, ok)
		assert.Equal(t, 1.0, gateTime)

		_, ok = d.SingleQubitGateTime("RotateXY", 5)
		assert.False(t, ok)

		_, ok = d.SingleQubitGateTime("RotateZ", 0)
		assert.False(t, ok)
	})

	t.Run("two qubit gates", func(t *testing.T) {
		gateTime, ok := d.TwoQubitGateTime("ControlledPauliZ", 0, 2)
		require.True(t, ok)
		assert.Equal(t, 1.0, gateTime)

		// Edge orientation does not matter.
		_, ok = d.TwoQubitGateTime("ControlledPauliZ", 2, 0)
		assert.True(t, ok)

		_, ok = d.TwoQubitGateTime("ControlledPauliZ", 0, 1)
		assert.False(t, ok)

		_, ok = d.TwoQubitGateTime("ControlledPhaseShift", 0, 2)
		assert.False(t, ok)
	})

	t.Run("multi qubit gates", func(t *testing.T) {
		_, ok := d.MultiQubitGateTime("MultiQubitZZ", []int{0, 1, 2})
		assert.False(t, ok)
	})
}

func TestResonatorGateTimes(t *testing.T) {
	for _, device := range []Device{NewDeneb(), NewAdonis()} {
		t.Run(device.Name(), func(t *testing.T) {
			for _, gate := range []string{"CZQubitResonator", "SingleExcitationLoad", "SingleExcitationStore"} {
				gateTime, ok := device.TwoQubitGateTime(gate, 3, 0)
				require.True(t, ok, gate)
				assert.Equal(t, 1.0, gateTime)

				// The only resonator is mode 0.
				_, ok = device.TwoQubitGateTime(gate, 3, 1)
				assert.False(t, ok, gate)
			}

			_, ok := device.TwoQubitGateTime("CZQubitResonator", device.NumberQubits(), 0)
			assert.False(t, ok)

			_, ok = device.TwoQubitGateTime("ControlledPauliZ", 0, 1)
			assert.False(t, ok)
		})
	}
}

func TestSetEndpointURL(t *testing.T) {
	d := NewDemo()
	d.SetEndpointURL("http://localhost:8080/jobs")
	assert.Equal(t, "http://localhost:8080/jobs", d.RemoteHost())
}

func TestGenericDevice(t *testing.T) {
	g := NewDemo().Generic()

	assert.Equal(t, 5, g.NumberQubits())

	gateTime, ok := g.SingleQubitGateTime("RotateXY", 4)
	require.True(t, ok)
	assert.Equal(t, 1.0, gateTime)

	// Both orientations of every edge are recorded.
	_, ok = g.TwoQubitGateTime("ControlledPauliZ", 0, 2)
	assert.True(t, ok)
	_, ok = g.TwoQubitGateTime("ControlledPauliZ", 2, 0)
	assert.True(t, ok)

	_, ok = g.TwoQubitGateTime("ControlledPauliZ", 0, 1)
	assert.False(t, ok)
}

func TestConnectivityMatrix(t *testing.T) {
	adj := ConnectivityMatrix(NewDemo())

	rows, cols := adj.Dims()
	require.Equal(t, 5, rows)
	require.Equal(t, 5, cols)

	assert.Equal(t, 1.0, adj.At(0, 2))
	assert.Equal(t, 1.0, adj.At(2, 0))
	assert.Equal(t, 0.0, adj.At(0, 1))
	assert.Equal(t, 0.0, adj.At(0, 0))
}

func TestQubitDecoherenceRates(t *testing.T) {
	// No calibration data is published for any of the devices.
	for _, device := range []Device{NewDemo(), NewDeneb(), NewAdonis(), NewResonatorFree()} {
		assert.Nil(t, device.QubitDecoherenceRates(0), device.Name())
	}
}
