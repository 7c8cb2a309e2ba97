// Package iqm is an adapter that lets quantum circuits be submitted to the
// IQM quantum computer testbed. It re-exports the circuit, device and backend
// types of its subpackages under a single namespace.
//
// A valid IQM credential is required to use the backend. At the moment the
// backend can only be used to test the connection to the testbed: it will not
// return data from a valid simulation of a quantum circuit.
package iqm

import (
	"fmt"
	"io"
	"os"

	"github.com/hqsquantum/iqm-go/pkg/backend"
	"github.com/hqsquantum/iqm-go/pkg/circuit"
	"github.com/hqsquantum/iqm-go/pkg/devices"
)

// Notice is the advisory printed once per process when the package is
// imported.
const Notice = `Note: At the moment this backend can only be used to test the connection
to the testbed. It will NOT return data from a valid simulation of a quantum circuit.`

func init() {
	printNotice(os.Stdout)
}

func printNotice(w io.Writer) {
	fmt.Fprintln(w, Notice)
}

// Re-exported circuit types.
type (
	Circuit                       = circuit.Circuit
	Operation                     = circuit.Operation
	Registers                     = circuit.Registers
	BitRegister                   = circuit.BitRegister
	FloatRegister                 = circuit.FloatRegister
	ComplexRegister               = circuit.ComplexRegister
	DefinitionBit                 = circuit.DefinitionBit
	DefinitionFloat               = circuit.DefinitionFloat
	DefinitionComplex             = circuit.DefinitionComplex
	RotateXY                      = circuit.RotateXY
	ControlledPauliZ              = circuit.ControlledPauliZ
	CZQubitResonator              = circuit.CZQubitResonator
	SingleExcitationLoad          = circuit.SingleExcitationLoad
	SingleExcitationStore         = circuit.SingleExcitationStore
	MeasureQubit                  = circuit.MeasureQubit
	PragmaRepeatedMeasurement     = circuit.PragmaRepeatedMeasurement
	PragmaSetNumberOfMeasurements = circuit.PragmaSetNumberOfMeasurements
	PragmaLoop                    = circuit.PragmaLoop
)

// Re-exported device types.
type (
	Device              = devices.Device
	GenericDevice       = devices.GenericDevice
	DemoDevice          = devices.DemoDevice
	DenebDevice         = devices.DenebDevice
	AdonisDevice        = devices.AdonisDevice
	ResonatorFreeDevice = devices.ResonatorFreeDevice
)

// Re-exported backend types.
type (
	Backend = backend.Backend
	Option  = backend.Option
)

// Re-exported constructors and options.
var (
	NewCircuit       = circuit.New
	NewRegisters     = circuit.NewRegisters
	NewDemoDevice    = devices.NewDemo
	NewDenebDevice   = devices.NewDeneb
	NewAdonisDevice  = devices.NewAdonis
	NewResonatorFree = devices.NewResonatorFree
	NewBackend       = backend.New

	WithHTTPClient    = backend.WithHTTPClient
	WithLogger        = backend.WithLogger
	WithPollInterval  = backend.WithPollInterval
	WithResultTimeout = backend.WithResultTimeout
	WithTokensFile    = backend.WithTokensFile
	WithShots         = backend.WithShots
)
