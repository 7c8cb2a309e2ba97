package circuit

// Operation is a single instruction in a circuit: a register definition, a
// gate, a measurement or a pragma.
type Operation interface {
	// Tag identifies the operation type.
	Tag() string
	// InvolvedQubits returns the qubits the operation acts on, or nil for
	// operations that involve no qubits.
	InvolvedQubits() []int
}

// SingleQubitOperation is implemented by gates acting on a single qubit.
type SingleQubitOperation interface {
	Operation
	Qubit() int
}

// TwoQubitOperation is implemented by gates acting on a control and a target.
// For qubit-resonator gates the target is the resonator mode.
type TwoQubitOperation interface {
	Operation
	Control() int
	Target() int
}

// MultiQubitOperation is implemented by gates acting on an arbitrary set of
// qubits.
type MultiQubitOperation interface {
	Operation
	Qubits() []int
}

// DefinitionFloat defines a classical float output register.
type DefinitionFloat struct {
	Name     string
	Length   int
	IsOutput bool
}

func (DefinitionFloat) Tag() string           { return "DefinitionFloat" }
func (DefinitionFloat) InvolvedQubits() []int { return nil }

// DefinitionComplex defines a classical complex output register.
type DefinitionComplex struct {
	Name     string
	Length   int
	IsOutput bool
}

func (DefinitionComplex) Tag() string           { return "DefinitionComplex" }
func (DefinitionComplex) InvolvedQubits() []int { return nil }

// DefinitionBit defines a classical bit output register.
type DefinitionBit struct {
	Name     string
	Length   int
	IsOutput bool
}

func (DefinitionBit) Tag() string           { return "DefinitionBit" }
func (DefinitionBit) InvolvedQubits() []int { return nil }

// RotateXY is a rotation around an axis in the XY plane, parameterized by the
// rotation angle theta and the axis phase phi.
type RotateXY struct {
	QubitIndex int
	Theta      float64
	Phi        float64
}

func (RotateXY) Tag() string              { return "RotateXY" }
func (op RotateXY) Qubit() int            { return op.QubitIndex }
func (op RotateXY) InvolvedQubits() []int { return []int{op.QubitIndex} }

// ControlledPauliZ is the controlled Z gate between two qubits.
type ControlledPauliZ struct {
	ControlQubit int
	TargetQubit  int
}

func (ControlledPauliZ) Tag() string     { return "ControlledPauliZ" }
func (op ControlledPauliZ) Control() int { return op.ControlQubit }
func (op ControlledPauliZ) Target() int  { return op.TargetQubit }
func (op ControlledPauliZ) InvolvedQubits() []int {
	return []int{op.ControlQubit, op.TargetQubit}
}

// CZQubitResonator is a controlled Z gate between a qubit and a resonator
// mode on devices with a central resonator.
type CZQubitResonator struct {
	QubitIndex int
	Mode       int
}

func (CZQubitResonator) Tag() string              { return "CZQubitResonator" }
func (op CZQubitResonator) Control() int          { return op.QubitIndex }
func (op CZQubitResonator) Target() int           { return op.Mode }
func (op CZQubitResonator) InvolvedQubits() []int { return []int{op.QubitIndex} }

// SingleExcitationLoad moves a single excitation from a resonator mode into a
// qubit.
type SingleExcitationLoad struct {
	QubitIndex int
	Mode       int
}

func (SingleExcitationLoad) Tag() string              { return "SingleExcitationLoad" }
func (op SingleExcitationLoad) Control() int          { return op.QubitIndex }
func (op SingleExcitationLoad) Target() int           { return op.Mode }
func (op SingleExcitationLoad) InvolvedQubits() []int { return []int{op.QubitIndex} }

// SingleExcitationStore moves a single excitation from a qubit into a
// resonator mode.
type SingleExcitationStore struct {
	QubitIndex int
	Mode       int
}

func (SingleExcitationStore) Tag() string              { return "SingleExcitationStore" }
func (op SingleExcitationStore) Control() int          { return op.QubitIndex }
func (op SingleExcitationStore) Target() int           { return op.Mode }
func (op SingleExcitationStore) InvolvedQubits() []int { return []int{op.QubitIndex} }

// MeasureQubit measures a single qubit into an index of a bit output register.
type MeasureQubit struct {
	QubitIndex   int
	Readout      string
	ReadoutIndex int
}

func (MeasureQubit) Tag() string              { return "MeasureQubit" }
func (op MeasureQubit) Qubit() int            { return op.QubitIndex }
func (op MeasureQubit) InvolvedQubits() []int { return []int{op.QubitIndex} }

// PragmaRepeatedMeasurement measures all qubits of the device for a number of
// shots into a bit output register. QubitMapping optionally maps measured
// qubits to register indices.
type PragmaRepeatedMeasurement struct {
	Readout      string
	Shots        int
	QubitMapping map[int]int
}

func (PragmaRepeatedMeasurement) Tag() string              { return "PragmaRepeatedMeasurement" }
func (op PragmaRepeatedMeasurement) InvolvedQubits() []int { return nil }

// PragmaSetNumberOfMeasurements overrides the number of shots for a readout
// register.
type PragmaSetNumberOfMeasurements struct {
	Shots   int
	Readout string
}

func (PragmaSetNumberOfMeasurements) Tag() string              { return "PragmaSetNumberOfMeasurements" }
func (op PragmaSetNumberOfMeasurements) InvolvedQubits() []int { return nil }

// PragmaLoop repeats an inner circuit a fixed number of times.
type PragmaLoop struct {
	Repetitions int
	Circuit     *Circuit
}

func (PragmaLoop) Tag() string { return "PragmaLoop" }

func (op PragmaLoop) InvolvedQubits() []int {
	if op.Circuit == nil {
		return nil
	}
	var qubits []int
	for _, inner := range op.Circuit.Operations() {
		qubits = append(qubits, inner.InvolvedQubits()...)
	}
	return qubits
}
