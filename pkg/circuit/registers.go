package circuit

// BitRegister holds measured bit outcomes. The outer slice indexes shots, the
// inner slice indexes register entries.
type BitRegister [][]bool

// FloatRegister holds float outputs per shot.
type FloatRegister [][]float64

// ComplexRegister holds complex outputs per shot.
type ComplexRegister [][]complex128

// Registers groups the classical output registers returned by a backend run,
// keyed by register name.
type Registers struct {
	Bit     map[string]BitRegister
	Float   map[string]FloatRegister
	Complex map[string]ComplexRegister
}

// NewRegisters creates an empty set of output registers.
func NewRegisters() Registers {
	return Registers{
		Bit:     make(map[string]BitRegister),
		Float:   make(map[string]FloatRegister),
		Complex: make(map[string]ComplexRegister),
	}
}
