package wire

import (
	"fmt"
	"sort"

	"github.com/hqsquantum/iqm-go/pkg/circuit"
)

// resonatorName is the wire name of the central computational resonator on
// qubit-resonator devices.
const resonatorName = "COMP_R"

// QubitName converts a qubit index into the name accepted by IQM. IQM qubits
// are named from 1, so index 1 becomes "QB2".
func QubitName(qubit int) string {
	return fmt.Sprintf("QB%d", qubit+1)
}

// AllQubitNames returns the names of the first numberQubits qubits in the
// format accepted by IQM.
func AllQubitNames(numberQubits int) []string {
	names := make([]string, 0, numberQubits)
	for i := 1; i <= numberQubits; i++ {
		names = append(names, fmt.Sprintf("QB%d", i))
	}
	return names
}

// Translate converts a circuit into the instruction format accepted by the
// IQM REST API.
//
// Bit register definitions initialize entries of bitRegisters with all-false
// rows; measurements into the same register merge into a single measurement
// instruction; PragmaRepeatedMeasurement measures every device qubit and sets
// the shot count; PragmaLoop is unrolled. Float and complex register
// definitions carry no instructions on the wire and are skipped. The register
// indices written by measurements are recorded, per register and in
// measurement order, as the metadata of the returned circuit.
//
// shotsOverride, when positive, overrides the shot count defined by the
// circuit. index distinguishes the circuits of a batch, which must be
// submitted under different names.
func Translate(c *circuit.Circuit, deviceQubits int, bitRegisters map[string]circuit.BitRegister, shotsOverride, index int) (Circuit, int, error) {
	var instructions []Instruction
	shots := 1
	mapping := make(map[string][]int)
	var localRegisters []string

	for _, op := range c.Operations() {
		switch o := op.(type) {
		case circuit.DefinitionBit:
			if o.IsOutput {
				row := make([]bool, o.Length)
				bitRegisters[o.Name] = circuit.BitRegister{row}
				mapping[o.Name] = []int{}
				localRegisters = append(localRegisters, o.Name)
			}
		case circuit.DefinitionFloat, circuit.DefinitionComplex:
			// No wire representation; results of these registers are not
			// produced by the testbed.
		case circuit.MeasureQubit:
			if _, ok := mapping[o.Readout]; !ok {
				return Circuit{}, 0, fmt.Errorf("measurement writes to undefined register %q", o.Readout)
			}
			mapping[o.Readout] = append(mapping[o.Readout], o.ReadoutIndex)
			if !mergeMeasurement(instructions, o.Readout, QubitName(o.QubitIndex)) {
				instructions = append(instructions, Instruction{
					Name:   "measurement",
					Qubits: []string{QubitName(o.QubitIndex)},
					Args:   map[string]any{"key": o.Readout},
				})
			}
		case circuit.PragmaRepeatedMeasurement:
			shots = o.Shots
			if o.QubitMapping == nil {
				indices := make([]int, deviceQubits)
				for i := range indices {
					indices[i] = i
				}
				mapping[o.Readout] = indices
			} else {
				qubits := make([]int, 0, len(o.QubitMapping))
				for q := range o.QubitMapping {
					qubits = append(qubits, q)
				}
				sort.Ints(qubits)
				for _, q := range qubits {
					mapping[o.Readout] = append(mapping[o.Readout], o.QubitMapping[q])
				}
			}
			instructions = append(instructions, Instruction{
				Name:   "measurement",
				Qubits: AllQubitNames(deviceQubits),
				Args:   map[string]any{"key": o.Readout},
			})
		case circuit.PragmaSetNumberOfMeasurements:
			shots = o.Shots
		case circuit.PragmaLoop:
			for rep := 0; rep < o.Repetitions; rep++ {
				for _, inner := range o.Circuit.Operations() {
					instruction, err := translateOperation(inner)
					if err != nil {
						return Circuit{}, 0, err
					}
					instructions = append(instructions, instruction)
				}
			}
		default:
			instruction, err := translateOperation(op)
			if err != nil {
				return Circuit{}, 0, err
			}
			instructions = append(instructions, instruction)
		}
	}

	if shotsOverride > 0 {
		shots = shotsOverride
	}

	if shots > 1 {
		for _, name := range localRegisters {
			row := bitRegisters[name][0]
			expanded := make(circuit.BitRegister, shots)
			for i := range expanded {
				expanded[i] = make([]bool, len(row))
				copy(expanded[i], row)
			}
			bitRegisters[name] = expanded
		}
	}

	return Circuit{
		Name:         fmt.Sprintf("circuit-%d", index),
		Instructions: instructions,
		Metadata:     mapping,
	}, shots, nil
}

// mergeMeasurement appends a qubit to an existing measurement instruction
// with the same key, reporting whether one was found.
func mergeMeasurement(instructions []Instruction, key, qubit string) bool {
	for i := range instructions {
		if instructions[i].Name != "measurement" {
			continue
		}
		if k, ok := instructions[i].Args["key"].(string); ok && k == key {
			instructions[i].Qubits = append(instructions[i].Qubits, qubit)
			return true
		}
	}
	return false
}

// translateOperation converts a single gate into a native IQM instruction.
func translateOperation(op circuit.Operation) (Instruction, error) {
	switch o := op.(type) {
	case circuit.RotateXY:
		return Instruction{
			Name:   "phased_rx",
			Qubits: []string{QubitName(o.QubitIndex)},
			Args: map[string]any{
				"angle_t": o.Theta,
				"phase_t": o.Phi,
			},
		}, nil
	case circuit.ControlledPauliZ:
		return Instruction{
			Name:   "cz",
			Qubits: []string{QubitName(o.ControlQubit), QubitName(o.TargetQubit)},
			Args:   map[string]any{},
		}, nil
	case circuit.CZQubitResonator:
		return Instruction{
			Name:   "cz",
			Qubits: []string{QubitName(o.QubitIndex), resonatorName},
			Args:   map[string]any{},
		}, nil
	case circuit.SingleExcitationLoad:
		return Instruction{
			Name:   "move",
			Qubits: []string{QubitName(o.QubitIndex), resonatorName},
			Args:   map[string]any{},
		}, nil
	case circuit.SingleExcitationStore:
		return Instruction{
			Name:   "move",
			Qubits: []string{QubitName(o.QubitIndex), resonatorName},
			Args:   map[string]any{},
		}, nil
	default:
		return Instruction{}, fmt.Errorf("operation %s is not supported by the IQM backend", op.Tag())
	}
}
