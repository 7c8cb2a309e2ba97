package circuit

// Circuit is an ordered list of operations describing a quantum computation.
// Operations execute in the order they were added.
type Circuit struct {
	ops []Operation
}

// New creates an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// Add appends operations to the end of the circuit.
func (c *Circuit) Add(ops ...Operation) {
	c.ops = append(c.ops, ops...)
}

// Operations returns the operations in insertion order.
func (c *Circuit) Operations() []Operation {
	return c.ops
}

// Len returns the number of operations in the circuit.
func (c *Circuit) Len() int {
	return len(c.ops)
}

// Definitions returns the register definition operations of the circuit.
func (c *Circuit) Definitions() []Operation {
	var defs []Operation
	for _, op := range c.ops {
		switch op.(type) {
		case DefinitionBit, DefinitionFloat, DefinitionComplex:
			defs = append(defs, op)
		}
	}
	return defs
}

// NumberQubits returns the number of qubits the circuit acts on, determined
// as the highest involved qubit index plus one. It returns 0 for a circuit
// that involves no qubits.
func (c *Circuit) NumberQubits() int {
	n := 0
	for _, op := range c.ops {
		for _, q := range op.InvolvedQubits() {
			if q+1 > n {
				n = q + 1
			}
		}
	}
	return n
}
