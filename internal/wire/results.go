package wire

import (
	"fmt"

	"github.com/hqsquantum/iqm-go/pkg/circuit"
)

// MeasuredQubitsMap associates each output register with the register indices
// written by measurements, in the order the backend returns outcomes.
type MeasuredQubitsMap map[string][]int

// measuredQubitsMap recovers the register mapping from the copy of the run
// request echoed back with the results.
func measuredQubitsMap(res *RunResult) (MeasuredQubitsMap, error) {
	merged := make(MeasuredQubitsMap)
	for _, c := range res.Metadata.Request.Circuits {
		if c.Metadata == nil {
			return nil, fmt.Errorf("missing metadata field in the request copy returned with the results")
		}
		for reg, indices := range c.Metadata {
			if _, ok := merged[reg]; ok {
				return nil, fmt.Errorf("metadata from different circuits contain entries for register %q", reg)
			}
			merged[reg] = indices
		}
	}
	return merged, nil
}

// ToRegisters folds the outcomes of a run result into the caller-initialized
// bit output registers, turning 0 into false and 1 into true at the register
// indices recorded in the result metadata.
func ToRegisters(res *RunResult, out map[string]circuit.BitRegister) error {
	measured, err := measuredQubitsMap(res)
	if err != nil {
		return err
	}

	for _, result := range res.Measurements {
		for reg, shotResults := range result {
			indices, ok := measured[reg]
			if !ok {
				return fmt.Errorf("results contain register %q that is not present in the measured qubits map", reg)
			}
			output, ok := out[reg]
			if !ok {
				return fmt.Errorf("results contain register %q that was not initialized by a definition", reg)
			}
			for shot, shotResult := range shotResults {
				if shot >= len(output) {
					return fmt.Errorf("results for register %q contain more shots than initialized", reg)
				}
				for j, outcome := range shotResult {
					if j >= len(indices) {
						return fmt.Errorf("results for register %q contain more outcomes than measured qubits", reg)
					}
					idx := indices[j]
					if idx >= len(output[shot]) {
						return fmt.Errorf("register %q is too small for measured index %d", reg, idx)
					}
					output[shot][idx] = output[shot][idx] != (outcome != 0)
				}
			}
		}
	}
	return nil
}
