// Package wire models the REST payloads of the IQM testbed endpoint and the
// translation between circuits and the instruction format it accepts.
package wire

// Status is the lifecycle state of a submitted job.
type Status string

const (
	StatusPendingCompilation Status = "pending compilation"
	StatusPendingExecution   Status = "pending execution"
	StatusReady              Status = "ready"
	StatusFailed             Status = "failed"
	StatusAborted            Status = "aborted"
)

// HeraldingMode selects the heralding behavior of a run.
type HeraldingMode string

const (
	HeraldingNone  HeraldingMode = "none"
	HeraldingZeros HeraldingMode = "zeros"
)

// Instruction is a single instruction accepted by the IQM REST API: a gate, a
// measurement or a barrier. Args depend on the instruction type and can hold
// both gate parameters and measurement keys.
type Instruction struct {
	Name   string         `json:"name"`
	Qubits []string       `json:"qubits"`
	Args   map[string]any `json:"args"`
}

// Circuit is the representation of a quantum circuit accepted by the IQM REST
// API. Metadata records, for each output register, the register indices
// written by measurements in the order the measurements appear; it is echoed
// back with the results and needed to fold them into registers.
type Circuit struct {
	Name         string           `json:"name"`
	Instructions []Instruction    `json:"instructions"`
	Metadata     map[string][]int `json:"metadata,omitempty"`
}

// SingleQubitMapping maps a logical qubit name to a physical one.
type SingleQubitMapping struct {
	LogicalName  string `json:"logical_name"`
	PhysicalName string `json:"physical_name"`
}

// RunRequest is the payload submitted to the jobs endpoint.
type RunRequest struct {
	Circuits                 []Circuit            `json:"circuits"`
	CustomSettings           map[string]string    `json:"custom_settings,omitempty"`
	CalibrationSetID         string               `json:"calibration_set_id,omitempty"`
	QubitMapping             []SingleQubitMapping `json:"qubit_mapping,omitempty"`
	Shots                    int                  `json:"shots"`
	MaxCircuitDurationOverT2 *float64             `json:"max_circuit_duration_over_t2,omitempty"`
	HeraldingMode            HeraldingMode        `json:"heralding_mode"`
}

// SubmitResponse is the body returned by a successful job submission.
type SubmitResponse struct {
	ID string `json:"id"`
}

// AbortResponse is the body returned by a failed job abortion.
type AbortResponse struct {
	Detail string `json:"detail"`
}

// CircuitResult holds the measurement results of a single circuit. For each
// measurement key it maps to the outcomes, the outer slice indexing shots and
// the inner slice the qubits measured under that key.
type CircuitResult map[string][][]int

// Metadata describes a circuit execution job. The server echoes back a copy
// of the original run request.
type Metadata struct {
	Request RunRequest `json:"request"`
}

// RunResult is the response body of a job query.
type RunResult struct {
	Status       Status          `json:"status"`
	Measurements []CircuitResult `json:"measurements,omitempty"`
	Message      string          `json:"message,omitempty"`
	Metadata     Metadata        `json:"metadata"`
	Warnings     []string        `json:"warnings,omitempty"`
}
