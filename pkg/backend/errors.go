package backend

import (
	"errors"
	"fmt"
)

// ErrEmptyCircuit is returned when an empty circuit is passed to the backend.
var ErrEmptyCircuit = errors.New("an empty circuit was passed to the backend")

// JobFailedError is returned when a submitted job reports the failed status.
type JobFailedError struct {
	ID      string
	Message string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("job failed with job ID %s: %s", e.ID, e.Message)
}

// JobAbortedError is returned when a submitted job reports the aborted
// status.
type JobAbortedError struct {
	ID string
}

func (e *JobAbortedError) Error() string {
	return fmt.Sprintf("job with job ID %s is aborted", e.ID)
}

// AbortFailedError is returned when the endpoint refuses to abort a job.
type AbortFailedError struct {
	ID     string
	Detail string
}

func (e *AbortFailedError) Error() string {
	return fmt.Sprintf("could not abort job with ID %s: %s", e.ID, e.Detail)
}

// EmptyResultError is returned when a ready job carries no measurements.
type EmptyResultError struct {
	ID string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("IQM has returned an empty result for job with ID %s", e.ID)
}

// DoubleMeasurementError is returned when a circuit measures the same qubit
// more than once.
type DoubleMeasurementError struct {
	Qubit int
}

func (e *DoubleMeasurementError) Error() string {
	return fmt.Sprintf("qubit %d is being measured multiple times", e.Qubit)
}

// RegisterTooSmallError is returned when a readout register cannot hold the
// outcomes of all measured qubits.
type RegisterTooSmallError struct {
	Name string
}

func (e *RegisterTooSmallError) Error() string {
	return fmt.Sprintf("readout register %s is not large enough for the number of qubits", e.Name)
}

// InvalidCircuitError is returned when a circuit or circuit batch violates
// the device or backend constraints.
type InvalidCircuitError struct {
	Message string
}

func (e *InvalidCircuitError) Error() string {
	return e.Message
}
