// Package backend submits circuits to an IQM device endpoint and folds the
// returned outcomes into classical registers.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hqsquantum/iqm-go/internal/metrics"
	"github.com/hqsquantum/iqm-go/internal/tokens"
	"github.com/hqsquantum/iqm-go/internal/wire"
	"github.com/hqsquantum/iqm-go/pkg/circuit"
	"github.com/hqsquantum/iqm-go/pkg/devices"
	"github.com/hqsquantum/iqm-go/pkg/iqmclient"
)

const (
	defaultPollInterval  = time.Second
	defaultResultTimeout = 60 * time.Second
)

// Backend pairs a device descriptor with an access token and submits
// circuits to the device's endpoint.
type Backend struct {
	device        devices.Device
	accessToken   string
	tokensFile    string
	overrideShots int
	pollInterval  time.Duration
	resultTimeout time.Duration
	httpClient    *http.Client
	client        *iqmclient.Client
	log           *zap.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Backend) { b.httpClient = c }
}

// WithLogger sets the backend logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *Backend) { b.log = log.Named("backend") }
}

// WithPollInterval sets the interval between result queries.
func WithPollInterval(d time.Duration) Option {
	return func(b *Backend) { b.pollInterval = d }
}

// WithResultTimeout sets how long Wait polls before giving up.
func WithResultTimeout(d time.Duration) Option {
	return func(b *Backend) { b.resultTimeout = d }
}

// WithTokensFile sets the tokens file consulted when no access token is
// passed explicitly or through the environment.
func WithTokensFile(path string) Option {
	return func(b *Backend) { b.tokensFile = path }
}

// WithShots overrides the number of measurements defined by submitted
// circuits. Changing the number of measurements changes the accuracy of the
// result.
func WithShots(n int) Option {
	return func(b *Backend) { b.overrideShots = n }
}

// New creates a backend for a device.
//
// The access token may be empty: the IQM_TOKEN environment variable and the
// tokens file are consulted as fallbacks, and a backend without a resolvable
// credential still constructs. Failure semantics for bad or missing
// credentials are decided by the endpoint at submission time.
func New(device devices.Device, accessToken string, opts ...Option) (*Backend, error) {
	b := &Backend{
		device:        device,
		pollInterval:  defaultPollInterval,
		resultTimeout: defaultResultTimeout,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	resolved, err := tokens.Resolve(accessToken, b.tokensFile)
	if err != nil {
		return nil, err
	}
	b.accessToken = resolved
	b.client = iqmclient.NewClient(b.accessToken, b.httpClient)

	return b, nil
}

// Device returns the device descriptor the backend submits to.
func (b *Backend) Device() devices.Device {
	return b.device
}

// Submit sends a circuit batch to the device endpoint and returns the job ID.
// The bit output registers defined by the circuits are initialized into
// bitRegisters, which Wait results can later be folded into. A nil map is
// allowed when the caller has no use for the initialized registers.
func (b *Backend) Submit(ctx context.Context, batch []*circuit.Circuit, bitRegisters map[string]circuit.BitRegister) (string, error) {
	if err := validateBatch(batch); err != nil {
		return "", err
	}
	if bitRegisters == nil {
		bitRegisters = make(map[string]circuit.BitRegister)
	}

	host := b.device.RemoteHost()
	if host == "" {
		return "", fmt.Errorf("device %s has no remote endpoint", b.device.Name())
	}

	circuits := make([]wire.Circuit, 0, len(batch))
	shotsSeen := make(map[int]bool)
	shots := 0
	for i, c := range batch {
		wc, n, err := wire.Translate(c, b.device.NumberQubits(), bitRegisters, b.overrideShots, i)
		if err != nil {
			return "", err
		}
		circuits = append(circuits, wc)
		shotsSeen[n] = true
		shots = n
	}
	if len(shotsSeen) != 1 {
		return "", &InvalidCircuitError{
			Message: "circuits in the circuit batch have different numbers of measurements, which is not allowed by the backend",
		}
	}

	request := wire.RunRequest{
		Circuits:      circuits,
		Shots:         shots,
		HeraldingMode: wire.HeraldingNone,
	}
	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to encode run request: %w", err)
	}

	resp, err := b.client.SendRequest(ctx, http.MethodPost, host, body)
	if err != nil {
		return "", fmt.Errorf("error during POST request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
	default:
		return "", fmt.Errorf("received an error response with HTTP status code %d", resp.StatusCode)
	}

	var submitted wire.SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&submitted); err != nil {
		return "", fmt.Errorf("failed to decode submit response: %w", err)
	}

	metrics.JobsSubmitted.WithLabelValues(b.device.Name()).Inc()
	b.log.Info("submitted job",
		zap.String("job_id", submitted.ID),
		zap.String("device", b.device.Name()),
		zap.Int("circuits", len(circuits)),
		zap.Int("shots", shots))

	return submitted.ID, nil
}

// Result queries the results of a submitted job. The returned status can be
// pending.
func (b *Backend) Result(ctx context.Context, id string) (*wire.RunResult, error) {
	resp, err := b.client.SendRequest(ctx, http.MethodGet, b.device.RemoteHost()+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("error during GET request: %w", err)
	}
	defer resp.Body.Close()

	var result wire.RunResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode job result: %w", err)
	}

	metrics.ResultPolls.WithLabelValues(string(result.Status)).Inc()
	for _, warning := range result.Warnings {
		b.log.Warn("warning from IQM device", zap.String("job_id", id), zap.String("warning", warning))
	}

	return &result, nil
}

// Wait polls the results of a job until it is ready, failed or aborted, or
// until the result timeout expires.
func (b *Backend) Wait(ctx context.Context, id string) (*wire.RunResult, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, b.resultTimeout)
	defer cancel()

	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		result, err := b.Result(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("job did not finish in %s", b.resultTimeout)
			}
			return nil, err
		}

		switch result.Status {
		case wire.StatusReady:
			metrics.JobsCompleted.WithLabelValues(string(wire.StatusReady)).Inc()
			metrics.JobWaitDuration.Observe(float64(time.Since(start).Milliseconds()))
			return result, nil
		case wire.StatusFailed:
			metrics.JobsCompleted.WithLabelValues(string(wire.StatusFailed)).Inc()
			return nil, &JobFailedError{ID: id, Message: result.Message}
		case wire.StatusAborted:
			metrics.JobsCompleted.WithLabelValues(string(wire.StatusAborted)).Inc()
			return nil, &JobAbortedError{ID: id}
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("job did not finish in %s", b.resultTimeout)
		case <-ticker.C:
		}
	}
}

// Abort aborts a submitted job.
func (b *Backend) Abort(ctx context.Context, id string) error {
	url := strings.Join([]string{b.device.RemoteHost(), "jobs", id, "abort"}, "/")

	resp, err := b.client.SendRequest(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("error during POST request of abort: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	var abort wire.AbortResponse
	if err := json.NewDecoder(resp.Body).Decode(&abort); err != nil {
		return &AbortFailedError{ID: id, Detail: fmt.Sprintf("HTTP status code %d", resp.StatusCode)}
	}
	return &AbortFailedError{ID: id, Detail: abort.Detail}
}

// QuantumArchitecture fetches information about the quantum architecture of
// the device.
func (b *Backend) QuantumArchitecture(ctx context.Context) (string, error) {
	url := strings.ReplaceAll(b.device.RemoteHost(), "jobs", "quantum-architecture")

	resp, err := b.client.SendRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("error during GET request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET request failed with status code %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading architecture response: %w", err)
	}
	return string(body), nil
}

// RunBatch validates and runs a list of circuits on the backend and waits for
// the results, returning the bit, float and complex registers containing
// them.
func (b *Backend) RunBatch(ctx context.Context, batch []*circuit.Circuit) (circuit.Registers, error) {
	registers := circuit.NewRegisters()

	for _, c := range batch {
		if err := b.ValidateCircuit(c); err != nil {
			return registers, err
		}
	}

	id, err := b.Submit(ctx, batch, registers.Bit)
	if err != nil {
		return registers, err
	}

	result, err := b.Wait(ctx, id)
	if err != nil {
		return registers, err
	}
	if len(result.Measurements) == 0 {
		return registers, &EmptyResultError{ID: id}
	}

	if err := wire.ToRegisters(result, registers.Bit); err != nil {
		return registers, err
	}
	return registers, nil
}

// Run validates and runs a single circuit on the backend and waits for the
// results.
func (b *Backend) Run(ctx context.Context, c *circuit.Circuit) (circuit.Registers, error) {
	return b.RunBatch(ctx, []*circuit.Circuit{c})
}
