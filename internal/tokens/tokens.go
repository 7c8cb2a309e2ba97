// Package tokens resolves the IQM access token used to authenticate against
// the testbed endpoint.
package tokens

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// EnvToken names the environment variable holding a bare access token.
	EnvToken = "IQM_TOKEN"
	// EnvTokensFile names the environment variable pointing at a tokens
	// file maintained by the IQM client tools.
	EnvTokensFile = "IQM_TOKENS_FILE"
)

// Token mirrors the tokens file written by the IQM client tools.
type Token struct {
	PID           uint64 `json:"pid"`
	Timestamp     string `json:"timestamp"`
	RefreshStatus string `json:"refresh_status"`
	AccessToken   string `json:"access_token"`
	RefreshToken  string `json:"refresh_token"`
	AuthServerURL string `json:"auth_server_url"`
}

// LoadFile reads a tokens file.
func LoadFile(path string) (*Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read tokens file: %w", err)
	}
	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("could not parse tokens file %s: %w", path, err)
	}
	return &token, nil
}

// Resolve returns the access token to use for backend requests. An explicit
// non-empty token wins; otherwise the IQM_TOKEN environment variable is
// consulted, then the tokens file named by IQM_TOKENS_FILE or tokensFile.
//
// A fully unresolved token is returned as an empty string without error: the
// testbed rejects unauthenticated submissions itself, and a credential-less
// backend is still usable for connection tests.
func Resolve(explicit, tokensFile string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvToken); env != "" {
		return env, nil
	}
	path := os.Getenv(EnvTokensFile)
	if path == "" {
		path = tokensFile
	}
	if path == "" {
		return "", nil
	}
	token, err := LoadFile(path)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}
