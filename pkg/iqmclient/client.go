package iqmclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

const userAgent = "iqm-go client"

// Client is a client that sends authenticated requests to an IQM endpoint.
type Client struct {
	accessToken string
	client      *http.Client
}

// NewClient creates a new Client. The access token may be empty, in which
// case requests are sent without an Authorization header and the endpoint
// decides the failure semantics.
func NewClient(accessToken string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		accessToken: accessToken,
		client:      client,
	}
}

// SendRequest sends an authenticated request to the specified URL.
func (c *Client) SendRequest(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	// Lets the client check that the server is ready to receive the request
	// before sending the request data.
	req.Header.Set("Expect", "100-Continue")
	req.Header.Set("User-Agent", userAgent)
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	return c.client.Do(req)
}
