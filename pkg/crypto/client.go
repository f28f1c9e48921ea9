// Package crypto requests encryption and decryption of string values
// from the security sidecar.
package crypto

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/networkdirection/coresdk/pkg/envelope"
)

// Result is the outcome of a successful crypto operation. For Encrypt,
// Salt is the salt the service generated; for Decrypt it echoes the
// salt the caller supplied.
type Result struct {
	Value string
	Salt  string
}

// request is the wire payload for both operation types.
type request struct {
	Type      string `json:"type"`
	PlainText string `json:"plain-text,omitempty"`
	Encrypted string `json:"encrypted,omitempty"`
	Salt      string `json:"salt,omitempty"`
}

// Client talks to the crypto service endpoint.
type Client struct {
	url    string
	hc     *http.Client
	logger *slog.Logger
}

// New creates a crypto client for the given endpoint URL. Unlike the
// other core service clients there is no default timeout: encrypting a
// large value can take longer than any fixed bound we would pick. Use
// WithTimeout to impose one.
func New(url string, opts ...Option) *Client {
	c := &Client{
		url:    url,
		hc:     &http.Client{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt asks the crypto service to encrypt plaintext. On success the
// Result carries the encrypted value and the generated salt. Failures
// surface as *envelope.TransportError, *envelope.ProtocolError or
// *envelope.LogicalError.
func (c *Client) Encrypt(ctx context.Context, plaintext string) (*Result, error) {
	var out struct {
		Encrypted string `json:"encrypted"`
		Salt      string `json:"salt"`
	}

	if err := c.post(ctx, request{Type: "encrypt", PlainText: plaintext}, &out); err != nil {
		c.logger.Error("encryption failed", "error", err)
		return nil, err
	}

	return &Result{Value: out.Encrypted, Salt: out.Salt}, nil
}

// Decrypt asks the crypto service to decrypt ciphertext using the salt
// it was encrypted with. The salt is echoed back unchanged in the
// Result.
func (c *Client) Decrypt(ctx context.Context, ciphertext, salt string) (*Result, error) {
	var out struct {
		Decrypted string `json:"decrypted"`
	}

	if err := c.post(ctx, request{Type: "decrypt", Encrypted: ciphertext, Salt: salt}, &out); err != nil {
		c.logger.Error("decryption failed", "error", err)
		return nil, err
	}

	return &Result{Value: out.Decrypted, Salt: salt}, nil
}

func (c *Client) post(ctx context.Context, req request, v any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return &envelope.TransportError{Err: err}
	}

	return envelope.Decode(resp, v)
}
