// Package envelope implements the request/response envelope protocol
// spoken by the core service and its sidecars. Every response body is a
// JSON object carrying a "result" discriminant; this package classifies
// raw HTTP responses as success or failure without ever panicking on a
// malformed body.
package envelope

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// ResultSuccess is the value of the result discriminant on a
	// successful response.
	ResultSuccess = "success"

	// ResultError is the value of the result discriminant on a failed
	// response.
	ResultError = "error"
)

// DefaultTimeout is the request timeout used by every client except the
// crypto client, whose operations are unbounded by default.
const DefaultTimeout = 3 * time.Second

// Envelope is the shared response envelope. Payload fields live
// alongside these in the same JSON object; clients embed their own
// response structs and decode the body a second time to extract them.
type Envelope struct {
	Result  string `json:"result"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Decode classifies resp under the full envelope contract: the response
// is successful iff the status code is 200, the body parses as JSON and
// the parsed body's result field equals ResultSuccess. On success the
// body is unmarshalled into v (which may be nil when the caller only
// cares about the classification). The response body is always
// consumed and closed.
//
// Failures map onto the error taxonomy: a non-200 status or an
// unparseable body yields a *ProtocolError, a parsed envelope whose
// result is anything but "success" yields a *LogicalError.
func Decode(resp *http.Response, v any) error {
	body, env, err := read(resp)
	if err != nil {
		return err
	}

	if env.Result != ResultSuccess {
		msg := env.Error
		if msg == "" {
			msg = "Unknown error"
		}
		return &LogicalError{Message: msg}
	}

	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return &ProtocolError{StatusCode: resp.StatusCode, Message: err.Error()}
		}
	}

	return nil
}

// DecodeBody unmarshals a 200 JSON body into v without consulting the
// result discriminant. The core service's read endpoints reply with
// bare documents ({"config": ...}, {"plugins": ...}) and are classified
// on status code and parseability alone.
func DecodeBody(resp *http.Response, v any) error {
	body, _, err := read(resp)
	if err != nil {
		return err
	}

	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return &ProtocolError{StatusCode: resp.StatusCode, Message: err.Error()}
		}
	}

	return nil
}

// read drains the response body and performs the status and JSON
// checks common to Decode and DecodeBody.
func read(resp *http.Response) ([]byte, Envelope, error) {
	defer resp.Body.Close()

	var env Envelope

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, env, &ProtocolError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	parseErr := json.Unmarshal(body, &env)

	if resp.StatusCode != http.StatusOK {
		msg := env.Error
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return nil, env, &ProtocolError{StatusCode: resp.StatusCode, Message: msg}
	}

	if parseErr != nil {
		return nil, env, &ProtocolError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	return body, env, nil
}
