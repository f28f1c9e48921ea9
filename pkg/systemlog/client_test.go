package systemlog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = Defaults{
	Source:      "web-service",
	Destination: []string{"teams"},
	Group:       "service",
	Category:    "lifecycle",
	Alert:       "none",
	Severity:    "info",
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, testDefaults, opts...)
}

func TestLog(t *testing.T) {
	stamp := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	var got Event
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"result": "success"}`))
	}, WithClock(func() time.Time { return stamp }))

	ok := c.Log(context.Background(), "hello")
	assert.True(t, ok)
	assert.Equal(t, Event{
		Source:      "web-service",
		Destination: []string{"teams"},
		Log: Entry{
			Group:     "service",
			Category:  "lifecycle",
			Alert:     "none",
			Severity:  "info",
			Timestamp: "2025-06-01 12:30:00.000000",
			Message:   "hello",
		},
	}, got)
}

func TestLog_OverridesMergeOverDefaults(t *testing.T) {
	var got Event
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"result": "success"}`))
	})

	ok := c.Log(context.Background(), "disk full", Severity("critical"))
	assert.True(t, ok)

	// The override applies; every other default is left intact.
	assert.Equal(t, "critical", got.Log.Severity)
	assert.Equal(t, "web-service", got.Source)
	assert.Equal(t, []string{"teams"}, got.Destination)
	assert.Equal(t, "service", got.Log.Group)
	assert.Equal(t, "lifecycle", got.Log.Category)
	assert.Equal(t, "none", got.Log.Alert)
	assert.Equal(t, "disk full", got.Log.Message)
}

func TestLog_AllOverrides(t *testing.T) {
	var got Event
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"result": "success"}`))
	})

	ok := c.Log(context.Background(), "rotated",
		Source("cron"),
		Destination([]string{"email", "sms"}),
		Group("maintenance"),
		Category("keys"),
		Alert("rotation"),
		Severity("warning"),
	)
	assert.True(t, ok)
	assert.Equal(t, "cron", got.Source)
	assert.Equal(t, []string{"email", "sms"}, got.Destination)
	assert.Equal(t, "maintenance", got.Log.Group)
	assert.Equal(t, "keys", got.Log.Category)
	assert.Equal(t, "rotation", got.Log.Alert)
	assert.Equal(t, "warning", got.Log.Severity)
}

func TestLog_Failures(t *testing.T) {
	tt := map[string]struct {
		handler http.HandlerFunc
	}{
		"non-200 status": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rejected", http.StatusBadRequest)
			},
		},
		"malformed body": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`oops`))
			},
		},
		"logical failure": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result": "error", "error": "unknown destination"}`))
			},
		},
		"missing result": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
		},
	}

	for tn, tc := range tt {
		t.Run(tn, func(t *testing.T) {
			c := newTestClient(t, tc.handler)
			assert.False(t, c.Log(context.Background(), "hello"))
		})
	}
}

func TestLog_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := New(srv.URL, testDefaults)
	srv.Close()

	assert.False(t, c.Log(context.Background(), "hello"))
}
