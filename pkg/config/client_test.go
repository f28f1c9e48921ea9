package config

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestRead(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"config": {"x": 1}}`))
	})

	got := c.Read(context.Background())
	assert.Equal(t, Document{"x": float64(1)}, got)
}

func TestRead_Idempotent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"config": {"mode": "steady"}}`))
	})

	first := c.Read(context.Background())
	second := c.Read(context.Background())
	assert.Equal(t, first, second)
}

func TestRead_Failures(t *testing.T) {
	tt := map[string]struct {
		handler http.HandlerFunc
	}{
		"server error": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "internal error", http.StatusInternalServerError)
			},
		},
		"malformed body": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{{{`))
			},
		},
		"missing config key": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result": "success"}`))
			},
		},
	}

	for tn, tc := range tt {
		t.Run(tn, func(t *testing.T) {
			c := newTestClient(t, tc.handler)
			assert.Equal(t, Document{}, c.Read(context.Background()))
		})
	}
}

func TestRead_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := New(srv.URL)
	srv.Close()

	assert.Equal(t, Document{}, c.Read(context.Background()))
}

func TestUpdate(t *testing.T) {
	var gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(`{"result": "success"}`))
	})

	reloadPath := filepath.Join(t.TempDir(), "reload.txt")

	// Pre-create the reload file with an old mtime so the bump is
	// observable.
	require.NoError(t, os.WriteFile(reloadPath, nil, 0o644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(reloadPath, old, old))

	ok, msg := c.Update(context.Background(), Document{"x": 2}, reloadPath)
	assert.True(t, ok)
	assert.Equal(t, UpdatedMessage, msg)
	assert.JSONEq(t, `{"x": 2}`, gotBody)

	info, err := os.Stat(reloadPath)
	require.NoError(t, err)
	assert.True(t, info.ModTime().After(old), "reload file mtime should advance")
}

func TestUpdate_CreatesReloadFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": "success"}`))
	})

	reloadPath := filepath.Join(t.TempDir(), "reload.txt")
	ok, _ := c.Update(context.Background(), Document{}, reloadPath)
	assert.True(t, ok)

	_, err := os.Stat(reloadPath)
	assert.NoError(t, err)
}

func TestUpdate_RejectedByService(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("invalid document"))
	})

	reloadPath := filepath.Join(t.TempDir(), "reload.txt")
	ok, msg := c.Update(context.Background(), Document{"x": 2}, reloadPath)
	assert.False(t, ok)
	assert.Equal(t, "invalid document", msg)

	_, err := os.Stat(reloadPath)
	assert.True(t, os.IsNotExist(err), "reload file must not be touched on failure")
}

func TestUpdate_TouchFailureDoesNotFlipResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": "success"}`))
	})

	// A reload path inside a missing directory cannot be created.
	reloadPath := filepath.Join(t.TempDir(), "missing", "reload.txt")
	ok, msg := c.Update(context.Background(), Document{"x": 2}, reloadPath)
	assert.True(t, ok)
	assert.Equal(t, UpdatedMessage, msg)
}

func TestUpdate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := New(srv.URL)
	srv.Close()

	ok, msg := c.Update(context.Background(), Document{"x": 2}, filepath.Join(t.TempDir(), "reload.txt"))
	assert.False(t, ok)
	assert.NotEmpty(t, msg)
}
