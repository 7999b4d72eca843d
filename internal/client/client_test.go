package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loca-app/loca-go/internal/client"
)

func newTestClient(t *testing.T, handler http.Handler) (*client.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := client.New(client.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	return c, srv
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		conf    client.Config
		wantErr bool
	}{
		{
			name: "valid config",
			conf: client.Config{BaseURL: "http://127.0.0.1:8000"},
		},
		{
			name: "trailing slash trimmed",
			conf: client.Config{BaseURL: "http://127.0.0.1:8000/"},
		},
		{
			name:    "missing base URL",
			conf:    client.Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := client.New(tt.conf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL())
		})
	}
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "404 with detail body",
			status:      http.StatusNotFound,
			body:        `{"detail": "photo not found"}`,
			wantMessage: "photo not found",
		},
		{
			name:        "500 without body",
			status:      http.StatusInternalServerError,
			body:        "",
			wantMessage: "Internal Server Error",
		},
		{
			name:        "400 with non-JSON body",
			status:      http.StatusBadRequest,
			body:        "boom",
			wantMessage: "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := c.ListKeywords(context.Background())
			require.Error(t, err)

			var apiErr *client.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestDecodeError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))

	_, err := c.ListKeywords(context.Background())
	require.Error(t, err)

	var decodeErr *client.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Stall until the client gives up.
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(client.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	_, err = c.ListKeywords(context.Background())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrTimeout)
	assert.Less(t, elapsed, 5*time.Second, "timeout must bound the wait")
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, err := client.New(client.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.ListKeywords(context.Background())
	require.Error(t, err)

	var netErr *client.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestCallerCancellation(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.ListKeywords(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckConnection(t *testing.T) {
	t.Run("healthy backend", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))

		assert.True(t, c.CheckConnection(context.Background()))
	})

	t.Run("unreachable host returns false without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c, err := client.New(client.Config{BaseURL: srv.URL})
		require.NoError(t, err)

		assert.False(t, c.CheckConnection(context.Background()))
	})

	t.Run("non-2xx returns false", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		assert.False(t, c.CheckConnection(context.Background()))
	})
}
