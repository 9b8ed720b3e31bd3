package plugin_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/arrhook/internal/arr"
	"github.com/vmunix/arrhook/internal/identity"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// staticResolver resolves every job to the same identity.
type staticResolver struct {
	id    arr.Identity
	err   error
	calls int
}

func (s *staticResolver) ResolveFile(ctx context.Context, original, current string) (arr.Identity, error) {
	s.calls++
	return s.id, s.err
}

func newBackend(t *testing.T, kind arr.Kind, host string) *arr.Backend {
	t.Helper()
	b, err := arr.NewBackend(kind, host, "key")
	require.NoError(t, err)
	return b
}

// fakeArr is a minimal organizer routing by path.
func fakeArr(t *testing.T, routes map[string]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if fn, ok := body.(http.HandlerFunc); ok {
			fn(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server
}

// wire builds a real client and resolver against server.
func wire(t *testing.T, kind arr.Kind, server *httptest.Server, opts ...identity.Option) (*arr.Backend, *arr.Client, *identity.Resolver) {
	t.Helper()
	b := newBackend(t, kind, server.URL)
	client := arr.NewClient(b, arr.WithLogger(testLogger()))
	opts = append(opts, identity.WithLogger(testLogger()))
	return b, client, identity.New(b, client, opts...)
}
