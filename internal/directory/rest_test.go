package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dir-steward.io/steward/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func newTestClient(t *testing.T, handler http.Handler) *RESTClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewRESTClient(RESTClientConfig{
		BaseURL:       srv.URL,
		Token:         "test-token",
		CallTimeout:   2 * time.Second,
		RatePerSecond: 1000,
		Burst:         1000,
		MaxRetries:    2,
		RetryBackoff:  time.Millisecond,
	})
	require.NoError(t, err)
	return client
}

func TestRESTClient_GroupExists(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/groups/g-live":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	exists, err := client.GroupExists(context.Background(), "g-live")
	require.NoError(t, err)
	require.True(t, exists)

	// Missing group is a result, not an error.
	exists, err = client.GroupExists(context.Background(), "g-gone")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestRESTClient_AddMembership_Idempotent(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/groups/g-1/members/u-1", r.URL.Path)
		// The directory reports the end state; repeated adds return 204.
		w.WriteHeader(http.StatusNoContent)
	}))

	for i := 0; i < 2; i++ {
		ok, err := client.AddMembership(context.Background(), "u-1", "g-1")
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.Equal(t, int32(2), calls.Load())
}

func TestRESTClient_AddMembership_GroupGone(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	ok, err := client.AddMembership(context.Background(), "u-1", "g-gone")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRESTClient_RemoveMembership_AbsentIsSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))

	ok, err := client.RemoveMembership(context.Background(), "u-1", "g-1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRESTClient_ListMemberships(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/u-1/memberships", r.URL.Path)
		_ = json.NewEncoder(w).Encode(membershipsResponse{GroupIDs: []string{"g-1", "g-2"}})
	}))

	groups, err := client.ListMemberships(context.Background(), "u-1")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"g-1", "g-2"}, groups)
}

func TestRESTClient_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	exists, err := client.GroupExists(context.Background(), "g-1")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, int32(3), calls.Load())
}

func TestRESTClient_TransientFailureAfterRetriesExhausted(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GroupExists(context.Background(), "g-1")
	require.Error(t, err)

	_, err = client.ListMemberships(context.Background(), "u-1")
	require.Error(t, err)
}

func TestNewRESTClient_RequiresBaseURL(t *testing.T) {
	_, err := NewRESTClient(RESTClientConfig{})
	require.Error(t, err)
}
