package readiness

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccepted(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusNoContent, true},
		{http.StatusFound, true},
		{http.StatusUnauthorized, true},
		{http.StatusForbidden, true},
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, false},
		{http.StatusServiceUnavailable, false},
		{http.StatusSwitchingProtocols, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Accepted(tt.status), "status %d", tt.status)
	}
}

func TestWaitBecomesReady(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var attempts []int
	err := Wait(context.Background(), srv.URL, Options{
		Timeout:   5 * time.Second,
		Interval:  10 * time.Millisecond,
		OnAttempt: func(attempt int, err error) { attempts = append(attempts, attempt) },
	})

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []int{1, 2}, attempts)
}

func TestWaitAcceptsForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := Wait(context.Background(), srv.URL, Options{Timeout: time.Second, Interval: 10 * time.Millisecond})
	assert.NoError(t, err)
}

func TestWaitTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	start := time.Now()
	err := Wait(context.Background(), srv.URL, Options{Timeout: 100 * time.Millisecond, Interval: 20 * time.Millisecond})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotReady))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWaitHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Wait(ctx, srv.URL, Options{Timeout: time.Minute, Interval: 10 * time.Millisecond})
	assert.True(t, errors.Is(err, ErrNotReady))
}

func TestIsReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	assert.True(t, IsReachable(context.Background(), srv.URL))

	srv.Close()
	assert.False(t, IsReachable(context.Background(), srv.URL))
}
