package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/readlist/pkg/listing"
	"github.com/umputun/readlist/server/mocks"
)

func testConfig(listen string) *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return listen, 30 * time.Second
		},
	}
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(":8080"), &mocks.DatabaseMock{}, &mocks.ListerMock{}, &mocks.SchedulerMock{}, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
	assert.NotNil(t, srv.router)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	var persisted atomic.Int32
	lister := &mocks.ListerMock{
		ListFunc: func(ctx context.Context, params listing.Params) (listing.Response, listing.Filter, error) {
			return listing.Assemble(listing.DefaultFilter(), []int64{1}), listing.DefaultFilter(), nil
		},
		PersistFunc: func(ctx context.Context, filter listing.Filter) error {
			time.Sleep(50 * time.Millisecond)
			persisted.Add(1)
			return nil
		},
	}

	srv := New(testConfig(fmt.Sprintf("127.0.0.1:%d", port)), &mocks.DatabaseMock{}, lister, &mocks.SchedulerMock{}, "1.0.0", true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- srv.Run(ctx) }()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/articles", port))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "readlist", resp.Header.Get("App-Name"))

	// shutdown waits for the pending filter write
	cancel()
	select {
	case err := <-runErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server didn't stop")
	}
	assert.Equal(t, int32(1), persisted.Load())
}

func TestServer_RunBadAddress(t *testing.T) {
	srv := New(testConfig("bad-address"), &mocks.DatabaseMock{}, &mocks.ListerMock{}, &mocks.SchedulerMock{}, "1.0.0", false)
	err := srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server error")
}

func TestServer_statusHandler(t *testing.T) {
	db := &mocks.DatabaseMock{PingFunc: func(ctx context.Context) error { return nil }}
	srv := New(testConfig(":8080"), db, &mocks.ListerMock{}, &mocks.SchedulerMock{}, "1.2.3", false)

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "ok", resp["database"])
	assert.Equal(t, "1.2.3", resp["version"])
	assert.NotEmpty(t, resp["time"])
	assert.Len(t, db.PingCalls(), 1)

	db.PingFunc = func(ctx context.Context) error { return errors.New("database is closed") }
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/status", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	assert.Equal(t, "database is closed", resp["database"])
}

func TestServer_trackPersist(t *testing.T) {
	srv := New(testConfig(":8080"), &mocks.DatabaseMock{}, &mocks.ListerMock{}, &mocks.SchedulerMock{}, "1.0.0", false)
	require.True(t, srv.trackPersist())
	srv.persistWg.Done()

	srv.lock.Lock()
	srv.closed = true
	srv.lock.Unlock()
	assert.False(t, srv.trackPersist(), "no writes accepted after close")
	srv.persistWg.Wait()
}

func TestServer_listAfterClose(t *testing.T) {
	lister := &mocks.ListerMock{
		ListFunc: func(ctx context.Context, params listing.Params) (listing.Response, listing.Filter, error) {
			return listing.Response{Query: []listing.QueryEcho{{CategoryID: "*", FeedID: "*", Status: "unread", Sort: "DESC"}},
				ItemIDs: []int64{}}, listing.Filter{}, nil
		},
		PersistFunc: func(ctx context.Context, filter listing.Filter) error { return nil },
	}
	srv := New(testConfig(":8080"), &mocks.DatabaseMock{}, lister, &mocks.SchedulerMock{}, "1.0.0", false)
	srv.lock.Lock()
	srv.closed = true
	srv.lock.Unlock()

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/articles", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code, "response is still sent")
	srv.persistWg.Wait()
	assert.Empty(t, lister.PersistCalls())
}

func TestRenderJSON(t *testing.T) {
	w := httptest.NewRecorder()
	renderJSON(w, httptest.NewRequest("GET", "/", http.NoBody), http.StatusAccepted, map[string]int{"a": 1})
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"a":1}`, w.Body.String())

	w = httptest.NewRecorder()
	renderJSON(w, httptest.NewRequest("GET", "/", http.NoBody), http.StatusOK, nil)
	assert.Empty(t, w.Body.String())
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	renderError(w, httptest.NewRequest("GET", "/", http.NoBody), errors.New("something broke"), http.StatusInternalServerError)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"something broke"}`, w.Body.String())

	w = httptest.NewRecorder()
	renderError(w, httptest.NewRequest("GET", "/", http.NoBody), nil, http.StatusBadRequest)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}
