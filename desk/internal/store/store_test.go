package store

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Astemirdum/library-desk/desk/config"
	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/pkg/circuit_breaker"
	"github.com/Astemirdum/library-desk/pkg/kafka"
	"github.com/Astemirdum/library-desk/pkg/retry"
)

type fakeFetcher struct {
	body   string
	status int
	err    error
}

func (f fakeFetcher) Fetch(context.Context) ([]byte, int, error) {
	return []byte(f.body), f.status, f.err
}

type recorder struct {
	mu        sync.Mutex
	snapshots [][]byte
}

func (r *recorder) Schedule(snapshot []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, snapshot)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snapshots)
}

func bookTitles(s *Store) []string {
	var titles []string
	s.Read(func(doc *model.Document) {
		for _, b := range doc.Books {
			titles = append(titles, b.Title)
		}
	})
	return titles
}

func TestStore_Load(t *testing.T) {
	t.Parallel()
	defaults := []string{"The Great Gatsby", "Clean Code", "Design Patterns"}
	tests := []struct {
		name       string
		fetcher    fakeFetcher
		wantTitles []string
		wantSaves  int
	}{
		{
			name:       "stored document",
			fetcher:    fakeFetcher{status: 200, body: `{"books":[{"id":7,"title":"Dune","quantity":1,"available":1}],"members":[],"circulation":[],"reviews":[],"adminConfig":{"username":"root","password":"x"}}`},
			wantTitles: []string{"Dune"},
		},
		{
			name:       "stored document without admin",
			fetcher:    fakeFetcher{status: 200, body: `{"books":[{"id":7,"title":"Dune","quantity":1,"available":1}]}`},
			wantTitles: []string{"Dune"},
			wantSaves:  1,
		},
		{
			name:       "empty object",
			fetcher:    fakeFetcher{status: 200, body: `{}`},
			wantTitles: defaults,
		},
		{
			name:       "empty body",
			fetcher:    fakeFetcher{status: 200, body: ``},
			wantTitles: defaults,
		},
		{
			name:       "malformed",
			fetcher:    fakeFetcher{status: 200, body: `{"books":`},
			wantTitles: defaults,
		},
		{
			name:       "not an object",
			fetcher:    fakeFetcher{status: 200, body: `[1,2]`},
			wantTitles: defaults,
		},
		{
			name:       "transport error",
			fetcher:    fakeFetcher{status: 503, err: errors.Wrap(errs.ErrPersistence, "connection refused")},
			wantTitles: defaults,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			s := New(tt.fetcher, rec, zap.NewNop())
			s.Load(context.Background())

			require.Equal(t, tt.wantTitles, bookTitles(s))
			require.Equal(t, tt.wantSaves, rec.count())
			s.Read(func(doc *model.Document) {
				require.NotNil(t, doc.AdminConfig)
			})
		})
	}
}

func TestStore_Mutate(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	s := New(fakeFetcher{}, rec, zap.NewNop())

	s.Mutate(func(doc *model.Document) bool {
		doc.Books[0].Available--
		return true
	})
	s.Mutate(func(doc *model.Document) bool {
		return false
	})

	require.Equal(t, 1, rec.count())
	var doc model.Document
	require.NoError(t, json.Unmarshal(rec.snapshots[0], &doc))
	require.Equal(t, 2, doc.Books[0].Available)
}

type flakySaver struct {
	mu         sync.Mutex
	failures   int
	superseded bool
	calls      int
	saved      [][]byte
	versions   []int64
}

func (f *flakySaver) Save(_ context.Context, data []byte, version int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failures > 0 {
		f.failures--
		return http.StatusInternalServerError, errors.Wrap(errs.ErrPersistence, "db down")
	}
	if f.superseded {
		return http.StatusConflict, ErrSuperseded
	}
	f.saved = append(f.saved, data)
	f.versions = append(f.versions, version)
	return http.StatusOK, nil
}

type fakeEnqueuer struct {
	mu    sync.Mutex
	topic string
	msgs  []any
}

func (q *fakeEnqueuer) Enqueue(topic string, v any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.topic = topic
	q.msgs = append(q.msgs, v)
	return nil
}

func newTestPersister(saver Saver, q *fakeEnqueuer) *Persister {
	cb := circuit_breaker.New(10, time.Minute, 1, 1)
	var enq kafka.Enqueuer
	if q != nil {
		enq = q
	}
	return NewPersister(saver, cb, enq, zap.NewNop(),
		retry.WithMaxAttempts(3),
		retry.WithBaseDelay(time.Millisecond),
	)
}

func TestPersister_RetriesThenSaves(t *testing.T) {
	t.Parallel()
	saver := &flakySaver{failures: 2}
	q := &fakeEnqueuer{}
	p := newTestPersister(saver, q)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx) //nolint:errcheck

	p.Schedule([]byte(`{"books":[]}`))
	flushCtx, flushCancel := context.WithTimeout(ctx, 5*time.Second)
	defer flushCancel()
	require.NoError(t, p.Flush(flushCtx))

	require.Equal(t, 3, saver.calls)
	require.Equal(t, [][]byte{[]byte(`{"books":[]}`)}, saver.saved)
	require.Empty(t, q.msgs)
}

func TestPersister_FallsBackToQueue(t *testing.T) {
	t.Parallel()
	saver := &flakySaver{failures: 100}
	q := &fakeEnqueuer{}
	p := newTestPersister(saver, q)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx) //nolint:errcheck

	p.Schedule([]byte(`{"members":[]}`))
	flushCtx, flushCancel := context.WithTimeout(ctx, 5*time.Second)
	defer flushCancel()
	require.NoError(t, p.Flush(flushCtx))

	require.Empty(t, saver.saved)
	require.Len(t, q.msgs, 1)
	require.Equal(t, "lms.state", q.topic)
	snap, ok := q.msgs[0].(kafka.StateSnapshot)
	require.True(t, ok)
	require.Equal(t, json.RawMessage(`{"members":[]}`), snap.State)
	require.Positive(t, snap.Version)
}

func TestPersister_FailureLogsBreakerState(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.ErrorLevel)
	p := NewPersister(&flakySaver{failures: 100}, circuit_breaker.New(10, time.Minute, 1, 1), nil, zap.New(core),
		retry.WithMaxAttempts(2),
		retry.WithBaseDelay(time.Millisecond),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx) //nolint:errcheck

	p.Schedule([]byte(`{"books":[]}`))
	flushCtx, flushCancel := context.WithTimeout(ctx, 5*time.Second)
	defer flushCancel()
	require.NoError(t, p.Flush(flushCtx))

	failed := logs.FilterMessage("state save failed, memory is kept").All()
	require.Len(t, failed, 1)
	require.Contains(t, []string{"closed", "open", "half-open"}, failed[0].ContextMap()["breaker"])
}

func TestPersister_SupersededIsNotRetried(t *testing.T) {
	t.Parallel()
	saver := &flakySaver{superseded: true}
	q := &fakeEnqueuer{}
	p := newTestPersister(saver, q)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx) //nolint:errcheck

	p.Schedule([]byte(`{"books":[]}`))
	flushCtx, flushCancel := context.WithTimeout(ctx, 5*time.Second)
	defer flushCancel()
	require.NoError(t, p.Flush(flushCtx))

	require.Equal(t, 1, saver.calls)
	require.Empty(t, q.msgs)
}

func TestPersister_VersionsGrow(t *testing.T) {
	t.Parallel()
	saver := &flakySaver{}
	p := newTestPersister(saver, nil)
	// a clock that goes backwards must not reorder versions
	clock := []int64{5_000, 1_000, 1_000}
	p.now = func() time.Time {
		n := clock[0]
		clock = clock[1:]
		return time.Unix(0, n)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx) //nolint:errcheck

	for i := 0; i < 3; i++ {
		p.Schedule([]byte(`{"v":` + strconv.Itoa(i) + `}`))
		flushCtx, flushCancel := context.WithTimeout(ctx, 5*time.Second)
		require.NoError(t, p.Flush(flushCtx))
		flushCancel()
	}
	require.Equal(t, []int64{5_000, 5_001, 5_002}, saver.versions)
}

func TestPersister_CoalescesToLatest(t *testing.T) {
	t.Parallel()
	saver := &flakySaver{}
	p := newTestPersister(saver, nil)

	p.Schedule([]byte(`{"v":1}`))
	p.Schedule([]byte(`{"v":2}`))
	p.Schedule([]byte(`{"v":3}`))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx) //nolint:errcheck

	flushCtx, flushCancel := context.WithTimeout(ctx, 5*time.Second)
	defer flushCancel()
	require.NoError(t, p.Flush(flushCtx))

	require.Equal(t, [][]byte{[]byte(`{"v":3}`)}, saver.saved)
}

func TestPersister_FlushHonoursContext(t *testing.T) {
	t.Parallel()
	p := newTestPersister(&flakySaver{}, nil)
	p.Schedule([]byte(`{}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.Flush(ctx), context.Canceled)
}

func newStateServer(t *testing.T) *httptest.Server {
	t.Helper()
	var (
		mu      sync.Mutex
		stored  = []byte(`{}`)
		version int64
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write(stored)
		case http.MethodPost:
			var body json.RawMessage
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"invalid JSON data"}`))
				return
			}
			v, _ := strconv.ParseInt(r.Header.Get(VersionHeader), 10, 64)
			if v <= version {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(`{"error":"stale state version"}`))
				return
			}
			stored, version = body, v
			_, _ = w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte(`{"error":"method not allowed"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newRemote(t *testing.T, srv *httptest.Server) *Remote {
	t.Helper()
	host, port, err := net.SplitHostPort(strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	return NewRemote(config.StateHTTPServer{Host: host, Port: port, Timeout: 5 * time.Second}, zap.NewNop())
}

func TestRemote(t *testing.T) {
	t.Parallel()
	srv := newStateServer(t)
	remote := newRemote(t, srv)
	ctx := context.Background()

	body, status, err := remote.Fetch(ctx)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, `{}`, string(body))

	status, err = remote.Save(ctx, []byte(`{"books":[]}`), 2)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)

	status, err = remote.Save(ctx, []byte(`{"books":[{"id":1}]}`), 1)
	require.ErrorIs(t, err, ErrSuperseded)
	require.Equal(t, http.StatusConflict, status)

	body, _, err = remote.Fetch(ctx)
	require.NoError(t, err)
	require.Equal(t, `{"books":[]}`, string(body))

	status, err = remote.Save(ctx, []byte(`{"books":`), 3)
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.Contains(t, err.Error(), "invalid JSON data")
	require.Equal(t, http.StatusInternalServerError, status)
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()
	srv := newStateServer(t)
	remote := newRemote(t, srv)
	p := NewPersister(remote, circuit_breaker.New(10, time.Minute, 1, 1), nil, zap.NewNop(),
		retry.WithBaseDelay(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx) //nolint:errcheck

	first := New(remote, p, zap.NewNop())
	first.Load(ctx)
	first.Mutate(func(doc *model.Document) bool {
		doc.Reviews = append(doc.Reviews, model.Review{
			ID: "1", BookID: "101", MemberID: "M001", Rating: 4, Text: "good", Date: model.NewDate(2026, 1, 21),
		})
		return true
	})
	flushCtx, flushCancel := context.WithTimeout(ctx, 5*time.Second)
	defer flushCancel()
	require.NoError(t, p.Flush(flushCtx))

	second := New(remote, p, zap.NewNop())
	second.Load(ctx)

	want, err := first.Snapshot()
	require.NoError(t, err)
	got, err := second.Snapshot()
	require.NoError(t, err)
	require.JSONEq(t, string(want), string(got))
}
