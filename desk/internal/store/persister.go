package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/pkg/circuit_breaker"
	"github.com/Astemirdum/library-desk/pkg/kafka"
	"github.com/Astemirdum/library-desk/pkg/retry"
)

// ErrSuperseded reports that the state service already holds a newer snapshot.
var ErrSuperseded = errors.New("a newer state version is already stored")

type Saver interface {
	Save(ctx context.Context, data []byte, version int64) (int, error)
}

// Persister is the only writer of the remote document. Snapshots scheduled while
// a write is in flight are coalesced, so only the latest one is sent next.
type Persister struct {
	log      *zap.Logger
	saver    Saver
	cb       circuit_breaker.CircuitBreaker
	enqueuer kafka.Enqueuer
	opts     []retry.Option

	now func() time.Time

	mu      sync.Mutex
	latest  []byte
	version int64
	seq     uint64
	written uint64
	flushed chan struct{}
	wake    chan struct{}
}

// NewPersister builds a persister. A nil enqueuer disables the Kafka fallback.
func NewPersister(saver Saver, cb circuit_breaker.CircuitBreaker, enqueuer kafka.Enqueuer, log *zap.Logger, opts ...retry.Option) *Persister {
	p := &Persister{
		log:      log.Named("persister"),
		saver:    saver,
		cb:       cb,
		enqueuer: enqueuer,
		now:      time.Now,
		flushed:  make(chan struct{}),
		wake:     make(chan struct{}, 1),
	}
	p.opts = append(append([]retry.Option{}, opts...),
		retry.WithRetryIf(func(err error) bool {
			return !errors.Is(err, circuit_breaker.ErrOpenCB) && retry.IsRetryable(err)
		}),
		retry.WithOnRetry(func(attempt int, delay time.Duration, err error) {
			p.log.Warn("retrying state save", zap.Int("attempt", attempt), zap.Duration("delay", delay), zap.Error(err))
		}),
	)
	return p
}

// Schedule queues snapshot for writing and returns immediately. Each snapshot
// gets a version above every earlier one. Versions come from the wall clock so
// they keep growing across restarts.
func (p *Persister) Schedule(snapshot []byte) {
	p.mu.Lock()
	p.latest = snapshot
	p.version = max(p.version+1, p.now().UnixNano())
	p.seq++
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Persister) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-p.wake:
			p.writeLatest(ctx)
		}
	}
}

// Flush blocks until every snapshot scheduled before the call has been handled.
func (p *Persister) Flush(ctx context.Context) error {
	p.mu.Lock()
	target := p.seq
	p.mu.Unlock()
	for {
		p.mu.Lock()
		if p.written >= target {
			p.mu.Unlock()
			return nil
		}
		ch := p.flushed
		p.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Persister) writeLatest(ctx context.Context) {
	p.mu.Lock()
	data, version, target := p.latest, p.version, p.seq
	p.latest = nil
	p.mu.Unlock()
	if data == nil {
		return
	}

	var superseded bool
	err := retry.Do(ctx, func(ctx context.Context) error {
		return p.cb.Call(func() error {
			_, err := p.saver.Save(ctx, data, version)
			if errors.Is(err, ErrSuperseded) {
				superseded = true
				return nil
			}
			return err
		})
	}, p.opts...)
	switch {
	case err != nil:
		p.log.Error("state save failed, memory is kept", zap.Error(err),
			zap.Int("size", len(data)), zap.Stringer("breaker", p.cb.State()))
		p.fallback(data, version)
	case superseded:
		p.log.Warn("state snapshot superseded by a newer one", zap.Int64("version", version))
	default:
		p.log.Debug("state saved", zap.Int("size", len(data)), zap.Int64("version", version))
	}

	p.mu.Lock()
	if target > p.written {
		p.written = target
	}
	close(p.flushed)
	p.flushed = make(chan struct{})
	p.mu.Unlock()
}

func (p *Persister) fallback(data []byte, version int64) {
	if p.enqueuer == nil {
		return
	}
	snapshot := kafka.StateSnapshot{Version: version, State: json.RawMessage(data)}
	if err := p.enqueuer.Enqueue(kafka.StateTopic, snapshot); err != nil {
		p.log.Error("enqueue state snapshot", zap.Error(err))
		return
	}
	p.log.Info("state snapshot enqueued", zap.String("topic", kafka.StateTopic), zap.Int64("version", version))
}
