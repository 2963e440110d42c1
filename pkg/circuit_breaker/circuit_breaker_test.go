package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	errService := errors.New("service error")
	ok := func() error { return nil }
	fail := func() error { return errService }

	type fields struct {
		recordLength     int
		timeout          time.Duration
		percentile       float64
		recoveryRequests int
	}
	tests := []struct {
		name   string
		fields fields
		run    func(t *testing.T, cb *circuitBreaker, clock *time.Time)
	}{
		{
			name:   "stays closed on success",
			fields: fields{recordLength: 10, timeout: time.Second, percentile: 0.3, recoveryRequests: 2},
			run: func(t *testing.T, cb *circuitBreaker, _ *time.Time) {
				for i := 0; i < 50; i++ {
					require.NoError(t, cb.Call(ok))
				}
				require.Equal(t, Closed, cb.State())
			},
		},
		{
			name:   "opens when failure ratio reached",
			fields: fields{recordLength: 10, timeout: time.Second, percentile: 0.3, recoveryRequests: 2},
			run: func(t *testing.T, cb *circuitBreaker, _ *time.Time) {
				for i := 0; i < 3; i++ {
					require.ErrorIs(t, cb.Call(fail), errService)
				}
				require.Equal(t, Open, cb.State())
				require.ErrorIs(t, cb.Call(ok), ErrOpenCB)
			},
		},
		{
			name:   "half-open recovers after successes",
			fields: fields{recordLength: 4, timeout: time.Second, percentile: 0.5, recoveryRequests: 2},
			run: func(t *testing.T, cb *circuitBreaker, clock *time.Time) {
				require.Error(t, cb.Call(fail))
				require.Error(t, cb.Call(fail))
				require.Equal(t, Open, cb.State())

				*clock = clock.Add(2 * time.Second)
				require.NoError(t, cb.Call(ok))
				require.Equal(t, HalfOpen, cb.State())
				require.NoError(t, cb.Call(ok))
				require.Equal(t, Closed, cb.State())
			},
		},
		{
			name:   "half-open failure reopens",
			fields: fields{recordLength: 2, timeout: time.Second, percentile: 0.5, recoveryRequests: 3},
			run: func(t *testing.T, cb *circuitBreaker, clock *time.Time) {
				require.Error(t, cb.Call(fail))
				require.Equal(t, Open, cb.State())

				*clock = clock.Add(2 * time.Second)
				require.Error(t, cb.Call(fail))
				require.Equal(t, Open, cb.State())
				require.ErrorIs(t, cb.Call(ok), ErrOpenCB)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			cb := New(tt.fields.recordLength, tt.fields.timeout, tt.fields.percentile, tt.fields.recoveryRequests).(*circuitBreaker)
			cb.now = func() time.Time { return clock }
			tt.run(t, cb, &clock)
		})
	}
}
