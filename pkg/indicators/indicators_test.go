package indicators

import (
	"testing"
	"time"

	"github.com/peter-kozarec/slidingstat/pkg/common"
	"github.com/peter-kozarec/slidingstat/pkg/methods"
	"github.com/peter-kozarec/slidingstat/pkg/utility/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func bar(open, high, low, close float64) common.Bar {
	return common.Bar{
		Symbol:    "EURUSD",
		TimeStamp: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Period:    time.Minute,
		Open:      fixed.FromFloat64(open),
		High:      fixed.FromFloat64(high),
		Low:       fixed.FromFloat64(low),
		Close:     fixed.FromFloat64(close),
		Volume:    fixed.FromInt64(1000, 0),
	}
}

func closes(values ...float64) []common.Bar {
	out := make([]common.Bar, len(values))
	for i, v := range values {
		out[i] = bar(v, v+1, v-1, v)
	}
	return out
}

func float(t *testing.T, p fixed.Point) float64 {
	t.Helper()
	f, ok := p.Float64()
	require.True(t, ok)
	return f
}

func TestIndicators_NewRejectsShortLength(t *testing.T) {
	_, err := NewLsma(nil, 1)
	assert.ErrorIs(t, err, methods.ErrInvalidParameters)

	_, err = NewMovingMedian(nil, 0)
	assert.ErrorIs(t, err, methods.ErrInvalidParameters)
}

func TestIndicators_Lsma(t *testing.T) {
	tests := []struct {
		name      string
		length    uint
		bars      []common.Bar
		wantValue float64
		wantSlope float64
		wantReady bool
	}{
		{"not enough bars", 3, closes(1, 2), 11.0 / 6, 0.5, false},
		{"exact length", 3, closes(1, 2, 3), 3, 1, true},
		{"more than length", 3, closes(5, 1, 2, 3, 4), 4, 1, true},
		{"falling", 4, closes(10, 8, 6, 4), 4, -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLsma(zap.NewNop(), tt.length)
			require.NoError(t, err)

			for _, b := range tt.bars {
				l.OnBar(b)
			}

			assert.Equal(t, tt.wantReady, l.Ready())
			assert.InDelta(t, tt.wantValue, float(t, l.Value()), 1e-9)
			assert.InDelta(t, tt.wantSlope, float(t, l.Slope()), 1e-9)
		})
	}
}

func TestIndicators_MovingMedian(t *testing.T) {
	tests := []struct {
		name      string
		length    uint
		bars      []common.Bar
		want      float64
		wantReady bool
	}{
		{"single bar", 3, closes(1), 1, false},
		{"odd length", 3, closes(1, 2, 3, 100), 3, true},
		{"even length", 4, closes(4, 1, 3, 2), 2.5, true},
		{"length one", 1, closes(7, 9), 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMovingMedian(nil, tt.length)
			require.NoError(t, err)

			for _, b := range tt.bars {
				m.OnBar(b)
			}

			assert.Equal(t, tt.wantReady, m.Ready())
			assert.Equal(t, tt.want, float(t, m.Value()))
		})
	}
}

func TestIndicators_Source(t *testing.T) {
	b := bar(1, 4, 2, 3)

	tests := []struct {
		name   string
		source Source
		want   float64
	}{
		{"open", Open, 1},
		{"high", High, 4},
		{"low", Low, 2},
		{"close", Close, 3},
		{"median", Median, 3},
		{"typical", Typical, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMovingMedian(nil, 1, WithSource(tt.source))
			require.NoError(t, err)

			m.OnBar(b)
			assert.Equal(t, tt.want, float(t, m.Value()))
		})
	}
}

func TestIndicators_ValueBeforeFirstBar(t *testing.T) {
	l, err := NewLsma(nil, 5)
	require.NoError(t, err)

	assert.True(t, l.Value().IsZero())
	assert.True(t, l.Slope().IsZero())
	assert.False(t, l.Ready())
}

func TestIndicators_Reset(t *testing.T) {
	m, err := NewMovingMedian(nil, 2)
	require.NoError(t, err)

	for _, b := range closes(10, 20, 30) {
		m.OnBar(b)
	}
	require.True(t, m.Ready())

	m.Reset()
	assert.False(t, m.Ready())
	assert.True(t, m.Value().IsZero())

	// The next bar pre-fills a new window.
	m.OnBar(bar(1, 1, 1, 1))
	assert.Equal(t, 1.0, float(t, m.Value()))
}

func TestIndicators_LogsWhenReady(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l, err := NewLsma(zap.New(core), 3, WithResync(2))
	require.NoError(t, err)

	for _, b := range closes(1, 2, 3, 4, 5) {
		l.OnBar(b)
	}

	ready := logs.FilterMessage("indicator ready").All()
	require.Len(t, ready, 1)
	assert.Equal(t, "lsma", ready[0].ContextMap()["indicator"])
	assert.Equal(t, "EURUSD", ready[0].ContextMap()["symbol"])
	assert.Equal(t, 1, logs.FilterMessage("linreg created").Len())
	assert.Equal(t, 2, logs.FilterMessage("linreg resync").Len())
}

func BenchmarkIndicators_MovingMedian_OnBar(b *testing.B) {
	m, _ := NewMovingMedian(nil, 50)
	bars := closes(1.1, 1.2, 1.15, 1.05, 1.3, 1.25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.OnBar(bars[i%len(bars)])
	}
}
