package limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestPer(t *testing.T) {
	assert.Equal(t, rate.Every(3*time.Second), Per(1, 3*time.Second))
	assert.InDelta(t, float64(20)/60, float64(Per(20, time.Minute)), 1e-9)
}

func TestMultiStrictestFirst(t *testing.T) {
	loose := rate.NewLimiter(Per(20, 60*time.Second), 20)
	strict := rate.NewLimiter(Per(1, 3*time.Second), 1)

	m := Multi(loose, strict)
	assert.Equal(t, strict.Limit(), m.Limit())
	assert.NoError(t, m.Wait(context.Background()))
}

func TestNew(t *testing.T) {
	l := New()
	assert.Equal(t, rate.Inf, l.Limit())

	l = New(Config{EventCount: 0, EventDur: 1}, Config{EventCount: 2, EventDur: 1})
	assert.Equal(t, Per(2, time.Second), l.Limit())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	strict := New(Config{EventCount: 1, EventDur: 60, Bucket: 1})
	assert.NoError(t, strict.Wait(context.Background()))
	assert.Error(t, strict.Wait(ctx))
}
