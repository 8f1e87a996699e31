package alert

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{at: c.now + d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance fires due timers in order, outside the clock lock.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.fired && !t.stopped && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fn()
	}
}

func TestShow_ExpiresAfterDuration(t *testing.T) {
	clock := &manualClock{}
	svc := New(WithClock(clock))

	shown := svc.Show(Alert{Title: "Carrinho", Message: "Produto adicionado", DurationMs: 3000})
	require.Len(t, svc.List(), 1)
	assert.NotEmpty(t, shown.ID)
	assert.Equal(t, KindInfo, shown.Kind)

	clock.Advance(2999 * time.Millisecond)
	assert.Len(t, svc.List(), 1)

	clock.Advance(time.Millisecond)
	assert.Empty(t, svc.List())
}

func TestShow_DefaultsAndCallerID(t *testing.T) {
	clock := &manualClock{}
	svc := New(WithClock(clock), WithDefaultDuration(5*time.Second))

	a := svc.Show(Alert{ID: "fixed", Message: "olá"})
	assert.Equal(t, "fixed", a.ID)
	assert.EqualValues(t, 5000, a.DurationMs)

	b := svc.Show(Alert{Message: "outro"})
	c := svc.Show(Alert{Message: "outro"})
	assert.NotEqual(t, b.ID, c.ID, "generated ids must be distinct")
	assert.Len(t, svc.List(), 3, "duplicates are not coalesced")
}

func TestHide_RemovesImmediatelyAndTimerIsHarmless(t *testing.T) {
	clock := &manualClock{}
	svc := New(WithClock(clock))

	first := svc.Show(Alert{Message: "a", DurationMs: 1000})
	second := svc.Show(Alert{Message: "b", DurationMs: 1000})

	svc.Hide(first.ID)
	list := svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	svc.Hide(first.ID)
	svc.Hide("unknown")
	clock.Advance(time.Second)
	assert.Empty(t, svc.List())
}

func TestTimerRemovesOnlyItsOwnEntry(t *testing.T) {
	clock := &manualClock{}
	svc := New(WithClock(clock))

	svc.Show(Alert{ID: "same", Message: "curto", DurationMs: 1000})
	svc.Show(Alert{ID: "same", Message: "longo", DurationMs: 5000})

	clock.Advance(time.Second)
	list := svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, "longo", list[0].Message)

	svc.Hide("same")
	assert.Empty(t, svc.List())
}

func TestCloseStopsTimers(t *testing.T) {
	clock := &manualClock{}
	svc := New(WithClock(clock))
	svc.Success("Pedido", "Compra finalizada")
	svc.Error("Pedido", "Falhou")
	svc.Close()
	assert.Empty(t, svc.List())
	for _, tm := range clock.timers {
		assert.True(t, tm.stopped)
	}
}
