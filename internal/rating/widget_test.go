package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidgetBaseline(t *testing.T) {
	w := NewWidget(3.6)
	assert.Equal(t, Idle, w.State())
	assert.Equal(t, 4, w.Filled())
	assert.Equal(t, 0, w.Selected())
	assert.Equal(t, "rating-stars", w.Size().Class())
}

func TestWidgetHoverAndLeave(t *testing.T) {
	w := NewWidget(2)

	require.NoError(t, w.Enter(5))
	assert.Equal(t, Hovering, w.State())
	assert.Equal(t, 5, w.Filled())

	w.Leave()
	assert.Equal(t, Idle, w.State())
	assert.Equal(t, 2, w.Filled())
}

func TestWidgetClickSurvivesHover(t *testing.T) {
	w := NewWidget(0, WithSize(Large))

	require.NoError(t, w.Click(3))
	assert.Equal(t, Committed, w.State())
	assert.Equal(t, 3, w.Filled())

	require.NoError(t, w.Enter(1))
	assert.Equal(t, 1, w.Filled())
	w.Leave()
	assert.Equal(t, Committed, w.State())
	assert.Equal(t, 3, w.Filled())
	assert.Equal(t, 3, w.Selected())
	assert.Equal(t, "rating-stars-large", w.Size().Class())
}

func TestWidgetRejectsOutOfRange(t *testing.T) {
	w := NewWidget(1)
	notified := 0
	w.Subscribe(func(int) { notified++ })

	for _, v := range []int{0, 6, -2} {
		assert.ErrorIs(t, w.Click(v), ErrOutOfRange)
		assert.ErrorIs(t, w.Enter(v), ErrOutOfRange)
	}
	assert.Equal(t, Idle, w.State())
	assert.Equal(t, 0, w.Selected())
	assert.Zero(t, notified)
}

func TestWidgetNotifiesSubscribers(t *testing.T) {
	w := NewWidget(0)
	var first, second []int
	cancelFirst := w.Subscribe(func(v int) { first = append(first, v) })
	w.Subscribe(func(v int) { second = append(second, v) })

	require.NoError(t, w.Click(4))
	cancelFirst()
	require.NoError(t, w.Click(2))

	assert.Equal(t, []int{4}, first)
	assert.Equal(t, []int{4, 2}, second)
}

func TestWidgetSubscriberMayReadState(t *testing.T) {
	w := NewWidget(0)
	var seen int
	w.Subscribe(func(int) { seen = w.Selected() })

	require.NoError(t, w.Click(5))
	assert.Equal(t, 5, seen)
}

func TestStaticWidgetIgnoresEvents(t *testing.T) {
	w := Static(4.2)
	calls := 0
	w.Subscribe(func(int) { calls++ })

	assert.False(t, w.Interactive())
	assert.NoError(t, w.Enter(1))
	assert.NoError(t, w.Click(1))
	assert.NoError(t, w.Click(9))
	w.Leave()

	assert.Equal(t, Idle, w.State())
	assert.Equal(t, 4, w.Filled())
	assert.Equal(t, 0, w.Selected())
	assert.Zero(t, calls)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "hovering", Hovering.String())
	assert.Equal(t, "committed", Committed.String())
}
