package rating

import (
	"errors"
	"sync"
)

var ErrOutOfRange = errors.New("rating must be between 1 and 5")

type State int

const (
	Idle State = iota
	Hovering
	Committed
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Committed:
		return "committed"
	default:
		return "idle"
	}
}

type Size int

const (
	Normal Size = iota
	Large
)

// Class is the CSS class of the star container.
func (s Size) Class() string {
	if s == Large {
		return "rating-stars-large"
	}
	return "rating-stars"
}

// Listener receives the newly committed value.
type Listener func(value int)

type Option func(*Widget)

func WithSize(s Size) Option {
	return func(w *Widget) { w.size = s }
}

// Widget is the state of one five-star control. A committed value survives
// hover; leaving the control shows the committed value, or the baseline if
// nothing was committed.
type Widget struct {
	mu          sync.Mutex
	baseline    float64
	interactive bool
	size        Size
	state       State
	hover       int
	committed   int
	nextID      int
	listeners   map[int]Listener
}

// NewWidget returns an interactive widget showing baseline until the user
// hovers or clicks.
func NewWidget(baseline float64, opts ...Option) *Widget {
	w := &Widget{
		baseline:    baseline,
		interactive: true,
		listeners:   make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Static returns a display-only widget; events are ignored.
func Static(r float64, opts ...Option) *Widget {
	w := NewWidget(r, opts...)
	w.interactive = false
	return w
}

func (w *Widget) Interactive() bool { return w.interactive }
func (w *Widget) Size() Size { return w.size }

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Enter moves the pointer onto star i.
func (w *Widget) Enter(i int) error {
	if !w.interactive {
		return nil
	}
	if i < 1 || i > MaxStars {
		return ErrOutOfRange
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = Hovering
	w.hover = i
	return nil
}

// Leave moves the pointer off the control.
func (w *Widget) Leave() {
	if !w.interactive {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hover = 0
	if w.committed > 0 {
		w.state = Committed
	} else {
		w.state = Idle
	}
}

// Click commits star i and notifies subscribers.
func (w *Widget) Click(i int) error {
	if !w.interactive {
		return nil
	}
	if i < 1 || i > MaxStars {
		return ErrOutOfRange
	}
	w.mu.Lock()
	w.committed = i
	w.hover = 0
	w.state = Committed
	listeners := make([]Listener, 0, len(w.listeners))
	for id := 0; id < w.nextID; id++ {
		if l, ok := w.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	w.mu.Unlock()

	for _, l := range listeners {
		l(i)
	}
	return nil
}

// Subscribe registers l for commits. The returned func removes it.
func (w *Widget) Subscribe(l Listener) (cancel func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = l
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
	}
}

// Filled is the number of stars currently drawn filled.
func (w *Widget) Filled() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case Hovering:
		return w.hover
	case Committed:
		return w.committed
	default:
		return Stars(w.baseline)
	}
}

// Selected is the committed value, or 0 when nothing was clicked.
func (w *Widget) Selected() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.committed
}
