package circular

// Window is a fixed-capacity circular buffer that always holds exactly
// capacity values. Pushing a value replaces the oldest one.
//
// Window is not safe for concurrent use.
type Window[T any] struct {
	capacity uint

	head uint // slot of the oldest value
	data []T
}

// NewWindow returns a window with every slot set to value.
func NewWindow[T any](capacity uint, value T) *Window[T] {
	if capacity == 0 {
		panic("capacity must > 0")
	}
	w := &Window[T]{
		capacity: capacity,
		data:     make([]T, capacity),
	}
	for i := range w.data {
		w.data[i] = value
	}
	return w
}

// WindowFrom rebuilds a window from values ordered oldest to newest.
func WindowFrom[T any](values []T) *Window[T] {
	if len(values) == 0 {
		panic("capacity must > 0")
	}
	w := &Window[T]{
		capacity: uint(len(values)),
		data:     make([]T, len(values)),
	}
	copy(w.data, values)
	return w
}

func (w *Window[T]) Capacity() uint {
	return w.capacity
}

// Push overwrites the oldest value and returns it.
func (w *Window[T]) Push(value T) T {
	evicted := w.data[w.head]
	w.data[w.head] = value
	w.head++
	if w.head == w.capacity {
		w.head = 0
	}
	return evicted
}

// Get returns the value idx positions back from the newest one.
func (w *Window[T]) Get(idx uint) T {
	if idx >= w.capacity {
		panic("index out of range")
	}
	return w.data[(w.head+w.capacity-1-idx)%w.capacity]
}

func (w *Window[T]) Newest() T {
	return w.Get(0)
}

func (w *Window[T]) Oldest() T {
	return w.data[w.head]
}

// Data returns a copy of the contents ordered oldest to newest.
func (w *Window[T]) Data() []T {
	out := make([]T, 0, w.capacity)
	out = append(out, w.data[w.head:]...)
	return append(out, w.data[:w.head]...)
}
