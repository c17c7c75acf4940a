package queue

// minRingSize is the initial capacity of a ring. Must be a power of 2.
const minRingSize = 16

// ring is a growable FIFO ring buffer.
//
// Not safe for concurrent use; Signal guards it with its mutex.
// head and tail are free-running counters; the slot index is
// counter&mask, so the capacity must stay a power of 2.
type ring[T any] struct {
	buf  []T
	mask uint64
	head uint64 // next slot to write
	tail uint64 // next slot to read
}

func newRing[T any](size int) ring[T] {
	// Round up to power of 2
	n := uint64(minRingSize)
	for n < uint64(size) {
		n <<= 1
	}
	return ring[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}
}

// push appends v, doubling the buffer when full.
func (r *ring[T]) push(v T) {
	if r.head-r.tail >= uint64(len(r.buf)) {
		r.grow()
	}
	r.buf[r.head&r.mask] = v
	r.head++
}

// pop removes the oldest item. Returns false if empty.
func (r *ring[T]) pop() (T, bool) {
	var zero T
	if r.tail >= r.head {
		return zero, false
	}
	idx := r.tail & r.mask
	v := r.buf[idx]
	r.buf[idx] = zero
	r.tail++
	return v, true
}

func (r *ring[T]) len() int {
	return int(r.head - r.tail)
}

// grow doubles the capacity, unwrapping items to the start of the new buffer.
func (r *ring[T]) grow() {
	n := uint64(len(r.buf)) << 1
	buf := make([]T, n)
	count := r.head - r.tail
	for i := uint64(0); i < count; i++ {
		buf[i] = r.buf[(r.tail+i)&r.mask]
	}
	r.buf = buf
	r.mask = n - 1
	r.tail = 0
	r.head = count
}
