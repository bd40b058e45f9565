// Package timer runs recurring callbacks on a single cooperative loop.
//
// A Loop never starts goroutines. The host calls Advance from its own update
// loop and every due callback runs on that goroutine, one at a time, in
// deadline order. Callbacks may register or cancel tasks while running.
package timer

import (
	"container/heap"
	"time"

	"github.com/google/uuid"
)

// MinInterval is the shortest interval a task can run at.
const MinInterval = time.Millisecond

// DefaultMaxCatchUp bounds how often a single task fires during one Advance.
const DefaultMaxCatchUp = 64

// Handle identifies a registered task. Handles are never reused.
type Handle struct {
	id uuid.UUID
}

// String returns the handle's identifier.
func (h Handle) String() string {
	return h.id.String()
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.id == uuid.Nil
}

type task struct {
	handle    Handle
	interval  time.Duration
	next      time.Duration
	seq       uint64
	fn        func()
	cancelled bool
	index     int
}

// Loop schedules recurring tasks against virtual time advanced by the caller.
type Loop struct {
	now        time.Duration
	tasks      map[Handle]*task
	queue      taskQueue
	seq        uint64
	maxCatchUp int
}

// Option configures a Loop.
type Option func(*Loop)

// WithMaxCatchUp caps the number of times one task may fire per Advance.
// Deadlines that fall further behind are skipped.
func WithMaxCatchUp(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.maxCatchUp = n
		}
	}
}

// NewLoop creates an empty loop at virtual time zero.
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		tasks:      make(map[Handle]*task),
		maxCatchUp: DefaultMaxCatchUp,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Every registers fn to run each interval, first one interval from now.
func (l *Loop) Every(interval time.Duration, fn func()) Handle {
	if interval < MinInterval {
		interval = MinInterval
	}
	l.seq++
	t := &task{
		handle:   Handle{id: uuid.New()},
		interval: interval,
		next:     l.now + interval,
		seq:      l.seq,
		fn:       fn,
	}
	l.tasks[t.handle] = t
	heap.Push(&l.queue, t)
	return t.handle
}

// Cancel stops a task. It returns false if h is unknown or already cancelled.
func (l *Loop) Cancel(h Handle) bool {
	t, ok := l.tasks[h]
	if !ok {
		return false
	}
	delete(l.tasks, h)
	t.cancelled = true
	if t.index >= 0 {
		heap.Remove(&l.queue, t.index)
	}
	return true
}

// Len returns the number of live tasks.
func (l *Loop) Len() int {
	return len(l.tasks)
}

// Elapsed returns the virtual time advanced so far.
func (l *Loop) Elapsed() time.Duration {
	return l.now
}

// Advance moves virtual time forward by dt and runs every callback that falls
// due, returning how many ran.
func (l *Loop) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := l.now + dt
	fired := 0
	counts := make(map[*task]int)

	for l.queue.Len() > 0 {
		t := l.queue[0]
		if t.next > target {
			break
		}
		heap.Pop(&l.queue)

		l.now = t.next
		t.fn()
		fired++
		counts[t]++

		if t.cancelled {
			continue
		}
		t.next += t.interval
		if counts[t] >= l.maxCatchUp && t.next <= target {
			// Drop the backlog and realign after target.
			behind := (target-t.next)/t.interval + 1
			t.next += behind * t.interval
		}
		heap.Push(&l.queue, t)
	}

	l.now = target
	return fired
}

// taskQueue orders tasks by deadline, then by registration order.
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].next != q[j].next {
		return q[i].next < q[j].next
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
