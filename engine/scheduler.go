package engine

import "time"

// scheduledOperation is one pending deferred call
type scheduledOperation struct {
	tag string
	due time.Time
	op  func()
}

// Scheduler defers tagged one-shot operations to a future instant of its clock
// Each actor owns one; it is not safe for concurrent use. There is no cancel:
// dropping the scheduler (or calling Clear) abandons everything pending
type Scheduler struct {
	clock   Clock
	pending []scheduledOperation
}

// NewScheduler binds a scheduler to clock, panics on nil clock
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		panic("engine: scheduler requires a clock")
	}
	return &Scheduler{clock: clock}
}

// ScheduleOperation queues op to run once delay has elapsed on the clock
// Returns false without queuing when an operation with the same tag is already
// pending, so per-tick "try to schedule" calls are safe to repeat
func (s *Scheduler) ScheduleOperation(tag string, delay time.Duration, op func()) bool {
	if s.Pending(tag) {
		return false
	}
	s.pending = append(s.pending, scheduledOperation{
		tag: tag,
		due: s.clock.Now().Add(delay),
		op:  op,
	})
	return true
}

// ExecuteDueOperations runs every operation whose due instant has been reached,
// in scheduling order, and returns how many ran.
// The pending set is replaced before any callback runs, so a callback may
// re-schedule its own tag (frame N schedules frame N+1)
func (s *Scheduler) ExecuteDueOperations() int {
	if len(s.pending) == 0 {
		return 0
	}

	now := s.clock.Now()
	var due []scheduledOperation
	waiting := make([]scheduledOperation, 0, len(s.pending))
	for _, so := range s.pending {
		if !now.Before(so.due) {
			due = append(due, so)
		} else {
			waiting = append(waiting, so)
		}
	}
	if len(due) == 0 {
		return 0
	}

	s.pending = waiting
	for _, so := range due {
		if so.op != nil {
			so.op()
		}
	}
	return len(due)
}

// Pending reports whether tag is waiting to fire
func (s *Scheduler) Pending(tag string) bool {
	for _, so := range s.pending {
		if so.tag == tag {
			return true
		}
	}
	return false
}

// Len returns the number of pending operations
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Clear drops all pending operations, used on actor teardown
func (s *Scheduler) Clear() {
	s.pending = nil
}
