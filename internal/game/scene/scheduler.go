package scene

import (
	"sort"
	"time"
)

type task struct {
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler runs deferred callbacks on the frame thread. Callbacks never
// run concurrently with the frame; Run fires whatever is due.
type Scheduler struct {
	tasks []task
	seq   uint64
}

// After schedules fn to run on the first Run at or after now+d.
func (s *Scheduler) After(now time.Time, d time.Duration, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, task{due: now.Add(d), seq: s.seq, fn: fn})
}

// Run fires every due task in due-time order and returns how many ran.
// Tasks scheduled by a callback wait for the next Run.
func (s *Scheduler) Run(now time.Time) int {
	var due, pending []task
	for _, t := range s.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	if len(due) == 0 {
		return 0
	}
	s.tasks = pending

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Clear drops every pending task.
func (s *Scheduler) Clear() {
	s.tasks = nil
}
