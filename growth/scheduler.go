package growth

// Scheduler hands out the next task to run. Tasks are identified by index.
type Scheduler interface {
	// Add appends a task to the rotation.
	Add(task int)
	// Next returns the task whose turn it is and advances the rotation.
	Next() (task int, ok bool)
	// Remove drops a task from the rotation; unknown tasks are ignored.
	Remove(task int)
	// Len returns the number of scheduled tasks.
	Len() int
}

// RoundRobin cycles through tasks in the order they were added.
type RoundRobin struct {
	ring []int
	pos  int
}

// NewRoundRobin returns an empty round-robin scheduler.
func NewRoundRobin() *RoundRobin { return &RoundRobin{} }

// Add appends task at the end of the rotation.
func (s *RoundRobin) Add(task int) { s.ring = append(s.ring, task) }

// Next returns the current task and moves to the following one.
func (s *RoundRobin) Next() (int, bool) {
	if len(s.ring) == 0 {
		return 0, false
	}
	if s.pos >= len(s.ring) {
		s.pos = 0
	}
	task := s.ring[s.pos]
	s.pos++

	return task, true
}

// Remove drops task, keeping the turn order of the others.
func (s *RoundRobin) Remove(task int) {
	for i, t := range s.ring {
		if t != task {
			continue
		}
		s.ring = append(s.ring[:i], s.ring[i+1:]...)
		if i < s.pos {
			s.pos--
		}
		return
	}
}

// Len returns the number of scheduled tasks.
func (s *RoundRobin) Len() int { return len(s.ring) }

var _ Scheduler = (*RoundRobin)(nil)
