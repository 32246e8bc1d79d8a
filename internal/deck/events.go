package deck

type EventKind int

const (
	// EventChanged follows every accepted mutation and hydration.
	EventChanged EventKind = iota
	EventHydrated
	EventLoadFailed
	EventSaved
	EventSaveFailed
)

func (k EventKind) String() string {
	switch k {
	case EventChanged:
		return "changed"
	case EventHydrated:
		return "hydrated"
	case EventLoadFailed:
		return "load-failed"
	case EventSaved:
		return "saved"
	case EventSaveFailed:
		return "save-failed"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind EventKind
	Err  error
}

// Subscribe registers fn for store events and returns a function that removes
// it. Save events are delivered on the timer goroutine; fn must not block.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) publish(ev Event) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
