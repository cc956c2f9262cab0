package stream

import (
	"github.com/protoson/go-pson/ir/kpath"
)

// State tracks open containers and validates event sequences. It writes
// nothing.
type State struct {
	stack []item
	done  bool
}

type containerKind int

const (
	objectKind containerKind = iota
	arrayKind
)

type item struct {
	kind containerKind
	// n counts keys in objects and items in arrays
	n      int
	hasKey bool
	key    string
}

func NewState() *State {
	return &State{}
}

func (s *State) current() *item {
	return &s.stack[len(s.stack)-1]
}

func (s *State) errorf(msg string) error {
	return &Error{Msg: msg, Path: s.CurrentPath()}
}

// beginValue checks that a value may start here and records it.
func (s *State) beginValue() error {
	if len(s.stack) == 0 {
		if s.done {
			return s.errorf("more than one top-level value")
		}
		return nil
	}
	cur := s.current()
	switch cur.kind {
	case objectKind:
		if !cur.hasKey {
			return s.errorf("value without key in object")
		}
		cur.hasKey = false
	case arrayKind:
		cur.n++
	}
	return nil
}

// ProcessEvent validates event against the current state and applies it.
// On error the state is unchanged.
func (s *State) ProcessEvent(event *Event) error {
	switch event.Type {
	case EventBeginObject, EventBeginArray:
		if err := s.beginValue(); err != nil {
			return err
		}
		kind := objectKind
		if event.Type == EventBeginArray {
			kind = arrayKind
		}
		s.stack = append(s.stack, item{kind: kind})

	case EventEndObject, EventEndArray:
		want := objectKind
		if event.Type == EventEndArray {
			want = arrayKind
		}
		if len(s.stack) == 0 || s.current().kind != want {
			return s.errorf("unbalanced " + event.Type.String())
		}
		if s.current().hasKey {
			return s.errorf("key without value")
		}
		s.stack = s.stack[:len(s.stack)-1]
		if len(s.stack) == 0 {
			s.done = true
		}

	case EventKey:
		if len(s.stack) == 0 || s.current().kind != objectKind {
			return s.errorf("key outside object")
		}
		cur := s.current()
		if cur.hasKey {
			return s.errorf("key after key")
		}
		cur.hasKey = true
		cur.key = event.Key
		cur.n++

	case EventValue:
		if err := s.beginValue(); err != nil {
			return err
		}
		if len(s.stack) == 0 {
			s.done = true
		}
	}
	return nil
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// Count returns the number of keys or items written so far in the innermost
// container.
func (s *State) Count() int {
	if len(s.stack) == 0 {
		return 0
	}
	return s.current().n
}

// Done reports whether a complete top-level value has been written.
func (s *State) Done() bool {
	return s.done
}

// KPath returns the path of the most recent key or item.
func (s *State) KPath() *kpath.KPath {
	var head, tail *kpath.KPath
	for i := range s.stack {
		it := &s.stack[i]
		var seg *kpath.KPath
		switch {
		case it.kind == objectKind && it.n > 0:
			seg = kpath.Field(it.key)
		case it.kind == arrayKind && it.n > 0:
			seg = kpath.Index(it.n - 1)
		default:
			continue
		}
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	return head
}

// CurrentPath returns the current path (e.g., "", "key", "key[0]").
func (s *State) CurrentPath() string {
	return s.KPath().String()
}

func (s *State) IsInObject() bool {
	return len(s.stack) > 0 && s.current().kind == objectKind
}

func (s *State) IsInArray() bool {
	return len(s.stack) > 0 && s.current().kind == arrayKind
}

// CurrentKey returns the current object key (if in object).
func (s *State) CurrentKey() (string, bool) {
	if !s.IsInObject() || s.current().n == 0 {
		return "", false
	}
	return s.current().key, true
}

// CurrentIndex returns the index of the current array item (if in array).
func (s *State) CurrentIndex() (int, bool) {
	if !s.IsInArray() || s.current().n == 0 {
		return 0, false
	}
	return s.current().n - 1, true
}
