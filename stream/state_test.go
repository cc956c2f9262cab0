package stream

import (
	"errors"
	"testing"
)

func TestStatePaths(t *testing.T) {
	s := NewState()
	steps := []struct {
		ev   Event
		path string
	}{
		{Event{Type: EventBeginObject}, ""},
		{Event{Type: EventKey, Key: "a"}, "a"},
		{Event{Type: EventBeginArray}, "a"},
		{Event{Type: EventValue}, "a[0]"},
		{Event{Type: EventBeginObject}, "a[1]"},
		{Event{Type: EventKey, Key: "x y"}, `a[1]."x y"`},
		{Event{Type: EventValue}, `a[1]."x y"`},
		{Event{Type: EventEndObject}, "a[1]"},
		{Event{Type: EventEndArray}, "a"},
		{Event{Type: EventEndObject}, ""},
	}
	for i, st := range steps {
		if err := s.ProcessEvent(&st.ev); err != nil {
			t.Fatalf("step %d %s: %v", i, st.ev.Type, err)
		}
		if got := s.CurrentPath(); got != st.path {
			t.Errorf("step %d %s: path %q, want %q", i, st.ev.Type, got, st.path)
		}
	}
	if !s.Done() || s.Depth() != 0 {
		t.Errorf("done %v depth %d", s.Done(), s.Depth())
	}
}

func TestStateRejects(t *testing.T) {
	tests := []struct {
		name   string
		events []EventType
	}{
		{"key at top level", []EventType{EventKey}},
		{"key in array", []EventType{EventBeginArray, EventKey}},
		{"value without key", []EventType{EventBeginObject, EventValue}},
		{"key after key", []EventType{EventBeginObject, EventKey, EventKey}},
		{"dangling key", []EventType{EventBeginObject, EventKey, EventEndObject}},
		{"mismatched close", []EventType{EventBeginArray, EventEndObject}},
		{"close at top level", []EventType{EventEndArray}},
		{"two roots", []EventType{EventValue, EventValue}},
		{"two container roots", []EventType{EventBeginArray, EventEndArray, EventBeginObject}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			var err error
			for _, et := range tt.events {
				if err = s.ProcessEvent(&Event{Type: et, Key: "k"}); err != nil {
					break
				}
			}
			if !errors.Is(err, ErrStructure) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestStateIndexAndKey(t *testing.T) {
	s := NewState()
	s.ProcessEvent(&Event{Type: EventBeginArray})
	if _, ok := s.CurrentIndex(); ok {
		t.Error("index before first item")
	}
	s.ProcessEvent(&Event{Type: EventValue})
	s.ProcessEvent(&Event{Type: EventValue})
	if i, ok := s.CurrentIndex(); !ok || i != 1 {
		t.Errorf("index %d %v", i, ok)
	}
	s.ProcessEvent(&Event{Type: EventBeginObject})
	s.ProcessEvent(&Event{Type: EventKey, Key: "name"})
	if k, ok := s.CurrentKey(); !ok || k != "name" {
		t.Errorf("key %q %v", k, ok)
	}
	if s.Count() != 1 || !s.IsInObject() || s.IsInArray() {
		t.Errorf("count %d", s.Count())
	}
}
