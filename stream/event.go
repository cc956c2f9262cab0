package stream

// EventType is the kind of a structural event.
type EventType int

const (
	EventBeginObject EventType = iota
	EventEndObject
	EventBeginArray
	EventEndArray
	EventKey
	EventValue
)

func (t EventType) String() string {
	switch t {
	case EventBeginObject:
		return "BeginObject"
	case EventEndObject:
		return "EndObject"
	case EventBeginArray:
		return "BeginArray"
	case EventEndArray:
		return "EndArray"
	case EventKey:
		return "Key"
	case EventValue:
		return "Value"
	default:
		return "Unknown"
	}
}

// Event is a structural event. Key is set for EventKey.
type Event struct {
	Type EventType
	Key  string
}
