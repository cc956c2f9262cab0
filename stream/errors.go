package stream

import "errors"

var ErrStructure = errors.New("invalid json structure")

// Error represents a stream error.
type Error struct {
	Msg  string
	Path string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return e.Msg + " at " + e.Path
}

func (e *Error) Unwrap() error {
	return ErrStructure
}
