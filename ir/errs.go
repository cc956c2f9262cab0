package ir

import "errors"

var (
	ErrUnsupported = errors.New("unsupported go value")
	ErrPath        = errors.New("path error")
)
