package agent

import "errors"

var (
	ErrToolNotFound     = errors.New("tool not found")
	ErrInvalidArguments = errors.New("invalid tool arguments")
	ErrMissingScope     = errors.New("tool call without user scope")
)
