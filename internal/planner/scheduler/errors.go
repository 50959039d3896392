package scheduler

import "errors"

var ErrInvalidWindow = errors.New("invalid scheduling window")
