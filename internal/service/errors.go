package service

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNoPassagesFound is fatal for a run: without primary passages there
	// is nothing to interpret.
	ErrNoPassagesFound = errors.New("no relevant Wittgenstein passages found")

	ErrRunNotFound = errors.New("interpretation run not found")

	ErrUnknownFramework = errors.New("unknown framework")
)

// ThrottledError is returned before any network work when a submission lands
// inside the cooldown window.
type ThrottledError struct {
	Wait time.Duration
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("Please wait %d seconds before submitting another question", e.WaitSeconds())
}

func (e *ThrottledError) WaitSeconds() int {
	return int(math.Ceil(e.Wait.Seconds()))
}
