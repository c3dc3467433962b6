package domain

import "errors"

// ErrInputClosed is returned when the input source ends before a line is available.
var ErrInputClosed = errors.New("input closed")

// ErrInterrupted is returned when the user interrupts an interactive read (e.g. Ctrl+C).
var ErrInterrupted = errors.New("input interrupted")
