package ioformat

import "errors"

// ErrEmptyPlacement is the error the CLI reports, before exiting with code
// 1, when a parsed placement has no cells; Parse itself does not return it.
// It is the only condition treated as a fatal configuration error rather
// than an empty, otherwise-valid run.
var ErrEmptyPlacement = errors.New("ioformat: no cells were loaded")
