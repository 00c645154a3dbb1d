package model

import "errors"

// ErrDuplicateCellID indicates AddCell was given an id already present in
// the placement.
var ErrDuplicateCellID = errors.New("model: duplicate cell id")
