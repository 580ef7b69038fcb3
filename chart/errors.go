package chart

import "errors"

// ErrInvalidInput is wrapped by every error returned for data rejected at
// the chart boundary.
var ErrInvalidInput = errors.New("invalid input")
