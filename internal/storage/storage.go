package storage

import "errors"

var (
	ErrUnitNotFound    = errors.New("unit not found")
	ErrSummaryNotFound = errors.New("summary not found")
)
