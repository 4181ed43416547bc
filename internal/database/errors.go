package database

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseCorrupted = errors.New("database file is corrupted")
	ErrMalformedRecord   = errors.New("stored record is malformed")
)

type OpError struct {
	Op       string
	Resource string
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapStatsErr(op, date string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "stats", Key: date, Err: err}
}

func wrapSettingsErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "settings", Key: key, Err: err}
}

func wrapSegmentErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "segment", Key: id, Err: err}
}
