package lfucache

import (
	"errors"
	"fmt"
)

var (
	ErrCacheExists      = errors.New("cache already exists")
	ErrCacheNotFound    = errors.New("cache not found")
	ErrTypeMismatch     = errors.New("cache type mismatch")
	ErrSnapshotFormat   = errors.New("snapshot framing invalid")
	ErrSnapshotVersion  = errors.New("snapshot version unsupported")
	ErrSnapshotChecksum = errors.New("snapshot checksum mismatch")
)

type CacheError struct {
	Op    string
	Name  string
	Cause error
}

func (e *CacheError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("lfucache %s %s: %v", e.Op, e.Name, e.Cause)
	}
	return fmt.Sprintf("lfucache %s: %v", e.Op, e.Cause)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

func newCacheError(op, name string, cause error) *CacheError {
	return &CacheError{
		Op:    op,
		Name:  name,
		Cause: cause,
	}
}

func wrapError(op string, err error) *CacheError {
	return &CacheError{
		Op:    op,
		Cause: err,
	}
}
