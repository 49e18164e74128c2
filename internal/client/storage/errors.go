package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that diary record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordClaimed indicates that record is already claimed by a sync pass
	ErrRecordClaimed = errors.New("record already claimed by sync pass")

	// ErrProfileNotFound indicates that no local profile exists
	ErrProfileNotFound = errors.New("profile not found")

	// ErrTokenNotFound indicates that no token is stored for the service
	ErrTokenNotFound = errors.New("token not found")

	// ErrSnapshotNotFound indicates that no entitlement snapshot is cached
	ErrSnapshotNotFound = errors.New("entitlement snapshot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
