// Package shared provides common domain types used across multiple domain packages.
package shared

import "errors"

// Error variables for domain operations.
var (
	// ErrNotFound indicates a requested resource was not found.
	// This error is returned when a lookup operation fails to find the target.
	ErrNotFound error = errors.New("not found")

	// ErrAlreadyExists indicates a resource already exists.
	// This error is returned when attempting to create a duplicate resource.
	ErrAlreadyExists error = errors.New("already exists")

	// ErrInvalidState indicates an invalid state transition.
	// This error is returned when an operation is not valid for the current state.
	ErrInvalidState error = errors.New("invalid state")

	// ErrInvalidArgument indicates an invalid argument was provided.
	// This error is returned when a function receives an argument that is not valid.
	ErrInvalidArgument error = errors.New("invalid argument")

	// ErrEmptyCommand indicates the command configuration is empty.
	// This error is returned when a command is required but not provided.
	ErrEmptyCommand error = errors.New("empty command")

	// ErrPoolExhausted indicates a buffer pool has no free blocks.
	ErrPoolExhausted error = errors.New("buffer pool exhausted")

	// ErrQueueFull indicates a subscriber queue is at capacity.
	ErrQueueFull error = errors.New("subscriber queue full")

	// ErrSizeMismatch indicates an endpoint's payload size disagrees with its topic.
	ErrSizeMismatch error = errors.New("payload size mismatch")

	// ErrDoubleRelease indicates a buffer was released more times than it was acquired.
	ErrDoubleRelease error = errors.New("buffer double release")

	// ErrUnknownPool indicates a buffer does not belong to any known pool.
	ErrUnknownPool error = errors.New("buffer belongs to no known pool")

	// ErrNoNode indicates an endpoint operation was attempted without an owning node.
	ErrNoNode error = errors.New("endpoint has no owning node")

	// ErrTopicTableFull indicates the registry's topic table is at capacity.
	ErrTopicTableFull error = errors.New("topic table full")

	// ErrDuplicateRemotePublisher indicates a topic already has a remote publisher.
	ErrDuplicateRemotePublisher error = errors.New("topic already has a remote publisher")

	// ErrClosed indicates an operation was attempted on a closed node or transport.
	ErrClosed error = errors.New("closed")
)
