package fileops

import "errors"

var (
	// ErrCopyFailed indicates the file copy operation failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrMoveFailed indicates the file could not be moved.
	ErrMoveFailed = errors.New("failed to move file")

	// ErrDestinationExists indicates the destination file already exists.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrSourceMissing indicates the source file does not exist.
	ErrSourceMissing = errors.New("source file does not exist")
)
