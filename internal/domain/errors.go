package domain

import "errors"

var (
	ErrRead             = errors.New("read error")
	ErrEmptyInput       = errors.New("empty input")
	ErrRemoteService    = errors.New("remote service error")
	ErrBusy             = errors.New("operation already in progress")
	ErrInvalidSlot      = errors.New("invalid slot index")
	ErrUnsupportedMedia = errors.New("unsupported media type")
)

// RemoteError carries the opaque message of a failed remote call. It matches
// ErrRemoteService under errors.Is.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

func (e *RemoteError) Is(target error) bool { return target == ErrRemoteService }
