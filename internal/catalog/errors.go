package catalog

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned by queries issued before a successful load. It is
// guidance for the caller, not a crash condition.
var ErrNotLoaded = errors.New("no catalog loaded")

// ErrEmptyCourseNumber is returned by Lookup when the course number is empty
// after normalization.
var ErrEmptyCourseNumber = errors.New("course number is empty")

// NotFoundError reports a lookup miss. Number is the normalized key that was
// searched, echoed back so the caller can see what was looked up.
type NotFoundError struct {
	Number string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("course %q not found", e.Number)
}

// EmptyLoadError reports a readable source that produced no valid records.
// The load fails as a whole and the planner is left empty and unloaded.
type EmptyLoadError struct {
	Source string
}

func (e *EmptyLoadError) Error() string {
	return fmt.Sprintf("no valid course records loaded from %s", e.Source)
}

// IsNotFound reports whether err is a lookup miss.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsEmptyLoad reports whether err is an empty-load failure.
// Uses errors.As to handle wrapped errors.
func IsEmptyLoad(err error) bool {
	var el *EmptyLoadError
	return errors.As(err, &el)
}
