package vector

import "errors"

var (
	// ErrOutOfRange is returned by checked access when the index is not in [0, Len()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrNotCopyable is returned by DeepClone for elements it cannot copy without losing data.
	ErrNotCopyable = errors.New("element cannot be deep copied")
)
