package pak

import "errors"

var (
	ErrNotOpened   = errors.New("archive not opened")
	ErrUnsafePath  = errors.New("archive entry escapes output directory")
	ErrNotARegular = errors.New("archive path is not a regular file")
)
