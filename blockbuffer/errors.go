package blockbuffer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHex = errors.New("blockbuffer: invalid hex digit")
	ErrShortDump  = errors.New("blockbuffer: dump is not a whole number of blocks")
)

type DumpError struct {
	Err    error
	Offset int
}

func (err *DumpError) Error() string {
	return fmt.Sprintf("blockbuffer: dump: offset %d: %s", err.Offset, err.Err.Error())
}

func (err *DumpError) Unwrap() error {
	return err.Err
}
