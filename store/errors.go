package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("store: map not found")
	ErrCorrupt  = errors.New("store: corrupt map")
)

type NameError struct {
	Err  error
	Name string
}

func (err *NameError) Error() string {
	return fmt.Sprintf("store: %s: %s", err.Name, err.Err.Error())
}

func (err *NameError) Unwrap() error {
	return err.Err
}

type CorruptError struct {
	Name     string
	Expected uint32
	Actual   uint32
}

func (err *CorruptError) Error() string {
	return fmt.Sprintf("store: %s: mismatched crc: expected %08x but got %08x", err.Name, err.Expected, err.Actual)
}

func (err *CorruptError) Unwrap() error {
	return ErrCorrupt
}
