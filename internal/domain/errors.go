package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for address store operations
var (
	// ErrInvalidArguments is returned when the command line is not a chain id followed by name/address pairs
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrMalformedExistingFile is returned when an existing address file is not a JSON object of strings
	ErrMalformedExistingFile = errors.New("malformed address file")

	// ErrFilesystem is returned when the address file cannot be read or written
	ErrFilesystem = errors.New("filesystem error")
)

// InvalidArgumentsErr describes a rejected argument vector
type InvalidArgumentsErr struct {
	Count  int
	Reason string
}

func (e InvalidArgumentsErr) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrInvalidArguments, e.Reason)
	}
	return fmt.Sprintf("%s: args must be chain id followed by pairs of contract name, contract address (got %d)",
		ErrInvalidArguments, e.Count)
}

func (e InvalidArgumentsErr) Unwrap() error {
	return ErrInvalidArguments
}
