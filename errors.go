package hashtable

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be a positive number")
	ErrKeyNotFound     = errors.New("key not found")
)

// KeyError is returned by Get and Delete for an absent key.
// It unwraps to ErrKeyNotFound.
type KeyError struct {
	Key any
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %#v", ErrKeyNotFound, e.Key)
}

func (e *KeyError) Unwrap() error {
	return ErrKeyNotFound
}
