package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPairNotFound          = errors.New("pair not found")
	ErrSnapshotNotFound      = errors.New("rate snapshot not found")
	ErrInvalidRate           = errors.New("invalid rate")
	ErrInvalidDirection      = errors.New("invalid swap direction")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrTokenUnsupported      = errors.New("token not supported")
	ErrSerializationMismatch = errors.New("signed body differs from transmitted body")
	ErrProvider              = errors.New("swap provider error")
)

// ProviderError is returned when the provider answers with a non-2xx status or an errorCode.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("swap provider error %q (status %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("swap provider error (status %d): %s", e.StatusCode, e.Message)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}
