package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingFields is wrapped by MissingFieldsError.
	ErrMissingFields = errors.New("record is missing required fields")
	// ErrUnknownCredential is wrapped by UnknownCredentialError.
	ErrUnknownCredential = errors.New("credential is not configured")

	ErrKeyRequired        = errors.New("private key must be provided either as argument or in configuration")
	ErrEmptyKey           = errors.New("private key cannot be empty")
	ErrInvalidKeyLength   = errors.New("private key must be 32 bytes (64 hex characters) long")
	ErrInvalidKeyEncoding = errors.New("private key must contain only hexadecimal characters")
)

// MissingFieldsError lists every required field absent from a record.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	quoted := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		quoted[i] = fmt.Sprintf("%q", f)
	}
	return fmt.Sprintf("%s: %s", ErrMissingFields, strings.Join(quoted, ", "))
}

func (e *MissingFieldsError) Unwrap() error { return ErrMissingFields }

// UnknownCredentialError names a credential absent from the store.
type UnknownCredentialError struct {
	Name string
}

func (e *UnknownCredentialError) Error() string {
	return fmt.Sprintf("credential '%s' is not configured", e.Name)
}

func (e *UnknownCredentialError) Unwrap() error { return ErrUnknownCredential }
