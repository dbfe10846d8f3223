package utils

import (
	"errors"
	"fmt"
)

// ErrorKind tags a service error with the class of failure so the transport
// layer can map it to a status code in one place.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindUnauthenticated
	KindAuthorization
	KindNotFound
	KindInfrastructure
)

type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func Validation(message string) error {
	return &ServiceError{Kind: KindValidation, Message: message}
}

func Unauthenticated(message string) error {
	return &ServiceError{Kind: KindUnauthenticated, Message: message}
}

func Authorization(message string) error {
	return &ServiceError{Kind: KindAuthorization, Message: message}
}

func NotFound(message string) error {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func Infrastructure(message string, err error) error {
	return &ServiceError{Kind: KindInfrastructure, Message: message, Err: err}
}

// KindOf classifies any error. Errors without a ServiceError in their chain
// are treated as infrastructure failures.
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInfrastructure
}

// MessageOf returns the client-safe message for an error. Infrastructure
// details are never leaked.
func MessageOf(err error) string {
	var se *ServiceError
	if errors.As(err, &se) && se.Kind != KindInfrastructure {
		return se.Message
	}
	return "Internal server error"
}
