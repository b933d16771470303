package identity

import (
	"errors"

	"github.com/aws/smithy-go"
)

// Kind is the closed set of provider failures the handlers distinguish.
type Kind int

const (
	KindOther Kind = iota
	KindNotAuthorized
	KindUserNotConfirmed
	KindUserNotFound
	KindUsernameExists
)

func (k Kind) String() string {
	switch k {
	case KindNotAuthorized:
		return "NotAuthorized"
	case KindUserNotConfirmed:
		return "UserNotConfirmed"
	case KindUserNotFound:
		return "UserNotFound"
	case KindUsernameExists:
		return "UsernameExists"
	default:
		return "Other"
	}
}

// Provider error codes as reported by Cognito.
const (
	CodeNotAuthorized    = "NotAuthorizedException"
	CodeUserNotConfirmed = "UserNotConfirmedException"
	CodeUserNotFound     = "UserNotFoundException"
	CodeUsernameExists   = "UsernameExistsException"
)

var kindsByCode = map[string]Kind{
	CodeNotAuthorized:    KindNotAuthorized,
	CodeUserNotConfirmed: KindUserNotConfirmed,
	CodeUserNotFound:     KindUserNotFound,
	CodeUsernameExists:   KindUsernameExists,
}

// Error is a classified provider failure. Name is the raw provider code (may
// be empty for transport failures) and Message the raw provider message.
type Error struct {
	Kind    Kind
	Name    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify turns an SDK error into an *Error. Unknown codes and errors that
// carry no API code at all become KindOther. Classify(nil) returns nil.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.ErrorMessage()
		if msg == "" {
			msg = err.Error()
		}
		return &Error{
			Kind:    kindsByCode[apiErr.ErrorCode()],
			Name:    apiErr.ErrorCode(),
			Message: msg,
			Err:     err,
		}
	}

	return &Error{Kind: KindOther, Message: err.Error(), Err: err}
}
