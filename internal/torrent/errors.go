package torrent

import (
	"errors"
	"fmt"

	"github.com/krywicki/ditto/internal/bencode"
)

// ErrorKind classifies a failure to produce a Torrent.
type ErrorKind int

const (
	// IOError means the torrent bytes could not be read.
	IOError ErrorKind = iota
	// DecodeFailure covers bencode grammar errors, schema mismatches and
	// field conversion errors.
	DecodeFailure
)

func (k ErrorKind) String() string {
	switch k {
	case IOError:
		return "io error"
	case DecodeFailure:
		return "decode failure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by Open and ParseTorrent.
type Error struct {
	Kind ErrorKind
	Msg  string

	err error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf reports the classification of err, if it carries one.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func ioError(err error) *Error {
	return &Error{Kind: IOError, Msg: err.Error(), err: err}
}

func decodeFailure(err error) *Error {
	return &Error{Kind: DecodeFailure, Msg: err.Error(), err: err}
}

// ConversionKind tells why a field could not be converted.
type ConversionKind int

const (
	InvalidType ConversionKind = iota
	InvalidValue
	MissingField
)

func (k ConversionKind) String() string {
	switch k {
	case InvalidType:
		return "invalid type"
	case InvalidValue:
		return "invalid value"
	case MissingField:
		return "missing field"
	default:
		return fmt.Sprintf("ConversionKind(%d)", int(k))
	}
}

// ConversionError is the error produced by the field converters.
type ConversionError struct {
	Kind  ConversionKind
	Field string
	Msg   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Field, e.Kind, e.Msg)
}

func invalidType(field, want string, got bencode.Value) error {
	return &ConversionError{
		Kind:  InvalidType,
		Field: field,
		Msg:   fmt.Sprintf("expected %s, found %s", want, bencode.TypeName(got)),
	}
}

func invalidValue(field, format string, args ...interface{}) error {
	return &ConversionError{Kind: InvalidValue, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func missingField(field string) error {
	return &ConversionError{Kind: MissingField, Field: field, Msg: "required key not present"}
}
