package config

import (
	"errors"

	"github.com/itsatony/go-cuserr"
)

const (
	ErrCodeConfig = "FORMEXT_CONFIG"

	ErrMsgUnsupportedFormat = "unsupported config format"
	ErrMsgEmptyDocument     = "config document is empty"
	ErrMsgDecodeFailed      = "config document could not be decoded"
	ErrMsgInvalidValue      = "invalid config value"
	ErrMsgReadFailed        = "config document could not be read"
)

// Metadata keys attached to config errors.
const (
	MetaKeySource = "source"
	MetaKeyField  = "field"
	MetaKeyValue  = "value"
)

// ErrInvalidConfig is matched by errors.Is for every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

func newInvalidValueError(source, field, value string) error {
	return cuserr.WrapStdError(ErrInvalidConfig, ErrCodeConfig, ErrMsgInvalidValue).
		WithMetadata(MetaKeySource, source).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyValue, value)
}

func newFormatError(source string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnsupportedFormat).
		WithMetadata(MetaKeySource, source)
}

func newEmptyError(source string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgEmptyDocument).
		WithMetadata(MetaKeySource, source)
}

func newDecodeError(source string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgDecodeFailed).
		WithMetadata(MetaKeySource, source)
}

func newReadError(source string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgReadFailed).
		WithMetadata(MetaKeySource, source)
}
