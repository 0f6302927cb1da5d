package selectize

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

const (
	ErrCodeSelectize = "FORMEXT_SELECTIZE"

	ErrMsgInvalidOptionShape = "collection items must be scalars, records or {text, value} pairs"
	ErrMsgInvalidCollection  = "collection option must be a list or an attribute name"
	ErrMsgInvalidOption      = "invalid selectize option"
	ErrMsgRecordSource       = "related records could not be loaded"
)

// Metadata keys attached to selectize errors.
const (
	MetaKeyIndex     = "index"
	MetaKeyOption    = "option"
	MetaKeyAttribute = "attribute"
)

// ErrInvalidOptionShape reports a pair-shaped collection item missing its
// text or value key. It signals a caller configuration bug.
var ErrInvalidOptionShape = errors.New("selectize: invalid option shape")

// ErrInvalidConfig reports a per-field option with an unusable type.
var ErrInvalidConfig = errors.New("selectize: invalid configuration")

func newInvalidOptionShapeError(index int) error {
	return cuserr.WrapStdError(ErrInvalidOptionShape, ErrCodeSelectize, ErrMsgInvalidOptionShape).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index))
}

func newInvalidCollectionError(attribute string) error {
	return cuserr.WrapStdError(ErrInvalidConfig, ErrCodeSelectize, ErrMsgInvalidCollection).
		WithMetadata(MetaKeyAttribute, attribute)
}

func newInvalidOptionError(attribute, option string) error {
	return cuserr.WrapStdError(ErrInvalidConfig, ErrCodeSelectize, ErrMsgInvalidOption).
		WithMetadata(MetaKeyAttribute, attribute).
		WithMetadata(MetaKeyOption, option)
}

func newRecordSourceError(attribute string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSelectize, ErrMsgRecordSource).
		WithMetadata(MetaKeyAttribute, attribute)
}
