package pearerr

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// Type is the broad category of a decoding error.
type Type int

const (
	// TypeStructural is an unexpected node or child element
	TypeStructural Type = iota
	// TypeMissing is a mandatory element or attribute which never appeared
	TypeMissing
	// TypeDuplicate is an element or attribute which appeared more than once
	TypeDuplicate
	// TypeMalformed is an element whose content or attributes failed to parse
	TypeMalformed
	// TypeDocument is a document level error, such as a missing root element
	TypeDocument
)

func (t Type) String() string {
	switch t {
	case TypeStructural:
		return "structural"
	case TypeMissing:
		return "missing"
	case TypeDuplicate:
		return "duplicate"
	case TypeMalformed:
		return "malformed"
	case TypeDocument:
		return "document"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t *Type) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "structural":
		*t = TypeStructural
	case "missing":
		*t = TypeMissing
	case "duplicate":
		*t = TypeDuplicate
	case "malformed":
		*t = TypeMalformed
	case "document":
		*t = TypeDocument
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Error tags
const (
	TagUnexpectedChild    = "unexpected-child"
	TagMissingElement     = "missing-element"
	TagDuplicateElement   = "duplicate-element"
	TagMalformedElement   = "malformed-element"
	TagMissingAttribute   = "missing-attribute"
	TagDuplicateAttribute = "duplicate-attribute"
	TagInvalidValue       = "invalid-value"
	TagBadElement         = "bad-element"
	TagMissingRoot        = "missing-root"
	TagDuplicateRoot      = "duplicate-root"
	TagUnknownDocument    = "unknown-document"
)

// NoIndex is the Index of errors not tied to a child position.
const NoIndex = -1

// Error is a PEAR REST document decoding error.
//
// Field names the record field which failed (e.g. "category"), Element
// the XML tag it is read from (e.g. "c"). Index is the zero-based position
// of the offending child within its parent element, or NoIndex.
type Error struct {
	Type      Type   `json:"type"`
	Tag       string `json:"tag"`
	Field     string `json:"field,omitempty"`
	Element   string `json:"element,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Index     int    `json:"index"`
	Message   string `json:"message,omitempty"`
	Err       error  `json:"-"`
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s error tag:%s", e.Type, e.Tag)
	if e.Field != "" {
		s += " field:" + e.Field
	}
	if e.Element != "" {
		s += " element:<" + e.Element + ">"
	}
	if e.Attribute != "" {
		s += " attribute:" + e.Attribute
	}
	if e.Index != NoIndex {
		s += " index:" + strconv.Itoa(e.Index)
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the nested cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same tag. Field and
// Index are compared only when set on target, so a bare constructor such
// as MissingElement("category") matches regardless of position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Tag != e.Tag {
		return false
	}
	if t.Field != "" && t.Field != e.Field {
		return false
	}
	return t.Index == NoIndex || t.Index == e.Index
}

func newError(typ Type, tag, field string, opts []Option) *Error {
	e := &Error{Type: typ, Tag: tag, Field: field, Index: NoIndex}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UnexpectedChild is a child node of an unexpected type or name at index.
func UnexpectedChild(index int, opts ...Option) *Error {
	return newError(TypeStructural, TagUnexpectedChild, "", append([]Option{WithIndex(index)}, opts...))
}

func MissingElement(field string, opts ...Option) *Error {
	return newError(TypeMissing, TagMissingElement, field, opts)
}

func DuplicateElement(field string, opts ...Option) *Error {
	return newError(TypeDuplicate, TagDuplicateElement, field, opts)
}

// MalformedElement is an element whose text content could not be read.
func MalformedElement(field string, opts ...Option) *Error {
	return newError(TypeMalformed, TagMalformedElement, field, opts)
}

func MissingAttribute(field, attributeName string, opts ...Option) *Error {
	return newError(TypeMissing, TagMissingAttribute, field, append([]Option{WithAttribute(attributeName)}, opts...))
}

func DuplicateAttribute(field, attributeName string, opts ...Option) *Error {
	return newError(TypeDuplicate, TagDuplicateAttribute, field, append([]Option{WithAttribute(attributeName)}, opts...))
}

// InvalidValue is an element whose text does not parse as the field's type.
func InvalidValue(field string, opts ...Option) *Error {
	return newError(TypeMalformed, TagInvalidValue, field, opts)
}

// BadElement wraps the error of a nested record decoder.
func BadElement(field string, index int, cause error, opts ...Option) *Error {
	return newError(TypeStructural, TagBadElement, field, append([]Option{WithIndex(index), WithCause(cause)}, opts...))
}

func MissingRoot(element string, opts ...Option) *Error {
	return newError(TypeDocument, TagMissingRoot, "", append([]Option{WithElement(element)}, opts...))
}

func DuplicateRoot(element string, opts ...Option) *Error {
	return newError(TypeDocument, TagDuplicateRoot, "", append([]Option{WithElement(element)}, opts...))
}

// UnknownDocument is a document not matching any known PEAR REST schema.
func UnknownDocument(opts ...Option) *Error {
	return newError(TypeDocument, TagUnknownDocument, "", opts)
}
