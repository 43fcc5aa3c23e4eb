package pearerr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		error string
		json  string
	}{
		{
			err:   UnexpectedChild(3),
			error: "structural error tag:unexpected-child index:3",
			json:  `{"type":"structural","tag":"unexpected-child","index":3}`,
		},

		{
			err:   MissingElement("category", WithElement("c")),
			error: "missing error tag:missing-element field:category element:<c>",
			json:  `{"type":"missing","tag":"missing-element","field":"category","element":"c","index":-1}`,
		},

		{
			err:   DuplicateElement("category", WithElement("c"), WithIndex(5)),
			error: "duplicate error tag:duplicate-element field:category element:<c> index:5",
			json:  `{"type":"duplicate","tag":"duplicate-element","field":"category","element":"c","index":5}`,
		},

		{
			err:   MissingAttribute("package", "xlink:href", WithElement("p"), WithIndex(1)),
			error: "missing error tag:missing-attribute field:package element:<p> attribute:xlink:href index:1",
			json:  `{"type":"missing","tag":"missing-attribute","field":"package","element":"p","attribute":"xlink:href","index":1}`,
		},

		{
			err:   InvalidValue("archive-size", WithMessage(`"12xyz"`)),
			error: `malformed error tag:invalid-value field:archive-size "12xyz"`,
			json:  `{"type":"malformed","tag":"invalid-value","field":"archive-size","index":-1,"message":"\"12xyz\""}`,
		},

		{
			err:   BadElement("release", 7, MissingElement("stability")),
			error: "structural error tag:bad-element field:release index:7: missing error tag:missing-element field:stability",
			json:  `{"type":"structural","tag":"bad-element","field":"release","index":7}`,
		},

		{
			err:   MissingRoot("a"),
			error: "document error tag:missing-root element:<a>",
			json:  `{"type":"document","tag":"missing-root","element":"a","index":-1}`,
		},
	} {
		t.Run(tc.error, func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.error, tc.err.Error())
			b, err := json.Marshal(tc.err)
			if check.NoError(err) {
				check.Equal(tc.json, string(b))
			}
			// the JSON form must read back into an identical error, less the cause
			ev := Error{}
			if check.NoError(json.Unmarshal(b, &ev)) {
				want := *tc.err
				want.Err = nil
				check.Equal(want, ev)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	for i, tc := range []struct {
		err    error
		target error
		want   bool
	}{
		{err: MissingElement("category"), target: MissingElement("category"), want: true},
		{err: MissingElement("category", WithIndex(2)), target: MissingElement("category"), want: true},
		{err: MissingElement("category"), target: MissingElement("name")},
		{err: MissingElement("category"), target: DuplicateElement("category")},
		{err: MissingElement("category"), target: &Error{Tag: TagMissingElement, Index: NoIndex}, want: true},
		{err: DuplicateElement("category", WithIndex(4)), target: DuplicateElement("category", WithIndex(4)), want: true},
		{err: DuplicateElement("category", WithIndex(4)), target: DuplicateElement("category", WithIndex(3))},
		{err: BadElement("release", 2, MissingElement("stability")), target: MissingElement("stability"), want: true},
		{err: BadElement("release", 2, MissingElement("stability")), target: BadElement("release", 2, nil), want: true},
		{err: fmt.Errorf("wrapped: %w", InvalidValue("archive-size")), target: InvalidValue("archive-size"), want: true},
		{err: errors.New("other"), target: MissingElement("category")},
		{err: MissingElement("category"), target: errors.New("other")},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.New(t).Equal(tc.want, errors.Is(tc.err, tc.target))
		})
	}
}

func TestErrorAs(t *testing.T) {
	check := assert.New(t)
	var err error = BadElement("release", 2, MissingElement("stability", WithIndex(1)))
	var e *Error
	if check.True(errors.As(err, &e)) {
		check.Equal(TagBadElement, e.Tag)
		check.Equal(2, e.Index)
	}
	if check.True(errors.As(errors.Unwrap(err), &e)) {
		check.Equal(TagMissingElement, e.Tag)
		check.Equal("stability", e.Field)
	}
}

func TestType(t *testing.T) {
	for _, typ := range []Type{TypeStructural, TypeMissing, TypeDuplicate, TypeMalformed, TypeDocument} {
		t.Run(typ.String(), func(t *testing.T) {
			check := assert.New(t)
			b, err := typ.MarshalText()
			check.NoError(err)
			var got Type
			check.NoError(got.UnmarshalText(b))
			check.Equal(typ, got)
		})
	}
	var bad Type
	assert.New(t).Error(bad.UnmarshalText([]byte("bogus")))
	assert.New(t).Equal("Type(42)", Type(42).String())
}
