package rest

import (
	"strings"

	"github.com/andaru/pear/pearerr"
	"github.com/andaru/pear/tree"
)

// Record field names, as reported in pearerr.Error.Field.
const (
	FieldCategory           = "category"
	FieldPackage            = "package"
	FieldName               = "name"
	FieldChannel            = "channel"
	FieldLicense            = "license"
	FieldLicenseURI         = "license-uri"
	FieldSummary            = "summary"
	FieldDescription        = "description"
	FieldReleaseURI         = "release-uri"
	FieldParentPackage      = "parent-package"
	FieldDeprecationChannel = "deprecation-channel"
	FieldDeprecationPackage = "deprecation-package"
	FieldRelease            = "release"
	FieldVersion            = "version"
	FieldStability          = "stability"
	FieldStatus             = "status"
	FieldMaintainer         = "maintainer"
	FieldTime               = "time"
	FieldReleaseNotes       = "release-notes"
	FieldArchiveSize        = "archive-size"
	FieldArchiveLink        = "archive-link"
	FieldExtractedLink      = "extracted-link"
)

// attrXLinkHref is how the locator attribute is named in errors.
const attrXLinkHref = "xlink:href"

// field is a record field and the element tag it is read from.
type field struct{ name, tag string }

// slot holds one scalar field while its record is decoded. Which slots are
// set is the decoder state: a field may only be filled once the field the
// schema places before it has been.
type slot struct {
	field
	value string
	set   bool
}

func newSlot(name, tag string) *slot { return &slot{field: field{name: name, tag: tag}} }

// is reports whether el is the unprefixed element for this slot.
func (f field) is(el tree.Node) bool { return isTag(el, f.tag) }

func (f field) opts(i int, more ...pearerr.Option) []pearerr.Option {
	return append([]pearerr.Option{pearerr.WithElement(f.tag), pearerr.WithIndex(i)}, more...)
}

// claim checks el, found at child index i, may fill s: s must be empty and
// after, when non-nil, already set.
func (s *slot) claim(i int, after *slot) error {
	if s.set {
		return pearerr.DuplicateElement(s.name, s.opts(i)...)
	}
	if after != nil && !after.set {
		return pearerr.MissingElement(after.name, after.opts(i,
			pearerr.WithMessage("required before <"+s.tag+">"))...)
	}
	return nil
}

// fill reads the text of el, found at child index i, into s.
func (s *slot) fill(i int, el tree.Node, after *slot) error {
	if err := s.claim(i, after); err != nil {
		return err
	}
	text, err := tree.Text(el)
	if err != nil {
		return pearerr.MalformedElement(s.name, s.opts(i, pearerr.WithCause(err))...)
	}
	s.value, s.set = text, true
	return nil
}

// link reads the single xlink:href attribute of el into s.
func (s *slot) link(i int, el tree.Node) (string, error) {
	href, ok, err := tree.LinkAttr(el.Attrs())
	switch {
	case err != nil:
		return "", pearerr.DuplicateAttribute(s.name, attrXLinkHref, s.opts(i)...)
	case !ok:
		return "", pearerr.MissingAttribute(s.name, attrXLinkHref, s.opts(i)...)
	}
	return href, nil
}

// optional returns the slot value, or nil if the element never appeared.
func (s *slot) optional() *string {
	if !s.set {
		return nil
	}
	v := s.value
	return &v
}

// required returns the first of slots which is unset as a missing-element error.
func required(slots ...*slot) error {
	for _, s := range slots {
		if !s.set {
			return pearerr.MissingElement(s.name, pearerr.WithElement(s.tag))
		}
	}
	return nil
}

func isTag(el tree.Node, tag string) bool {
	return el.Prefix() == "" && strings.EqualFold(el.LocalName(), tag)
}

// eachElement calls fn for each element child of parent in document order,
// along with its zero-based child index. Text and comment children are
// skipped; any other kind of node is an unexpected child.
func eachElement(parent tree.Node, fn func(i int, el tree.Node) error) error {
	for i, child := range parent.Children() {
		switch child.Type() {
		case tree.TextNode, tree.CommentNode:
		case tree.ElementNode:
			if err := fn(i, child); err != nil {
				return err
			}
		default:
			return pearerr.UnexpectedChild(i)
		}
	}
	return nil
}

// findRoot returns the root element of doc named name.
func findRoot(doc tree.Node, name string) (tree.Node, error) {
	root, err := tree.FindRoot(doc, name)
	switch err {
	case nil:
		return root, nil
	case tree.ErrDuplicateRoot:
		return nil, pearerr.DuplicateRoot(name)
	default:
		return nil, pearerr.MissingRoot(name)
	}
}
