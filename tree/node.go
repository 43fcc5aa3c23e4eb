package tree

import (
	"encoding/xml"
	"strings"

	"github.com/andaru/pear/xmlutil"
	"github.com/pkg/errors"
)

// NodeType is the type of a Node.
type NodeType int

const (
	// OtherNode is any node the decoders have no use for, such as
	// declarations, processing instructions and directives.
	OtherNode NodeType = iota
	// DocumentNode is the root of a parsed document.
	DocumentNode
	// ElementNode is an element, for example <c>.
	ElementNode
	// TextNode is character data, including CDATA sections.
	TextNode
	// CommentNode is a comment.
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "document"
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	default:
		return "other"
	}
}

// Attr is an element attribute. Name.Space holds the namespace URI.
type Attr struct {
	Name  xml.Name
	Value string
}

// Node is a node of an ordered document tree.
type Node interface {
	// Type returns the node type.
	Type() NodeType
	// LocalName returns the unprefixed element name; empty for non-elements.
	LocalName() string
	// Prefix returns the namespace prefix the element was written with, if any.
	Prefix() string
	// Attrs returns the element attributes in document order.
	Attrs() []Attr
	// Data returns the character data of text and comment nodes.
	Data() string
	// Children returns the child nodes in document order.
	Children() []Node
}

var (
	// ErrMixedText is returned by Text for elements with more than one text child.
	ErrMixedText = errors.New("element has more than one text node")
	// ErrDuplicateAttr is returned by LinkAttr when the attribute appears twice.
	ErrDuplicateAttr = errors.New("duplicate attribute")
	// ErrNotFound is returned by FindRoot when no element matches.
	ErrNotFound = errors.New("root element not found")
	// ErrDuplicateRoot is returned by FindRoot when several elements match.
	ErrDuplicateRoot = errors.New("duplicate root element")
	// ErrNestedInstruction is returned by Parse for a processing instruction
	// inside an element.
	ErrNestedInstruction = errors.New("processing instruction inside an element")
)

// FindRoot returns the direct child element of doc with no prefix whose
// local name equals name under case folding.
func FindRoot(doc Node, name string) (Node, error) {
	var root Node
	for _, child := range doc.Children() {
		if child.Type() != ElementNode || child.Prefix() != "" || !strings.EqualFold(child.LocalName(), name) {
			continue
		}
		if root != nil {
			return nil, ErrDuplicateRoot
		}
		root = child
	}
	if root == nil {
		return nil, ErrNotFound
	}
	return root, nil
}

// Text returns the content of the single text child of el. An element
// with no text child reads as the empty string.
func Text(el Node) (string, error) {
	var (
		text  string
		found bool
	)
	for _, child := range el.Children() {
		if child.Type() != TextNode {
			continue
		}
		if found {
			return "", ErrMixedText
		}
		text, found = child.Data(), true
	}
	return text, nil
}

// Attribute returns the value of the attribute named name. ok is false
// when it is absent; more than one occurrence is ErrDuplicateAttr.
func Attribute(attrs []Attr, name xml.Name) (value string, ok bool, err error) {
	for _, attr := range attrs {
		if attr.Name != name {
			continue
		}
		if ok {
			return "", false, ErrDuplicateAttr
		}
		value, ok = attr.Value, true
	}
	return value, ok, nil
}

// LinkAttr returns the value of the xlink:href locator attribute.
func LinkAttr(attrs []Attr) (value string, ok bool, err error) {
	return Attribute(attrs, xmlutil.XLinkHref)
}
