package tree

import (
	"io"

	"github.com/andaru/pear/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

// Parse parses the XML document read from r and returns its document node.
func Parse(r io.Reader) (Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse XML document")
	}
	if err := checkInstructions(doc); err != nil {
		return nil, errors.Wrap(err, "parse XML document")
	}
	return FromXMLQuery(doc), nil
}

// checkInstructions rejects processing instructions below the document
// level. xmlquery attaches the nodes following one inside an element to
// the wrong parent, so such a tree cannot be trusted.
func checkInstructions(n *xmlquery.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.DeclarationNode && n.Type != xmlquery.DocumentNode {
			return errors.Wrapf(ErrNestedInstruction, "<?%s?>", c.Data)
		}
		if err := checkInstructions(c); err != nil {
			return err
		}
	}
	return nil
}

// FromXMLQuery returns n as a Node. The xmlquery tree must not be modified
// while the returned Node is in use.
func FromXMLQuery(n *xmlquery.Node) Node { return xqNode{n: n} }

// AsXMLQuery returns the xmlquery node behind n, if there is one.
func AsXMLQuery(n Node) (*xmlquery.Node, bool) {
	x, ok := n.(xqNode)
	if !ok {
		return nil, false
	}
	return x.n, true
}

// Select returns the first node under top matching expr, or nil if there is
// none or top was not produced by this package.
func Select(top Node, expr *xpath.Expr) Node {
	n, ok := AsXMLQuery(top)
	if !ok {
		return nil
	}
	if found := xmlquery.QuerySelector(n, expr); found != nil {
		return xqNode{n: found}
	}
	return nil
}

type xqNode struct{ n *xmlquery.Node }

func (x xqNode) Type() NodeType {
	switch x.n.Type {
	case xmlquery.DocumentNode:
		return DocumentNode
	case xmlquery.ElementNode:
		return ElementNode
	case xmlquery.TextNode, xmlquery.CharDataNode:
		return TextNode
	case xmlquery.CommentNode:
		return CommentNode
	default:
		return OtherNode
	}
}

func (x xqNode) LocalName() string {
	if x.n.Type != xmlquery.ElementNode {
		return ""
	}
	return x.n.Data
}

func (x xqNode) Prefix() string { return x.n.Prefix }

// Attrs returns the element's attributes, less any xmlns declarations.
// Attributes written with an undeclared well-known prefix (xlink:) are
// resolved to that prefix's namespace.
func (x xqNode) Attrs() []Attr {
	if len(x.n.Attr) == 0 {
		return nil
	}
	attrs := make([]Attr, 0, len(x.n.Attr))
	for _, a := range x.n.Attr {
		if xmlutil.IsNamespaceDecl(a.Name) {
			continue
		}
		name := xmlutil.XMLName(a.Name.Local, a.NamespaceURI)
		attrs = append(attrs, Attr{Name: xmlutil.WellKnownPrefixes.Resolve(name), Value: a.Value})
	}
	return attrs
}

func (x xqNode) Data() string {
	switch x.n.Type {
	case xmlquery.TextNode, xmlquery.CharDataNode, xmlquery.CommentNode:
		return x.n.Data
	}
	return ""
}

func (x xqNode) Children() (children []Node) {
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, xqNode{n: c})
	}
	return children
}
