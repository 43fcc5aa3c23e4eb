/*
Package tree provides a read-only, ordered view over a parsed XML
document, and the accessors the PEAR REST decoders need from it.

Decoders are written against the Node interface: a node offering its
type (document, element, text, comment or other), its name, attributes
and ordered children. FromXMLQuery adapts a github.com/antchfx/xmlquery
parse tree to Node, and Parse reads a document straight into one.

Accessors

	FindRoot   finds the single unprefixed top-level element with a name
	Text       reads the single text child of an element ("" if empty)
	LinkAttr   reads the single xlink:href attribute of an element

Nodes returned by this package are never mutated, so a tree may be read by
any number of goroutines at once.
*/
package tree
