package xmlutil

import "encoding/xml"

const (
	// NamespaceXLink is the XLink namespace URI, used by PEAR REST documents
	// for the href attributes on package and extracted release links.
	NamespaceXLink = "http://www.w3.org/1999/xlink"
	// NamespaceXMLNS is the namespace used by encoding/xml for xmlns:<prefix>
	// declaration attributes.
	NamespaceXMLNS = "xmlns"
)

// XLinkHref is the name of the xlink:href locator attribute.
var XLinkHref = XMLName("href", NamespaceXLink)

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// IsNamespaceDecl reports whether the attribute name is an xmlns or
// xmlns:<prefix> namespace declaration rather than a document attribute.
func IsNamespaceDecl(n xml.Name) bool {
	return n.Space == NamespaceXMLNS || (n.Space == "" && n.Local == "xmlns")
}
