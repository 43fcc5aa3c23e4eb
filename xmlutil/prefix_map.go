package xmlutil

import "encoding/xml"

// PrefixMap is a prefix to namespace URI map
type PrefixMap map[string]string

// WellKnownPrefixes holds the prefixes PEAR REST servers use without always
// declaring them.
var WellKnownPrefixes = PrefixMap{"xlink": NamespaceXLink}

// Resolve returns n with its Space replaced by the namespace URI bound to it,
// if Space is a prefix known to m. Names already carrying a namespace URI, or
// an unknown prefix, are returned unchanged.
func (m PrefixMap) Resolve(n xml.Name) xml.Name {
	if uri, ok := m[n.Space]; ok && n.Space != "" {
		n.Space = uri
	}
	return n
}
