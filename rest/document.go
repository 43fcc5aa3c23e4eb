package rest

import (
	"io"
	"strings"

	"github.com/andaru/pear/pearerr"
	"github.com/andaru/pear/tree"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Namespaces the PEAR REST documents are served in.
const (
	NamespacePackageListing = "http://pear.php.net/dtd/rest.allpackages"
	NamespacePackageInfo    = "http://pear.php.net/dtd/rest.package"
	NamespaceReleaseListing = "http://pear.php.net/dtd/rest.allreleases"
	NamespaceRelease        = "http://pear.php.net/dtd/rest.release"
)

// Kind is the kind of PEAR REST document.
type Kind int

// Document kinds.
const (
	KindUnknown Kind = iota
	KindPackageListing
	KindPackageInfo
	KindReleaseListing
	KindRelease
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindPackageListing: "packages",
	KindPackageInfo:    "package",
	KindReleaseListing: "releases",
	KindRelease:        "release",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// Root returns the root element name of documents of this kind.
func (k Kind) Root() string {
	switch k {
	case KindPackageListing:
		return RootPackageListing
	case KindPackageInfo:
		return RootPackageInfo
	case KindReleaseListing:
		return RootReleaseListing
	case KindRelease:
		return RootRelease
	}
	return ""
}

// ParseKind returns the Kind named s, as printed by Kind.String. "" and
// "auto" give KindUnknown.
func ParseKind(s string) (Kind, error) {
	switch s = strings.ToLower(s); s {
	case "", "auto":
		return KindUnknown, nil
	}
	for k, name := range kindNames {
		if k != KindUnknown && name == s {
			return k, nil
		}
	}
	return KindUnknown, errors.Errorf("unknown document kind %q", s)
}

var kindQueries = []struct {
	kind Kind
	expr *xpath.Expr
}{
	{KindPackageListing, xpath.MustCompile("/*[namespace-uri()='" + NamespacePackageListing + "']")},
	{KindPackageInfo, xpath.MustCompile("/*[namespace-uri()='" + NamespacePackageInfo + "']")},
	{KindReleaseListing, xpath.MustCompile("/*[namespace-uri()='" + NamespaceReleaseListing + "']")},
	{KindRelease, xpath.MustCompile("/*[namespace-uri()='" + NamespaceRelease + "']")},
}

// Detect returns the kind of document doc holds. The namespace of the root
// element decides when the tree came from tree.Parse; otherwise, or when
// the root is in no PEAR REST namespace, the root element name does. The
// two listings share the root <a> and are told apart by their first
// element: <c> in a package listing, <p> in a release listing.
func Detect(doc tree.Node) Kind {
	for _, q := range kindQueries {
		if tree.Select(doc, q.expr) != nil {
			return q.kind
		}
	}

	for _, child := range doc.Children() {
		if child.Type() != tree.ElementNode || child.Prefix() != "" {
			continue
		}
		switch {
		case isTag(child, RootPackageInfo):
			return KindPackageInfo
		case isTag(child, RootRelease):
			return KindRelease
		case isTag(child, RootPackageListing):
			return detectListing(child)
		}
	}
	return KindUnknown
}

func detectListing(root tree.Node) Kind {
	for _, child := range root.Children() {
		if child.Type() != tree.ElementNode {
			continue
		}
		switch {
		case isTag(child, "c"):
			return KindPackageListing
		case isTag(child, "p"):
			return KindReleaseListing
		}
		return KindUnknown
	}
	return KindUnknown
}

// Decode decodes the document doc as kind, or as the kind Detect reports
// when kind is KindUnknown. The result is one of PackageListing,
// PackageInfo, ReleaseListing or Release.
func Decode(doc tree.Node, kind Kind) (interface{}, error) {
	if kind == KindUnknown {
		if kind = Detect(doc); kind == KindUnknown {
			return nil, pearerr.UnknownDocument()
		}
	}
	log := logrus.WithFields(logrus.Fields{"kind": kind, "root": kind.Root()})

	root, err := findRoot(doc, kind.Root())
	if err != nil {
		return nil, err
	}

	var v interface{}
	switch kind {
	case KindPackageListing:
		list, derr := DecodePackageListing(root)
		log, v, err = log.WithField("items", len(list.Items)), list, derr
	case KindPackageInfo:
		v, err = DecodePackageInfo(root)
	case KindReleaseListing:
		list, derr := DecodeReleaseListing(root)
		log, v, err = log.WithField("items", len(list.Items)), list, derr
	case KindRelease:
		v, err = DecodeRelease(root)
	default:
		return nil, pearerr.UnknownDocument(pearerr.WithMessage(kind.String()))
	}
	if err != nil {
		log.WithError(err).Debug("decode failed")
		return nil, err
	}
	log.Debug("decoded")
	return v, nil
}

// Read parses the XML document read from r and decodes it as Decode does.
func Read(r io.Reader, kind Kind) (interface{}, error) {
	doc, err := tree.Parse(r)
	if err != nil {
		return nil, err
	}
	return Decode(doc, kind)
}

func readRoot(r io.Reader, name string) (tree.Node, error) {
	doc, err := tree.Parse(r)
	if err != nil {
		return nil, err
	}
	return findRoot(doc, name)
}

// ReadPackageListing reads and decodes a package listing document.
func ReadPackageListing(r io.Reader) (PackageListing, error) {
	root, err := readRoot(r, RootPackageListing)
	if err != nil {
		return PackageListing{}, err
	}
	return DecodePackageListing(root)
}

// ReadPackageInfo reads and decodes a package info document.
func ReadPackageInfo(r io.Reader) (PackageInfo, error) {
	root, err := readRoot(r, RootPackageInfo)
	if err != nil {
		return PackageInfo{}, err
	}
	return DecodePackageInfo(root)
}

// ReadReleaseListing reads and decodes a release listing document.
func ReadReleaseListing(r io.Reader) (ReleaseListing, error) {
	root, err := readRoot(r, RootReleaseListing)
	if err != nil {
		return ReleaseListing{}, err
	}
	return DecodeReleaseListing(root)
}

// ReadRelease reads and decodes a release document.
func ReadRelease(r io.Reader) (Release, error) {
	root, err := readRoot(r, RootRelease)
	if err != nil {
		return Release{}, err
	}
	return DecodeRelease(root)
}
