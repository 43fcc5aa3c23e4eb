package rest

import (
	"github.com/andaru/pear/pearerr"
	"github.com/andaru/pear/tree"
	"github.com/andaru/pear/xmlutil"
)

// Root element names.
const (
	RootPackageListing = "a"
	RootPackageInfo    = "p"
)

// PackageListing is the list of every package a channel serves
// (/rest/p/packages.xml).
type PackageListing struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}

// PackageInfo describes one package (/rest/p/<package>/info.xml).
type PackageInfo struct {
	Name          string       `json:"name" yaml:"name"`
	Channel       string       `json:"channel" yaml:"channel"`
	Category      string       `json:"category" yaml:"category"`
	License       string       `json:"license" yaml:"license"`
	LicenseURI    *string      `json:"license_uri,omitempty" yaml:"license_uri,omitempty"`
	Summary       string       `json:"summary" yaml:"summary"`
	Description   string       `json:"description" yaml:"description"`
	ReleaseURI    string       `json:"release_uri" yaml:"release_uri"`
	ParentPackage *string      `json:"parent_package,omitempty" yaml:"parent_package,omitempty"`
	Deprecation   *Deprecation `json:"deprecation,omitempty" yaml:"deprecation,omitempty"`
}

// Deprecation names the package that replaces a deprecated one.
type Deprecation struct {
	RecommendedChannel string `json:"recommended_channel" yaml:"recommended_channel"`
	RecommendedPackage string `json:"recommended_package" yaml:"recommended_package"`
}

// DecodePackageListing decodes the <a> root element of a package listing.
// The category must come first; package names follow in document order.
func DecodePackageListing(root tree.Node) (PackageListing, error) {
	category := newSlot(FieldCategory, "c")
	items := field{name: FieldPackage, tag: "p"}
	list := PackageListing{Items: []string{}}

	err := eachElement(root, func(i int, el tree.Node) error {
		switch {
		case category.is(el):
			return category.fill(i, el, nil)
		case items.is(el):
			if !category.set {
				return pearerr.MissingElement(category.name, category.opts(i)...)
			}
			name, err := tree.Text(el)
			if err != nil {
				return pearerr.MalformedElement(items.name, items.opts(i, pearerr.WithCause(err))...)
			}
			list.Items = append(list.Items, name)
			return nil
		}
		return pearerr.UnexpectedChild(i, pearerr.WithElement(el.LocalName()))
	})
	if err != nil {
		return PackageListing{}, err
	}
	if err := required(category); err != nil {
		return PackageListing{}, err
	}
	list.Category = category.value
	return list, nil
}

// DecodePackageInfo decodes the <p> root element of a package info document.
//
// Elements must appear in the order n, c, ca, l, lu, s, d, r, pa, dc, dp.
// lu and pa are optional. dc and dp are optional together: a document
// carrying one without the other is rejected.
func DecodePackageInfo(root tree.Node) (PackageInfo, error) {
	var (
		name       = newSlot(FieldName, "n")
		channel    = newSlot(FieldChannel, "c")
		category   = newSlot(FieldCategory, "ca")
		license    = newSlot(FieldLicense, "l")
		licenseURI = newSlot(FieldLicenseURI, "lu")
		summary    = newSlot(FieldSummary, "s")
		desc       = newSlot(FieldDescription, "d")
		releaseURI = newSlot(FieldReleaseURI, "r")
		parent     = newSlot(FieldParentPackage, "pa")
		depChannel = newSlot(FieldDeprecationChannel, "dc")
		depPackage = newSlot(FieldDeprecationPackage, "dp")
	)

	err := eachElement(root, func(i int, el tree.Node) error {
		switch {
		case name.is(el):
			return name.fill(i, el, nil)
		case channel.is(el):
			return channel.fill(i, el, name)
		case category.is(el):
			return category.fill(i, el, channel)
		case license.is(el):
			return license.fill(i, el, category)
		case licenseURI.is(el):
			return licenseURI.fill(i, el, license)
		case summary.is(el):
			return summary.fill(i, el, license)
		case desc.is(el):
			return desc.fill(i, el, summary)
		case releaseURI.is(el):
			if err := releaseURI.fill(i, el, desc); err != nil {
				return err
			}
			// Channels commonly serve <r xlink:href="/rest/r/pkg"/> with no text.
			if releaseURI.value != "" {
				return nil
			}
			for _, attr := range el.Attrs() {
				if attr.Name == xmlutil.XLinkHref {
					releaseURI.value = attr.Value
					break
				}
			}
			return nil
		case parent.is(el):
			return parent.fill(i, el, releaseURI)
		case depChannel.is(el):
			return depChannel.fill(i, el, releaseURI)
		case depPackage.is(el):
			return depPackage.fill(i, el, depChannel)
		}
		return pearerr.UnexpectedChild(i, pearerr.WithElement(el.LocalName()))
	})
	if err != nil {
		return PackageInfo{}, err
	}
	if err := required(name, channel, category, license, summary, desc, releaseURI); err != nil {
		return PackageInfo{}, err
	}
	if depChannel.set {
		if err := required(depPackage); err != nil {
			return PackageInfo{}, err
		}
	}

	info := PackageInfo{
		Name:          name.value,
		Channel:       channel.value,
		Category:      category.value,
		License:       license.value,
		LicenseURI:    licenseURI.optional(),
		Summary:       summary.value,
		Description:   desc.value,
		ReleaseURI:    releaseURI.value,
		ParentPackage: parent.optional(),
	}
	if depChannel.set {
		info.Deprecation = &Deprecation{
			RecommendedChannel: depChannel.value,
			RecommendedPackage: depPackage.value,
		}
	}
	return info, nil
}
