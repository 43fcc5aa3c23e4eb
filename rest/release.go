package rest

import (
	"strconv"

	"github.com/andaru/pear/pearerr"
	"github.com/andaru/pear/tree"
)

// Root element names.
const (
	RootReleaseListing = "a"
	RootRelease        = "r"
)

// ReleaseListing lists every release of a package
// (/rest/r/<package>/allreleases.xml), newest first as served.
type ReleaseListing struct {
	Package string         `json:"package" yaml:"package"`
	Channel string         `json:"channel" yaml:"channel"`
	Items   []ShortRelease `json:"items" yaml:"items"`
}

// ShortRelease is one <r> block of a release listing.
type ShortRelease struct {
	Version   string `json:"version" yaml:"version"`
	Stability string `json:"stability" yaml:"stability"`
}

// Release describes a single release (/rest/r/<package>/<version>.xml).
type Release struct {
	Package       ReleasePackage `json:"package" yaml:"package"`
	Channel       string         `json:"channel" yaml:"channel"`
	Version       string         `json:"version" yaml:"version"`
	Status        string         `json:"status" yaml:"status"`
	License       string         `json:"license" yaml:"license"`
	Maintainer    string         `json:"maintainer" yaml:"maintainer"`
	Summary       string         `json:"summary" yaml:"summary"`
	Description   string         `json:"description" yaml:"description"`
	Time          string         `json:"time" yaml:"time"`
	ReleaseNotes  string         `json:"release_notes" yaml:"release_notes"`
	Archive       ReleaseArchive `json:"archive" yaml:"archive"`
	ExtractedLink string         `json:"extracted_link" yaml:"extracted_link"`
}

// ReleasePackage is the package a release belongs to and its info link.
type ReleasePackage struct {
	Name string `json:"name" yaml:"name"`
	Link string `json:"link" yaml:"link"`
}

// ReleaseArchive is the downloadable archive of a release. Link has no
// extension; the server appends .tgz or .tar.
type ReleaseArchive struct {
	Size uint64 `json:"size" yaml:"size"`
	Link string `json:"link" yaml:"link"`
}

// DecodeReleaseListing decodes the <a> root element of a release listing:
// p, c and then any number of <r> blocks.
func DecodeReleaseListing(root tree.Node) (ReleaseListing, error) {
	pkg := newSlot(FieldPackage, "p")
	channel := newSlot(FieldChannel, "c")
	releases := field{name: FieldRelease, tag: "r"}
	list := ReleaseListing{Items: []ShortRelease{}}

	err := eachElement(root, func(i int, el tree.Node) error {
		switch {
		case pkg.is(el):
			return pkg.fill(i, el, nil)
		case channel.is(el):
			return channel.fill(i, el, pkg)
		case releases.is(el):
			if !channel.set {
				return pearerr.MissingElement(channel.name, channel.opts(i)...)
			}
			rel, err := DecodeShortRelease(el)
			if err != nil {
				return pearerr.BadElement(releases.name, i, err, pearerr.WithElement(releases.tag))
			}
			list.Items = append(list.Items, rel)
			return nil
		}
		return pearerr.UnexpectedChild(i, pearerr.WithElement(el.LocalName()))
	})
	if err != nil {
		return ReleaseListing{}, err
	}
	if err := required(pkg, channel); err != nil {
		return ReleaseListing{}, err
	}
	list.Package, list.Channel = pkg.value, channel.value
	return list, nil
}

// DecodeShortRelease decodes one <r> block of a release listing.
func DecodeShortRelease(block tree.Node) (ShortRelease, error) {
	version := newSlot(FieldVersion, "v")
	stability := newSlot(FieldStability, "s")

	err := eachElement(block, func(i int, el tree.Node) error {
		switch {
		case version.is(el):
			return version.fill(i, el, nil)
		case stability.is(el):
			return stability.fill(i, el, version)
		}
		return pearerr.UnexpectedChild(i, pearerr.WithElement(el.LocalName()))
	})
	if err != nil {
		return ShortRelease{}, err
	}
	if err := required(version, stability); err != nil {
		return ShortRelease{}, err
	}
	return ShortRelease{Version: version.value, Stability: stability.value}, nil
}

// DecodeRelease decodes the <r> root element of a release document.
//
// All thirteen elements are mandatory and ordered
// p, c, v, st, l, m, s, d, da, n, f, g, x. Both <p> and <x> must carry
// exactly one xlink:href attribute; <x> has no text of its own.
func DecodeRelease(root tree.Node) (Release, error) {
	var (
		pkg         = newSlot(FieldPackage, "p")
		channel     = newSlot(FieldChannel, "c")
		version     = newSlot(FieldVersion, "v")
		status      = newSlot(FieldStatus, "st")
		license     = newSlot(FieldLicense, "l")
		maintainer  = newSlot(FieldMaintainer, "m")
		summary     = newSlot(FieldSummary, "s")
		desc        = newSlot(FieldDescription, "d")
		date        = newSlot(FieldTime, "da")
		notes       = newSlot(FieldReleaseNotes, "n")
		size        = newSlot(FieldArchiveSize, "f")
		archive     = newSlot(FieldArchiveLink, "g")
		extracted   = newSlot(FieldExtractedLink, "x")
		packageLink string
		archiveSize uint64
	)

	err := eachElement(root, func(i int, el tree.Node) error {
		switch {
		case pkg.is(el):
			if err := pkg.fill(i, el, nil); err != nil {
				return err
			}
			href, err := pkg.link(i, el)
			packageLink = href
			return err
		case channel.is(el):
			return channel.fill(i, el, pkg)
		case version.is(el):
			return version.fill(i, el, channel)
		case status.is(el):
			return status.fill(i, el, version)
		case license.is(el):
			return license.fill(i, el, status)
		case maintainer.is(el):
			return maintainer.fill(i, el, license)
		case summary.is(el):
			return summary.fill(i, el, maintainer)
		case desc.is(el):
			return desc.fill(i, el, summary)
		case date.is(el):
			return date.fill(i, el, desc)
		case notes.is(el):
			return notes.fill(i, el, date)
		case size.is(el):
			if err := size.fill(i, el, notes); err != nil {
				return err
			}
			n, err := strconv.ParseUint(size.value, 10, 64)
			if err != nil {
				return pearerr.InvalidValue(size.name, size.opts(i,
					pearerr.WithMessage("archive size must be an unsigned integer"),
					pearerr.WithCause(err))...)
			}
			archiveSize = n
			return nil
		case archive.is(el):
			return archive.fill(i, el, size)
		case extracted.is(el):
			if err := extracted.claim(i, archive); err != nil {
				return err
			}
			href, err := extracted.link(i, el)
			if err != nil {
				return err
			}
			extracted.value, extracted.set = href, true
			return nil
		}
		return pearerr.UnexpectedChild(i, pearerr.WithElement(el.LocalName()))
	})
	if err != nil {
		return Release{}, err
	}
	err = required(pkg, channel, version, status, license, maintainer, summary,
		desc, date, notes, size, archive, extracted)
	if err != nil {
		return Release{}, err
	}

	return Release{
		Package:       ReleasePackage{Name: pkg.value, Link: packageLink},
		Channel:       channel.value,
		Version:       version.value,
		Status:        status.value,
		License:       license.value,
		Maintainer:    maintainer.value,
		Summary:       summary.value,
		Description:   desc.value,
		Time:          date.value,
		ReleaseNotes:  notes.value,
		Archive:       ReleaseArchive{Size: archiveSize, Link: archive.value},
		ExtractedLink: extracted.value,
	}, nil
}
