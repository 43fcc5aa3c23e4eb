/*
Package rest decodes the XML documents a PEAR channel server publishes
under its REST base URL:

	/rest/p/packages.xml              PackageListing  (root <a>)
	/rest/p/<package>/info.xml        PackageInfo     (root <p>)
	/rest/r/<package>/allreleases.xml ReleaseListing  (root <a>)
	/rest/r/<package>/<version>.xml   Release         (root <r>)

Each Decode function takes the root element of its document and walks its
children in document order. The PEAR schemas define each record as a fixed
sequence of elements, so a decoder accepts an element only once the one
before it in that sequence has been seen, rejects repeats and unknown
elements, and fails if a mandatory element never appears. Whitespace and
comments between elements are ignored.

Every failure is a *pearerr.Error naming the offending field and, where
there is one, the child index it was found at:

	info, err := rest.ReadPackageInfo(f)
	if errors.Is(err, pearerr.MissingElement(rest.FieldCategory)) {
		...
	}

Decode and Read work out the kind of document themselves (see Detect),
for callers holding a document of unknown kind.
*/
package rest
