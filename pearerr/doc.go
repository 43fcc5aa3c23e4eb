/*
Package pearerr defines the errors returned when decoding PEAR REST
documents.

Every Error carries a Tag naming what went wrong (missing-element,
duplicate-element, unexpected-child, ...) and, where it applies, the
record Field and XML Element involved and the zero-based Index of the
offending child within its parent. Errors raised while decoding a nested
record (a release block inside a release listing) are wrapped in a
bad-element Error holding the block's index, with the nested error
available through errors.Unwrap.

Callers match errors with errors.Is against a constructor value:

	if errors.Is(err, pearerr.MissingElement("category")) {
		...
	}
*/
package pearerr
