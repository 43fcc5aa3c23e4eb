/*
Package pear is a set of PEAR channel REST support libraries.

Decoding the XML documents a PEAR channel server publishes (package and
release listings, package info and release detail) into validated Go
records, these libraries let clients of PEAR and PECL channels work with
channel metadata without handling XML themselves.

Documents are read into an ordered, read-only tree (see the tree
sub-directory) and decoded strictly in schema order, so reordered,
duplicated or missing elements in a server response are reported as a
typed error naming the field at fault (see pearerr).

See the rest sub-directory for the decoders, and cmd/peardecode for a
command line front end.
*/
package pear
