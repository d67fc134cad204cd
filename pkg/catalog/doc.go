// Package catalog walks the template hierarchy and indexes what it finds.
//
// The hierarchy has four levels below the catalog root:
//
//	<root>/<host>/<user>/<repository>/<name>.xctemplate
//
// A Catalog builds each level lazily, top-down, and caches it until
// Invalidate is called. Missing or unreadable directories simply
// contribute no children: a host without users is a normal state, not an
// error.
//
// Search filters the indexed templates by exact name, bundle name,
// repository or remote URL, or by prefix of the template's full
// identifier. Because every string has the empty prefix, Search("")
// returns every template.
package catalog
