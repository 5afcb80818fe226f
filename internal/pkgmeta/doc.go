// Package pkgmeta reads the identity (name and version) of the installed
// tool from its npm manifest.
//
// The Reader interface lets services accept any identity source; FileReader
// is the production implementation locating the manifest next to the running
// executable. Identity snapshots are read fresh on each call and never
// cached here.
package pkgmeta
