// Package csa parses game records in the four revisions of the CSA
// notation (V2, V2.1, V2.2, V3.0) into one unified GameRecord. It does not
// validate move legality; a malformed file yields a single *ParseError and
// no partial record.
//
// Every entry point is a pure function of its input, so independent files
// may be parsed concurrently without locking.
package csa

import "fmt"

// Parse parses a full record, auto-detecting the dialect from the content.
func Parse(input string) (*GameRecord, error) {
	version, ok := DetectVersion(input)
	if !ok {
		return nil, &ParseError{Kind: UnknownDialect, Msg: "no version line found or unsupported version"}
	}
	return ParseVersion(version, input)
}

// ParseVersion parses input already known to be the given dialect.
func ParseVersion(v Version, input string) (*GameRecord, error) {
	d, ok := dialects[v]
	if !ok {
		return nil, &ParseError{Kind: UnknownDialect, Msg: fmt.Sprintf("unsupported version %d", int(v))}
	}
	root, err := parseTree(input, d)
	if err != nil {
		return nil, err
	}
	return transformRecord(root, d), nil
}
