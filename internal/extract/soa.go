package extract

import (
	"errors"
	"strings"
)

// ErrSOAOverflow signals an SOA answer with more than the 7 defined fields.
// This is the one malformed-record case treated as fatal: the extractor
// cannot tell which tokens belong where.
var ErrSOAOverflow = errors.New("SOA answer has more than 7 fields")

// SOARecord holds the 7 positional SOA fields as returned by the resolver.
type SOARecord struct {
	MName   string
	RName   string
	Serial  string
	Refresh string
	Retry   string
	Expire  string
	TTL     string
}

// SOA parses a single short-form SOA answer line. An empty answer or one
// with fewer than 7 fields means no record; more than 7 is ErrSOAOverflow.
// The rname is rewritten to mailbox form: trailing dot stripped and the
// first unescaped dot replaced with @.
func SOA(raw string) (*SOARecord, error) {
	fields := strings.Fields(raw)
	if len(fields) > 7 {
		return nil, ErrSOAOverflow
	}
	if len(fields) < 7 {
		return nil, nil
	}
	return &SOARecord{
		MName:   strings.TrimSuffix(fields[0], "."),
		RName:   rewriteRName(strings.TrimSuffix(fields[1], ".")),
		Serial:  fields[2],
		Refresh: fields[3],
		Retry:   fields[4],
		Expire:  fields[5],
		TTL:     fields[6],
	}, nil
}

// rewriteRName turns a DNS mailbox name into contact form:
// hostmaster.example.com -> hostmaster@example.com. Dots escaped with a
// backslash belong to the local part (john\.doe.example.com).
func rewriteRName(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '.':
			local := strings.ReplaceAll(s[:i], `\.`, ".")
			return local + "@" + s[i+1:]
		}
	}
	return s
}
