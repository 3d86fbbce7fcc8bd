// Package extract turns raw collaborator output into typed records. Every
// function here is a pure function of its input; the only I/O happens
// through the Resolver passed into the address and MX fan-outs.
package extract

import (
	"regexp"
	"strings"

	whoisparser "github.com/likexian/whois-parser"
)

// DelimiterProfile selects which window of a raw WHOIS response makes up
// the record for a given registry. Profiles are tried in order; the first
// match by exact apex or apex suffix wins, and the entry with neither set
// is the default.
type DelimiterProfile struct {
	Exact      string
	Suffix     string
	Start      string
	End        string
	IncludeEnd bool
	FilterKV   bool // keep only "key: value" shaped lines
}

// Registry output shapes differ enough that a single window does not fit:
// Traficom (.fi) prints dotted keys until the update banner, Nominet (.uk)
// indents a block closed by its lookup timestamp, TCI (.ru/.su) uses
// RIPE-style fields, and IANA's reserved example.com ends at "source:".
var whoisProfiles = []DelimiterProfile{
	{Exact: "example.com", Start: "domain:", End: "source:", IncludeEnd: true},
	{Suffix: ".fi", Start: "domain", End: ">>> Last update", FilterKV: true},
	{Suffix: ".uk", Start: "Domain name:", End: "WHOIS lookup made at"},
	{Suffix: ".ru", Start: "domain:", End: "Last updated on"},
	{Suffix: ".su", Start: "domain:", End: "Last updated on"},
	{Start: "Domain Name:", End: ">>> Last update"},
}

var kvLineRe = regexp.MustCompile(`^[^\s:]+:\s*\S`)

// Apex returns the last two labels of a domain. This is naive for
// multi-part public suffixes (co.uk, com.au) and intentionally left so;
// profile suffix matching operates on this value.
func Apex(domain string) string {
	labels := strings.Split(domain, ".")
	if len(labels) <= 2 {
		return domain
	}
	return strings.Join(labels[len(labels)-2:], ".")
}

// ProfileFor picks the delimiter profile for an apex domain.
func ProfileFor(apex string) DelimiterProfile {
	for _, p := range whoisProfiles {
		if p.Exact != "" {
			if strings.EqualFold(apex, p.Exact) {
				return p
			}
			continue
		}
		if p.Suffix != "" {
			if strings.HasSuffix(strings.ToLower(apex), p.Suffix) {
				return p
			}
			continue
		}
		return p
	}
	return whoisProfiles[len(whoisProfiles)-1]
}

// Whois windows the raw WHOIS response for domain according to the apex's
// delimiter profile and returns the trimmed record lines. found is false
// for empty input and for the registry's explicit no-match answer.
func Whois(raw, domain string) (lines []string, found bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}
	apex := Apex(domain)
	if strings.Contains(raw, `No match for "`+strings.ToUpper(apex)+`"`) {
		return nil, false
	}

	p := ProfileFor(apex)
	started := false
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if !started {
			if strings.Contains(trimmed, p.Start) {
				started = true
			} else {
				continue
			}
		} else if strings.Contains(trimmed, p.End) {
			if p.IncludeEnd && trimmed != "" {
				lines = append(lines, trimmed)
			}
			break
		}
		if trimmed == "" {
			continue
		}
		if p.FilterKV && !kvLineRe.MatchString(trimmed) {
			continue
		}
		lines = append(lines, trimmed)
	}

	// No start marker anywhere: the registry uses a shape we don't window,
	// fall back to the whole trimmed response.
	if !started {
		for _, line := range strings.Split(raw, "\n") {
			if t := strings.TrimSpace(line); t != "" {
				lines = append(lines, t)
			}
		}
	}
	return lines, len(lines) > 0
}

// WhoisSummary is the parsed companion to the raw WHOIS window.
type WhoisSummary struct {
	Registrar   string
	Created     string
	Updated     string
	Expires     string
	NameServers []string
	DNSSEC      string
}

// SummarizeWhois runs the raw response through whois-parser and keeps the
// handful of fields worth a summary. ok is false when the response does
// not parse as a registered domain.
func SummarizeWhois(raw string) (WhoisSummary, bool) {
	parsed, err := whoisparser.Parse(raw)
	if err != nil || parsed.Domain == nil {
		return WhoisSummary{}, false
	}

	s := WhoisSummary{
		Created:     parsed.Domain.CreatedDate,
		Updated:     parsed.Domain.UpdatedDate,
		Expires:     parsed.Domain.ExpirationDate,
		NameServers: parsed.Domain.NameServers,
	}
	if parsed.Registrar != nil {
		s.Registrar = parsed.Registrar.Name
	}
	if parsed.Domain.DNSSec {
		s.DNSSEC = "signed"
	} else {
		s.DNSSEC = "unsigned"
	}
	return s, true
}
