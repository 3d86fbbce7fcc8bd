package extract

import (
	"fmt"
	"strings"

	"domainenum/internal/lookup"
)

// AddressEntry pairs a forward-resolved address with its reverse hostname,
// which stays empty when no PTR record resolves.
type AddressEntry struct {
	IP       string
	Hostname string
}

// Addresses walks a newline-delimited list of forward-resolved addresses
// and reverse-resolves each one. Blank lines are skipped; duplicates are
// kept and input order is preserved.
func Addresses(raw string, r lookup.Resolver) []AddressEntry {
	var out []AddressEntry
	for _, line := range strings.Split(raw, "\n") {
		ip := strings.TrimSpace(line)
		if ip == "" {
			continue
		}
		entry := AddressEntry{IP: ip}
		if names, err := r.ReverseResolve(ip); err == nil && len(names) > 0 {
			entry.Hostname = names[0]
		}
		out = append(out, entry)
	}
	return out
}

// WWW formats the resolved values of the www subdomain.
func WWW(domain string, values []string) (string, bool) {
	if len(values) == 0 {
		return "", false
	}
	return fmt.Sprintf("www.%s >> %s", domain, strings.Join(values, " ")), true
}

// HTTPHeaders passes the raw header block through.
func HTTPHeaders(raw string) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		return "", false
	}
	return raw, true
}

// TXT passes raw TXT answer lines through, dropping blanks.
func TXT(values []string) ([]string, bool) {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out, len(out) > 0
}
