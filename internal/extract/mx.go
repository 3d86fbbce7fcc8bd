package extract

import (
	"strings"

	"domainenum/internal/lookup"
	"domainenum/internal/validate"
)

// MXEntry is one (mail host, address) pair with its reverse PTR names.
type MXEntry struct {
	Host     string
	IP       string
	PTRNames []string
}

// MX fans out each MX target to its A/AAAA addresses and reverse-resolves
// every address. Targets keep their input order with trailing dots
// stripped; answers that are not addresses (CNAME hops in the resolution
// chain) are filtered out.
func MX(targets []string, server string, r lookup.Resolver) []MXEntry {
	var out []MXEntry
	for _, t := range targets {
		host := strings.TrimSuffix(strings.TrimSpace(t), ".")
		if host == "" {
			continue
		}
		var addrs []string
		for _, rtype := range []string{"A", "AAAA"} {
			vals, err := r.Resolve(host, rtype, server)
			if err != nil {
				continue
			}
			addrs = append(addrs, vals...)
		}
		for _, ip := range addrs {
			if !validate.IsIP(ip) {
				continue
			}
			entry := MXEntry{Host: host, IP: ip}
			if names, err := r.ReverseResolve(ip); err == nil {
				entry.PTRNames = names
			}
			out = append(out, entry)
		}
	}
	return out
}
