package validate

import "regexp"

var (
	domainRe = regexp.MustCompile(`^(?i)[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?(\.[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?)+$`)
	ipv4Re   = regexp.MustCompile(`^((25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)
	// Loose IPv6 shape: hex groups separated by colons, including the
	// compressed "::" forms. Not a full RFC 4291 grammar.
	ipv6Re = regexp.MustCompile(`^(?i)([0-9a-f]{0,4}:){1,7}[0-9a-f]{0,4}$`)
)

// IsDomain reports whether s looks like a fully qualified domain name:
// dot-separated labels, each starting and ending alphanumeric, with
// interior hyphens allowed. Note that a dotted-quad IP also matches this
// grammar; callers that need a real domain must additionally check !IsIP.
func IsDomain(s string) bool {
	return domainRe.MatchString(s)
}

// IsIP reports whether s is an IPv4 dotted-quad or a loose IPv6 literal.
func IsIP(s string) bool {
	return ipv4Re.MatchString(s) || ipv6Re.MatchString(s)
}
