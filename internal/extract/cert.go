package extract

import (
	"regexp"
	"strings"
)

// CertificateRecord holds the fields scraped out of a decoded certificate
// dump. Any field may be empty when its marker is absent.
type CertificateRecord struct {
	IssuerOrg       string
	SubjectDN       string
	IssuerDN        string
	SKI             string
	AKI             string
	Serial          string
	SubjectAltNames []string
	KeyUsage        string
	ValidFrom       string
	ValidUntil      string
}

var sanRe = regexp.MustCompile(`DNS:\s*([^,\n]+)`)

// Certificate extracts the report fields from an openssl-style certificate
// text dump by label markers. The issuer organization prefers the quoted
// O = "..." form and falls back to the unquoted comma-terminated form.
func Certificate(dump string) (*CertificateRecord, bool) {
	if strings.TrimSpace(dump) == "" {
		return nil, false
	}

	rec := &CertificateRecord{
		SubjectDN:  firstMatch(dump, `(?m)^\s*Subject:\s*(.+?)\s*$`),
		IssuerDN:   firstMatch(dump, `(?m)^\s*Issuer:\s*(.+?)\s*$`),
		ValidFrom:  firstMatch(dump, `(?m)Not Before\s*:\s*(.+?)\s*$`),
		ValidUntil: firstMatch(dump, `(?m)Not After\s*:\s*(.+?)\s*$`),
		SKI:        firstMatch(dump, `X509v3 Subject Key Identifier:[^\n]*\n\s*([0-9A-Fa-f:]+)`),
		AKI:        firstMatch(dump, `X509v3 Authority Key Identifier:[^\n]*\n\s*(?:keyid:)?([0-9A-Fa-f:]+)`),
		KeyUsage:   firstMatch(dump, `X509v3 Key Usage:[^\n]*\n\s*(.+?)\s*\n`),
	}
	rec.IssuerOrg = firstAny(dump,
		`O = "([^"]+)"`,
		`O = ([^,\n]+),`,
	)
	rec.Serial = firstAny(dump,
		`Serial Number:\s*\n\s*([0-9A-Fa-f:]+)`,
		`(?m)Serial Number:\s*(\S.*?)\s*$`,
	)

	for _, m := range sanRe.FindAllStringSubmatch(dump, -1) {
		if san := strings.TrimSpace(m[1]); san != "" {
			rec.SubjectAltNames = append(rec.SubjectAltNames, san)
		}
	}

	return rec, true
}

func firstMatch(text, pattern string) string {
	re := regexp.MustCompile(pattern)
	if m := re.FindStringSubmatch(text); len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// firstAny tries patterns in order and returns the first non-empty match.
func firstAny(text string, patterns ...string) string {
	for _, p := range patterns {
		if v := firstMatch(text, p); v != "" {
			return v
		}
	}
	return ""
}
