package lookup

import (
	"strings"

	whois "github.com/likexian/whois"
)

// WhoisQuery fetches the raw WHOIS response for an apex domain, with
// newlines normalized so the extractor can window it line by line.
func WhoisQuery(apex string) (string, error) {
	raw, err := whois.Whois(apex)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(raw, "\r\n", "\n"), nil
}
