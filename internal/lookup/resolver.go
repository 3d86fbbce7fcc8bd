// Package lookup holds the network collaborators: DNS, WHOIS, HTTP and TLS.
// Everything here does I/O; the extract package never does.
package lookup

import (
	"fmt"
	"net"
	"sort"
	"strings"
	"time"

	mdns "github.com/miekg/dns"
)

// Resolver is the narrow DNS surface the report and the fan-out extractors
// consume. Resolve returns short-form answer strings for the given record
// type, queried against an explicit server address.
type Resolver interface {
	Resolve(name, rtype, server string) ([]string, error)
	ReverseResolve(ip string) ([]string, error)
}

var qtypes = map[string]uint16{
	"A":    mdns.TypeA,
	"AAAA": mdns.TypeAAAA,
	"SOA":  mdns.TypeSOA,
	"MX":   mdns.TypeMX,
	"TXT":  mdns.TypeTXT,
}

// DNSClient is the production Resolver on top of miekg/dns.
type DNSClient struct {
	client *mdns.Client
}

func NewDNSClient() *DNSClient {
	c := new(mdns.Client)
	c.Timeout = 5 * time.Second
	return &DNSClient{client: c}
}

// Resolve queries server for one record type and renders each answer in
// dig +short form. Address answers come back sorted and de-duplicated; MX
// answers are target hostnames ordered by preference; SOA is a single
// 7-field line.
func (c *DNSClient) Resolve(name, rtype, server string) ([]string, error) {
	qtype, ok := qtypes[rtype]
	if !ok {
		return nil, fmt.Errorf("unsupported record type: %s", rtype)
	}

	msg := new(mdns.Msg)
	msg.SetQuestion(mdns.Fqdn(name), qtype)
	msg.RecursionDesired = true

	r, _, err := c.client.Exchange(msg, net.JoinHostPort(server, "53"))
	if err != nil {
		return nil, fmt.Errorf("%s query for %s failed: %w", rtype, name, err)
	}

	var out []string
	type mx struct {
		pref uint16
		host string
	}
	var mxs []mx
	for _, ans := range r.Answer {
		switch rr := ans.(type) {
		case *mdns.A:
			out = append(out, rr.A.String())
		case *mdns.AAAA:
			out = append(out, rr.AAAA.String())
		case *mdns.CNAME:
			out = append(out, rr.Target)
		case *mdns.MX:
			mxs = append(mxs, mx{pref: rr.Preference, host: rr.Mx})
		case *mdns.TXT:
			out = append(out, strings.Join(rr.Txt, ""))
		case *mdns.SOA:
			out = append(out, fmt.Sprintf("%s %s %d %d %d %d %d",
				rr.Ns, rr.Mbox, rr.Serial, rr.Refresh, rr.Retry, rr.Expire, rr.Minttl))
		}
	}

	if qtype == mdns.TypeMX {
		sort.SliceStable(mxs, func(i, j int) bool { return mxs[i].pref < mxs[j].pref })
		for _, m := range mxs {
			out = append(out, m.host)
		}
		return out, nil
	}
	if qtype == mdns.TypeA || qtype == mdns.TypeAAAA {
		out = uniqueSorted(out)
	}
	return out, nil
}

// ReverseResolve maps an IP back to its PTR hostnames, trailing dots
// stripped. A failed lookup is just an empty result.
func (c *DNSClient) ReverseResolve(ip string) ([]string, error) {
	names, err := net.LookupAddr(ip)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.TrimSuffix(n, "."))
	}
	return out, nil
}

func uniqueSorted(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
