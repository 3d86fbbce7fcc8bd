// Package report sequences the eight lookups in fixed order and prints one
// section per record kind. Sections are isolated: a missing record prints
// its "not found" line and the run continues. The only fatal outcome is an
// SOA answer the extractor refuses to interpret.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"domainenum/internal/args"
	"domainenum/internal/extract"
	"domainenum/internal/logging"
	"domainenum/internal/lookup"
)

const httpTimeout = 30 * time.Second

// Collaborators bundles the external lookups the renderer drives. Tests
// swap these for fakes; production wiring lives in main.
type Collaborators struct {
	Resolver lookup.Resolver
	Whois    func(apex string) (string, error)
	HTTPHead func(domain string, timeout time.Duration) (string, error)
	HTTPBody func(domain string, timeout time.Duration) (string, error)
	CertText func(domain string, port int) (string, error)
}

var headingColor = color.New(color.FgCyan, color.Bold)

// Run prints the full report for cfg to w. It returns an error only for
// the fatal SOA parse overflow.
func Run(w io.Writer, cfg args.RunConfig, c Collaborators) error {
	heading(w, "whois")
	whoisSection(w, cfg, c)

	heading(w, "soa")
	if err := soaSection(w, cfg, c); err != nil {
		return err
	}

	heading(w, "address")
	addressSection(w, cfg, c)

	heading(w, "www")
	wwwSection(w, cfg, c)

	heading(w, "http")
	httpSection(w, cfg, c)

	heading(w, "certificate")
	certSection(w, cfg, c)

	heading(w, "mx")
	mxSection(w, cfg, c)

	heading(w, "txt")
	txtSection(w, cfg, c)

	return nil
}

func heading(w io.Writer, name string) {
	fmt.Fprintln(w)
	headingColor.Fprintln(w, strings.ToUpper(name))
}

func whoisSection(w io.Writer, cfg args.RunConfig, c Collaborators) {
	raw, err := c.Whois(extract.Apex(cfg.Domain))
	if err != nil {
		logging.Error.Printf("whois query failed: %v", err)
	}
	lines, found := extract.Whois(raw, cfg.Domain)
	if !found {
		fmt.Fprintln(w, "No WHOIS information found.")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if s, ok := extract.SummarizeWhois(raw); ok {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Registrar: %s\n", orNA(s.Registrar))
		fmt.Fprintf(w, "Created:   %s\n", orNA(s.Created))
		fmt.Fprintf(w, "Updated:   %s\n", orNA(s.Updated))
		fmt.Fprintf(w, "Expires:   %s\n", orNA(s.Expires))
		fmt.Fprintf(w, "DNSSEC:    %s\n", orNA(s.DNSSEC))
		if len(s.NameServers) > 0 {
			fmt.Fprintf(w, "Name servers: %s\n", strings.Join(s.NameServers, " "))
		}
	}
}

func soaSection(w io.Writer, cfg args.RunConfig, c Collaborators) error {
	var raw string
	vals, err := c.Resolver.Resolve(cfg.Domain, "SOA", args.DefaultNameServer)
	if err != nil {
		logging.Error.Printf("SOA lookup failed: %v", err)
	} else if len(vals) > 0 {
		raw = vals[0]
	}

	rec, err := extract.SOA(raw)
	if err != nil {
		return err
	}
	if rec == nil {
		fmt.Fprintln(w, "No SOA record found.")
		return nil
	}
	fmt.Fprintf(w, "MName:   %s\n", rec.MName)
	fmt.Fprintf(w, "RName:   %s\n", rec.RName)
	fmt.Fprintf(w, "Serial:  %s\n", rec.Serial)
	fmt.Fprintf(w, "Refresh: %s\n", rec.Refresh)
	fmt.Fprintf(w, "Retry:   %s\n", rec.Retry)
	fmt.Fprintf(w, "Expire:  %s\n", rec.Expire)
	fmt.Fprintf(w, "TTL:     %s\n", rec.TTL)
	return nil
}

func addressSection(w io.Writer, cfg args.RunConfig, c Collaborators) {
	var all []string
	for _, rtype := range []string{"A", "AAAA"} {
		vals, err := c.Resolver.Resolve(cfg.Domain, rtype, cfg.NameServer)
		if err != nil {
			logging.Error.Printf("%s lookup failed: %v", rtype, err)
			continue
		}
		all = append(all, vals...)
	}
	entries := extract.Addresses(strings.Join(all, "\n"), c.Resolver)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No address information found.")
		return
	}
	for _, e := range entries {
		if e.Hostname != "" {
			fmt.Fprintf(w, "%s >> %s\n", e.IP, e.Hostname)
		} else {
			fmt.Fprintln(w, e.IP)
		}
	}
}

func wwwSection(w io.Writer, cfg args.RunConfig, c Collaborators) {
	var all []string
	for _, rtype := range []string{"A", "AAAA"} {
		vals, err := c.Resolver.Resolve("www."+cfg.Domain, rtype, cfg.NameServer)
		if err != nil {
			continue
		}
		all = append(all, vals...)
	}
	line, found := extract.WWW(cfg.Domain, all)
	if !found {
		fmt.Fprintln(w, "No www information found.")
		return
	}
	fmt.Fprintln(w, line)
}

func httpSection(w io.Writer, cfg args.RunConfig, c Collaborators) {
	raw, err := c.HTTPHead(cfg.Domain, httpTimeout)
	if err != nil {
		logging.Error.Printf("HTTP lookup failed: %v", err)
	}
	block, found := extract.HTTPHeaders(raw)
	if !found {
		fmt.Fprintln(w, "No HTTP information found.")
		return
	}
	fmt.Fprint(w, block)

	if strings.Contains(strings.ToLower(block), "content-type: text/html") && c.HTTPBody != nil {
		if body, err := c.HTTPBody(cfg.Domain, httpTimeout); err == nil {
			if title := extract.PageTitle(body); title != "" {
				fmt.Fprintf(w, "Title: %s\n", title)
			}
		}
	}
}

func certSection(w io.Writer, cfg args.RunConfig, c Collaborators) {
	dump, err := c.CertText(cfg.Domain, 443)
	if err != nil {
		logging.Error.Printf("certificate fetch failed: %v", err)
	}
	rec, found := extract.Certificate(dump)
	if !found {
		fmt.Fprintln(w, "No SSL certificate information found.")
		return
	}
	fmt.Fprintf(w, "Issuer organization: %s\n", orNA(rec.IssuerOrg))
	fmt.Fprintf(w, "Subject:   %s\n", orNA(rec.SubjectDN))
	fmt.Fprintf(w, "Issuer:    %s\n", orNA(rec.IssuerDN))
	fmt.Fprintf(w, "Serial:    %s\n", orNA(rec.Serial))
	fmt.Fprintf(w, "SKI:       %s\n", orNA(rec.SKI))
	fmt.Fprintf(w, "AKI:       %s\n", orNA(rec.AKI))
	fmt.Fprintf(w, "Key usage: %s\n", orNA(rec.KeyUsage))
	fmt.Fprintf(w, "Valid from:  %s\n", orNA(rec.ValidFrom))
	fmt.Fprintf(w, "Valid until: %s\n", orNA(rec.ValidUntil))
	if len(rec.SubjectAltNames) > 0 {
		fmt.Fprintf(w, "SANs: %s\n", strings.Join(rec.SubjectAltNames, " "))
	}
}

func mxSection(w io.Writer, cfg args.RunConfig, c Collaborators) {
	targets, err := c.Resolver.Resolve(cfg.Domain, "MX", args.DefaultNameServer)
	if err != nil {
		logging.Error.Printf("MX lookup failed: %v", err)
	}
	entries := extract.MX(targets, args.DefaultNameServer, c.Resolver)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No MX records found.")
		return
	}
	for _, e := range entries {
		if len(e.PTRNames) > 0 {
			fmt.Fprintf(w, "%s >> %s >> %s\n", e.Host, e.IP, strings.Join(e.PTRNames, " "))
		} else {
			fmt.Fprintf(w, "%s >> %s\n", e.Host, e.IP)
		}
	}
}

func txtSection(w io.Writer, cfg args.RunConfig, c Collaborators) {
	vals, err := c.Resolver.Resolve(cfg.Domain, "TXT", args.DefaultNameServer)
	if err != nil {
		logging.Error.Printf("TXT lookup failed: %v", err)
	}
	lines, found := extract.TXT(vals)
	if !found {
		fmt.Fprintln(w, "No TXT records found.")
		return
	}
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "<not available>"
	}
	return s
}
