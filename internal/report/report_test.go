package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"domainenum/internal/args"
	"domainenum/internal/extract"
)

func init() { color.NoColor = true }

type fakeResolver struct {
	answers map[string][]string
	ptr     map[string][]string
}

func (f *fakeResolver) Resolve(name, rtype, server string) ([]string, error) {
	if vals, ok := f.answers[name+"/"+rtype]; ok {
		return vals, nil
	}
	return nil, fmt.Errorf("no answer for %s/%s", name, rtype)
}

func (f *fakeResolver) ReverseResolve(ip string) ([]string, error) {
	if names, ok := f.ptr[ip]; ok {
		return names, nil
	}
	return nil, errors.New("no PTR")
}

func collaboratorsFor(r *fakeResolver, whoisRaw string) Collaborators {
	return Collaborators{
		Resolver: r,
		Whois:    func(string) (string, error) { return whoisRaw, nil },
		HTTPHead: func(string, time.Duration) (string, error) {
			return "HTTP/1.1 200 OK\nContent-Type: text/html\nServer: nginx\n", nil
		},
		HTTPBody: func(string, time.Duration) (string, error) {
			return "<html><head><title>Example Domain</title></head></html>", nil
		},
		CertText: func(string, int) (string, error) {
			return "Issuer: C = US, O = Example CA Org, CN = Example CA\nSubject: CN = example.com\n", nil
		},
	}
}

func TestRunSectionOrder(t *testing.T) {
	r := &fakeResolver{
		answers: map[string][]string{
			"example.com/SOA":   {"ns1.example.com. hostmaster.example.com. 2024010100 3600 900 604800 300"},
			"example.com/A":     {"192.0.2.1"},
			"www.example.com/A": {"192.0.2.1"},
			"example.com/MX":    {"mx1.example.com."},
			"mx1.example.com/A": {"192.0.2.10"},
			"example.com/TXT":   {"v=spf1 -all"},
		},
		ptr: map[string][]string{
			"192.0.2.1":  {"host1.example.com"},
			"192.0.2.10": {"mail.example.com"},
		},
	}
	whoisRaw := "Domain Name: EXAMPLE.COM\nRegistrar: Example Registrar, Inc.\n>>> Last update of whois database: 2024-06-01 <<<\n"

	var buf bytes.Buffer
	cfg := args.RunConfig{Domain: "example.com", NameServer: args.DefaultNameServer}
	if err := Run(&buf, cfg, collaboratorsFor(r, whoisRaw)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	order := []string{"WHOIS", "SOA", "ADDRESS", "WWW", "HTTP", "CERTIFICATE", "MX", "TXT"}
	pos := -1
	for _, h := range order {
		i := strings.Index(out, "\n"+h+"\n")
		if i < 0 {
			t.Fatalf("heading %q missing in output:\n%s", h, out)
		}
		if i < pos {
			t.Errorf("heading %q out of order", h)
		}
		pos = i
	}

	for _, want := range []string{
		"Domain Name: EXAMPLE.COM",
		"RName:   hostmaster@example.com",
		"192.0.2.1 >> host1.example.com",
		"www.example.com >> 192.0.2.1",
		"Server: nginx",
		"Title: Example Domain",
		"Issuer organization: Example CA Org",
		"mx1.example.com >> 192.0.2.10 >> mail.example.com",
		"v=spf1 -all",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunSectionIsolation(t *testing.T) {
	// Every lookup fails or comes back empty; the report must still walk
	// all eight sections and print the per-section not-found lines.
	r := &fakeResolver{}
	c := Collaborators{
		Resolver: r,
		Whois:    func(string) (string, error) { return "", errors.New("whois down") },
		HTTPHead: func(string, time.Duration) (string, error) { return "", errors.New("timeout") },
		HTTPBody: func(string, time.Duration) (string, error) { return "", errors.New("timeout") },
		CertText: func(string, int) (string, error) { return "", errors.New("no tls") },
	}

	var buf bytes.Buffer
	cfg := args.RunConfig{Domain: "example.com", NameServer: args.DefaultNameServer}
	if err := Run(&buf, cfg, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"No WHOIS information found.",
		"No SOA record found.",
		"No address information found.",
		"No www information found.",
		"No HTTP information found.",
		"No SSL certificate information found.",
		"No MX records found.",
		"No TXT records found.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunSOAOverflowIsFatal(t *testing.T) {
	r := &fakeResolver{
		answers: map[string][]string{
			"example.com/SOA": {"a. b. 1 2 3 4 5 extra"},
		},
	}
	c := Collaborators{
		Resolver: r,
		Whois:    func(string) (string, error) { return "", nil },
		HTTPHead: func(string, time.Duration) (string, error) { return "", nil },
		HTTPBody: func(string, time.Duration) (string, error) { return "", nil },
		CertText: func(string, int) (string, error) { return "", nil },
	}

	var buf bytes.Buffer
	cfg := args.RunConfig{Domain: "example.com", NameServer: args.DefaultNameServer}
	err := Run(&buf, cfg, c)
	if !errors.Is(err, extract.ErrSOAOverflow) {
		t.Fatalf("expected ErrSOAOverflow, got %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "\nMX\n") {
		t.Error("sections after the fatal SOA error should not run")
	}
}
