package args

import (
	"errors"
	"testing"
)

func TestParseSuccess(t *testing.T) {
	tests := []struct {
		name   string
		argv   []string
		domain string
		ns     string
	}{
		{"domain only", []string{"example.com"}, "example.com", DefaultNameServer},
		{"lowercased", []string{"EXAMPLE.COM"}, "example.com", DefaultNameServer},
		{"short nameserver flag", []string{"example.com", "-n", "8.8.4.4"}, "example.com", "8.8.4.4"},
		{"long nameserver flag", []string{"example.com", "--nameserver", "2001:db8::1"}, "example.com", "2001:db8::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, action, err := Parse(tt.argv)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if action != ActionRun {
				t.Fatalf("expected ActionRun, got %v", action)
			}
			if cfg.Domain != tt.domain {
				t.Errorf("domain = %q, want %q", cfg.Domain, tt.domain)
			}
			if cfg.NameServer != tt.ns {
				t.Errorf("nameserver = %q, want %q", cfg.NameServer, tt.ns)
			}
		})
	}
}

func TestParseHelpVersion(t *testing.T) {
	for _, tok := range []string{"-h", "--help"} {
		_, action, err := Parse([]string{tok})
		if err != nil || action != ActionHelp {
			t.Errorf("Parse([%q]) = (%v, %v), want ActionHelp", tok, action, err)
		}
	}
	for _, tok := range []string{"-v", "--version"} {
		_, action, err := Parse([]string{tok})
		if err != nil || action != ActionVersion {
			t.Errorf("Parse([%q]) = (%v, %v), want ActionVersion", tok, action, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		code Code
	}{
		{"no args", nil, NoDomain},
		{"nameserver flag first", []string{"-n"}, NoDomain},
		{"nameserver long flag first", []string{"--nameserver", "8.8.8.8"}, NoDomain},
		{"too many args", []string{"a", "b", "c", "d"}, TooManyArgs},
		{"bad domain", []string{"not_a_domain"}, BadDomain},
		{"single label", []string{"localhost"}, BadDomain},
		{"ip literal as domain", []string{"8.8.8.8"}, BadDomain},
		{"ipv6 literal as domain", []string{"2001:db8::1"}, BadDomain},
		{"bare word after domain", []string{"example.com", "extra"}, BadInput},
		{"help after domain", []string{"example.com", "-h"}, BadFlagPosition},
		{"version after domain", []string{"example.com", "--version"}, BadFlagPosition},
		{"unknown flag", []string{"example.com", "-x"}, UnknownFlag},
		{"missing nameserver value", []string{"example.com", "-n"}, NoNameserver},
		{"bad nameserver value", []string{"example.com", "-n", "not-an-ip"}, BadIP},
		{"bad nameserver octet", []string{"example.com", "--nameserver", "300.1.1.1"}, BadIP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := Parse(tt.argv)
			if err == nil {
				t.Fatalf("expected error, got config %+v", cfg)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ParseError, got %T", err)
			}
			if perr.Code != tt.code {
				t.Errorf("code = %v, want %v (msg %q)", perr.Code, tt.code, perr.Msg)
			}
		})
	}
}
