package validate

import "testing"

func TestIsDomain(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"example.com", true},
		{"EXAMPLE.COM", true},
		{"sub.example.co.uk", true},
		{"xn--nxasmq6b.example", true},
		{"a-b.example.fi", true},
		{"8.8.8.8", true}, // structurally a domain; callers must also check IsIP
		{"example", false},
		{"-bad.example.com", false},
		{"bad-.example.com", false},
		{"bad..example.com", false},
		{".example.com", false},
		{"example.com.", false},
		{"exa_mple.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsDomain(tt.in); got != tt.want {
			t.Errorf("IsDomain(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsIP(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"8.8.8.8", true},
		{"255.255.255.255", true},
		{"0.0.0.0", true},
		{"2001:db8::1", true},
		{"::1", true},
		{"fe80:0:0:0:0:0:0:1", true},
		{"256.1.1.1", false},
		{"1.2.3", false},
		{"example.com", false},
		{"not:hex:zz", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsIP(tt.in); got != tt.want {
			t.Errorf("IsIP(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
