package lookup

import (
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"net"
	"strings"
	"time"
)

// FetchCertificateText connects to domain:port, takes the leaf certificate
// and renders it as an openssl-style text dump for the certificate
// extractor. Trust is deliberately not validated; this reports metadata of
// whatever certificate the server presents.
func FetchCertificateText(domain string, port int) (string, error) {
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := tls.DialWithDialer(dialer, "tcp", fmt.Sprintf("%s:%d", domain, port), &tls.Config{
		ServerName:         domain,
		InsecureSkipVerify: true,
	})
	if err != nil {
		return "", fmt.Errorf("TLS connection to %s:%d failed: %w", domain, port, err)
	}
	defer conn.Close()

	certs := conn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return "", nil
	}
	return renderCertificate(certs[0]), nil
}

const certTimeLayout = "Jan _2 15:04:05 2006 MST"

func renderCertificate(cert *x509.Certificate) string {
	var b strings.Builder

	b.WriteString("Certificate:\n")
	b.WriteString("    Data:\n")
	b.WriteString("        Serial Number:\n")
	fmt.Fprintf(&b, "            %s\n", colonHex(cert.SerialNumber.Bytes()))
	fmt.Fprintf(&b, "        Issuer: %s\n", renderDN(cert.Issuer))
	b.WriteString("        Validity\n")
	fmt.Fprintf(&b, "            Not Before: %s\n", cert.NotBefore.UTC().Format(certTimeLayout))
	fmt.Fprintf(&b, "            Not After : %s\n", cert.NotAfter.UTC().Format(certTimeLayout))
	fmt.Fprintf(&b, "        Subject: %s\n", renderDN(cert.Subject))
	b.WriteString("        X509v3 extensions:\n")

	if ku := keyUsageNames(cert.KeyUsage); ku != "" {
		b.WriteString("            X509v3 Key Usage: critical\n")
		fmt.Fprintf(&b, "                %s\n", ku)
	}
	if len(cert.SubjectKeyId) > 0 {
		b.WriteString("            X509v3 Subject Key Identifier: \n")
		fmt.Fprintf(&b, "                %s\n", strings.ToUpper(colonHex(cert.SubjectKeyId)))
	}
	if len(cert.AuthorityKeyId) > 0 {
		b.WriteString("            X509v3 Authority Key Identifier: \n")
		fmt.Fprintf(&b, "                keyid:%s\n", strings.ToUpper(colonHex(cert.AuthorityKeyId)))
	}
	if len(cert.DNSNames) > 0 {
		b.WriteString("            X509v3 Subject Alternative Name: \n")
		sans := make([]string, 0, len(cert.DNSNames))
		for _, n := range cert.DNSNames {
			sans = append(sans, "DNS:"+n)
		}
		fmt.Fprintf(&b, "                %s\n", strings.Join(sans, ", "))
	}

	return b.String()
}

// renderDN follows the openssl one-line form: attributes comma-joined,
// values quoted only when they themselves contain a comma.
func renderDN(name pkix.Name) string {
	var parts []string
	add := func(key, val string) {
		if val == "" {
			return
		}
		if strings.Contains(val, ",") {
			val = `"` + val + `"`
		}
		parts = append(parts, fmt.Sprintf("%s = %s", key, val))
	}
	for _, v := range name.Country {
		add("C", v)
	}
	for _, v := range name.Province {
		add("ST", v)
	}
	for _, v := range name.Locality {
		add("L", v)
	}
	for _, v := range name.Organization {
		add("O", v)
	}
	for _, v := range name.OrganizationalUnit {
		add("OU", v)
	}
	add("CN", name.CommonName)
	return strings.Join(parts, ", ")
}

func colonHex(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, ":")
}

func keyUsageNames(ku x509.KeyUsage) string {
	var names []string
	for _, u := range []struct {
		bit  x509.KeyUsage
		name string
	}{
		{x509.KeyUsageDigitalSignature, "Digital Signature"},
		{x509.KeyUsageContentCommitment, "Non Repudiation"},
		{x509.KeyUsageKeyEncipherment, "Key Encipherment"},
		{x509.KeyUsageDataEncipherment, "Data Encipherment"},
		{x509.KeyUsageKeyAgreement, "Key Agreement"},
		{x509.KeyUsageCertSign, "Certificate Sign"},
		{x509.KeyUsageCRLSign, "CRL Sign"},
	} {
		if ku&u.bit != 0 {
			names = append(names, u.name)
		}
	}
	return strings.Join(names, ", ")
}
