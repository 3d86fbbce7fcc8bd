package lookup

import (
	"fmt"
	"io"
	stdhttp "net/http"
	"sort"
	"strings"
	"time"
)

const userAgent = "domainenum/1.2"

func newClient(timeout time.Duration) *stdhttp.Client {
	return &stdhttp.Client{Timeout: timeout}
}

// HTTPHead sends a HEAD request to the domain and returns the raw response
// header block (status line first, headers sorted). Falls back from https
// to http when the TLS side is unreachable.
func HTTPHead(domain string, timeout time.Duration) (string, error) {
	client := newClient(timeout)

	resp, err := doRequest(client, stdhttp.MethodHead, "https://"+domain)
	if err != nil {
		resp, err = doRequest(client, stdhttp.MethodHead, "http://"+domain)
		if err != nil {
			return "", fmt.Errorf("HEAD request to %s failed: %w", domain, err)
		}
	}
	defer resp.Body.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", resp.Proto, resp.Status)
	keys := make([]string, 0, len(resp.Header))
	for k := range resp.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range resp.Header[k] {
			fmt.Fprintf(&b, "%s: %s\n", k, v)
		}
	}
	return b.String(), nil
}

// HTTPBody fetches up to 512 KiB of the page body, used only for the
// best-effort title line in the HTTP section.
func HTTPBody(domain string, timeout time.Duration) (string, error) {
	client := newClient(timeout)

	resp, err := doRequest(client, stdhttp.MethodGet, "https://"+domain)
	if err != nil {
		resp, err = doRequest(client, stdhttp.MethodGet, "http://"+domain)
		if err != nil {
			return "", err
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func doRequest(client *stdhttp.Client, method, url string) (*stdhttp.Response, error) {
	req, err := stdhttp.NewRequest(method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return client.Do(req)
}
