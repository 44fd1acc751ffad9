package http

import (
	"net/http"
	"strings"
)

// ResolveBaseURL returns the external base URL of the server. A configured
// URL wins; otherwise it is rebuilt from the proxy headers of the request.
func ResolveBaseURL(r *http.Request, configuredURL string) string {
	if configuredURL != "" {
		return strings.TrimRight(configuredURL, "/")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := firstHeaderValue(r, "X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// Priority: Alt-Used (Cloud Run) > X-Forwarded-Host > Host
	host := r.Host
	if altUsed := r.Header.Get("Alt-Used"); altUsed != "" {
		host = altUsed
		scheme = "https"
	} else if forwardedHost := firstHeaderValue(r, "X-Forwarded-Host"); forwardedHost != "" {
		host = forwardedHost
	}

	if host == "" {
		host = "localhost"
	}

	return scheme + "://" + host
}

// firstHeaderValue returns the first entry of a comma separated header, which
// is the one set by the proxy closest to the client
func firstHeaderValue(r *http.Request, key string) string {
	value := r.Header.Get(key)
	if value == "" {
		return ""
	}
	first, _, _ := strings.Cut(value, ",")
	return strings.TrimSpace(first)
}
