package service

import (
	"crypto/subtle"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// validateLocalRequest enforces host access to mitigate DNS rebinding.
// It checks Host and Origin headers against allowed hosts so remote web pages
// cannot reach a local MCP server via rebinding.
func (t *HTTPTransport) validateLocalRequest(r *http.Request) error {
	if r == nil {
		return fmt.Errorf("invalid request")
	}

	if !t.isAllowedHostHeader(r.Host) {
		return fmt.Errorf("invalid host")
	}

	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return nil
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid origin")
	}
	if !t.isAllowedHostHeader(parsed.Host) {
		return fmt.Errorf("invalid origin")
	}
	return nil
}

// isAllowedHostHeader reports whether a Host/Origin header resolves to an allowed host.
func (t *HTTPTransport) isAllowedHostHeader(host string) bool {
	resolvedHost, ok := normalizeHost(host)
	if !ok {
		return false
	}
	if isLoopbackHost(resolvedHost) {
		return true
	}
	_, ok = t.allowedHosts[strings.ToLower(resolvedHost)]
	return ok
}

// authorizeRequest checks the bearer token when one is configured.
func (t *HTTPTransport) authorizeRequest(w http.ResponseWriter, r *http.Request) bool {
	if t.apiToken == "" {
		return true
	}
	authHeader := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		writeUnauthorized(w, "authorization required")
		return false
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(t.apiToken)) != 1 {
		writeUnauthorized(w, "invalid access token")
		return false
	}
	return true
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, message, http.StatusUnauthorized)
}

func isLoopbackHost(host string) bool {
	switch strings.ToLower(strings.TrimSpace(host)) {
	case "localhost", "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}

// parseAllowedHosts lowercases and dedupes configured hosts.
func parseAllowedHosts(hosts []string) map[string]struct{} {
	result := make(map[string]struct{}, len(hosts))
	for _, entry := range hosts {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		result[strings.ToLower(trimmed)] = struct{}{}
	}
	return result
}

// normalizeHost extracts the hostname portion from Host/Origin headers.
func normalizeHost(host string) (string, bool) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", false
	}

	if strings.HasPrefix(host, "[") {
		if splitHost, _, err := net.SplitHostPort(host); err == nil {
			return splitHost, true
		}
		if strings.HasSuffix(host, "]") {
			return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]"), true
		}
		return "", false
	}

	if strings.Count(host, ":") > 1 {
		return host, true
	}

	if strings.Contains(host, ":") {
		splitHost, _, err := net.SplitHostPort(host)
		if err != nil {
			return "", false
		}
		return splitHost, true
	}

	return host, true
}
