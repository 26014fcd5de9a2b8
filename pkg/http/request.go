package http

import (
	"net"
	"net/http"
	"strings"
)

// UnknownIP is the ledger key used when no client address can be
// derived. All clients behind a header-stripping proxy share this
// bucket, which is the historical behavior of the site.
const UnknownIP = "unknown"

// ClientIP resolves the client address for attempt tracking.
//
// Flow:
// 1. First valid entry of X-Forwarded-For
// 2. X-Real-IP
// 3. RemoteAddr host
// 4. The literal "unknown"
//
// Swapping this for a stricter trusted-proxy strategy only requires
// changing this function; callers never parse headers themselves.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, ip := range strings.Split(xff, ",") {
			ip = strings.TrimSpace(ip)
			if isValidIP(ip) {
				return ip
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if isValidIP(xri) {
			return xri
		}
	}

	if r.RemoteAddr != "" {
		// RemoteAddr may include port: "ip:port"
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && isValidIP(host) {
			return host
		}
		if isValidIP(r.RemoteAddr) {
			return r.RemoteAddr
		}
	}

	return UnknownIP
}

// isValidIP checks if a string is a valid IPv4 or IPv6 address
func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}
