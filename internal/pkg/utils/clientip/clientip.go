package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest returns the left-most X-Forwarded-For entry when the header is
// present, otherwise the peer address of the connection without its port.
func FromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
