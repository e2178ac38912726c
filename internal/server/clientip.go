package server

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP from a request. Proxy and Cloudflare
// headers are only honoured when trustProxy is set; otherwise the direct
// peer address is used.
func GetRealIP(c *gin.Context, trustProxy bool) string {
	if trustProxy {
		// Priority order:
		// 1. CF-Connecting-IP (Cloudflare)
		// 2. True-Client-IP (Cloudflare Enterprise)
		// 3. X-Real-IP (nginx)
		// 4. X-Forwarded-For (first IP)
		for _, header := range []string{"CF-Connecting-IP", "True-Client-IP", "X-Real-IP"} {
			if ip := parseIP(c.GetHeader(header)); ip != "" {
				return ip
			}
		}

		// X-Forwarded-For can contain multiple IPs: client, proxy1, proxy2, ...
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := parseIP(first); ip != "" {
				return ip
			}
		}
	}

	return parseIP(c.Request.RemoteAddr)
}

// parseIP validates and extracts an IP address, stripping port if present
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}

	if host, _, err := net.SplitHostPort(ipStr); err == nil {
		ipStr = host
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	return ip.String()
}
