package request

import "strings"

const (
	ClientWeb    = "web"
	ClientMobile = "mobile"
	ClientAPI    = "api"
)

// ResolveClientType prefers the explicit X-Client-Type header and falls
// back to sniffing the user agent.
func ResolveClientType(clientHeader, userAgent string) string {
	switch strings.ToLower(strings.TrimSpace(clientHeader)) {
	case ClientWeb:
		return ClientWeb
	case ClientMobile:
		return ClientMobile
	case ClientAPI:
		return ClientAPI
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "mozilla") || strings.Contains(ua, "chrome") || strings.Contains(ua, "safari") {
		return ClientWeb
	}
	return ClientAPI
}

func IsWebClient(clientType string) bool {
	return clientType == ClientWeb
}
