package funnel

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"search-funnel/domain/models"
)

var (
	tabletPattern = regexp.MustCompile(`(?i)(ipad|tablet|playbook|silk|kindle|nexus (7|9|10)\b|sm-t\d+)`)
	mobilePattern = regexp.MustCompile(`(?i)(mobi|iphone|ipod|android|blackberry|bb10|iemobile|opera mini|windows phone|webos)`)
)

// DeviceClass maps a user agent to mobile, tablet or desktop.
// Android without "mobi" is a tablet.
func DeviceClass(userAgent string) models.DeviceType {
	if tabletPattern.MatchString(userAgent) {
		return models.DeviceTablet
	}
	lower := strings.ToLower(userAgent)
	if strings.Contains(lower, "android") && !strings.Contains(lower, "mobi") {
		return models.DeviceTablet
	}
	if mobilePattern.MatchString(userAgent) {
		return models.DeviceMobile
	}
	return models.DeviceDesktop
}

const (
	ReferralDirect   = "direct"
	ReferralInternal = "internal"
)

// ReferralSource prefers an explicit utm_source, then the referring host.
func ReferralSource(referer, utmSource, ownHost string) string {
	if s := strings.TrimSpace(utmSource); s != "" {
		return strings.ToLower(s)
	}
	if referer == "" {
		return ReferralDirect
	}
	u, err := url.Parse(referer)
	if err != nil || u.Hostname() == "" {
		return ReferralDirect
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == normalizeHost(ownHost) {
		return ReferralInternal
	}
	return host
}

func normalizeHost(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if host, _, err := net.SplitHostPort(h); err == nil {
		h = host
	}
	return strings.TrimPrefix(h, "www.")
}
