package pkg

import "strings"

// ClientInfo is a coarse classification of a User-Agent header. Analytics
// only needs device/browser/os buckets, not full UA parsing.
type ClientInfo struct {
	Device  string
	Browser string
	OS      string
}

// DetectDevice buckets a User-Agent into desktop/mobile/tablet.
func DetectDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		return "tablet"
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return "mobile"
	default:
		return "desktop"
	}
}

// ParseUserAgent extracts device, browser and OS buckets from a raw
// User-Agent string. Order matters for the browser checks: Edge and Opera
// advertise "Chrome", Chrome advertises "Safari".
func ParseUserAgent(userAgent string) ClientInfo {
	ua := strings.ToLower(userAgent)

	browser := "unknown"
	switch {
	case strings.Contains(ua, "edg/") || strings.Contains(ua, "edge"):
		browser = "Edge"
	case strings.Contains(ua, "opr/") || strings.Contains(ua, "opera"):
		browser = "Opera"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	}

	os := "unknown"
	switch {
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ios"):
		os = "iOS"
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "mac os"), strings.Contains(ua, "macintosh"):
		os = "macOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	}

	return ClientInfo{
		Device:  DetectDevice(userAgent),
		Browser: browser,
		OS:      os,
	}
}
