package services

// SessionContext is the per-request tracking identity. Handlers build it from
// the session cookie and request headers and pass it into every tracking call.
type SessionContext struct {
	SessionID string
	IP        string
	UserAgent string
	Referer   string
	UTMSource string
	Host      string
}
