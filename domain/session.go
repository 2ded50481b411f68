package domain

import "time"

// Session is a time-bounded binding between an opaque token and a username.
// The expiry is fixed at creation and is never extended by activity.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// Expired reports whether the session is past its deadline.
func (s Session) Expired() bool {
	return s.ExpiredAt(time.Now())
}

// ExpiredAt reports whether the session would be expired at t.
// Useful for deterministic tests.
func (s Session) ExpiredAt(t time.Time) bool {
	return t.After(s.ExpiresAt)
}
