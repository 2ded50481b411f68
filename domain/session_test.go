package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSession_ExpiredAt(t *testing.T) {
	req := require.New(t)

	deadline := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	session := Session{Token: "t", Username: "alice", ExpiresAt: deadline}

	req.False(session.ExpiredAt(deadline.Add(-time.Second)))
	// Exactly at the deadline the session is still live.
	req.False(session.ExpiredAt(deadline))
	req.True(session.ExpiredAt(deadline.Add(time.Nanosecond)))
}

func TestSession_Expired(t *testing.T) {
	req := require.New(t)

	req.False(Session{ExpiresAt: time.Now().Add(time.Hour)}.Expired())
	req.True(Session{ExpiresAt: time.Now().Add(-time.Hour)}.Expired())
}
