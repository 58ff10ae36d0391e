package domain

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	session := Session{Token: "tok", ExpiresAt: now.Add(time.Hour)}

	if session.Expired(now) {
		t.Error("session should not be expired before ExpiresAt")
	}
	if !session.Expired(now.Add(2 * time.Hour)) {
		t.Error("session should be expired after ExpiresAt")
	}
}
