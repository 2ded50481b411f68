// Package domain contains core concepts of the commenting site.
// Comments are immutable once created and listed in creation order.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents an immutable comment event.
// Author is a snapshot of the username at creation time, not a live
// reference: later session changes never rewrite it.
type Comment struct {
	ID        uuid.UUID // unique identifier
	Author    string
	Text      string
	CreatedAt time.Time
}
