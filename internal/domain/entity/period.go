package entity

import (
	"time"

	"github.com/google/uuid"
)

// Period is a quarterly reporting window. Department records may link to a
// period; once an administrator closes it the linked records are frozen.
type Period struct {
	ID        uuid.UUID
	Year      int
	Quarter   int // 1..4
	StartDate time.Time
	EndDate   time.Time
	Closed    bool
	ClosedAt  *time.Time // Stamped when the period is closed.
	ClosedBy  *uuid.UUID // Profile that closed the period.
	CreatedAt time.Time
}

// Open reports whether the period still accepts record changes.
func (p *Period) Open() bool {
	return !p.Closed
}
