package entity

import (
	"time"

	"github.com/google/uuid"
)

// Anamnesis is the social-work intake record of an athlete's family and
// living situation. One athlete may have several over time.
type Anamnesis struct {
	ID                uuid.UUID
	AthleteID         uuid.UUID
	ProfessionalID    uuid.UUID
	FamilyComposition string
	HousingSituation  string
	FamilyIncome      string
	SocialBenefits    string
	SchoolSituation   string
	Notes             string
	RecordedAt        time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Contact is a guardian or emergency contact. A contact may be tied to a
// specific athlete or kept as a general organization contact.
type Contact struct {
	ID           uuid.UUID
	AthleteID    *uuid.UUID
	Name         string
	Relationship string
	Phone        string
	Email        string
	Address      string
	Notes        string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Referral statuses. Status is free-form on purpose; these are the values
// the application writes by default.
const (
	ReferralStatusPendente    = "pendente"
	ReferralStatusEmAndamento = "em_andamento"
	ReferralStatusConcluido   = "concluido"
)

// Referral records a routing of an athlete to an external service
// (health, legal, social assistance) and tracks its outcome.
type Referral struct {
	ID             uuid.UUID
	AthleteID      uuid.UUID
	ProfessionalID uuid.UUID
	Kind           string // e.g. "saude", "juridico", "assistencia".
	Destination    string
	Reason         string
	Date           time.Time
	Status         string
	Return         string // Outcome notes once the referral concludes.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
