package repository

import (
	"context"

	"gestao/internal/domain/entity"

	"github.com/google/uuid"
)

// SchoolAverages carries the aggregated pedagogy indicators. Either value
// is nil when no record contributes to it.
type SchoolAverages struct {
	AttendancePct *float64
	GradeAverage  *float64
}

// ReportRepository exposes read-only aggregations over department data.
// Implementations run the aggregation in the database.
type ReportRepository interface {
	// CountActiveAthletes counts athletes with the active flag set.
	CountActiveAthletes(ctx context.Context) (int64, error)

	// CountAthletesByCategory counts active athletes grouped by category.
	CountAthletesByCategory(ctx context.Context) (map[entity.Category]int64, error)

	// CountInterventionsByType counts interventions grouped by type,
	// optionally narrowed to one period.
	CountInterventionsByType(ctx context.Context, periodID *uuid.UUID) (map[entity.InterventionType]int64, error)

	// CountReferralsByStatus counts referrals grouped by status.
	CountReferralsByStatus(ctx context.Context) (map[string]int64, error)

	// SchoolAverages averages attendance and grades over school records,
	// optionally narrowed to one period.
	SchoolAverages(ctx context.Context, periodID *uuid.UUID) (*SchoolAverages, error)

	// CountProfiles counts active profiles and profiles still awaiting a role.
	CountProfiles(ctx context.Context) (active int64, pending int64, err error)
}
