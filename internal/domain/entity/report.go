package entity

// Summary is the cross-department aggregation served by the reports area.
// All counts respect the active flags of the underlying records.
type Summary struct {
	ActiveAthletes      int64
	AthletesByCategory  map[Category]int64
	InterventionsByType map[InterventionType]int64
	ReferralsByStatus   map[string]int64
	AvgAttendancePct    *float64 // nil when no school records carry attendance.
	AvgGradeAverage     *float64
	ActiveProfiles      int64
	PendingApprovals    int64 // Identities with a profile but no role yet.
}
