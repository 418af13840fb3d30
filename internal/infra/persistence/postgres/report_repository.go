package postgres

import (
	"context"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/repository"
	"gestao/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface using GORM.
// Every aggregation runs in the database; nothing is summed in Go.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// CountActiveAthletes counts athletes with the active flag set.
func (repo *reportRepository) CountActiveAthletes(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AthleteModel{}).
		Where("active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active athletes")
	}

	return count, nil
}

// CountAthletesByCategory counts active athletes grouped by category.
func (repo *reportRepository) CountAthletesByCategory(ctx context.Context) (map[entity.Category]int64, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.AthleteModel{}).
		Select("category, count(*) AS count").
		Where("active = ?", true).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count athletes by category")
	}

	counts := make(map[entity.Category]int64, len(rows))
	for _, row := range rows {
		counts[entity.Category(row.Category)] = row.Count
	}

	return counts, nil
}

// CountInterventionsByType counts interventions grouped by type,
// optionally narrowed to one period.
func (repo *reportRepository) CountInterventionsByType(ctx context.Context, periodID *uuid.UUID) (map[entity.InterventionType]int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.InterventionModel{}).
		Select("type, count(*) AS count").
		Group("type")
	if periodID != nil {
		query = query.Where("period_id = ?", *periodID)
	}

	var rows []struct {
		Type  string
		Count int64
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count interventions by type")
	}

	counts := make(map[entity.InterventionType]int64, len(rows))
	for _, row := range rows {
		counts[entity.InterventionType(row.Type)] = row.Count
	}

	return counts, nil
}

// CountReferralsByStatus counts referrals grouped by status.
func (repo *reportRepository) CountReferralsByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ReferralModel{}).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count referrals by status")
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

// SchoolAverages averages attendance and grades over school records,
// optionally narrowed to one period. AVG ignores NULL columns, so records
// missing one indicator still contribute to the other.
func (repo *reportRepository) SchoolAverages(ctx context.Context, periodID *uuid.UUID) (*repository.SchoolAverages, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.SchoolRecordModel{}).
		Select("AVG(attendance_pct) AS attendance_pct, AVG(grade_average) AS grade_average")
	if periodID != nil {
		query = query.Where("period_id = ?", *periodID)
	}

	var row struct {
		AttendancePct *float64
		GradeAverage  *float64
	}
	if err := query.Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to average school records")
	}

	return &repository.SchoolAverages{
		AttendancePct: row.AttendancePct,
		GradeAverage:  row.GradeAverage,
	}, nil
}

// CountProfiles counts active profiles and profiles still awaiting a role.
func (repo *reportRepository) CountProfiles(ctx context.Context) (int64, int64, error) {
	var active int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("active = ?", true).
		Count(&active).Error
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to count active profiles")
	}

	assigned := repo.db.Model(&model.RoleAssignmentModel{}).Select("identity_id")

	var pending int64
	err = repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("active = ?", true).
		Where("identity_id NOT IN (?)", assigned).
		Count(&pending).Error
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to count pending profiles")
	}

	return active, pending, nil
}
