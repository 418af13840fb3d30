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

// interventionRepository implements the repository.InterventionRepository interface using GORM.
type interventionRepository struct {
	db *gorm.DB
}

// NewInterventionRepository is the constructor for interventionRepository.
func NewInterventionRepository(db *gorm.DB) repository.InterventionRepository {
	return &interventionRepository{db: db}
}

// CreateIntervention persists a new intervention together with its athlete links.
// GORM's Create with associations inserts the join rows alongside the record.
func (repo *interventionRepository) CreateIntervention(ctx context.Context, intervention *entity.Intervention) error {
	interventionM := fromInterventionDomain(intervention)
	if err := repo.db.WithContext(ctx).Create(interventionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAthleteNotFound
		}

		return errors.Wrap(err, "failed to create intervention")
	}

	intervention.ID = interventionM.ID
	intervention.CreatedAt = interventionM.CreatedAt
	intervention.UpdatedAt = interventionM.UpdatedAt

	return nil
}

// FindInterventionByID retrieves an intervention with its athlete links.
func (repo *interventionRepository) FindInterventionByID(ctx context.Context, id uuid.UUID) (*entity.Intervention, error) {
	var interventionM model.InterventionModel
	err := repo.db.WithContext(ctx).
		Preload("Athletes").
		Where("id = ?", id).
		First(&interventionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInterventionNotFound
		}

		return nil, errors.Wrap(err, "failed to find intervention by id")
	}

	return toInterventionDomain(&interventionM), nil
}

// ListInterventions retrieves interventions matching the filter, newest first.
func (repo *interventionRepository) ListInterventions(ctx context.Context, filter repository.InterventionFilter) ([]*entity.Intervention, error) {
	query := repo.db.WithContext(ctx).Model(&model.InterventionModel{}).Preload("Athletes")
	if filter.ProfessionalID != nil {
		query = query.Where("professional_id = ?", *filter.ProfessionalID)
	}
	if filter.PeriodID != nil {
		query = query.Where("period_id = ?", *filter.PeriodID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if filter.AthleteID != nil {
		linked := repo.db.Model(&model.InterventionAthleteModel{}).
			Select("intervention_id").
			Where("athlete_id = ?", *filter.AthleteID)
		query = query.Where("id IN (?)", linked)
	}

	var interventionMs []model.InterventionModel
	if err := query.Order("date DESC, created_at DESC").Find(&interventionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list interventions")
	}

	interventions := make([]*entity.Intervention, len(interventionMs))
	for i := range interventionMs {
		interventions[i] = toInterventionDomain(&interventionMs[i])
	}

	return interventions, nil
}

// UpdateIntervention updates an intervention and replaces its athlete links.
func (repo *interventionRepository) UpdateIntervention(ctx context.Context, intervention *entity.Intervention) error {
	var category *string
	if intervention.Category != nil {
		s := intervention.Category.String()
		category = &s
	}

	result := repo.db.WithContext(ctx).
		Model(&model.InterventionModel{}).
		Where("id = ?", intervention.ID).
		Updates(map[string]any{
			"type":               intervention.Type.String(),
			"date":               intervention.Date,
			"start_time":         intervention.StartTime,
			"end_time":           intervention.EndTime,
			"category":           category,
			"period_id":          intervention.PeriodID,
			"description":        intervention.Description,
			"confidential_notes": intervention.ConfidentialNotes,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update intervention")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInterventionNotFound
	}

	return repo.replaceAthleteLinks(ctx, intervention.ID, intervention.AthleteIDs)
}

// DeleteIntervention removes an intervention and its athlete links.
func (repo *interventionRepository) DeleteIntervention(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("intervention_id = ?", id).
		Delete(&model.InterventionAthleteModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete intervention athlete links")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InterventionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete intervention")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInterventionNotFound
	}

	return nil
}

// replaceAthleteLinks swaps the join rows for the given intervention.
func (repo *interventionRepository) replaceAthleteLinks(ctx context.Context, interventionID uuid.UUID, athleteIDs []uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("intervention_id = ?", interventionID).
		Delete(&model.InterventionAthleteModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear intervention athlete links")
	}

	if len(athleteIDs) == 0 {
		return nil
	}

	links := make([]model.InterventionAthleteModel, len(athleteIDs))
	for i, athleteID := range athleteIDs {
		links[i] = model.InterventionAthleteModel{
			InterventionID: interventionID,
			AthleteID:      athleteID,
		}
	}

	if err := repo.db.WithContext(ctx).Create(&links).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAthleteNotFound
		}

		return errors.Wrap(err, "failed to create intervention athlete links")
	}

	return nil
}

func toInterventionDomain(m *model.InterventionModel) *entity.Intervention {
	var category *entity.Category
	if m.Category != nil {
		c := entity.Category(*m.Category)
		category = &c
	}

	athleteIDs := make([]uuid.UUID, len(m.Athletes))
	for i, link := range m.Athletes {
		athleteIDs[i] = link.AthleteID
	}

	return &entity.Intervention{
		ID:                m.ID,
		ProfessionalID:    m.ProfessionalID,
		Type:              entity.InterventionType(m.Type),
		Date:              m.Date,
		StartTime:         m.StartTime,
		EndTime:           m.EndTime,
		Category:          category,
		PeriodID:          m.PeriodID,
		Description:       m.Description,
		ConfidentialNotes: m.ConfidentialNotes,
		AthleteIDs:        athleteIDs,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromInterventionDomain(e *entity.Intervention) *model.InterventionModel {
	var category *string
	if e.Category != nil {
		s := e.Category.String()
		category = &s
	}

	links := make([]model.InterventionAthleteModel, len(e.AthleteIDs))
	for i, athleteID := range e.AthleteIDs {
		links[i] = model.InterventionAthleteModel{AthleteID: athleteID}
	}

	return &model.InterventionModel{
		ID:                e.ID,
		ProfessionalID:    e.ProfessionalID,
		Type:              e.Type.String(),
		Date:              e.Date,
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		Category:          category,
		PeriodID:          e.PeriodID,
		Description:       e.Description,
		ConfidentialNotes: e.ConfidentialNotes,
		Athletes:          links,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
