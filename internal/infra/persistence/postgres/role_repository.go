package postgres

import (
	"context"

	"gestao/internal/domain/entity"
	"gestao/internal/domain/repository"
	"gestao/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the repository.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindRoleByIdentityID retrieves the role assignment of an identity.
func (repo *roleRepository) FindRoleByIdentityID(ctx context.Context, identityID uuid.UUID) (*entity.RoleAssignment, error) {
	var roleM model.RoleAssignmentModel
	err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by identity id")
	}

	return toRoleAssignmentDomain(&roleM), nil
}

// UpsertRole creates the identity's role assignment or replaces its role.
// The unique constraint on identity_id drives the ON CONFLICT clause.
func (repo *roleRepository) UpsertRole(ctx context.Context, assignment *entity.RoleAssignment) error {
	roleM := fromRoleAssignmentDomain(assignment)
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		}).
		Create(roleM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert role assignment")
	}

	assignment.ID = roleM.ID
	assignment.CreatedAt = roleM.CreatedAt
	assignment.UpdatedAt = roleM.UpdatedAt

	return nil
}

// DeleteRoleByIdentityID removes the identity's role assignment.
func (repo *roleRepository) DeleteRoleByIdentityID(ctx context.Context, identityID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Delete(&model.RoleAssignmentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete role assignment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleAssignmentNotFound
	}

	return nil
}

// ListRoles retrieves all role assignments.
func (repo *roleRepository) ListRoles(ctx context.Context) ([]*entity.RoleAssignment, error) {
	var roleMs []model.RoleAssignmentModel
	err := repo.db.WithContext(ctx).
		Find(&roleMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role assignments")
	}

	assignments := make([]*entity.RoleAssignment, len(roleMs))
	for i := range roleMs {
		assignments[i] = toRoleAssignmentDomain(&roleMs[i])
	}

	return assignments, nil
}

func toRoleAssignmentDomain(m *model.RoleAssignmentModel) *entity.RoleAssignment {
	return &entity.RoleAssignment{
		ID:         m.ID,
		IdentityID: m.IdentityID,
		Role:       entity.Role(m.Role),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromRoleAssignmentDomain(e *entity.RoleAssignment) *model.RoleAssignmentModel {
	return &model.RoleAssignmentModel{
		ID:         e.ID,
		IdentityID: e.IdentityID,
		Role:       e.Role.String(),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
