package impl

import (
	"context"
	"log/slog"

	"gestao/internal/domain/entity"
	domainerrors "gestao/internal/domain/errors"
	"gestao/internal/domain/repository"
	"gestao/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pedagogyService implements the PedagogyUsecase interface.
type pedagogyService struct {
	schools     repository.SchoolRepository
	enrollments repository.EnrollmentRepository
	records     repository.SchoolRecordRepository
	periods     repository.PeriodRepository
	logger      *slog.Logger
}

// NewPedagogyService is the constructor for pedagogyService.
func NewPedagogyService(
	schools repository.SchoolRepository,
	enrollments repository.EnrollmentRepository,
	records repository.SchoolRecordRepository,
	periods repository.PeriodRepository,
	logger *slog.Logger,
) usecase.PedagogyUsecase {
	return &pedagogyService{
		schools:     schools,
		enrollments: enrollments,
		records:     records,
		periods:     periods,
		logger:      logger,
	}
}

// CreateSchool registers a partner school.
func (srv *pedagogyService) CreateSchool(ctx context.Context, input *usecase.CreateSchoolInput) (*entity.School, error) {
	srv.logger.Info("Creating school")

	school := &entity.School{
		Name:        input.Name,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Coordinator: input.Coordinator,
		Active:      true,
	}
	if err := srv.schools.CreateSchool(ctx, school); err != nil {
		return nil, errors.Wrap(err, "failed to create school")
	}

	return school, nil
}

// ListSchools retrieves all partner schools.
func (srv *pedagogyService) ListSchools(ctx context.Context) ([]*entity.School, error) {
	schools, err := srv.schools.ListSchools(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schools")
	}

	return schools, nil
}

// UpdateSchool applies the non-nil input fields to a school.
func (srv *pedagogyService) UpdateSchool(ctx context.Context, id uuid.UUID, input *usecase.UpdateSchoolInput) (*entity.School, error) {
	srv.logger.Info("Updating school", "schoolID", id)

	school, err := srv.schools.FindSchoolByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSchoolNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "school not found")
		}

		return nil, errors.Wrap(err, "failed to find school")
	}

	if input.Name != nil {
		school.Name = *input.Name
	}
	if input.Address != nil {
		school.Address = *input.Address
	}
	if input.Phone != nil {
		school.Phone = *input.Phone
	}
	if input.Email != nil {
		school.Email = *input.Email
	}
	if input.Coordinator != nil {
		school.Coordinator = *input.Coordinator
	}
	if input.Active != nil {
		school.Active = *input.Active
	}

	if err := srv.schools.UpdateSchool(ctx, school); err != nil {
		return nil, errors.Wrap(err, "failed to update school")
	}

	return school, nil
}

// CreateEnrollment links an athlete to a school for a school year.
func (srv *pedagogyService) CreateEnrollment(ctx context.Context, input *usecase.CreateEnrollmentInput) (*entity.Enrollment, error) {
	srv.logger.Info("Creating enrollment", "athleteID", input.AthleteID, "schoolID", input.SchoolID)

	if _, err := srv.schools.FindSchoolByID(ctx, input.SchoolID); err != nil {
		if errors.Is(err, repository.ErrSchoolNotFound) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "school does not exist")
		}

		return nil, errors.Wrap(err, "failed to find school")
	}

	enrollment := &entity.Enrollment{
		AthleteID:  input.AthleteID,
		SchoolID:   input.SchoolID,
		Grade:      input.Grade,
		Shift:      input.Shift,
		SchoolYear: input.SchoolYear,
		Active:     true,
		EnrolledAt: input.EnrolledAt,
	}
	if err := srv.enrollments.CreateEnrollment(ctx, enrollment); err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "athlete does not exist")
		}

		return nil, errors.Wrap(err, "failed to create enrollment")
	}

	return enrollment, nil
}

// ListEnrollments retrieves enrollments, optionally narrowed to one athlete.
func (srv *pedagogyService) ListEnrollments(ctx context.Context, athleteID *uuid.UUID) ([]*entity.Enrollment, error) {
	enrollments, err := srv.enrollments.ListEnrollments(ctx, athleteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enrollments")
	}

	return enrollments, nil
}

// UpdateEnrollment applies the non-nil input fields to an enrollment.
func (srv *pedagogyService) UpdateEnrollment(ctx context.Context, id uuid.UUID, input *usecase.UpdateEnrollmentInput) (*entity.Enrollment, error) {
	srv.logger.Info("Updating enrollment", "enrollmentID", id)

	enrollment, err := srv.enrollments.FindEnrollmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "enrollment not found")
		}

		return nil, errors.Wrap(err, "failed to find enrollment")
	}

	if input.SchoolID != nil {
		if _, err := srv.schools.FindSchoolByID(ctx, *input.SchoolID); err != nil {
			if errors.Is(err, repository.ErrSchoolNotFound) {
				return nil, errors.Wrap(domainerrors.ErrValidationFailed, "school does not exist")
			}

			return nil, errors.Wrap(err, "failed to find school")
		}
		enrollment.SchoolID = *input.SchoolID
	}
	if input.Grade != nil {
		enrollment.Grade = *input.Grade
	}
	if input.Shift != nil {
		enrollment.Shift = *input.Shift
	}
	if input.SchoolYear != nil {
		enrollment.SchoolYear = *input.SchoolYear
	}
	if input.Active != nil {
		enrollment.Active = *input.Active
	}
	if input.EnrolledAt != nil {
		enrollment.EnrolledAt = *input.EnrolledAt
	}

	if err := srv.enrollments.UpdateEnrollment(ctx, enrollment); err != nil {
		return nil, errors.Wrap(err, "failed to update enrollment")
	}

	return enrollment, nil
}

// CreateSchoolRecord records a follow-up owned by the acting professional.
// A linked period must still be open.
func (srv *pedagogyService) CreateSchoolRecord(ctx context.Context, actorProfileID uuid.UUID, input *usecase.CreateSchoolRecordInput) (*entity.SchoolRecord, error) {
	srv.logger.Info("Creating school record", "athleteID", input.AthleteID, "professionalID", actorProfileID)

	if err := ensurePeriodOpen(ctx, srv.periods, input.PeriodID); err != nil {
		return nil, err
	}

	record := &entity.SchoolRecord{
		AthleteID:      input.AthleteID,
		ProfessionalID: actorProfileID,
		PeriodID:       input.PeriodID,
		AttendancePct:  input.AttendancePct,
		GradeAverage:   input.GradeAverage,
		Complaints:     input.Complaints,
		Incidents:      input.Incidents,
		Notes:          input.Notes,
		RecordedAt:     input.RecordedAt,
	}
	if err := srv.records.CreateSchoolRecord(ctx, record); err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "athlete does not exist")
		}
		if errors.Is(err, repository.ErrSchoolRecordInvalid) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "record rejected by a table constraint")
		}

		return nil, errors.Wrap(err, "failed to create school record")
	}

	return record, nil
}

// ListSchoolRecords retrieves follow-up records matching the filter.
func (srv *pedagogyService) ListSchoolRecords(ctx context.Context, input *usecase.ListSchoolRecordsInput) ([]*entity.SchoolRecord, error) {
	filter := repository.SchoolRecordFilter{}
	if input != nil {
		filter.AthleteID = input.AthleteID
		filter.PeriodID = input.PeriodID
	}

	records, err := srv.records.ListSchoolRecords(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list school records")
	}

	return records, nil
}

// UpdateSchoolRecord applies the non-nil input fields. Records inside a
// closed period are frozen.
func (srv *pedagogyService) UpdateSchoolRecord(ctx context.Context, id uuid.UUID, input *usecase.UpdateSchoolRecordInput) (*entity.SchoolRecord, error) {
	srv.logger.Info("Updating school record", "schoolRecordID", id)

	record, err := srv.records.FindSchoolRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSchoolRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "school record not found")
		}

		return nil, errors.Wrap(err, "failed to find school record")
	}

	if err := ensurePeriodOpen(ctx, srv.periods, record.PeriodID); err != nil {
		return nil, err
	}

	if input.PeriodID != nil {
		if err := ensurePeriodOpen(ctx, srv.periods, input.PeriodID); err != nil {
			return nil, err
		}
		record.PeriodID = input.PeriodID
	}
	if input.AttendancePct != nil {
		record.AttendancePct = input.AttendancePct
	}
	if input.GradeAverage != nil {
		record.GradeAverage = input.GradeAverage
	}
	if input.Complaints != nil {
		record.Complaints = *input.Complaints
	}
	if input.Incidents != nil {
		record.Incidents = *input.Incidents
	}
	if input.Notes != nil {
		record.Notes = *input.Notes
	}
	if input.RecordedAt != nil {
		record.RecordedAt = *input.RecordedAt
	}

	if err := srv.records.UpdateSchoolRecord(ctx, record); err != nil {
		if errors.Is(err, repository.ErrSchoolRecordInvalid) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "record rejected by a table constraint")
		}

		return nil, errors.Wrap(err, "failed to update school record")
	}

	return record, nil
}

// DeleteSchoolRecord removes a follow-up record unless its period closed.
func (srv *pedagogyService) DeleteSchoolRecord(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting school record", "schoolRecordID", id)

	record, err := srv.records.FindSchoolRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSchoolRecordNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "school record not found")
		}

		return errors.Wrap(err, "failed to find school record")
	}

	if err := ensurePeriodOpen(ctx, srv.periods, record.PeriodID); err != nil {
		return err
	}

	if err := srv.records.DeleteSchoolRecord(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete school record")
	}

	return nil
}
