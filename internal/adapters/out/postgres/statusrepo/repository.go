package statusrepo

import (
	"context"
	"errors"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/domain/model/statusreg"
	"orderintegrity/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStatusRepository implements ports.StatusRegistry using GORM.
type GormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// CountAssignments counts rows linking an existing status to the state.
func (r *GormStatusRepository) CountAssignments(
	ctx context.Context,
	status order.Status,
	state order.State,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("order_status_states AS a").
		Joins("JOIN order_statuses s ON s.status = a.status").
		Where("a.status = ? AND a.state = ?", status.String(), state.String()).
		Count(&count).Error
	return count, err
}

// DefaultStatus returns the state's default status. A state without a flagged default
// falls back to its first assigned status by code.
func (r *GormStatusRepository) DefaultStatus(ctx context.Context, state order.State) (order.Status, error) {
	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("state = ?", state.String()).
		Order("is_default DESC, status ASC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("default status of state", state.String())
		}
		return "", err
	}

	return order.Status(dto.Status), nil
}

// SaveLabel inserts the status or renames it.
func (r *GormStatusRepository) SaveLabel(ctx context.Context, label statusreg.Label) error {
	if err := label.Validate(); err != nil {
		return err
	}

	dto := StatusDTO{Status: label.Status().String(), Label: label.Text()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "status"}},
			DoUpdates: clause.AssignmentColumns([]string{"label"}),
		}).
		Create(&dto).Error
}

// Assign upserts the assignment. A new default demotes the state's previous default first.
func (r *GormStatusRepository) Assign(ctx context.Context, assignment statusreg.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if assignment.IsDefault() {
		err := db.Model(&AssignmentDTO{}).
			Where("state = ? AND is_default AND status <> ?",
				assignment.State().String(), assignment.Status().String()).
			Update("is_default", false).Error
		if err != nil {
			return err
		}
	}

	dto := AssignmentDTO{
		Status:    assignment.Status().String(),
		State:     assignment.State().String(),
		IsDefault: assignment.IsDefault(),
	}
	return db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "status"}, {Name: "state"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_default"}),
		}).
		Create(&dto).Error
}

func (r *GormStatusRepository) Unassign(ctx context.Context, status order.Status, state order.State) error {
	result := r.db.WithContext(ctx).
		Where("status = ? AND state = ?", status.String(), state.String()).
		Delete(&AssignmentDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", status.String()+"@"+state.String())
	}

	return nil
}

func (r *GormStatusRepository) ListByState(ctx context.Context, state order.State) ([]statusreg.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("state = ?", state.String()).
		Order("status").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]statusreg.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, aErr := assignmentToDomain(dto)
		if aErr != nil {
			return nil, aErr
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
