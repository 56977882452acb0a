// Package statusrepo stores the status registry: status labels and their state assignments.
package statusrepo

import (
	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/domain/model/statusreg"
)

// StatusDTO is a row of order_statuses.
type StatusDTO struct {
	Status string `gorm:"type:varchar(32);primaryKey"`
	Label  string `gorm:"type:varchar(128);not null"`
}

func (StatusDTO) TableName() string {
	return "order_statuses"
}

// AssignmentDTO is a row of order_status_states.
type AssignmentDTO struct {
	Status    string `gorm:"type:varchar(32);primaryKey"`
	State     string `gorm:"type:varchar(32);primaryKey"`
	IsDefault bool   `gorm:"not null;default:false"`
}

func (AssignmentDTO) TableName() string {
	return "order_status_states"
}

func assignmentToDomain(dto AssignmentDTO) (statusreg.Assignment, error) {
	return statusreg.NewAssignment(order.Status(dto.Status), order.State(dto.State), dto.IsDefault)
}
