package http

import (
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Capabilities struct {
	Canceled            bool `json:"canceled"`
	CanUnhold           bool `json:"can_unhold"`
	CanInvoice          bool `json:"can_invoice"`
	CanShip             bool `json:"can_ship"`
	CanCreditmemo       bool `json:"can_creditmemo"`
	InProcess           bool `json:"in_process"`
	ForcedCanCreditmemo bool `json:"forced_can_creditmemo"`
}

// SaveOrderRequest is the order snapshot sent by the host before it writes the order.
type SaveOrderRequest struct {
	State          string              `json:"state"`
	Status         string              `json:"status"`
	BaseGrandTotal decimal.Decimal     `json:"base_grand_total"`
	TotalRefunded  decimal.NullDecimal `json:"total_refunded"`
	Capabilities   Capabilities        `json:"capabilities"`
}

type SaveOrderResponse struct {
	ID     string `json:"id"`
	State  string `json:"state"`
	Status string `json:"status"`
}

type IntegrityReport struct {
	ID             string `json:"id"`
	CurrentState   string `json:"current_state"`
	CurrentStatus  string `json:"current_status"`
	ResolvedState  string `json:"resolved_state"`
	ResolvedStatus string `json:"resolved_status"`
	Transition     bool   `json:"transition"`
	Valid          bool   `json:"valid"`
	Violation      string `json:"violation,omitempty"`
}

type InconsistentOrder struct {
	ID     string `json:"id"`
	State  string `json:"state"`
	Status string `json:"status"`
}

type AssignStatusRequest struct {
	Status    string `json:"status"`
	Label     string `json:"label"`
	IsDefault bool   `json:"is_default"`
}

type StateStatus struct {
	Status    string `json:"status"`
	Label     string `json:"label"`
	IsDefault bool   `json:"is_default"`
}
