package services

import (
	"context"
	"fmt"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// MakePaymentRequest records a payment against a fee record. Amount is a
// decimal string, matching how monetary values cross the wire.
type MakePaymentRequest struct {
	Amount        string `json:"amount" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	TransactionID string `json:"transaction_id,omitempty"`
	Remarks       string `json:"remarks,omitempty"`
}

// FeeService handles the /fees/* endpoint group.
type FeeService struct {
	client *client.Client
}

// NewFeeService creates a new FeeService
func NewFeeService(c *client.Client) *FeeService {
	return &FeeService{client: c}
}

// ListTypes lists the fee types.
func (s *FeeService) ListTypes(ctx context.Context) ([]models.FeeType, error) {
	var out []models.FeeType
	if err := s.client.Get(ctx, "/fees/types/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateType creates a fee type.
func (s *FeeService) CreateType(ctx context.Context, payload map[string]interface{}) (*models.FeeType, error) {
	var out models.FeeType
	if err := s.client.Post(ctx, "/fees/types/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStructures lists the fee structures, optionally filtered by class.
func (s *FeeService) ListStructures(ctx context.Context, params dto.ListParams) ([]models.FeeStructure, error) {
	var out []models.FeeStructure
	if err := s.client.Get(ctx, "/fees/structures/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStructure creates a fee structure.
func (s *FeeService) CreateStructure(ctx context.Context, payload map[string]interface{}) (*models.FeeStructure, error) {
	var out models.FeeStructure
	if err := s.client.Post(ctx, "/fees/structures/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRecords lists per-student fee records, optionally filtered.
func (s *FeeService) ListRecords(ctx context.Context, params dto.ListParams) ([]models.FeeRecord, error) {
	var out []models.FeeRecord
	if err := s.client.Get(ctx, "/fees/records/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecord retrieves one fee record with its payments.
func (s *FeeService) GetRecord(ctx context.Context, id string) (*models.FeeRecord, error) {
	var out models.FeeRecord
	if err := s.client.Get(ctx, fmt.Sprintf("/fees/records/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MakePayment records a payment against one fee record.
func (s *FeeService) MakePayment(ctx context.Context, recordID string, req MakePaymentRequest) (*models.FeePayment, error) {
	var out models.FeePayment
	if err := s.client.Post(ctx, fmt.Sprintf("/fees/records/%s/make_payment/", recordID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardStats fetches the school-wide fee collection aggregate.
func (s *FeeService) DashboardStats(ctx context.Context) (*models.FeeDashboardStats, error) {
	var out models.FeeDashboardStats
	if err := s.client.Get(ctx, "/fees/records/dashboard_stats/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary fetches the caller-scoped fee summary. Students and parents see
// their own dues; staff see the whole school.
func (s *FeeService) Summary(ctx context.Context, params dto.ListParams) (*models.FeeSummary, error) {
	var out models.FeeSummary
	if err := s.client.Get(ctx, "/fees/records/summary/", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPayments lists individual fee payments, optionally filtered.
func (s *FeeService) ListPayments(ctx context.Context, params dto.ListParams) ([]models.FeePayment, error) {
	var out []models.FeePayment
	if err := s.client.Get(ctx, "/fees/payments/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
