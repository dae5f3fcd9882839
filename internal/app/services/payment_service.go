package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// InitiatePaymentRequest starts an online payment for a fee record. When
// IdempotencyKey is empty a fresh UUID is generated so a retried initiation
// cannot double-charge.
type InitiatePaymentRequest struct {
	FeeRecordID    string `json:"fee_record" validate:"required"`
	Amount         string `json:"amount" validate:"required"`
	PaymentMethod  string `json:"payment_method" validate:"required"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// ConfirmPaymentRequest completes a gateway payment with its reference.
type ConfirmPaymentRequest struct {
	GatewayReference string `json:"gateway_reference" validate:"required"`
	Status           string `json:"status,omitempty"`
}

// PaymentService handles the /payments/* endpoint group.
type PaymentService struct {
	client *client.Client
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(c *client.Client) *PaymentService {
	return &PaymentService{client: c}
}

// ListTransactions lists payment transactions, optionally filtered.
func (s *PaymentService) ListTransactions(ctx context.Context, params dto.ListParams) ([]models.PaymentTransaction, error) {
	var out []models.PaymentTransaction
	if err := s.client.Get(ctx, "/payments/transactions/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTransaction retrieves one payment transaction.
func (s *PaymentService) GetTransaction(ctx context.Context, id string) (*models.PaymentTransaction, error) {
	var out models.PaymentTransaction
	if err := s.client.Get(ctx, fmt.Sprintf("/payments/transactions/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InitiatePayment starts an online payment transaction.
func (s *PaymentService) InitiatePayment(ctx context.Context, req InitiatePaymentRequest) (*models.PaymentTransaction, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}

	var out models.PaymentTransaction
	if err := s.client.Post(ctx, "/payments/transactions/initiate_payment/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmPayment completes an initiated transaction.
func (s *PaymentService) ConfirmPayment(ctx context.Context, transactionID string, req ConfirmPaymentRequest) (*models.PaymentTransaction, error) {
	path := fmt.Sprintf("/payments/transactions/%s/confirm_payment/", transactionID)

	var out models.PaymentTransaction
	if err := s.client.Post(ctx, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPlans lists the installment payment plans.
func (s *PaymentService) ListPlans(ctx context.Context) ([]models.PaymentPlan, error) {
	var out []models.PaymentPlan
	if err := s.client.Get(ctx, "/payments/plans/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePlan creates an installment payment plan.
func (s *PaymentService) CreatePlan(ctx context.Context, payload map[string]interface{}) (*models.PaymentPlan, error) {
	var out models.PaymentPlan
	if err := s.client.Post(ctx, "/payments/plans/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePlan patches one payment plan.
func (s *PaymentService) UpdatePlan(ctx context.Context, id string, patch map[string]interface{}) (*models.PaymentPlan, error) {
	var out models.PaymentPlan
	if err := s.client.Patch(ctx, fmt.Sprintf("/payments/plans/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStudentPlans lists plan enrollments, optionally filtered by student.
func (s *PaymentService) ListStudentPlans(ctx context.Context, params dto.ListParams) ([]models.StudentPaymentPlan, error) {
	var out []models.StudentPaymentPlan
	if err := s.client.Get(ctx, "/payments/student-plans/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnrollStudentPlan enrolls a student into an installment plan.
func (s *PaymentService) EnrollStudentPlan(ctx context.Context, payload map[string]interface{}) (*models.StudentPaymentPlan, error) {
	var out models.StudentPaymentPlan
	if err := s.client.Post(ctx, "/payments/student-plans/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
