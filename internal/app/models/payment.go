package models

import "time"

// PaymentTransaction defines one gateway payment attempt
type PaymentTransaction struct {
	ID                string     `json:"id"`
	TransactionID     string     `json:"transaction_id"`
	StudentID         string     `json:"student"`
	StudentName       string     `json:"student_name,omitempty"`
	StudentRollNumber string     `json:"student_roll_number,omitempty"`
	PaymentType       string     `json:"payment_type"`
	Amount            float64    `json:"amount"`
	Currency          string     `json:"currency"`
	Gateway           string     `json:"gateway,omitempty"`
	Status            string     `json:"status"` // initiated, pending, completed, failed
	Description       string     `json:"description,omitempty"`
	DueDate           string     `json:"due_date,omitempty"`
	PaidDate          string     `json:"paid_date,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

// PaymentPlan defines a reusable installment plan
type PaymentPlan struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	PlanType    string     `json:"plan_type"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// StudentPaymentPlan assigns a plan to one student
type StudentPaymentPlan struct {
	ID            string `json:"id"`
	StudentID     string `json:"student"`
	PaymentPlanID string `json:"payment_plan"`
	StartDate     string `json:"start_date"`
	IsActive      bool   `json:"is_active,omitempty"`
}
