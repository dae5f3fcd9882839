package models

import "time"

// FeeType defines a chargeable fee category
type FeeType struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsMandatory  bool   `json:"is_mandatory"`
	DueFrequency string `json:"due_frequency,omitempty"` // monthly, quarterly, yearly
}

// FeeStructure binds a fee type and amount to a class for an academic year
type FeeStructure struct {
	ID                string `json:"id"`
	FeeTypeID         string `json:"fee_type"`
	FeeTypeName       string `json:"fee_type_name,omitempty"`
	ClassID           string `json:"class_assigned"`
	ClassName         string `json:"class_name,omitempty"`
	Amount            string `json:"amount"` // decimal carried as string, as the backend emits it
	AcademicYear      string `json:"academic_year"`
	LateFeePercentage string `json:"late_fee_percentage,omitempty"`
}

// FeeRecord defines one student's dues against one fee structure
type FeeRecord struct {
	ID                string     `json:"id"`
	StudentID         string     `json:"student"`
	StudentName       string     `json:"student_name,omitempty"`
	StudentRoll       string     `json:"student_roll,omitempty"`
	FeeStructureID    string     `json:"fee_structure"`
	FeeTypeName       string     `json:"fee_type_name,omitempty"`
	ClassName         string     `json:"class_name,omitempty"`
	DueDate           string     `json:"due_date"`
	Amount            string     `json:"amount"`
	PaidAmount        string     `json:"paid_amount"`
	LateFee           string     `json:"late_fee,omitempty"`
	OutstandingAmount string     `json:"outstanding_amount,omitempty"`
	Status            string     `json:"status"` // pending, partial, paid, overdue
	PaymentDate       string     `json:"payment_date,omitempty"`
	PaymentMethod     string     `json:"payment_method,omitempty"`
	TransactionID     string     `json:"transaction_id,omitempty"`
	Remarks           string     `json:"remarks,omitempty"`
	IsOverdue         bool       `json:"is_overdue,omitempty"`
	Payments          []FeePayment `json:"payments,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// FeePayment defines one payment applied to a fee record
type FeePayment struct {
	ID              string     `json:"id"`
	Amount          string     `json:"amount"`
	PaymentMethod   string     `json:"payment_method"`
	TransactionID   string     `json:"transaction_id,omitempty"`
	ReferenceNumber string     `json:"reference_number,omitempty"`
	PaymentDate     string     `json:"payment_date"`
	ReceivedByID    string     `json:"received_by,omitempty"`
	ReceivedByName  string     `json:"received_by_name,omitempty"`
	Remarks         string     `json:"remarks,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// FeeDashboardStats defines the fee-wide aggregate for dashboards.
type FeeDashboardStats struct {
	TotalCollected   string `json:"total_collected"`
	TotalOutstanding string `json:"total_outstanding"`
	TotalOverdue     string `json:"total_overdue"`
	CollectionRate   float64 `json:"collection_rate"`
	PendingRecords   int    `json:"pending_records"`
	PaidRecords      int    `json:"paid_records"`
}

// FeeSummary defines the per-caller fee roll-up.
type FeeSummary struct {
	TotalDue    string `json:"total_due"`
	TotalPaid   string `json:"total_paid"`
	Outstanding string `json:"outstanding"`
	Records     int    `json:"records"`
}
