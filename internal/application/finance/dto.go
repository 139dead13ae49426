package finance

import (
	"time"

	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Payment method DTOs
// =============================================================================

// CreatePaymentMethodRequest represents a request to create a payment method
type CreatePaymentMethodRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=50"`
	Description string `json:"description" binding:"required,min=1,max=200"`
}

// UpdatePaymentMethodRequest represents a request to update a payment method
type UpdatePaymentMethodRequest struct {
	Description string `json:"description" binding:"required,min=1,max=200"`
}

// PaymentMethodResponse represents a payment method in API responses
type PaymentMethodResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// ToPaymentMethodResponse converts a domain PaymentMethod to its response
func ToPaymentMethodResponse(m *finance.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:          m.ID,
		Code:        m.Code,
		Description: m.Description,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Version:     m.Version,
	}
}

// =============================================================================
// Payment condition DTOs
// =============================================================================

// InstallmentRuleRequest is one installment rule in a condition payload
type InstallmentRuleRequest struct {
	Number          int             `json:"number" binding:"required,min=1"`
	DaysOffset      int             `json:"days_offset" binding:"min=0"`
	Percentage      decimal.Decimal `json:"percentage" binding:"required"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id" binding:"required"`
}

// CreatePaymentConditionRequest represents a request to create a condition
type CreatePaymentConditionRequest struct {
	Name        string                   `json:"name" binding:"required,min=1,max=100"`
	Description string                   `json:"description" binding:"max=500"`
	Rules       []InstallmentRuleRequest `json:"rules" binding:"required,min=1,dive"`
}

// UpdatePaymentConditionRequest represents a request to update a condition
type UpdatePaymentConditionRequest struct {
	Name        string                   `json:"name" binding:"required,min=1,max=100"`
	Description string                   `json:"description" binding:"max=500"`
	Rules       []InstallmentRuleRequest `json:"rules" binding:"required,min=1,dive"`
}

// InstallmentRuleResponse is one installment rule in API responses
type InstallmentRuleResponse struct {
	Number          int             `json:"number"`
	DaysOffset      int             `json:"days_offset"`
	Percentage      decimal.Decimal `json:"percentage"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id"`
}

// PaymentConditionResponse represents a payment condition in API responses
type PaymentConditionResponse struct {
	ID          uuid.UUID                 `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Rules       []InstallmentRuleResponse `json:"rules"`
	Active      bool                      `json:"active"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
	Version     int                       `json:"version"`
}

// ToPaymentConditionResponse converts a domain PaymentCondition to its response
func ToPaymentConditionResponse(pc *finance.PaymentCondition) PaymentConditionResponse {
	rules := make([]InstallmentRuleResponse, 0, len(pc.Rules))
	for _, r := range pc.Rules {
		rules = append(rules, InstallmentRuleResponse{
			Number:          r.Number,
			DaysOffset:      r.DaysOffset,
			Percentage:      r.Percentage,
			PaymentMethodID: r.PaymentMethodID,
		})
	}
	return PaymentConditionResponse{
		ID:          pc.ID,
		Name:        pc.Name,
		Description: pc.Description,
		Rules:       rules,
		Active:      pc.Active,
		CreatedAt:   pc.CreatedAt,
		UpdatedAt:   pc.UpdatedAt,
		Version:     pc.Version,
	}
}

// SimulateScheduleRequest asks for a schedule preview for a document total
type SimulateScheduleRequest struct {
	Total         decimal.Decimal `json:"total" binding:"required"`
	ReferenceDate *time.Time      `json:"reference_date"`
}

// ScheduledInstallmentResponse is one expanded installment in a preview
type ScheduledInstallmentResponse struct {
	Number          int             `json:"number"`
	Amount          decimal.Decimal `json:"amount"`
	DueDate         time.Time       `json:"due_date"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id"`
}

// =============================================================================
// Account payable DTOs
// =============================================================================

// CreatePayableRequest represents a request to create a payable installment
type CreatePayableRequest struct {
	DocumentNumber    string           `json:"document_number" binding:"required,min=1,max=50"`
	SupplierID        uuid.UUID        `json:"supplier_id" binding:"required"`
	InstallmentNumber int              `json:"installment_number" binding:"required,min=1"`
	InstallmentCount  int              `json:"installment_count" binding:"required,min=1"`
	OriginalAmount    decimal.Decimal  `json:"original_amount" binding:"required"`
	Discount          *decimal.Decimal `json:"discount"`
	Interest          *decimal.Decimal `json:"interest"`
	Penalty           *decimal.Decimal `json:"penalty"`
	IssueDate         time.Time        `json:"issue_date" binding:"required"`
	DueDate           time.Time        `json:"due_date" binding:"required"`
	Notes             string           `json:"notes"`
}

// UpdatePayableRequest represents a request to update a pending payable
type UpdatePayableRequest struct {
	OriginalAmount *decimal.Decimal `json:"original_amount"`
	Discount       *decimal.Decimal `json:"discount"`
	Interest       *decimal.Decimal `json:"interest"`
	Penalty        *decimal.Decimal `json:"penalty"`
	DueDate        *time.Time       `json:"due_date"`
	Notes          *string          `json:"notes"`
}

// PayRequest settles a payable
type PayRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate     *time.Time      `json:"payment_date"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id" binding:"required"`
}

// CancelRequest cancels a financial document
type CancelRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// GeneratePayablesRequest generates the payables of a document from a
// payment condition's installment schedule
type GeneratePayablesRequest struct {
	DocumentNumber     string          `json:"document_number" binding:"required,min=1,max=50"`
	SupplierID         uuid.UUID       `json:"supplier_id" binding:"required"`
	PaymentConditionID uuid.UUID       `json:"payment_condition_id" binding:"required"`
	Total              decimal.Decimal `json:"total" binding:"required"`
	ReferenceDate      time.Time       `json:"reference_date" binding:"required"`
}

// PayableResponse represents a payable in API responses
type PayableResponse struct {
	ID                uuid.UUID       `json:"id"`
	DocumentNumber    string          `json:"document_number"`
	SupplierID        uuid.UUID       `json:"supplier_id"`
	SupplierName      string          `json:"supplier_name"`
	InstallmentNumber int             `json:"installment_number"`
	InstallmentCount  int             `json:"installment_count"`
	OriginalAmount    decimal.Decimal `json:"original_amount"`
	Discount          decimal.Decimal `json:"discount"`
	Interest          decimal.Decimal `json:"interest"`
	Penalty           decimal.Decimal `json:"penalty"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	Status            string          `json:"status"`
	PaymentMethodID   *uuid.UUID      `json:"payment_method_id"`
	IssueDate         time.Time       `json:"issue_date"`
	DueDate           time.Time       `json:"due_date"`
	PaymentDate       *time.Time      `json:"payment_date"`
	Overdue           bool            `json:"overdue"`
	CancelReason      string          `json:"cancel_reason,omitempty"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// ToPayableResponse converts a domain AccountPayable to PayableResponse
func ToPayableResponse(ap *finance.AccountPayable) PayableResponse {
	return PayableResponse{
		ID:                ap.ID,
		DocumentNumber:    ap.DocumentNumber,
		SupplierID:        ap.SupplierID,
		SupplierName:      ap.SupplierName,
		InstallmentNumber: ap.InstallmentNumber,
		InstallmentCount:  ap.InstallmentCount,
		OriginalAmount:    ap.OriginalAmount,
		Discount:          ap.Discount,
		Interest:          ap.Interest,
		Penalty:           ap.Penalty,
		TotalAmount:       ap.TotalAmount,
		PaidAmount:        ap.PaidAmount,
		Status:            ap.Status.String(),
		PaymentMethodID:   ap.PaymentMethodID,
		IssueDate:         ap.IssueDate,
		DueDate:           ap.DueDate,
		PaymentDate:       ap.PaymentDate,
		Overdue:           ap.IsOverdue(),
		CancelReason:      ap.CancelReason,
		Notes:             ap.Notes,
		CreatedAt:         ap.CreatedAt,
		UpdatedAt:         ap.UpdatedAt,
		Version:           ap.Version,
	}
}

// =============================================================================
// Account receivable DTOs
// =============================================================================

// CreateReceivableRequest represents a request to create a receivable
type CreateReceivableRequest struct {
	DocumentNumber    string           `json:"document_number" binding:"required,min=1,max=50"`
	ClientID          uuid.UUID        `json:"client_id" binding:"required"`
	InstallmentNumber int              `json:"installment_number" binding:"required,min=1"`
	InstallmentCount  int              `json:"installment_count" binding:"required,min=1"`
	OriginalAmount    decimal.Decimal  `json:"original_amount" binding:"required"`
	Discount          *decimal.Decimal `json:"discount"`
	Interest          *decimal.Decimal `json:"interest"`
	Penalty           *decimal.Decimal `json:"penalty"`
	IssueDate         time.Time        `json:"issue_date" binding:"required"`
	DueDate           time.Time        `json:"due_date" binding:"required"`
	Notes             string           `json:"notes"`
}

// UpdateReceivableRequest represents a request to update a pending receivable
type UpdateReceivableRequest struct {
	OriginalAmount *decimal.Decimal `json:"original_amount"`
	Discount       *decimal.Decimal `json:"discount"`
	Interest       *decimal.Decimal `json:"interest"`
	Penalty        *decimal.Decimal `json:"penalty"`
	DueDate        *time.Time       `json:"due_date"`
	Notes          *string          `json:"notes"`
}

// ReceiveRequest settles a receivable
type ReceiveRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	ReceiptDate     *time.Time      `json:"receipt_date"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id" binding:"required"`
}

// GenerateReceivablesRequest generates the receivables of a document from a
// payment condition's installment schedule
type GenerateReceivablesRequest struct {
	DocumentNumber     string          `json:"document_number" binding:"required,min=1,max=50"`
	ClientID           uuid.UUID       `json:"client_id" binding:"required"`
	PaymentConditionID uuid.UUID       `json:"payment_condition_id" binding:"required"`
	Total              decimal.Decimal `json:"total" binding:"required"`
	ReferenceDate      time.Time       `json:"reference_date" binding:"required"`
}

// ReceivableResponse represents a receivable in API responses
type ReceivableResponse struct {
	ID                uuid.UUID       `json:"id"`
	DocumentNumber    string          `json:"document_number"`
	ClientID          uuid.UUID       `json:"client_id"`
	ClientName        string          `json:"client_name"`
	InstallmentNumber int             `json:"installment_number"`
	InstallmentCount  int             `json:"installment_count"`
	OriginalAmount    decimal.Decimal `json:"original_amount"`
	Discount          decimal.Decimal `json:"discount"`
	Interest          decimal.Decimal `json:"interest"`
	Penalty           decimal.Decimal `json:"penalty"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	ReceivedAmount    decimal.Decimal `json:"received_amount"`
	Status            string          `json:"status"`
	PaymentMethodID   *uuid.UUID      `json:"payment_method_id"`
	IssueDate         time.Time       `json:"issue_date"`
	DueDate           time.Time       `json:"due_date"`
	ReceiptDate       *time.Time      `json:"receipt_date"`
	Overdue           bool            `json:"overdue"`
	CancelReason      string          `json:"cancel_reason,omitempty"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// ToReceivableResponse converts a domain AccountReceivable to its response
func ToReceivableResponse(ar *finance.AccountReceivable) ReceivableResponse {
	return ReceivableResponse{
		ID:                ar.ID,
		DocumentNumber:    ar.DocumentNumber,
		ClientID:          ar.ClientID,
		ClientName:        ar.ClientName,
		InstallmentNumber: ar.InstallmentNumber,
		InstallmentCount:  ar.InstallmentCount,
		OriginalAmount:    ar.OriginalAmount,
		Discount:          ar.Discount,
		Interest:          ar.Interest,
		Penalty:           ar.Penalty,
		TotalAmount:       ar.TotalAmount,
		ReceivedAmount:    ar.ReceivedAmount,
		Status:            ar.Status.String(),
		PaymentMethodID:   ar.PaymentMethodID,
		IssueDate:         ar.IssueDate,
		DueDate:           ar.DueDate,
		ReceiptDate:       ar.ReceiptDate,
		Overdue:           ar.IsOverdue(),
		CancelReason:      ar.CancelReason,
		Notes:             ar.Notes,
		CreatedAt:         ar.CreatedAt,
		UpdatedAt:         ar.UpdatedAt,
		Version:           ar.Version,
	}
}

// =============================================================================
// Summaries and list filters
// =============================================================================

// PayableSummaryResponse aggregates payables by status
type PayableSummaryResponse struct {
	PendingCount  int64           `json:"pending_count"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	PaidCount     int64           `json:"paid_count"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	OverdueCount  int64           `json:"overdue_count"`
	OverdueAmount decimal.Decimal `json:"overdue_amount"`
}

// ReceivableSummaryResponse aggregates receivables by status
type ReceivableSummaryResponse struct {
	PendingCount   int64           `json:"pending_count"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	ReceivedCount  int64           `json:"received_count"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	OverdueCount   int64           `json:"overdue_count"`
	OverdueAmount  decimal.Decimal `json:"overdue_amount"`
}

// DocumentListFilter represents filter options for financial document lists
type DocumentListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
