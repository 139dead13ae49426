package models

import (
	"sort"
	"time"

	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethodModel is the persistence model for the PaymentMethod aggregate root.
type PaymentMethodModel struct {
	AggregateModel
	Code        string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(200);not null"`
	Active      bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToDomain converts the persistence model to a domain PaymentMethod entity.
func (m *PaymentMethodModel) ToDomain() *finance.PaymentMethod {
	return &finance.PaymentMethod{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Description:       m.Description,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain PaymentMethod entity.
func (m *PaymentMethodModel) FromDomain(pm *finance.PaymentMethod) {
	m.FromDomainAggregateRoot(pm.BaseAggregateRoot)
	m.Code = pm.Code
	m.Description = pm.Description
	m.Active = pm.Active
}

// PaymentMethodModelFromDomain creates a new persistence model from a domain PaymentMethod.
func PaymentMethodModelFromDomain(pm *finance.PaymentMethod) *PaymentMethodModel {
	m := &PaymentMethodModel{}
	m.FromDomain(pm)
	return m
}

// PaymentConditionModel is the persistence model for the PaymentCondition aggregate root.
// Rules are stored in a child table and always saved as a full replacement.
type PaymentConditionModel struct {
	AggregateModel
	Name        string                 `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string                 `gorm:"type:varchar(500)"`
	Active      bool                   `gorm:"not null;default:true;index"`
	Rules       []InstallmentRuleModel `gorm:"foreignKey:ConditionID;references:ID"`
}

// TableName returns the table name for GORM
func (PaymentConditionModel) TableName() string {
	return "payment_conditions"
}

// ToDomain converts the persistence model to a domain PaymentCondition entity.
// Rules are returned ordered by installment number.
func (m *PaymentConditionModel) ToDomain() *finance.PaymentCondition {
	rules := make([]finance.InstallmentRule, len(m.Rules))
	for i, rm := range m.Rules {
		rules[i] = finance.InstallmentRule{
			Number:          rm.Number,
			DaysOffset:      rm.DaysOffset,
			Percentage:      rm.Percentage,
			PaymentMethodID: rm.PaymentMethodID,
		}
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Number < rules[j].Number })

	return &finance.PaymentCondition{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		Rules:             rules,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain PaymentCondition entity.
func (m *PaymentConditionModel) FromDomain(pc *finance.PaymentCondition) {
	m.FromDomainAggregateRoot(pc.BaseAggregateRoot)
	m.Name = pc.Name
	m.Description = pc.Description
	m.Active = pc.Active
	m.Rules = make([]InstallmentRuleModel, len(pc.Rules))
	for i, rule := range pc.Rules {
		m.Rules[i] = InstallmentRuleModel{
			ID:              uuid.New(),
			ConditionID:     pc.ID,
			Number:          rule.Number,
			DaysOffset:      rule.DaysOffset,
			Percentage:      rule.Percentage,
			PaymentMethodID: rule.PaymentMethodID,
		}
	}
}

// PaymentConditionModelFromDomain creates a new persistence model from a domain PaymentCondition.
func PaymentConditionModelFromDomain(pc *finance.PaymentCondition) *PaymentConditionModel {
	m := &PaymentConditionModel{}
	m.FromDomain(pc)
	return m
}

// InstallmentRuleModel is the persistence model for one installment rule line.
type InstallmentRuleModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	ConditionID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_rule_condition_number,priority:1"`
	Number          int             `gorm:"not null;uniqueIndex:idx_rule_condition_number,priority:2"`
	DaysOffset      int             `gorm:"not null"`
	Percentage      decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	PaymentMethodID uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (InstallmentRuleModel) TableName() string {
	return "payment_condition_rules"
}

// AccountPayableModel is the persistence model for the AccountPayable aggregate root.
type AccountPayableModel struct {
	AggregateModel
	DocumentNumber    string                `gorm:"type:varchar(50);not null;index"`
	SupplierID        uuid.UUID             `gorm:"type:uuid;not null;index"`
	SupplierName      string                `gorm:"type:varchar(200);not null"`
	InstallmentNumber int                   `gorm:"not null;default:1"`
	InstallmentCount  int                   `gorm:"not null;default:1"`
	OriginalAmount    decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Discount          decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Interest          decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Penalty           decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	TotalAmount       decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	PaidAmount        decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Status            finance.PayableStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentMethodID   *uuid.UUID            `gorm:"type:uuid;index"`
	IssueDate         time.Time             `gorm:"not null"`
	DueDate           time.Time             `gorm:"not null;index"`
	PaymentDate       *time.Time
	CancelReason      string `gorm:"type:varchar(500)"`
	Notes             string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AccountPayableModel) TableName() string {
	return "accounts_payable"
}

// ToDomain converts the persistence model to a domain AccountPayable entity.
func (m *AccountPayableModel) ToDomain() *finance.AccountPayable {
	return &finance.AccountPayable{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		DocumentNumber:    m.DocumentNumber,
		SupplierID:        m.SupplierID,
		SupplierName:      m.SupplierName,
		InstallmentNumber: m.InstallmentNumber,
		InstallmentCount:  m.InstallmentCount,
		OriginalAmount:    m.OriginalAmount,
		Discount:          m.Discount,
		Interest:          m.Interest,
		Penalty:           m.Penalty,
		TotalAmount:       m.TotalAmount,
		PaidAmount:        m.PaidAmount,
		Status:            m.Status,
		PaymentMethodID:   m.PaymentMethodID,
		IssueDate:         m.IssueDate,
		DueDate:           m.DueDate,
		PaymentDate:       m.PaymentDate,
		CancelReason:      m.CancelReason,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain AccountPayable entity.
func (m *AccountPayableModel) FromDomain(ap *finance.AccountPayable) {
	m.FromDomainAggregateRoot(ap.BaseAggregateRoot)
	m.DocumentNumber = ap.DocumentNumber
	m.SupplierID = ap.SupplierID
	m.SupplierName = ap.SupplierName
	m.InstallmentNumber = ap.InstallmentNumber
	m.InstallmentCount = ap.InstallmentCount
	m.OriginalAmount = ap.OriginalAmount
	m.Discount = ap.Discount
	m.Interest = ap.Interest
	m.Penalty = ap.Penalty
	m.TotalAmount = ap.TotalAmount
	m.PaidAmount = ap.PaidAmount
	m.Status = ap.Status
	m.PaymentMethodID = ap.PaymentMethodID
	m.IssueDate = ap.IssueDate
	m.DueDate = ap.DueDate
	m.PaymentDate = ap.PaymentDate
	m.CancelReason = ap.CancelReason
	m.Notes = ap.Notes
}

// AccountPayableModelFromDomain creates a new persistence model from a domain AccountPayable.
func AccountPayableModelFromDomain(ap *finance.AccountPayable) *AccountPayableModel {
	m := &AccountPayableModel{}
	m.FromDomain(ap)
	return m
}

// AccountReceivableModel is the persistence model for the AccountReceivable aggregate root.
type AccountReceivableModel struct {
	AggregateModel
	DocumentNumber    string                   `gorm:"type:varchar(50);not null;index"`
	ClientID          uuid.UUID                `gorm:"type:uuid;not null;index"`
	ClientName        string                   `gorm:"type:varchar(200);not null"`
	InstallmentNumber int                      `gorm:"not null;default:1"`
	InstallmentCount  int                      `gorm:"not null;default:1"`
	OriginalAmount    decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	Discount          decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	Interest          decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	Penalty           decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	TotalAmount       decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	ReceivedAmount    decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	Status            finance.ReceivableStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentMethodID   *uuid.UUID               `gorm:"type:uuid;index"`
	IssueDate         time.Time                `gorm:"not null"`
	DueDate           time.Time                `gorm:"not null;index"`
	ReceiptDate       *time.Time
	CancelReason      string `gorm:"type:varchar(500)"`
	Notes             string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AccountReceivableModel) TableName() string {
	return "accounts_receivable"
}

// ToDomain converts the persistence model to a domain AccountReceivable entity.
func (m *AccountReceivableModel) ToDomain() *finance.AccountReceivable {
	return &finance.AccountReceivable{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		DocumentNumber:    m.DocumentNumber,
		ClientID:          m.ClientID,
		ClientName:        m.ClientName,
		InstallmentNumber: m.InstallmentNumber,
		InstallmentCount:  m.InstallmentCount,
		OriginalAmount:    m.OriginalAmount,
		Discount:          m.Discount,
		Interest:          m.Interest,
		Penalty:           m.Penalty,
		TotalAmount:       m.TotalAmount,
		ReceivedAmount:    m.ReceivedAmount,
		Status:            m.Status,
		PaymentMethodID:   m.PaymentMethodID,
		IssueDate:         m.IssueDate,
		DueDate:           m.DueDate,
		ReceiptDate:       m.ReceiptDate,
		CancelReason:      m.CancelReason,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain AccountReceivable entity.
func (m *AccountReceivableModel) FromDomain(ar *finance.AccountReceivable) {
	m.FromDomainAggregateRoot(ar.BaseAggregateRoot)
	m.DocumentNumber = ar.DocumentNumber
	m.ClientID = ar.ClientID
	m.ClientName = ar.ClientName
	m.InstallmentNumber = ar.InstallmentNumber
	m.InstallmentCount = ar.InstallmentCount
	m.OriginalAmount = ar.OriginalAmount
	m.Discount = ar.Discount
	m.Interest = ar.Interest
	m.Penalty = ar.Penalty
	m.TotalAmount = ar.TotalAmount
	m.ReceivedAmount = ar.ReceivedAmount
	m.Status = ar.Status
	m.PaymentMethodID = ar.PaymentMethodID
	m.IssueDate = ar.IssueDate
	m.DueDate = ar.DueDate
	m.ReceiptDate = ar.ReceiptDate
	m.CancelReason = ar.CancelReason
	m.Notes = ar.Notes
}

// AccountReceivableModelFromDomain creates a new persistence model from a domain AccountReceivable.
func AccountReceivableModelFromDomain(ar *finance.AccountReceivable) *AccountReceivableModel {
	m := &AccountReceivableModel{}
	m.FromDomain(ar)
	return m
}
