package finance

import (
	"fmt"
	"time"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// percentageTolerance is the rounding slack allowed when checking that
// installment percentages sum to 100.
var percentageTolerance = decimal.NewFromFloat(0.01)

var oneHundred = decimal.NewFromInt(100)

// InstallmentRule is one line of a payment condition's schedule: the rule
// for installment Number is due DaysOffset days after the reference date and
// covers Percentage of the document total.
type InstallmentRule struct {
	Number          int             `json:"number"`
	DaysOffset      int             `json:"days_offset"`
	Percentage      decimal.Decimal `json:"percentage"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id"`
}

// ScheduledInstallment is one expanded installment: a concrete amount due
// at a concrete date.
type ScheduledInstallment struct {
	Number          int             `json:"number"`
	Amount          decimal.Decimal `json:"amount"`
	DueDate         time.Time       `json:"due_date"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id"`
}

// PaymentCondition owns an ordered list of installment rules.
// Percentages across all rules must sum to 100 within tolerance; this is
// checked at construction and on every rule replacement, so a persisted
// condition always expands to schedules that cover the full document total.
type PaymentCondition struct {
	shared.BaseAggregateRoot
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Rules       []InstallmentRule `json:"rules"`
	Active      bool              `json:"active"`
}

// NewPaymentCondition creates a new payment condition with its rules
func NewPaymentCondition(name, description string, rules []InstallmentRule) (*PaymentCondition, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Payment condition name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Payment condition name cannot exceed 100 characters")
	}
	if err := validateRules(rules); err != nil {
		return nil, err
	}

	return &PaymentCondition{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Rules:             rules,
		Active:            true,
	}, nil
}

// Update replaces name, description and the full rule list
func (pc *PaymentCondition) Update(name, description string, rules []InstallmentRule) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Payment condition name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Payment condition name cannot exceed 100 characters")
	}
	if err := validateRules(rules); err != nil {
		return err
	}

	pc.Name = name
	pc.Description = description
	pc.Rules = rules
	pc.touch()
	return nil
}

// Activate marks the condition usable
func (pc *PaymentCondition) Activate() {
	pc.Active = true
	pc.touch()
}

// Deactivate marks the condition unusable for new documents
func (pc *PaymentCondition) Deactivate() {
	pc.Active = false
	pc.touch()
}

// InstallmentCount returns the number of installment rules
func (pc *PaymentCondition) InstallmentCount() int {
	return len(pc.Rules)
}

// ExpandSchedule computes the concrete installments for a document total and
// reference date (emission or arrival date, per document type). Each
// installment is the 2-dp rounded share of the total; the last installment
// absorbs the rounding remainder so the sum equals the total exactly.
func (pc *PaymentCondition) ExpandSchedule(total valueobject.Money, referenceDate time.Time) ([]ScheduledInstallment, error) {
	if !total.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Document total must be positive")
	}

	installments := make([]ScheduledInstallment, 0, len(pc.Rules))
	remaining := total.Amount()
	for i, rule := range pc.Rules {
		var amount decimal.Decimal
		if i == len(pc.Rules)-1 {
			amount = remaining
		} else {
			amount = total.Amount().Mul(rule.Percentage).Div(oneHundred).Round(2)
			remaining = remaining.Sub(amount)
		}
		installments = append(installments, ScheduledInstallment{
			Number:          rule.Number,
			Amount:          amount,
			DueDate:         referenceDate.AddDate(0, 0, rule.DaysOffset),
			PaymentMethodID: rule.PaymentMethodID,
		})
	}
	return installments, nil
}

// validateRules checks ordering, numbering and the sum-to-100 invariant
func validateRules(rules []InstallmentRule) error {
	if len(rules) == 0 {
		return shared.NewDomainError("INVALID_RULES", "Payment condition must have at least one installment rule")
	}

	sum := decimal.Zero
	for i, rule := range rules {
		if rule.Number != i+1 {
			return shared.NewDomainError("INVALID_RULES",
				fmt.Sprintf("Installment rules must be numbered contiguously from 1; rule at position %d has number %d", i+1, rule.Number))
		}
		if rule.DaysOffset < 0 {
			return shared.NewDomainError("INVALID_RULES",
				fmt.Sprintf("Installment %d has a negative days offset", rule.Number))
		}
		if i > 0 && rule.DaysOffset < rules[i-1].DaysOffset {
			return shared.NewDomainError("INVALID_RULES",
				fmt.Sprintf("Installment %d is due before installment %d", rule.Number, rules[i-1].Number))
		}
		if !rule.Percentage.IsPositive() {
			return shared.NewDomainError("INVALID_RULES",
				fmt.Sprintf("Installment %d must have a positive percentage", rule.Number))
		}
		if rule.PaymentMethodID == uuid.Nil {
			return shared.NewDomainError("INVALID_RULES",
				fmt.Sprintf("Installment %d must reference a payment method", rule.Number))
		}
		sum = sum.Add(rule.Percentage)
	}

	if sum.Sub(oneHundred).Abs().GreaterThan(percentageTolerance) {
		return shared.NewDomainError("INVALID_PERCENTAGE_SUM",
			fmt.Sprintf("Installment percentages must sum to 100, got %s", sum.String()))
	}
	return nil
}

func (pc *PaymentCondition) touch() {
	pc.Touch()
	pc.IncrementVersion()
}
