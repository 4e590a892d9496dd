package domain

import (
	"fmt"
	"time"
)

// AccountingRule maps a class of financial events to a general-ledger
// debit/credit account pair. A dimension left at its zero value is a
// wildcard and matches any event.
type AccountingRule struct {
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ID               string
	DebitAccountID   string
	CreditAccountID  string
	Description      string
	Direction        BookingDirection
	EventType        EventType
	EventAttribute   EventAttribute
	ProductType      ProductType
	Currency         string
	ClientType       ClientType
	EconomicActivity string
	PaymentMethod    PaymentMethod
	Order            int
	Deleted          bool
}

// Matches reports whether every non-wildcard dimension of the rule equals
// the event's corresponding value.
func (r *AccountingRule) Matches(e FinancialEvent) bool {
	if r.EventType != "" && r.EventType != e.Type {
		return false
	}
	if r.EventAttribute != "" && r.EventAttribute != e.Attribute {
		return false
	}
	if r.Direction != "" && r.Direction != e.Direction {
		return false
	}
	if r.ProductType != "" && r.ProductType != e.ProductType {
		return false
	}
	if r.Currency != "" && r.Currency != e.Currency {
		return false
	}
	if r.ClientType != "" && r.ClientType != e.ClientType {
		return false
	}
	if r.EconomicActivity != "" && r.EconomicActivity != e.EconomicActivity {
		return false
	}
	if r.PaymentMethod != "" && r.PaymentMethod != e.PaymentMethod {
		return false
	}

	return true
}

// Specificity counts the rule's non-wildcard matching dimensions. More
// specific rules win over more general ones during resolution.
func (r *AccountingRule) Specificity() int {
	n := 0

	if r.EventType != "" {
		n++
	}
	if r.EventAttribute != "" {
		n++
	}
	if r.Direction != "" {
		n++
	}
	if r.ProductType != "" {
		n++
	}
	if r.Currency != "" {
		n++
	}
	if r.ClientType != "" {
		n++
	}
	if r.EconomicActivity != "" {
		n++
	}
	if r.PaymentMethod != "" {
		n++
	}

	return n
}

// SameDimensions reports whether two rules declare identical values on
// every matching dimension. Two active rules with the same dimensions and
// the same Order tie for every event they both match.
func (r *AccountingRule) SameDimensions(other *AccountingRule) bool {
	return r.EventType == other.EventType &&
		r.EventAttribute == other.EventAttribute &&
		r.Direction == other.Direction &&
		r.ProductType == other.ProductType &&
		r.Currency == other.Currency &&
		r.ClientType == other.ClientType &&
		r.EconomicActivity == other.EconomicActivity &&
		r.PaymentMethod == other.PaymentMethod
}

// Copy returns a field-by-field copy of the rule. Account, currency and
// economic activity are identifiers referring to immutable reference data,
// so sharing them between the original and the copy is safe; every scalar
// field is copied.
func (r *AccountingRule) Copy() *AccountingRule {
	c := *r
	return &c
}

// Validate checks the structural integrity of a rule before it enters the
// active rule set.
func (r *AccountingRule) Validate() error {
	if r.DebitAccountID == "" {
		return fmt.Errorf("%w: debit account is required", ErrInvalidRule)
	}

	if r.CreditAccountID == "" {
		return fmt.Errorf("%w: credit account is required", ErrInvalidRule)
	}

	if r.DebitAccountID == r.CreditAccountID {
		return fmt.Errorf("%w: debit and credit accounts must differ", ErrInvalidRule)
	}

	if r.Order < 0 {
		return fmt.Errorf("%w: order must not be negative", ErrInvalidRule)
	}

	return nil
}
