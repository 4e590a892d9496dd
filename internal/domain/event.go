package domain

import "time"

// EventType classifies a financial event posted against a loan.
type EventType string

const (
	EventTypeDisbursement    EventType = "disbursement"
	EventTypeRepayment       EventType = "repayment"
	EventTypeInterestAccrual EventType = "interest_accrual"
	EventTypePenaltyAccrual  EventType = "penalty_accrual"
	EventTypePenaltyWaiver   EventType = "penalty_waiver"
	EventTypeWriteOff        EventType = "write_off"
)

// EventAttribute names the charge category an event amount belongs to.
type EventAttribute string

const (
	AttributePrincipal EventAttribute = "principal"
	AttributeInterest  EventAttribute = "interest"
	AttributeFees      EventAttribute = "fees"
	AttributePenalty   EventAttribute = "penalty"
)

// BookingDirection is the ledger leg an event posts as.
type BookingDirection string

const (
	BookingDebit  BookingDirection = "debit"
	BookingCredit BookingDirection = "credit"
	BookingBoth   BookingDirection = "both"
)

// ProductType is the financial product family an event belongs to.
type ProductType string

const (
	ProductTypeLoan    ProductType = "loan"
	ProductTypeSavings ProductType = "savings"
)

// ClientType classifies the counterparty of a loan.
type ClientType string

const (
	ClientTypePerson    ClientType = "person"
	ClientTypeGroup     ClientType = "group"
	ClientTypeCorporate ClientType = "corporate"
	ClientTypeVillage   ClientType = "village"
)

// PaymentMethod is how a repayment was received.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCheque   PaymentMethod = "cheque"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodMobile   PaymentMethod = "mobile"
)

// FinancialEvent is the caller-constructed context one posting is resolved
// against. It is ephemeral: built per event, matched against the rule table,
// never persisted.
type FinancialEvent struct {
	OccurredAt       time.Time
	Type             EventType
	Attribute        EventAttribute
	Direction        BookingDirection
	ProductType      ProductType
	Currency         string
	ClientType       ClientType
	EconomicActivity string
	PaymentMethod    PaymentMethod
	LoanID           string
	Amount           Amount
}
