package domain

import "time"

// BucketKind names one charge category of an installment.
type BucketKind string

const (
	BucketFees      BucketKind = "fees"
	BucketInterest  BucketKind = "interest"
	BucketPrincipal BucketKind = "principal"
	BucketPenalty   BucketKind = "penalty"
)

// Attribute maps a bucket to the event attribute its postings carry.
func (k BucketKind) Attribute() EventAttribute {
	switch k {
	case BucketFees:
		return AttributeFees
	case BucketInterest:
		return AttributeInterest
	case BucketPrincipal:
		return AttributePrincipal
	case BucketPenalty:
		return AttributePenalty
	default:
		return ""
	}
}

// Installment is one scheduled repayment slice of a loan. Each charge
// category keeps a paid/unpaid pair of running totals; at every point in
// time paid + unpaid equals the amount originally due for that category.
// Allocation only moves value between the two.
type Installment struct {
	DueDate         time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ID              string
	LoanID          string
	Number          int
	FeesUnpaid      Amount
	PaidFees        Amount
	InterestUnpaid  Amount
	PaidInterest    Amount
	PrincipalUnpaid Amount
	PaidPrincipal   Amount
	PenaltyUnpaid   Amount
	PaidPenalty     Amount
}

// bucket is a mutable view over one paid/unpaid pair.
type bucket struct {
	unpaid *Amount
	paid   *Amount
}

func (i *Installment) bucketFor(kind BucketKind) bucket {
	switch kind {
	case BucketFees:
		return bucket{unpaid: &i.FeesUnpaid, paid: &i.PaidFees}
	case BucketInterest:
		return bucket{unpaid: &i.InterestUnpaid, paid: &i.PaidInterest}
	case BucketPrincipal:
		return bucket{unpaid: &i.PrincipalUnpaid, paid: &i.PaidPrincipal}
	case BucketPenalty:
		return bucket{unpaid: &i.PenaltyUnpaid, paid: &i.PaidPenalty}
	default:
		return bucket{}
	}
}

// Unpaid returns the outstanding amount of one charge category.
func (i *Installment) Unpaid(kind BucketKind) Amount {
	b := i.bucketFor(kind)
	if b.unpaid == nil {
		return Amount{}
	}

	return *b.unpaid
}

// Paid returns the settled amount of one charge category.
func (i *Installment) Paid(kind BucketKind) Amount {
	b := i.bucketFor(kind)
	if b.paid == nil {
		return Amount{}
	}

	return *b.paid
}

// TotalUnpaid sums the outstanding amounts across all charge categories.
// Unset buckets count as zero.
func (i *Installment) TotalUnpaid() Amount {
	total := ZeroAmount()

	for _, kind := range []BucketKind{BucketFees, BucketInterest, BucketPrincipal, BucketPenalty} {
		if u := i.Unpaid(kind); u.IsSet() {
			total = total.Add(u)
		}
	}

	return total
}

// IsSettled reports whether nothing remains outstanding on the installment.
func (i *Installment) IsSettled() bool {
	return i.TotalUnpaid().IsZero()
}
