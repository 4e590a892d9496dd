package domain

import "fmt"

// AllocationPolicy splits one payment amount across an installment's charge
// buckets. Implementations consume as much of the incoming amount as each
// bucket can absorb, else fully drain the bucket, and hand the residual to
// the next bucket in their order. For every call the consumed amounts plus
// the returned residual equal the incoming amount exactly.
type AllocationPolicy interface {
	Allocate(amountPaid Amount, inst *Installment) (AllocationResult, error)
}

// BucketAllocation records how much of a payment one bucket absorbed.
type BucketAllocation struct {
	Kind     BucketKind
	Consumed Amount
}

// AllocationResult is the outcome of allocating one payment against one
// installment.
type AllocationResult struct {
	Buckets  []BucketAllocation
	Residual Amount
}

// ConsumedBy returns the amount one bucket absorbed, zero if it was not
// touched.
func (r AllocationResult) ConsumedBy(kind BucketKind) Amount {
	for _, b := range r.Buckets {
		if b.Kind == kind {
			return b.Consumed
		}
	}

	return ZeroAmount()
}

// TotalConsumed sums the amounts absorbed across all buckets.
func (r AllocationResult) TotalConsumed() Amount {
	total := ZeroAmount()
	for _, b := range r.Buckets {
		total = total.Add(b.Consumed)
	}

	return total
}

// allocateBucket drains one bucket with the incoming amount.
//
// If the amount exceeds the outstanding value the bucket is fully settled:
// the consumed amount equals the previous unpaid value, unpaid becomes
// exactly zero and the difference is returned as residual. Otherwise the
// whole amount is absorbed, unpaid decreases by it and the residual is
// exactly zero. The equality boundary settles the bucket with zero residual
// through the second branch. Mutation happens only after the comparison
// decision, so an error never leaves the installment half-updated.
func allocateBucket(amountPaid Amount, inst *Installment, kind BucketKind) (consumed, residual Amount, err error) {
	if !amountPaid.IsSet() || amountPaid.IsNegative() {
		return Amount{}, Amount{}, fmt.Errorf("%w: got %s", ErrInvalidPaymentAmount, amountPaid)
	}

	b := inst.bucketFor(kind)
	if b.unpaid == nil || !b.unpaid.IsSet() {
		return Amount{}, Amount{}, fmt.Errorf("%w: installment %d has no %s outstanding value", ErrAmountUnset, inst.Number, kind)
	}

	if !b.paid.IsSet() {
		*b.paid = ZeroAmount()
	}

	cmp, err := amountPaid.Cmp(*b.unpaid)
	if err != nil {
		return Amount{}, Amount{}, err
	}

	if cmp > 0 {
		consumed = *b.unpaid
		residual = amountPaid.Sub(consumed)
		*b.paid = b.paid.Add(consumed)
		*b.unpaid = ZeroAmount()

		return consumed, residual, nil
	}

	consumed = amountPaid
	residual = ZeroAmount()
	*b.paid = b.paid.Add(amountPaid)
	*b.unpaid = b.unpaid.Sub(amountPaid)

	return consumed, residual, nil
}

// Waterfall allocates a payment by draining buckets in a fixed order,
// feeding each step the residual of the previous one.
type Waterfall struct {
	order []BucketKind
}

// NewWaterfall creates a waterfall over an explicit bucket order.
func NewWaterfall(order ...BucketKind) Waterfall {
	return Waterfall{order: order}
}

// NewFeesFirstWaterfall is the automatic repayment order: fees, then
// interest, then principal, then penalties.
func NewFeesFirstWaterfall() Waterfall {
	return NewWaterfall(BucketFees, BucketInterest, BucketPrincipal, BucketPenalty)
}

// NewPrincipalFirstWaterfall drains principal before charges, used by
// products that prioritize capital recovery.
func NewPrincipalFirstWaterfall() Waterfall {
	return NewWaterfall(BucketPrincipal, BucketInterest, BucketFees, BucketPenalty)
}

// Allocate runs the waterfall against one installment. Buckets with an
// unset outstanding value are skipped: an unscheduled category (a loan with
// no penalties, say) does not abort the chain.
func (w Waterfall) Allocate(amountPaid Amount, inst *Installment) (AllocationResult, error) {
	if !amountPaid.IsSet() || amountPaid.IsNegative() {
		return AllocationResult{}, fmt.Errorf("%w: got %s", ErrInvalidPaymentAmount, amountPaid)
	}

	result := AllocationResult{Residual: amountPaid}

	for _, kind := range w.order {
		if result.Residual.IsZero() {
			break
		}

		if !inst.Unpaid(kind).IsSet() {
			continue
		}

		consumed, residual, err := allocateBucket(result.Residual, inst, kind)
		if err != nil {
			return AllocationResult{}, err
		}

		result.Buckets = append(result.Buckets, BucketAllocation{Kind: kind, Consumed: consumed})
		result.Residual = residual
	}

	return result, nil
}

var _ AllocationPolicy = Waterfall{}
