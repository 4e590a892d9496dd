package domain

import "testing"

func TestInstallment_TotalUnpaid(t *testing.T) {
	inst := &Installment{
		FeesUnpaid:      mustAmount(t, "1.50"),
		InterestUnpaid:  mustAmount(t, "10.00"),
		PrincipalUnpaid: mustAmount(t, "88.50"),
		// Penalty unscheduled: unset, counts as zero.
	}

	if got := inst.TotalUnpaid().String(); got != "100" {
		t.Errorf("expected 100, got %s", got)
	}

	if inst.IsSettled() {
		t.Error("installment with outstanding amounts must not be settled")
	}
}

func TestInstallment_IsSettled(t *testing.T) {
	inst := &Installment{
		FeesUnpaid:      ZeroAmount(),
		InterestUnpaid:  ZeroAmount(),
		PrincipalUnpaid: ZeroAmount(),
	}

	if !inst.IsSettled() {
		t.Error("installment with zero outstanding must be settled")
	}
}

func TestBucketKind_Attribute(t *testing.T) {
	tests := []struct {
		kind BucketKind
		want EventAttribute
	}{
		{kind: BucketFees, want: AttributeFees},
		{kind: BucketInterest, want: AttributeInterest},
		{kind: BucketPrincipal, want: AttributePrincipal},
		{kind: BucketPenalty, want: AttributePenalty},
		{kind: BucketKind("unknown"), want: ""},
	}

	for _, tt := range tests {
		if got := tt.kind.Attribute(); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.kind, tt.want, got)
		}
	}
}
