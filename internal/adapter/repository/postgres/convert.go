package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/openmfi/loancore/internal/domain"
)

// Type conversion helpers. Unset amounts map to SQL NULL and back; the
// unset-vs-zero distinction survives a round trip through storage.
func amountToNumeric(a domain.Amount) pgtype.Numeric {
	if !a.IsSet() {
		return pgtype.Numeric{}
	}

	return decimalToNumeric(a.Decimal())
}

func numericToAmount(n pgtype.Numeric) domain.Amount {
	if !n.Valid {
		return domain.Amount{}
	}

	return domain.NewAmount(numericToDecimal(n))
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
