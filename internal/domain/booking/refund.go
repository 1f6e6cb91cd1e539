package booking

import "github.com/shopspring/decimal"

// RefundRate applies to applicant cancellations and to displacement.
var RefundRate = decimal.RequireFromString("0.95")

func RefundFor(payment decimal.Decimal) decimal.Decimal {
	return payment.Mul(RefundRate).Round(2)
}

// PaymentFor charges only external applicants, at the device's external price.
func PaymentFor(class ApplicantClass, externalPrice decimal.Decimal) decimal.Decimal {
	if class == ClassExternal {
		return externalPrice.Round(2)
	}
	return decimal.Zero
}
