package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2}

// Price renders a product or variant price for table output.
func Price(amount decimal.Decimal) string {
	return usd.FormatMoneyDecimal(amount)
}

// OptionalPrice renders a nullable price; parent products without their own
// price show a dash.
func OptionalPrice(amount *decimal.Decimal) string {
	if amount == nil {
		return "-"
	}
	return Price(*amount)
}
