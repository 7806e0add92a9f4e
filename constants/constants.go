package constants

import (
	"github.com/shopspring/decimal"
)

const (
	LogPrefixFmt = "%-17s "

	//
	// AmountPlaces is the number of decimal places every amount and price is rendered with before
	// it is put on the wire.
	//
	AmountPlaces int32 = 8
)

var (
	zero = decimal.Zero
)

func Zero() decimal.Decimal {
	return zero
}
