package exchange

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

//
// Client generically provides an interface to an object that can be used to interact with a
// cryptocurrency exchange's regular REST API. Normally, this is the client used to do things
// like place orders, check balances, and retrieve market data.
//
// Every method returns the raw payload the exchange wrapped in its response. Whenever an endpoint
// fails – whether due to invalid arguments, a transport failure, an HTTP error, or an API error –
// the error component of the return will be non-nil and the payload will be nil.
//
type Client interface {
	MarketData
	Trading
	Account
}

//
// MarketData covers the public endpoints that never require credentials.
//
type MarketData interface {
	Markets(ctx context.Context) (json.RawMessage, error)
	Currencies(ctx context.Context) (json.RawMessage, error)
	OrderBook(ctx context.Context, market string, side string) (json.RawMessage, error)
	MarketsSummaries(ctx context.Context) (json.RawMessage, error)
	MarketSummary(ctx context.Context, market string) (json.RawMessage, error)
	MarketHistory(ctx context.Context, market string) (json.RawMessage, error)
}

//
// Trading covers order placement and management. All of these require credentials.
//
type Trading interface {
	LimitBuy(ctx context.Context, market string, amount decimal.Decimal, price decimal.Decimal) (json.RawMessage, error)
	LimitSell(ctx context.Context, market string, amount decimal.Decimal, price decimal.Decimal) (json.RawMessage, error)
	CancelOrder(ctx context.Context, orderID string) (json.RawMessage, error)
	OpenOrders(ctx context.Context, market string) (json.RawMessage, error)
}

//
// Account covers balances, deposits, withdrawals and order lookups. All of these require
// credentials.
//
type Account interface {
	Balances(ctx context.Context) (json.RawMessage, error)
	Balance(ctx context.Context, currency string) (json.RawMessage, error)
	DepositAddress(ctx context.Context, currency string) (json.RawMessage, error)
	DepositHistory(ctx context.Context, currency string) (json.RawMessage, error)
	Withdraw(ctx context.Context, currency string, amount decimal.Decimal, address string) (json.RawMessage, error)
	WithdrawalHistory(ctx context.Context, currency string) (json.RawMessage, error)
	Order(ctx context.Context, orderID string) (json.RawMessage, error)
	OrderHistory(ctx context.Context, market string) (json.RawMessage, error)
}
