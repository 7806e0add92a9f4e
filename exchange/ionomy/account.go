package ionomy

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

func (o *Client) Balances(ctx context.Context) (json.RawMessage, error) {
	return o.Request(ctx, BalancesPath, nil)
}

func (o *Client) Balance(ctx context.Context, currency string) (json.RawMessage, error) {
	return o.currencyRequest(ctx, BalancePath, currency)
}

func (o *Client) DepositAddress(ctx context.Context, currency string) (json.RawMessage, error) {
	return o.currencyRequest(ctx, DepositAddressPath, currency)
}

func (o *Client) DepositHistory(ctx context.Context, currency string) (json.RawMessage, error) {
	return o.currencyRequest(ctx, DepositHistoryPath, currency)
}

//
// Withdraw requests a withdrawal of the specified amount (sent with eight decimal places) to an
// external address.
//
func (o *Client) Withdraw(ctx context.Context, currency string, amount decimal.Decimal, address string) (json.RawMessage, error) {
	if err := requireString("currency", currency); err != nil {
		return nil, err
	}

	fixedAmount, err := requireAmount("amount", amount)
	if err != nil {
		return nil, err
	}

	if err := requireString("address", address); err != nil {
		return nil, err
	}

	return o.Request(ctx, WithdrawPath, Params{
		{"currency", currency},
		{"amount", fixedAmount},
		{"address", address},
	})
}

func (o *Client) WithdrawalHistory(ctx context.Context, currency string) (json.RawMessage, error) {
	return o.currencyRequest(ctx, WithdrawalHistoryPath, currency)
}

func (o *Client) Order(ctx context.Context, orderID string) (json.RawMessage, error) {
	if err := requireString("orderId", orderID); err != nil {
		return nil, err
	}

	return o.Request(ctx, OrderPath, Params{{"orderId", orderID}})
}

func (o *Client) OrderHistory(ctx context.Context, market string) (json.RawMessage, error) {
	if err := requireString("market", market); err != nil {
		return nil, err
	}

	return o.Request(ctx, OrderHistoryPath, Params{{"market", market}})
}

func (o *Client) currencyRequest(ctx context.Context, path string, currency string) (json.RawMessage, error) {
	if err := requireString("currency", currency); err != nil {
		return nil, err
	}

	return o.Request(ctx, path, Params{{"currency", currency}})
}
