package ionomy

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

//
// LimitBuy places a limit buy order. Amount and price are sent with eight decimal places.
//
func (o *Client) LimitBuy(ctx context.Context, market string, amount decimal.Decimal, price decimal.Decimal) (json.RawMessage, error) {
	return o.limitOrder(ctx, BuyLimitPath, market, amount, price)
}

//
// LimitSell places a limit sell order. Amount and price are sent with eight decimal places.
//
func (o *Client) LimitSell(ctx context.Context, market string, amount decimal.Decimal, price decimal.Decimal) (json.RawMessage, error) {
	return o.limitOrder(ctx, SellLimitPath, market, amount, price)
}

func (o *Client) CancelOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	if err := requireString("orderId", orderID); err != nil {
		return nil, err
	}

	return o.Request(ctx, CancelOrderPath, Params{{"orderId", orderID}})
}

func (o *Client) OpenOrders(ctx context.Context, market string) (json.RawMessage, error) {
	if err := requireString("market", market); err != nil {
		return nil, err
	}

	return o.Request(ctx, OpenOrdersPath, Params{{"market", market}})
}

func (o *Client) limitOrder(
	ctx context.Context,
	path string,
	market string,
	amount decimal.Decimal,
	price decimal.Decimal,
) (json.RawMessage, error) {
	if err := requireString("market", market); err != nil {
		return nil, err
	}

	fixedAmount, err := requireAmount("amount", amount)
	if err != nil {
		return nil, err
	}

	fixedPrice, err := requireAmount("price", price)
	if err != nil {
		return nil, err
	}

	return o.Request(ctx, path, Params{
		{"market", market},
		{"amount", fixedAmount},
		{"price", fixedPrice},
	})
}
