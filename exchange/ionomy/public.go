package ionomy

import (
	"context"
	"encoding/json"
)

// Markets lists every market on the exchange.
func (o *Client) Markets(ctx context.Context) (json.RawMessage, error) {
	return o.Request(ctx, MarketsPath, nil)
}

// Currencies lists every currency on the exchange.
func (o *Client) Currencies(ctx context.Context) (json.RawMessage, error) {
	return o.Request(ctx, CurrenciesPath, nil)
}

//
// OrderBook retrieves the order book of a market. The side must be one of OrderBookAsk,
// OrderBookBid or OrderBookBoth.
//
func (o *Client) OrderBook(ctx context.Context, market string, side string) (json.RawMessage, error) {
	if err := requireString("market", market); err != nil {
		return nil, err
	}

	if err := requireOrderBookSide("type", side); err != nil {
		return nil, err
	}

	return o.Request(ctx, OrderBookPath, Params{
		{"market", market},
		{"type", side},
	})
}

func (o *Client) MarketsSummaries(ctx context.Context) (json.RawMessage, error) {
	return o.Request(ctx, MarketsSummariesPath, nil)
}

func (o *Client) MarketSummary(ctx context.Context, market string) (json.RawMessage, error) {
	if err := requireString("market", market); err != nil {
		return nil, err
	}

	return o.Request(ctx, MarketSummaryPath, Params{{"market", market}})
}

func (o *Client) MarketHistory(ctx context.Context, market string) (json.RawMessage, error) {
	if err := requireString("market", market); err != nil {
		return nil, err
	}

	return o.Request(ctx, MarketHistoryPath, Params{{"market", market}})
}
