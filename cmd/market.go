package cmd

import (
	"context"
	"encoding/json"

	"github.com/lukehollenback/ionomy/exchange/ionomy"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func marketCommands(opts *options) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "buy <market> <amount> <price>",
			Short: "Place a limit buy order",
			Args:  cobra.ExactArgs(3),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				amount, price, err := parseOrder(args)
				if err != nil {
					return nil, err
				}

				return client.LimitBuy(ctx, args[0], amount, price)
			}),
		},
		{
			Use:   "sell <market> <amount> <price>",
			Short: "Place a limit sell order",
			Args:  cobra.ExactArgs(3),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				amount, price, err := parseOrder(args)
				if err != nil {
					return nil, err
				}

				return client.LimitSell(ctx, args[0], amount, price)
			}),
		},
		{
			Use:   "cancel <orderId>",
			Short: "Cancel an open order",
			Args:  cobra.ExactArgs(1),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				return client.CancelOrder(ctx, args[0])
			}),
		},
		{
			Use:   "open-orders <market>",
			Short: "List your open orders in a market",
			Args:  cobra.ExactArgs(1),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				return client.OpenOrders(ctx, args[0])
			}),
		},
	}
}

//
// parseOrder parses the amount and price arguments of a buy or sell command.
//
func parseOrder(args []string) (decimal.Decimal, decimal.Decimal, error) {
	amount, err := parseAmount("amount", args[1])
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}

	price, err := parseAmount("price", args[2])
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}

	return amount, price, nil
}
