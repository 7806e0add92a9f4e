package cmd

import (
	"context"
	"encoding/json"

	"github.com/lukehollenback/ionomy/exchange/ionomy"
	"github.com/spf13/cobra"
)

func publicCommands(opts *options) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "markets",
			Short: "List every market",
			Args:  cobra.NoArgs,
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, _ []string) (json.RawMessage, error) {
				return client.Markets(ctx)
			}),
		},
		{
			Use:   "currencies",
			Short: "List every currency",
			Args:  cobra.NoArgs,
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, _ []string) (json.RawMessage, error) {
				return client.Currencies(ctx)
			}),
		},
		{
			Use:   "orderbook <market> [ask|bid|both]",
			Short: "Show the order book of a market (both sides by default)",
			Args:  cobra.RangeArgs(1, 2),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				side := ionomy.OrderBookBoth
				if len(args) > 1 {
					side = args[1]
				}

				return client.OrderBook(ctx, args[0], side)
			}),
		},
		{
			Use:   "summaries",
			Short: "Show the summary of every market",
			Args:  cobra.NoArgs,
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, _ []string) (json.RawMessage, error) {
				return client.MarketsSummaries(ctx)
			}),
		},
		{
			Use:   "summary <market>",
			Short: "Show the summary of a market",
			Args:  cobra.ExactArgs(1),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				return client.MarketSummary(ctx, args[0])
			}),
		},
		{
			Use:   "history <market>",
			Short: "Show the recent trades of a market",
			Args:  cobra.ExactArgs(1),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				return client.MarketHistory(ctx, args[0])
			}),
		},
	}
}
