package cmd

import (
	"context"
	"encoding/json"

	"github.com/lukehollenback/ionomy/exchange/ionomy"
	"github.com/spf13/cobra"
)

func accountCommands(opts *options) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "balances",
			Short: "Show every balance of your account",
			Args:  cobra.NoArgs,
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, _ []string) (json.RawMessage, error) {
				return client.Balances(ctx)
			}),
		},
		{
			Use:   "balance <currency>",
			Short: "Show your balance of a currency",
			Args:  cobra.ExactArgs(1),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				return client.Balance(ctx, args[0])
			}),
		},
		{
			Use:   "deposit-address <currency>",
			Short: "Show your deposit address for a currency",
			Args:  cobra.ExactArgs(1),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				return client.DepositAddress(ctx, args[0])
			}),
		},
		{
			Use:   "deposits <currency>",
			Short: "List your deposits of a currency",
			Args:  cobra.ExactArgs(1),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				return client.DepositHistory(ctx, args[0])
			}),
		},
		{
			Use:   "withdraw <currency> <amount> <address>",
			Short: "Withdraw funds to an external address",
			Args:  cobra.ExactArgs(3),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				amount, err := parseAmount("amount", args[1])
				if err != nil {
					return nil, err
				}

				return client.Withdraw(ctx, args[0], amount, args[2])
			}),
		},
		{
			Use:   "withdrawals <currency>",
			Short: "List your withdrawals of a currency",
			Args:  cobra.ExactArgs(1),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				return client.WithdrawalHistory(ctx, args[0])
			}),
		},
		{
			Use:   "order <orderId>",
			Short: "Show one of your orders",
			Args:  cobra.ExactArgs(1),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				return client.Order(ctx, args[0])
			}),
		},
		{
			Use:   "orders <market>",
			Short: "List your order history in a market",
			Args:  cobra.ExactArgs(1),
			RunE: opts.runE(func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error) {
				return client.OrderHistory(ctx, args[0])
			}),
		},
	}
}
