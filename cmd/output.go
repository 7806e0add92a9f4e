package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/ionomy/exchange"
	"github.com/lukehollenback/ionomy/exchange/ionomy"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

//
// call is the shape of every subcommand body: it receives a configured client and the positional
// arguments and returns the data payload of the response.
//
type call func(ctx context.Context, client *ionomy.Client, args []string) (json.RawMessage, error)

func (o *options) runE(fn call) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := o.client(cmd)
		if err != nil {
			return err
		}

		data, err := fn(cmd.Context(), client, args)
		if err != nil {
			return err
		}

		return printData(cmd.OutOrStdout(), data)
	}
}

func printData(w io.Writer, data json.RawMessage) error {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}

	var buf bytes.Buffer

	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return errors.Wrap(err, "failed to format response data")
	}

	buf.WriteByte('\n')

	_, err := buf.WriteTo(w)

	return err
}

func printError(w io.Writer, au aurora.Aurora, err error) {
	var apiErr exchange.APIError
	var argErr *exchange.ArgumentError
	var httpErr *exchange.HTTPError

	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintf(w, "%s %s (status %d)\n", au.Bold(au.Red("API error:")), au.Yellow(apiErr.Message()), apiErr.Code())
	case errors.As(err, &argErr):
		fmt.Fprintf(w, "%s %s %s\n", au.Bold(au.Red("Invalid argument:")), au.Cyan(argErr.Field), argErr.Reason)
	case errors.As(err, &httpErr):
		fmt.Fprintf(w, "%s %s\n", au.Bold(au.Red("HTTP error:")), httpErr)
	default:
		fmt.Fprintf(w, "%s %s\n", au.Bold(au.Red("Error:")), err)
	}
}

func parseAmount(field string, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, &exchange.ArgumentError{Field: field, Reason: "must be a decimal number"}
	}

	return amount, nil
}
