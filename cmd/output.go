package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spotlease/stripe-go/client"
)

// Exit codes
const (
	exitFailure  = 1
	exitAPIError = 2
)

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

// printError writes err to w, spelling out the fields of API errors.
func printError(w io.Writer, err error) {
	apiErr, ok := client.AsAPIError(err)
	if !ok {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	msg := apiErr.ErrorMessage()
	if msg == "" {
		msg = err.Error()
	}
	fmt.Fprintf(w, "Error: %s\n", msg)
	fmt.Fprintf(w, "  status: %d\n", apiErr.HTTPStatus)
	if t := apiErr.ErrorType(); t != "" {
		fmt.Fprintf(w, "  type:   %s\n", t)
	}
	if c := apiErr.ErrorCode(); c != "" {
		fmt.Fprintf(w, "  code:   %s\n", c)
	}
	if p := apiErr.ErrorParam(); p != "" {
		fmt.Fprintf(w, "  param:  %s\n", p)
	}
}

func exitCode(err error) int {
	if errors.Is(err, client.ErrAPI) {
		return exitAPIError
	}
	return exitFailure
}

// confirm asks a yes/no question on the command's input. Anything but y
// or yes is a no.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", prompt)

	response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return true
	}
	return false
}

// fetchAll runs one request per id, at most cfg.Client.Concurrency at a
// time, and returns the results in the order of ids. The first failure
// cancels the rest.
func fetchAll[T any](ctx context.Context, ids []string, build func(id string) *client.Request[T]) ([]*T, error) {
	results := make([]*T, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Client.Concurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			res, err := client.Execute(gctx, apiClient, build(id))
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// printAll prints a single result as an object and several as an array.
func printAll[T any](cmd *cobra.Command, results []*T) error {
	if len(results) == 1 {
		return printJSON(cmd, results[0])
	}
	return printJSON(cmd, results)
}

func getCommand[T any](use, short string, build func(id string) *client.Request[T]) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := fetchAll(cmd.Context(), args, build)
			if err != nil {
				return err
			}
			return printAll(cmd, results)
		},
	}
}
