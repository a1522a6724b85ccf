package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spotlease/stripe-go/charge"
	"github.com/spotlease/stripe-go/customer"
	"github.com/spotlease/stripe-go/filter"
	"github.com/spotlease/stripe-go/invoice"
	"github.com/spotlease/stripe-go/params"
	"github.com/spotlease/stripe-go/plan"
)

var compiler = filter.NewCompiler(filter.WithCache(32))

// Shared list flags
var (
	filterExpr    string
	preset        string
	limit         int64
	startingAfter string
	createdAfter  string
	createdBefore string
)

// addListFlags registers the paging, date and filter flags every list
// command accepts
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression evaluated against each result")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	cmd.Flags().Int64VarP(&limit, "limit", "l", 0, "page size (1-100)")
	cmd.Flags().StringVar(&startingAfter, "starting-after", "", "cursor: id of the last object of the previous page")
	cmd.MarkFlagsMutuallyExclusive("filter", "preset")
}

// addCreatedFlags registers --created-after/--created-before on list
// commands whose endpoint filters on creation date
func addCreatedFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&createdAfter, "created-after", "", "only objects created on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&createdBefore, "created-before", "", "only objects created before this date (YYYY-MM-DD)")
}

func listParams() params.ListParams {
	var lp params.ListParams
	if limit > 0 {
		lp.Limit = params.Int64(limit)
	}
	if startingAfter != "" {
		lp.StartingAfter = params.String(startingAfter)
	}
	return lp
}

// createdRange turns the date flags into a range query, or nil when
// neither is set
func createdRange() (*params.RangeQuery, error) {
	if createdAfter == "" && createdBefore == "" {
		return nil, nil
	}

	var rq params.RangeQuery
	if createdAfter != "" {
		t, err := time.Parse(time.DateOnly, createdAfter)
		if err != nil {
			return nil, fmt.Errorf("invalid --created-after: %w", err)
		}
		ts := params.TimestampOf(t)
		rq.GTE = &ts
	}
	if createdBefore != "" {
		t, err := time.Parse(time.DateOnly, createdBefore)
		if err != nil {
			return nil, fmt.Errorf("invalid --created-before: %w", err)
		}
		ts := params.TimestampOf(t)
		rq.LT = &ts
	}
	return &rq, nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

// applyFilter narrows a page of results down to those matching the
// --filter or --preset expression, if any
func applyFilter[T any](ctx context.Context, items []T) ([]T, error) {
	expression, err := getFilterExpression()
	if err != nil || expression == "" {
		return items, err
	}

	f, err := compiler.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	matched, err := filter.ApplyConcurrent(ctx, f, items, filter.WithWorkers(cfg.Client.Concurrency))
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("filter", expression).
		Int("total", len(items)).
		Int("matched", len(matched)).
		Msg("Filter applied")

	return matched, nil
}

// printPage filters a page and prints it. The page keeps its cursor
// fields so has_more still tells the caller whether to fetch another.
func printPage[T any](cmd *cobra.Command, page *params.List[T]) error {
	data, err := applyFilter(cmd.Context(), page.Data)
	if err != nil {
		return err
	}
	page.Data = data
	return printJSON(cmd, page)
}

var filterSamples = map[string]any{
	"customer": customer.Customer{},
	"charge":   charge.Charge{},
	"invoice":  invoice.Invoice{},
	"plan":     plan.Plan{},
}

// fieldsCmd lists what a filter expression can refer to
var fieldsCmd = &cobra.Command{
	Use:       "fields <customer|charge|invoice|plan>",
	Short:     "List the fields available to --filter expressions",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"customer", "charge", "invoice", "plan"},
	RunE: func(cmd *cobra.Command, args []string) error {
		sample, ok := filterSamples[args[0]]
		if !ok {
			return fmt.Errorf("unknown object %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), filter.Fields(sample))
		fmt.Fprintln(cmd.OutOrStdout(), "Helpers: contains, startsWith, endsWith, lower, upper, daysSince, daysAgo, monthsAgo, parseDate, unix, now, hasMetadata, metadata")
		return nil
	},
}
