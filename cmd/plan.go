package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/params"
	"github.com/spotlease/stripe-go/plan"
)

var (
	planActive  bool
	planProduct string
)

// planCmd groups the plan subcommands
var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"plans"},
	Short:   "Inspect and remove subscription plans",
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a plan; existing subscribers keep it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assumeYes && !confirm(cmd, fmt.Sprintf("Delete plan %s?", args[0])) {
			logger.Info().Str("plan", args[0]).Msg("Deletion cancelled")
			return nil
		}
		deleted, err := plan.Delete(args[0]).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printJSON(cmd, deleted)
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := createdRange()
		if err != nil {
			return err
		}
		p := &plan.ListParams{ListParams: listParams(), Created: created}
		if cmd.Flags().Changed("active") {
			p.Active = params.Bool(planActive)
		}
		if planProduct != "" {
			p.Product = params.String(planProduct)
		}

		page, err := plan.List(p).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printPage(cmd, page)
	},
}

func init() {
	planCmd.AddCommand(getCommand("get", "Retrieve one or more plans", func(id string) *client.Request[plan.Plan] {
		return plan.Retrieve(id)
	}))
	planCmd.AddCommand(planDeleteCmd)
	planCmd.AddCommand(planListCmd)

	planDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompt")

	planListCmd.Flags().BoolVar(&planActive, "active", true, "only active (or, with --active=false, inactive) plans")
	planListCmd.Flags().StringVar(&planProduct, "product", "", "only plans for this product")
	addListFlags(planListCmd)
	addCreatedFlags(planListCmd)
}
