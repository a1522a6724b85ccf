package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/invoice"
	"github.com/spotlease/stripe-go/params"
)

var (
	invoiceCustomer     string
	invoiceSubscription string
	invoiceCoupon       string
)

// invoiceCmd groups the invoice subcommands
var invoiceCmd = &cobra.Command{
	Use:     "invoice",
	Aliases: []string{"invoices"},
	Short:   "Inspect and pay invoices",
}

var invoiceUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Preview the next invoice for a customer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := &invoice.UpcomingParams{Customer: invoiceCustomer}
		if invoiceSubscription != "" {
			p.Subscription = params.String(invoiceSubscription)
		}
		if invoiceCoupon != "" {
			p.Coupon = params.String(invoiceCoupon)
		}

		upcoming, err := invoice.Upcoming(p).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printJSON(cmd, upcoming)
	},
}

var invoicePayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Attempt payment of an open invoice now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paid, err := invoice.Pay(args[0]).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		logger.Info().Str("invoice", args[0]).Bool("paid", paid.Paid).Msg("Invoice payment attempted")
		return printJSON(cmd, paid)
	},
}

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := createdRange()
		if err != nil {
			return err
		}
		p := &invoice.ListParams{ListParams: listParams(), Date: date}
		if invoiceCustomer != "" {
			p.Customer = params.String(invoiceCustomer)
		}
		if invoiceSubscription != "" {
			p.Subscription = params.String(invoiceSubscription)
		}

		page, err := invoice.List(p).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printPage(cmd, page)
	},
}

var invoiceLinesCmd = &cobra.Command{
	Use:   "lines <id>",
	Short: "List the line items of an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lp := listParams()
		page, err := invoice.ListLines(args[0], &lp).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printPage(cmd, page)
	},
}

func init() {
	invoiceCmd.AddCommand(getCommand("get", "Retrieve one or more invoices", func(id string) *client.Request[invoice.Invoice] {
		return invoice.Retrieve(id)
	}))
	invoiceCmd.AddCommand(invoiceUpcomingCmd)
	invoiceCmd.AddCommand(invoicePayCmd)
	invoiceCmd.AddCommand(invoiceListCmd)
	invoiceCmd.AddCommand(invoiceLinesCmd)

	invoiceUpcomingCmd.Flags().StringVar(&invoiceCustomer, "customer", "", "customer whose next invoice to preview")
	invoiceUpcomingCmd.Flags().StringVar(&invoiceSubscription, "subscription", "", "limit the preview to one subscription")
	invoiceUpcomingCmd.Flags().StringVar(&invoiceCoupon, "coupon", "", "preview with this coupon applied")
	_ = invoiceUpcomingCmd.MarkFlagRequired("customer")

	invoiceListCmd.Flags().StringVar(&invoiceCustomer, "customer", "", "only invoices for this customer")
	invoiceListCmd.Flags().StringVar(&invoiceSubscription, "subscription", "", "only invoices for this subscription")
	addListFlags(invoiceListCmd)
	addCreatedFlags(invoiceListCmd)

	addListFlags(invoiceLinesCmd)
}
