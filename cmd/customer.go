package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spotlease/stripe-go/card"
	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/customer"
	"github.com/spotlease/stripe-go/params"
)

// sourceFlags collects a payment source given as a token, an existing
// source id or raw card details
type sourceFlags struct {
	token    string
	sourceID string
	number   string
	expMonth string
	expYear  string
	cvc      string
	name     string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.token, "token", "", "card token, e.g. tok_visa")
	cmd.Flags().StringVar(&s.sourceID, "source", "", "id of an existing source")
	cmd.Flags().StringVar(&s.number, "card-number", "", "card number")
	cmd.Flags().StringVar(&s.expMonth, "exp-month", "", "card expiry month (MM)")
	cmd.Flags().StringVar(&s.expYear, "exp-year", "", "card expiry year (YY or YYYY)")
	cmd.Flags().StringVar(&s.cvc, "cvc", "", "card security code")
	cmd.Flags().StringVar(&s.name, "card-name", "", "cardholder name")

	cmd.MarkFlagsMutuallyExclusive("token", "source", "card-number")
	cmd.MarkFlagsRequiredTogether("card-number", "exp-month", "exp-year")
}

// params returns the source the flags describe, or nil if none was given.
func (s *sourceFlags) params() *customer.SourceParams {
	switch {
	case s.token != "":
		return customer.SourceToken(s.token)
	case s.sourceID != "":
		return customer.SourceID(s.sourceID)
	case s.number != "":
		c := &card.Params{
			Number:   s.number,
			ExpMonth: s.expMonth,
			ExpYear:  s.expYear,
		}
		if s.cvc != "" {
			c.CVC = params.String(s.cvc)
		}
		if s.name != "" {
			c.Name = params.String(s.name)
		}
		return customer.SourceCard(c)
	}
	return nil
}

var (
	customerEmail       string
	customerDescription string
	customerCoupon      string
	customerMetadata    map[string]string
	customerSource      sourceFlags
	defaultSource       string
	clearDefaultSource  bool
	assumeYes           bool
)

// customerCmd groups the customer subcommands
var customerCmd = &cobra.Command{
	Use:     "customer",
	Aliases: []string{"customers"},
	Short:   "Create, inspect and manage customers",
}

var customerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer, optionally with a payment source",
	Example: `  stripectl customer create --email jdoe@example.org \
    --card-number 4242424242424242 --exp-month 02 --exp-year 21`,
	Args: cobra.NoArgs,
	RunE: runCustomerCreate,
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a customer; only flags given are sent",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerUpdate,
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assumeYes && !confirm(cmd, fmt.Sprintf("Delete customer %s?", args[0])) {
			logger.Info().Str("customer", args[0]).Msg("Deletion cancelled")
			return nil
		}
		deleted, err := customer.Delete(args[0]).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printJSON(cmd, deleted)
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := createdRange()
		if err != nil {
			return err
		}
		p := &customer.ListParams{ListParams: listParams(), Created: created}
		if customerEmail != "" {
			p.Email = params.String(customerEmail)
		}

		page, err := customer.List(p).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printPage(cmd, page)
	},
}

var customerAttachCmd = &cobra.Command{
	Use:   "attach-source <id>",
	Short: "Attach a payment source to a customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := customerSource.params()
		if src == nil {
			return fmt.Errorf("one of --token, --source or --card-number is required")
		}
		source, err := customer.AttachSource(args[0], *src).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printJSON(cmd, source)
	},
}

var customerDetachCmd = &cobra.Command{
	Use:   "detach-source <id> <source-id>",
	Short: "Remove a payment source from a customer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deleted, err := customer.DetachSource(args[0], args[1]).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printJSON(cmd, deleted)
	},
}

func init() {
	customerCmd.AddCommand(customerCreateCmd)
	customerCmd.AddCommand(getCommand("get", "Retrieve one or more customers", func(id string) *client.Request[customer.Customer] {
		return customer.Retrieve(id)
	}))
	customerCmd.AddCommand(customerUpdateCmd)
	customerCmd.AddCommand(customerDeleteCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerAttachCmd)
	customerCmd.AddCommand(customerDetachCmd)

	for _, c := range []*cobra.Command{customerCreateCmd, customerUpdateCmd} {
		c.Flags().StringVar(&customerEmail, "email", "", "email address")
		c.Flags().StringVar(&customerDescription, "description", "", "free-form description")
		c.Flags().StringVar(&customerCoupon, "coupon", "", "coupon to apply")
		c.Flags().StringToStringVar(&customerMetadata, "metadata", nil, "metadata key=value pairs")
	}
	customerSource.register(customerCreateCmd)
	customerSource.register(customerAttachCmd)

	customerUpdateCmd.Flags().StringVar(&defaultSource, "default-source", "", "source to charge by default")
	customerUpdateCmd.Flags().BoolVar(&clearDefaultSource, "clear-default-source", false, "unset the default source")
	customerUpdateCmd.MarkFlagsMutuallyExclusive("default-source", "clear-default-source")

	customerDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompt")

	customerListCmd.Flags().StringVar(&customerEmail, "email", "", "only customers with this email")
	addListFlags(customerListCmd)
	addCreatedFlags(customerListCmd)
}

func runCustomerCreate(cmd *cobra.Command, args []string) error {
	p := &customer.Params{Source: customerSource.params()}
	if customerEmail != "" {
		p.Email = params.String(customerEmail)
	}
	if customerDescription != "" {
		p.Description = params.String(customerDescription)
	}
	if customerCoupon != "" {
		p.Coupon = params.String(customerCoupon)
	}
	if len(customerMetadata) > 0 {
		p.Metadata = params.Metadata(customerMetadata)
	}

	created, err := customer.Create(p).Send(cmd.Context(), apiClient)
	if err != nil {
		return err
	}
	logger.Info().Str("customer", created.ID).Msg("Customer created")
	return printJSON(cmd, created)
}

func runCustomerUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	// Unchanged flags stay nil so the API leaves those fields alone
	var p customer.Params
	if flags.Changed("email") {
		p.Email = params.String(customerEmail)
	}
	if flags.Changed("description") {
		p.Description = params.String(customerDescription)
	}
	if flags.Changed("coupon") {
		p.Coupon = params.String(customerCoupon)
	}
	if flags.Changed("metadata") {
		p.Metadata = params.Metadata(customerMetadata)
	}
	switch {
	case clearDefaultSource:
		p.DefaultSource = params.Clear()
	case flags.Changed("default-source"):
		p.DefaultSource = params.String(defaultSource)
	}

	updated, err := customer.Update(args[0], &p).Send(cmd.Context(), apiClient)
	if err != nil {
		return err
	}
	return printJSON(cmd, updated)
}
