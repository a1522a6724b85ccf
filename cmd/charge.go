package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spotlease/stripe-go/charge"
	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/params"
)

var (
	chargeAmount       int64
	chargeCurrency     string
	chargeCustomer     string
	chargeDescription  string
	chargeReceiptEmail string
	chargeCapture      bool
	chargeMetadata     map[string]string
	chargeSource       sourceFlags
	captureAmount      int64
	chargeSourceType   string
)

// chargeCmd groups the charge subcommands
var chargeCmd = &cobra.Command{
	Use:     "charge",
	Aliases: []string{"charges"},
	Short:   "Create, capture and inspect charges",
}

var chargeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Charge a customer or a payment source",
	Example: `  stripectl charge create --amount 2000 --currency usd --token tok_visa
  stripectl charge create --amount 500 --customer cus_123 --capture=false`,
	Args: cobra.NoArgs,
	RunE: runChargeCreate,
}

var chargeCaptureCmd = &cobra.Command{
	Use:   "capture <id>",
	Short: "Capture an uncaptured charge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var p charge.CaptureParams
		if cmd.Flags().Changed("amount") {
			p.Amount = params.Int64(captureAmount)
		}
		captured, err := charge.Capture(args[0], &p).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printJSON(cmd, captured)
	},
}

var chargeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List charges",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := createdRange()
		if err != nil {
			return err
		}
		p := &charge.ListParams{ListParams: listParams(), Created: created}
		if chargeCustomer != "" {
			p.Customer = params.String(chargeCustomer)
		}
		if chargeSourceType != "" {
			p.Source = &charge.SourceFilter{Object: charge.SourceType(chargeSourceType)}
		}

		page, err := charge.List(p).Send(cmd.Context(), apiClient)
		if err != nil {
			return err
		}
		return printPage(cmd, page)
	},
}

func init() {
	chargeCmd.AddCommand(chargeCreateCmd)
	chargeCmd.AddCommand(getCommand("get", "Retrieve one or more charges", func(id string) *client.Request[charge.Charge] {
		return charge.Retrieve(id)
	}))
	chargeCmd.AddCommand(chargeCaptureCmd)
	chargeCmd.AddCommand(chargeListCmd)

	f := chargeCreateCmd.Flags()
	f.Int64Var(&chargeAmount, "amount", 0, "amount in the smallest currency unit")
	f.StringVar(&chargeCurrency, "currency", string(params.CurrencyUSD), "three-letter currency code")
	f.StringVar(&chargeCustomer, "customer", "", "customer to charge")
	f.StringVar(&chargeDescription, "description", "", "free-form description")
	f.StringVar(&chargeReceiptEmail, "receipt-email", "", "email a receipt to this address")
	f.BoolVar(&chargeCapture, "capture", true, "capture immediately; --capture=false only authorizes")
	f.StringToStringVar(&chargeMetadata, "metadata", nil, "metadata key=value pairs")
	chargeSource.register(chargeCreateCmd)
	_ = chargeCreateCmd.MarkFlagRequired("amount")

	chargeCaptureCmd.Flags().Int64Var(&captureAmount, "amount", 0, "capture less than the authorized amount")

	chargeListCmd.Flags().StringVar(&chargeCustomer, "customer", "", "only charges for this customer")
	chargeListCmd.Flags().StringVar(&chargeSourceType, "source-type", "", "only charges paid with this source type (card, bitcoin_receiver, alipay_account, all)")
	addListFlags(chargeListCmd)
	addCreatedFlags(chargeListCmd)
}

func runChargeCreate(cmd *cobra.Command, args []string) error {
	if chargeAmount <= 0 {
		return fmt.Errorf("--amount must be positive")
	}

	p := &charge.Params{
		Amount:   params.Int64(chargeAmount),
		Currency: ptr(params.Currency(strings.ToLower(chargeCurrency))),
		Source:   chargeSource.params(),
	}
	if p.Source == nil && chargeCustomer == "" {
		return fmt.Errorf("either --customer or a source (--token, --source, --card-number) is required")
	}
	if chargeCustomer != "" {
		p.Customer = params.String(chargeCustomer)
	}
	if chargeDescription != "" {
		p.Description = params.String(chargeDescription)
	}
	if chargeReceiptEmail != "" {
		p.ReceiptEmail = params.String(chargeReceiptEmail)
	}
	if cmd.Flags().Changed("capture") {
		p.Capture = params.Bool(chargeCapture)
	}
	if len(chargeMetadata) > 0 {
		p.Metadata = params.Metadata(chargeMetadata)
	}

	created, err := charge.Create(p).Send(cmd.Context(), apiClient)
	if err != nil {
		return err
	}
	logger.Info().Str("charge", created.ID).Msg("Charge created")
	return printJSON(cmd, created)
}

func ptr[T any](v T) *T {
	return &v
}
