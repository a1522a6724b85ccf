// Package client provides the request pipeline for the Stripe API.
//
// A call goes through three steps. A resource package (customer, charge,
// invoice, plan) builds a typed Request describing the method, path and
// parameters. Resolve turns the Request and a Config into the exact URL,
// headers and form body to send. Execute sends it once and dispatches the
// response: a 2xx status decodes into the Request's result type, anything
// else decodes into an *APIError.
//
// # Usage
//
//	cfg, err := client.NewConfig("sk_test_...")
//	if err != nil {
//		log.Fatal(err)
//	}
//	c := client.New(cfg, client.WithLogger(logger))
//
//	cus, err := customer.Create(&customer.Params{
//		Email: params.String("jdoe@example.org"),
//	}).Send(ctx, c)
//
// # Connected accounts
//
// The Stripe-Account header is taken from the request when set with
// Request.ForAccount, and from the configuration otherwise. Client.WithAccount
// returns a client bound to another account without touching the original,
// which makes it the right choice when several accounts are served
// concurrently. Client.SetAccount changes only that client, since New copies
// its Config, and is meant for single-account programs.
//
// # Error Handling
//
// Every failure is returned, never logged or retried:
//
//   - ConfigError: the base URL given to NewConfig is not absolute
//   - EncodeError: the parameters could not be form encoded
//   - TransportError: no response was received
//   - DecodeError: the response body had an unexpected shape
//   - APIError: the API reported a failure
//
// Each type matches its sentinel with errors.Is:
//
//	var apiErr *client.APIError
//	if errors.As(err, &apiErr) && apiErr.IsCardError() {
//		fmt.Println(apiErr.ErrorCode())
//	}
package client
