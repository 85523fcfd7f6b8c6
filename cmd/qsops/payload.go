package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qshelter/qsops/internal/envelope"
)

func newPayloadCmd() *cobra.Command {
	var (
		flags      configFlags
		secret     string
		reveal     bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Print the synthetic gateway event",
		Long: `Payload builds the API Gateway v2 event bootstrap would send and
prints it as indented JSON, without touching AWS.

The secret header is redacted unless --reveal is set. Pass --secret to
embed a specific value, e.g. when invoking the Lambda by hand:

    qsops payload --secret "$SECRET" --reveal -o /tmp/event.json
    aws lambda invoke --function-name ... --payload file:///tmp/event.json out.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}

			event, err := envelope.Build(envelope.Params{
				RouteKey: cfg.RouteKey,
				RawPath:  cfg.RawPath,
				APIID:    cfg.APIID,
				Stage:    cfg.Stage,
				Secret:   secret,
				Body: envelope.Body{
					PropertyServiceURL: cfg.PropertyServiceURL,
					MortgageServiceURL: cfg.MortgageServiceURL,
					PaymentServiceURL:  cfg.PaymentServiceURL,
				},
			})
			if err != nil {
				return err
			}

			if !reveal {
				event.Headers[envelope.SecretHeader] = "REDACTED"
			}

			data, err := json.MarshalIndent(event, "", "  ")
			if err != nil {
				return err
			}

			if outputFile != "" {
				if err := os.WriteFile(outputFile, data, 0644); err != nil {
					return fmt.Errorf("writing payload: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Payload written to %s\n", outputFile)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&secret, "secret", "", "Bootstrap secret to embed in the event")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the secret header instead of redacting it")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the event to a file instead of stdout")

	return cmd
}
