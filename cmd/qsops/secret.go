package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qshelter/qsops/internal/awscli"
	"github.com/qshelter/qsops/internal/bootstrap"
)

func newSecretCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Check the bootstrap secret is readable",
		Long: `Secret fetches the bootstrap secret from SSM and prints a short
preview. The full value is never printed; this exists to confirm AWS
credentials and the parameter path before running bootstrap.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}

			client := awscli.NewClient(nil)
			secret, err := client.GetParameter(cmd.Context(), cfg.SecretParameter)
			if err != nil {
				return fmt.Errorf("fetching bootstrap secret: %w", err)
			}
			if secret == "" {
				return bootstrap.ErrEmptySecret
			}

			preview := secret
			if len(preview) > 5 {
				preview = preview[:5]
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s... (%d chars)\n",
				cfg.SecretParameter, preview, len(secret))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
