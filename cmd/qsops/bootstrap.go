package main

import (
	"github.com/spf13/cobra"

	"github.com/qshelter/qsops/internal/bootstrap"
	"github.com/qshelter/qsops/internal/config"
)

// configFlags are shared by every subcommand that targets an environment.
type configFlags struct {
	configFile   string
	function     string
	parameter    string
	payloadFile  string
	responseFile string
	readTimeout  int
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "YAML config file (default: built-in staging settings)")
	cmd.Flags().StringVar(&f.function, "function", "", "Lambda function name override")
	cmd.Flags().StringVar(&f.parameter, "parameter", "", "SSM parameter holding the bootstrap secret")
	cmd.Flags().StringVar(&f.payloadFile, "payload-file", "", "Path for the generated event payload")
	cmd.Flags().StringVar(&f.responseFile, "response-file", "", "Path for the Lambda response")
	cmd.Flags().IntVar(&f.readTimeout, "read-timeout", 0, "AWS CLI read timeout in seconds")
}

// load resolves the effective config: defaults, then the config file,
// then explicit flag overrides.
func (f *configFlags) load() (config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if f.function != "" {
		cfg.FunctionName = f.function
	}
	if f.parameter != "" {
		cfg.SecretParameter = f.parameter
	}
	if f.payloadFile != "" {
		cfg.PayloadFile = f.payloadFile
	}
	if f.responseFile != "" {
		cfg.ResponseFile = f.responseFile
	}
	if f.readTimeout > 0 {
		cfg.ReadTimeoutSeconds = f.readTimeout
	}

	return cfg, cfg.Validate()
}

func newBootstrapCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Seed the staging environment with demo data",
		Long: `Bootstrap invokes the user-service demo-bootstrap route directly.

The flow:
- Fetches the bootstrap secret from SSM
- Builds a synthetic API Gateway v2 event carrying the secret
- Invokes the Lambda through the AWS CLI (long read timeout)
- Pretty-prints the created tenant, actors, organizations and steps

A business-level failure in the response is printed but exits 0;
configuration, invocation and response-format problems exit 1.

Examples:
    qsops bootstrap
    qsops bootstrap --function my-fork-staging-api
    qsops bootstrap -c prod-like.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}

			driver := bootstrap.New(cfg, cmd.OutOrStdout())
			return driver.Run(cmd.Context())
		},
	}

	flags.register(cmd)
	return cmd
}
