// Command qsops runs operator tasks against the QShelter staging environment.
//
// Usage:
//
//	qsops bootstrap            Seed the staging demo data
//	qsops payload              Print the synthetic gateway event
//	qsops secret               Check the bootstrap secret is readable
//	qsops version              Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qsops",
		Short: "Operate the QShelter staging environment",
		Long: `qsops drives the staging user-service Lambda directly.

The demo-bootstrap flow takes longer than the API Gateway 30s limit, so
qsops invokes the function through the AWS CLI with a synthetic gateway
event instead of going through the gateway:

    qsops bootstrap`,
	}

	rootCmd.AddCommand(
		newBootstrapCmd(),
		newPayloadCmd(),
		newSecretCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qsops %s\n", getVersion())
		},
	}
}
