// Package bootstrap runs the demo-bootstrap flow against the staging
// user-service Lambda: fetch the bootstrap secret, build the synthetic
// gateway event, invoke the function, and report the outcome.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/qshelter/qsops/internal/awscli"
	"github.com/qshelter/qsops/internal/config"
	"github.com/qshelter/qsops/internal/envelope"
)

// ErrEmptySecret means the SSM parameter resolved to nothing usable.
var ErrEmptySecret = errors.New("bootstrap secret is empty")

// Driver executes the bootstrap chain. Out receives operator-facing
// progress and the final report; unrecoverable problems come back as
// errors for the caller to surface.
type Driver struct {
	Config config.Config
	Client *awscli.Client
	Out    io.Writer
}

// New returns a Driver using the real AWS CLI.
func New(cfg config.Config, out io.Writer) *Driver {
	return &Driver{
		Config: cfg,
		Client: awscli.NewClient(nil),
		Out:    out,
	}
}

// Run walks the chain: fetch secret, build envelope, invoke, inspect
// invoke metadata, parse response, render. A business-level failure in
// the response is reported but is not an error; the demo environment
// telling us "no" is still a successful run of this tool.
func (d *Driver) Run(ctx context.Context) error {
	secret, err := d.fetchSecret(ctx)
	if err != nil {
		return err
	}

	if err := d.writePayload(secret); err != nil {
		return err
	}

	result, err := d.invoke(ctx)
	if err != nil {
		return err
	}

	d.inspectMetadata(result.Stdout)

	return d.report()
}

func (d *Driver) fetchSecret(ctx context.Context) (string, error) {
	fmt.Fprintln(d.Out, "🔑 Fetching bootstrap secret from SSM...")

	secret, err := d.Client.GetParameter(ctx, d.Config.SecretParameter)
	if err != nil {
		return "", fmt.Errorf("fetching bootstrap secret: %w", err)
	}
	if secret == "" {
		return "", ErrEmptySecret
	}

	fmt.Fprintf(d.Out, "   Got secret: %s...\n", truncate(secret, 5))
	return secret, nil
}

func (d *Driver) writePayload(secret string) error {
	event, err := envelope.Build(envelope.Params{
		RouteKey: d.Config.RouteKey,
		RawPath:  d.Config.RawPath,
		APIID:    d.Config.APIID,
		Stage:    d.Config.Stage,
		Secret:   secret,
		Body: envelope.Body{
			PropertyServiceURL: d.Config.PropertyServiceURL,
			MortgageServiceURL: d.Config.MortgageServiceURL,
			PaymentServiceURL:  d.Config.PaymentServiceURL,
		},
	})
	if err != nil {
		return err
	}

	if err := envelope.Write(event, d.Config.PayloadFile); err != nil {
		return err
	}

	fmt.Fprintf(d.Out, "📦 Payload written to %s\n", d.Config.PayloadFile)
	return nil
}

func (d *Driver) invoke(ctx context.Context) (awscli.Result, error) {
	fmt.Fprintln(d.Out)
	fmt.Fprintln(d.Out, "🚀 Invoking Lambda directly (bypassing API Gateway 30s limit)...")
	fmt.Fprintf(d.Out, "   Function: %s\n", d.Config.FunctionName)
	fmt.Fprintln(d.Out)

	result, err := d.Client.Invoke(ctx,
		d.Config.FunctionName,
		d.Config.PayloadFile,
		d.Config.ResponseFile,
		d.Config.ReadTimeout(),
	)

	fmt.Fprintf(d.Out, "⏱️  Lambda invocation took %.1fs\n", result.Duration.Seconds())
	if err != nil {
		return result, fmt.Errorf("invoking %s: %w", d.Config.FunctionName, err)
	}

	return result, nil
}

// inspectMetadata surfaces a function-level error from the CLI's invoke
// metadata. Not fatal: the CLI writes a response file even when the
// function errors, so parsing continues either way.
func (d *Driver) inspectMetadata(stdout string) {
	meta, err := ParseInvokeMetadata(strings.TrimSpace(stdout))
	if err != nil {
		fmt.Fprintf(d.Out, "⚠️  %v\n", err)
		return
	}
	if meta.FunctionError != "" {
		fmt.Fprintf(d.Out, "❌ Lambda function error: %s\n", meta.FunctionError)
	}
}

func (d *Driver) report() error {
	fmt.Fprintln(d.Out)
	fmt.Fprintln(d.Out, "--- Response ---")

	data, err := os.ReadFile(d.Config.ResponseFile)
	if err != nil {
		return fmt.Errorf("reading response file: %w", err)
	}

	statusCode, outcome, rawBody, err := ParseResponse(data)
	if err != nil {
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			fmt.Fprintf(d.Out, "HTTP Status: %d\n", statusCode)
			fmt.Fprintf(d.Out, "Raw body: %s\n", truncate(formatErr.RawBody, maxBodyChars))
		}
		return err
	}

	fmt.Fprintf(d.Out, "HTTP Status: %d\n", statusCode)

	if outcome.Success {
		RenderSuccess(d.Out, outcome)
	} else {
		RenderFailure(d.Out, rawBody)
	}
	return nil
}
