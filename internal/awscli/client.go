package awscli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Client wraps the aws binary.
type Client struct {
	runner Runner
}

// NewClient returns a Client backed by the given runner. A nil runner
// defaults to ExecRunner.
func NewClient(runner Runner) *Client {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{runner: runner}
}

// GetParameter reads a decrypted SSM parameter value.
// Whitespace (including the CLI's trailing newline) is stripped.
func (c *Client) GetParameter(ctx context.Context, name string) (string, error) {
	result, err := c.runner.Run(ctx, "aws",
		"ssm", "get-parameter",
		"--name", name,
		"--with-decryption",
		"--query", "Parameter.Value",
		"--output", "text",
	)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("ssm get-parameter exited %d: %s",
			result.ExitCode, strings.TrimSpace(result.Stderr))
	}

	return strings.TrimSpace(result.Stdout), nil
}

// InvokeError reports a failed `aws lambda invoke` call.
type InvokeError struct {
	ExitCode int
	Stderr   string
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("aws lambda invoke exited %d: %s", e.ExitCode, strings.TrimSpace(e.Stderr))
}

// Invoke calls a Lambda function with the payload file as the event and
// writes the function's response to responseFile. The returned Result
// holds the CLI's invocation metadata on stdout and the elapsed time.
//
// readTimeout becomes --cli-read-timeout so the CLI keeps the connection
// open for long-running functions.
func (c *Client) Invoke(ctx context.Context, functionName, payloadFile, responseFile string, readTimeout time.Duration) (Result, error) {
	result, err := c.runner.Run(ctx, "aws",
		"lambda", "invoke",
		"--function-name", functionName,
		"--payload", "file://"+payloadFile,
		"--cli-read-timeout", strconv.Itoa(int(readTimeout.Seconds())),
		responseFile,
	)
	if err != nil {
		return result, err
	}
	if result.ExitCode != 0 {
		return result, &InvokeError{ExitCode: result.ExitCode, Stderr: result.Stderr}
	}

	return result, nil
}
