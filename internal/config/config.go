// Package config holds the staging environment settings for qsops.
//
// Every field has a default matching the staging deployment, so the CLI
// works with no configuration at all. A YAML file can override any subset
// of fields for other environments.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes the target environment for a bootstrap invocation.
type Config struct {
	// SecretParameter is the SSM parameter holding the bootstrap secret.
	SecretParameter string `yaml:"secretParameter"`

	// FunctionName is the Lambda function invoked directly, bypassing
	// the API Gateway 30s limit.
	FunctionName string `yaml:"functionName"`

	// RouteKey, RawPath, APIID and Stage shape the synthetic gateway event.
	RouteKey string `yaml:"routeKey"`
	RawPath  string `yaml:"rawPath"`
	APIID    string `yaml:"apiId"`
	Stage    string `yaml:"stage"`

	// Downstream service URLs passed in the request body.
	PropertyServiceURL string `yaml:"propertyServiceUrl"`
	MortgageServiceURL string `yaml:"mortgageServiceUrl"`
	PaymentServiceURL  string `yaml:"paymentServiceUrl"`

	// PayloadFile and ResponseFile are scratch paths shared with the AWS
	// CLI. Fixed defaults mean concurrent runs race on them; that is an
	// accepted limitation of the single-operator workflow.
	PayloadFile  string `yaml:"payloadFile"`
	ResponseFile string `yaml:"responseFile"`

	// ReadTimeoutSeconds is passed to the AWS CLI as --cli-read-timeout
	// so slow bootstrap runs are not cut off client-side.
	ReadTimeoutSeconds int `yaml:"readTimeoutSeconds"`
}

// ReadTimeout returns the CLI read timeout as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// Default returns the staging configuration.
func Default() Config {
	return Config{
		SecretParameter:    "/qshelter/staging/bootstrap-secret",
		FunctionName:       "qshelter-user-service-staging-api",
		RouteKey:           "ANY /admin/{proxy+}",
		RawPath:            "/admin/demo-bootstrap",
		APIID:              "1oi4sd5b4i",
		Stage:              "$default",
		PropertyServiceURL: "https://z32oarlcp7.execute-api.us-east-1.amazonaws.com",
		MortgageServiceURL: "https://el0slr8sg5.execute-api.us-east-1.amazonaws.com",
		PaymentServiceURL:  "https://cmwxqd18ga.execute-api.us-east-1.amazonaws.com",
		PayloadFile:        "/tmp/demo-bootstrap-payload.json",
		ResponseFile:       "/tmp/demo-bootstrap-response.json",
		ReadTimeoutSeconds: 180,
	}
}

// Load reads a YAML file and overlays it on the defaults. Fields absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that required fields are non-empty.
func (c Config) Validate() error {
	switch {
	case c.SecretParameter == "":
		return fmt.Errorf("secretParameter must not be empty")
	case c.FunctionName == "":
		return fmt.Errorf("functionName must not be empty")
	case c.PayloadFile == "":
		return fmt.Errorf("payloadFile must not be empty")
	case c.ResponseFile == "":
		return fmt.Errorf("responseFile must not be empty")
	}
	return nil
}
