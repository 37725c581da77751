package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of goalctl, assembled from the
// adapter section of [StructuredConfig].
type ClientConfig struct {
	// UserServiceAddress is the base URL of the user service.
	UserServiceAddress string
	// GoalServiceAddress is the base URL of the goal service.
	GoalServiceAddress string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is the default session token of goalctl.
	Token string
}

// GetClientConfig builds and validates the client configuration from
// defaults, the environment and an optional JSON file. Command-line flags
// belong to goalctl subcommands and are not read here.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().withDefaults("").withEnv().withJSON()
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building client config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergeOverride(merged, cfg); err != nil {
			return nil, err
		}
	}

	clientCfg := &ClientConfig{
		UserServiceAddress: merged.Adapter.UserServiceAddress,
		GoalServiceAddress: merged.Adapter.GoalServiceAddress,
		RequestTimeout:     merged.Adapter.RequestTimeout,
		Token:              merged.Adapter.Token,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return clientCfg, nil
}
