// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] satisfies the
// invariants of role before it is used at startup.
func (cfg *StructuredConfig) validate(role Role) error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}

	if cfg.App.BcryptCost < MinBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d is below %d", ErrInvalidAppConfigs, cfg.App.BcryptCost, MinBcryptCost)
	}

	if cfg.App.BcryptCost > MaxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d is above %d", ErrInvalidAppConfigs, cfg.App.BcryptCost, MaxBcryptCost)
	}

	if role == RoleUserService && cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	return nil
}

// validate checks that both service addresses are usable base URLs.
func (cfg *ClientConfig) validate() error {
	for _, raw := range []string{cfg.UserServiceAddress, cfg.GoalServiceAddress} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: bad service address %q", ErrInvalidAdapterConfigs, raw)
		}
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
