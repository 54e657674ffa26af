// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the invariants shared by the server and the client.
// Whether a server address is present is checked when the servers are
// created, so a client-only config still validates.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidServerConfigs, cfg.Server.RequestTimeout)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidAdapterConfigs, cfg.Adapter.RequestTimeout)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}

func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" {
		return fmt.Errorf("%w: server address is empty", ErrInvalidAdapterConfigs)
	}

	if cfg.Client.InputFile == "" {
		return fmt.Errorf("%w: input file is not set", ErrInvalidClientConfigs)
	}

	return nil
}
