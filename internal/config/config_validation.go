// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The signing secret and both token lifetimes are hard requirements: token
// issuance cannot work without them. The DSN and HTTP address are required
// because the process has exactly one storage backend and one transport.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.AccessTokenTTL <= 0 || cfg.App.RefreshTokenTTL <= 0 {
		return ErrInvalidTokenTTLConfigs
	}

	if cfg.App.BcryptCost < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
