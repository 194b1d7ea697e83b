// Package config loads logging settings from TOML or YAML files with
// environment variable overrides.
//
// Package: config
// Title: Logging Configuration
// Description: File- and environment-driven configuration for the logging
//              facility. Settings are read from TOML or YAML (detected by
//              file extension), overlaid with SWLOG_* environment variables,
//              validated, and bridged into a log.Config for initialization.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with TOML/YAML support
//
// Features:
//   - TOML and YAML parsing with format detection by file extension
//   - Environment overrides (SWLOG_DESTINATION, SWLOG_FILE_NAME,
//     SWLOG_TRUNCATE_LONG_LOG, SWLOG_LEVEL_THRESHOLD), prefix configurable
//   - Optional .env loading before overrides are applied
//   - Validation of destination, file name, and level threshold
//   - One-call logger initialization via LoadInto
//
// Usage:
//
//	settings, err := config.Load("swlog.toml")
//	if err != nil {
//	    return err
//	}
//	cfg, err := settings.LoggerConfig()
//	if err != nil {
//	    return err
//	}
//	if err := log.InitWithConfig(cfg); err != nil {
//	    return err
//	}
//
// Or in one step:
//
//	if _, err := config.LoadInto("swlog.toml", nil); err != nil {
//	    return err
//	}
package config
