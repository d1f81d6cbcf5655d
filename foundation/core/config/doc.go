// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for the toolchain configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

/*
Package config loads the jackc configuration.

A configuration file is TOML unless its extension is .yaml or .yml:

	[general]
	log_level = "info"     # trace, debug, info, warn, error, fatal
	log_format = "console" # json, text, console
	log_caller = false     # add file:line of each logging call

	[compiler]
	extension = ".jack"

	[history]
	enabled = true
	path = "$HOME/.local/share/jackc/history.db"
	busy_timeout = "5s"

	[output]
	color = true

Usage:

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:        cfg.LogLevel(),
		Format:       cfg.LogFormat(),
		EnableCaller: cfg.General.LogCaller,
	})

LoadFromEnv reads the file named by JACKC_CONFIG, then the first of
./configs/jackc.toml, ./jackc.toml and ~/.config/jackc/config.toml, and
falls back to Default.
*/
package config
