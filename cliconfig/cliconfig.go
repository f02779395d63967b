// Package cliconfig loads the gochess command-line demo's
// configuration from a TOML file, the way the ambient stack for this
// project's CLI surface is expected to be configured.
package cliconfig

import (
	"github.com/BurntSushi/toml"
)

// Config controls the gochess CLI demo: which engine backs the board
// and which position to start from.
type Config struct {
	// Engine selects "bitboard" or "mapboard". Defaults to "bitboard"
	// when empty.
	Engine string `toml:"engine"`
	// StartFEN is the FEN to decode at startup. Defaults to the
	// standard starting position when empty.
	StartFEN string `toml:"start_fen"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{Engine: "bitboard"}
}

// Load reads and parses a TOML config file at path, filling in
// defaults for any field left unset.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if cfg.Engine == "" {
		cfg.Engine = "bitboard"
	}
	return cfg, nil
}
