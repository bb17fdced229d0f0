// Package config loads publish settings from a TOML file.
//
// Every setting has a flag counterpart in the CLI; flags win over the file.
// Settings left empty after both are filled from defaults derived from the
// repository root and the XDG cache directory, then validated.
//
// Example usage:
//
//	cfg, err := config.Load("sharedfx.toml")
//	if err != nil {
//	    return err
//	}
//	cfg.Version = "3.0.0"
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
