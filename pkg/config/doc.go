// Package config loads dotlink's configuration.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. The user file: $DOTLINK_CONFIG, or $XDG_CONFIG_HOME/dotlink/config.toml
//  3. DOTLINK_* environment variables (DOTLINK_SUBTREES_PAUSE -> subtrees.pause)
//  4. Explicit overrides, usually from command line flags
//
// The resulting Config is built once at startup and handed to pkg/paths,
// which resolves it into the absolute locations every command receives.
package config
