// Package config loads, normalizes, and validates mcpackr configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours XDG_DATA_HOME when choosing the
// state directory. The Config type gathers the porting knobs (target
// revisions, path case policy, junk filters) together with output, ledger and
// logging settings.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
