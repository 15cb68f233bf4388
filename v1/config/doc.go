// Package config assembles the configuration of collection-init from
// defaults, an optional YAML file, an optional dotenv file and the
// environment. Command line flags are applied on top by the caller.
package config
