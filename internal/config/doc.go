// Package config loads CLI configuration from the environment and builds the
// process logger from it.
package config
