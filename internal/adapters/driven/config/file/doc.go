// Package file provides file-based configuration adapters.
// These adapters read and write configuration on the local filesystem.
//
// Adapters:
//   - RuleSetFile: TOML-based rule set configuration
package file
