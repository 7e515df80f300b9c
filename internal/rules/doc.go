// Package rules provides the built-in document validation rules and a
// registry that builds rules by name from configuration.
//
// Every rule is a stateless value implementing driven.Rule. The set of
// rule types is closed: new rules are added by registering a builder
// with a Registry, never by discovery.
package rules
