// Package connectors provides implementations of the Source interface
// for locations that hold table files.
package connectors
