// Package cli provides the cobra command tree of discrepancy-finder.
//
// Commands talk to the core through the driving ports only. The services
// are installed with SetServices, or built lazily by a Bootstrap function
// once persistent flags have been parsed.
package cli
