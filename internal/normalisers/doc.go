// Package normalisers holds the implementations of the Normaliser port.
// A normaliser turns the raw content of one source file into a Document.
package normalisers
