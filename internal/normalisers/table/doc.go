// Package table provides a Normaliser for files holding a single HTML table.
//
// The table's id attribute becomes the document id, its caption the title,
// the head row (without the row label column) the header, and each body row
// a labelled sequence of numbers. The footer's first cell is kept as raw
// text and scanned for a "Creation:<date><country>" line from which the
// creation date and country are derived.
package table
