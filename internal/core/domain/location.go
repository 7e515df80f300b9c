package domain

import "fmt"

// Location is a JSON-path-like string describing where in a Document
// an issue was found, e.g. "$.body[0].body[3]".
type Location string

// Well-known document locations.
const (
	LocationNone           Location = ""
	LocationTitle          Location = "$.title"
	LocationDateOfCreation Location = "$.date_of_creation"
	LocationFirstRow       Location = "$.body[0]"
)

// RowValueLocation returns the location of a single value within a row.
func RowValueLocation(row, index int) Location {
	return Location(fmt.Sprintf("$.body[%d].body[%d]", row, index))
}

// String returns the string representation.
func (l Location) String() string {
	return string(l)
}
