package types

import "fmt"

// SortKey selects the vendor attribute used for ordering
type SortKey string

const (
	SortByPriority   SortKey = "priority"
	SortByTotalScore SortKey = "totalScore"
	SortByName       SortKey = "name"
)

// IsValid checks if the sort key is valid
func (k SortKey) IsValid() bool {
	switch k {
	case SortByPriority,
		SortByTotalScore,
		SortByName:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort key
func (k SortKey) String() string {
	return string(k)
}

// ParseSortKey parses a string into a SortKey. Empty defaults to priority.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByPriority, nil
	}
	key := SortKey(s)
	if !key.IsValid() {
		return "", fmt.Errorf("invalid sort key: %s", s)
	}
	return key, nil
}

// SortDirection is either ascending or descending
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid checks if the direction is valid
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// Flip returns the opposite direction
func (d SortDirection) Flip() SortDirection {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// String returns the string representation of the direction
func (d SortDirection) String() string {
	return string(d)
}

// ParseSortDirection parses a string into a SortDirection. Empty defaults to asc.
func ParseSortDirection(s string) (SortDirection, error) {
	if s == "" {
		return SortAsc, nil
	}
	dir := SortDirection(s)
	if !dir.IsValid() {
		return "", fmt.Errorf("invalid sort direction: %s", s)
	}
	return dir, nil
}
