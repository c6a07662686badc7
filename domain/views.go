package domain

import (
	"errors"
)

var ErrInvalidSortKey = errors.New("unknown sort key")

type SortKey string

const (
	SortByName      SortKey = "name"
	SortByDateAdded SortKey = "dateAdded"
	SortByExpiry    SortKey = "expiryDate"
	SortByCategory  SortKey = "category"
)

func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByName, SortByDateAdded, SortByExpiry, SortByCategory:
		return SortKey(s), nil
	case "":
		return SortByExpiry, nil
	default:
		return "", ErrInvalidSortKey
	}
}

// BrowseQuery are the user-controlled parameters of the browse view.
// Category == CategoryAll means no restriction.
type BrowseQuery struct {
	Search   string
	Category Category
	Sort     SortKey
}
