package value

import (
	"errors"
	"strings"
)

var ErrEmptyItemID = errors.New("item id is empty")

// ItemID: идентификатор айтема на аукционе.
type ItemID string

func ParseItemID(s string) (ItemID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyItemID
	}

	return ItemID(s), nil
}

func (id ItemID) String() string {
	return string(id)
}
