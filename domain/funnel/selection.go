package funnel

import (
	"errors"
	"fmt"
)

// SearchSlots is the number of related searches a content unit carries (WR-1..WR-4).
const SearchSlots = 4

// WebResultSlots is the most web results kept per related search.
const WebResultSlots = 4

var (
	ErrSelectionFull      = errors.New("selection is full")
	ErrDuplicateSelection = errors.New("candidate selected more than once")
	ErrNegativeCandidate  = errors.New("candidate index cannot be negative")
)

// Selection is an ordered list of candidate indexes. Position in the list is
// the rank: the first item gets rank 1.
type Selection struct {
	Capacity int   `json:"capacity"`
	Items    []int `json:"items"`
}

func NewSelection(capacity int) Selection {
	return Selection{Capacity: capacity, Items: []int{}}
}

// Toggle deselects candidate if it is selected, otherwise appends it.
// Reselecting a candidate puts it at the end, it does not get its old rank back.
func (s *Selection) Toggle(candidate int) (selected bool, err error) {
	if candidate < 0 {
		return false, ErrNegativeCandidate
	}
	for i, item := range s.Items {
		if item == candidate {
			s.Items = append(s.Items[:i:i], s.Items[i+1:]...)
			return false, nil
		}
	}
	if len(s.Items) >= s.Capacity {
		return false, fmt.Errorf("%w: %d of %d selected", ErrSelectionFull, len(s.Items), s.Capacity)
	}
	s.Items = append(s.Items, candidate)
	return true, nil
}

// Set replaces the selection with order.
func (s *Selection) Set(order []int) error {
	if len(order) > s.Capacity {
		return fmt.Errorf("%w: %d of %d selected", ErrSelectionFull, len(order), s.Capacity)
	}
	seen := make(map[int]bool, len(order))
	for _, c := range order {
		if c < 0 {
			return ErrNegativeCandidate
		}
		if seen[c] {
			return fmt.Errorf("%w: %d", ErrDuplicateSelection, c)
		}
		seen[c] = true
	}
	s.Items = append([]int{}, order...)
	return nil
}

// Rank is the 1-based position of candidate, or 0 when it is not selected.
func (s Selection) Rank(candidate int) int {
	for i, item := range s.Items {
		if item == candidate {
			return i + 1
		}
	}
	return 0
}

func (s Selection) Len() int {
	return len(s.Items)
}

func (s Selection) Complete() bool {
	return len(s.Items) == s.Capacity
}

// At returns the candidate holding rank (1-based).
func (s Selection) At(rank int) (int, bool) {
	if rank < 1 || rank > len(s.Items) {
		return 0, false
	}
	return s.Items[rank-1], true
}
