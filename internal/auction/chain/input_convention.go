package chain

import (
	"fmt"
	"strings"
)

// InputConvention picks the index of the spent auction box among a transaction's inputs.
type InputConvention struct {
	name  string
	index func(inputs int) int
}

var (
	// LastInput is used by the auction contract family that appends the auction box after
	// the inputs funding the bid.
	LastInput = InputConvention{
		name:  "last",
		index: func(inputs int) int { return inputs - 1 },
	}
	// FirstInput is used by contracts that spend the auction box first.
	FirstInput = InputConvention{
		name:  "first",
		index: func(int) int { return 0 },
	}
)

// ParseInputConvention resolves a convention by name.
func ParseInputConvention(name string) (InputConvention, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LastInput.name:
		return LastInput, nil
	case FirstInput.name:
		return FirstInput, nil
	default:
		return InputConvention{}, fmt.Errorf("unknown input convention %q", name)
	}
}

// String returns the convention name.
func (c InputConvention) String() string {
	if c.name == "" {
		return LastInput.name
	}
	return c.name
}

// Index returns the auction box position for a transaction with the given input count.
func (c InputConvention) Index(inputs int) (int, error) {
	if inputs <= 0 {
		return 0, fmt.Errorf("transaction has no inputs: %w", ErrMalformedResponse)
	}
	index := c.index
	if index == nil {
		index = LastInput.index
	}
	idx := index(inputs)
	if idx < 0 || idx >= inputs {
		return 0, fmt.Errorf("input convention %s selects %d of %d inputs: %w", c.name, idx, inputs, ErrMalformedResponse)
	}
	return idx, nil
}
