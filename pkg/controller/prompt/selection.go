package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidSelectionError describes why a menu entry typed by the user was rejected
type InvalidSelectionError struct {
	Token  string
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	if e.Token == "" {
		return e.Reason
	}
	return fmt.Sprintf("%q %s", e.Token, e.Reason)
}

// isQuit reports whether input is the quit sentinel
func isQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "q")
}

// ParseChoice parses a single 1-based menu index in [1, count]
func ParseChoice(input string, count int) (int, error) {
	token := strings.TrimSpace(input)
	if token == "" {
		return 0, &InvalidSelectionError{Reason: "no number entered"}
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, &InvalidSelectionError{Token: token, Reason: "is not a number"}
	}
	if n < 1 || n > count {
		return 0, &InvalidSelectionError{Token: token, Reason: fmt.Sprintf("is out of range (1-%d)", count)}
	}

	return n, nil
}

// ParseSelection parses a comma separated list of 1-based menu indices in
// [1, count]. Repeated indices are kept once, in first-seen order. Any bad
// entry rejects the whole input.
func ParseSelection(input string, count int) ([]int, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &InvalidSelectionError{Reason: "no folder numbers entered"}
	}

	var selected []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		if strings.TrimSpace(part) == "" {
			return nil, &InvalidSelectionError{Reason: "empty entry between commas"}
		}

		n, err := ParseChoice(part, count)
		if err != nil {
			return nil, err
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		selected = append(selected, n)
	}

	return selected, nil
}
