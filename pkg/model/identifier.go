package model

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	DefaultIdentifierPrefix = "SCH"
	DefaultIdentifierDigits = 3
)

// identifierAllocator hands out prefix + zero-padded identifiers for a whole run. The pattern is
// compiled once and the highest suffix is tracked as identifiers are issued.
type identifierAllocator struct {
	prefix string
	digits int
	taken  map[string]bool
	next   int
}

func newIdentifierAllocator(existing []string, prefix string, digits int) *identifierAllocator {
	pattern := regexp.MustCompile(fmt.Sprintf(`^%s(\d{%d})$`, regexp.QuoteMeta(prefix), digits))

	allocator := &identifierAllocator{
		prefix: prefix,
		digits: digits,
		taken:  make(map[string]bool, len(existing)),
	}
	highest := 0
	for _, identifier := range existing {
		allocator.taken[identifier] = true
		match := pattern.FindStringSubmatch(identifier)
		if match == nil {
			continue
		}
		if number, err := strconv.Atoi(match[1]); err == nil {
			highest = max(highest, number)
		}
	}
	allocator.next = highest + 1
	return allocator
}

// allocate returns the next free identifier and reserves it
func (allocator *identifierAllocator) allocate() string {
	// Once the suffix outgrows its width the candidate may clash with a longer, non-matching identifier
	for ; ; allocator.next++ {
		candidate := fmt.Sprintf("%s%0*d", allocator.prefix, allocator.digits, allocator.next)
		if !allocator.taken[candidate] {
			allocator.taken[candidate] = true
			allocator.next++
			return candidate
		}
	}
}

// NextIdentifier returns prefix followed by one more than the largest numeric suffix among the
// existing identifiers of the form prefix + exactly `digits` decimal digits, zero-padded to
// `digits`. The result is never one of the existing identifiers.
//
// Example:
//
//	NextIdentifier([]string{"SCH001", "SCH007", "X9"}, "SCH", 3) // "SCH008"
func NextIdentifier(existing []string, prefix string, digits int) string {
	return newIdentifierAllocator(existing, prefix, digits).allocate()
}
