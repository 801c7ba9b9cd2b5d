package core

import "sort"

// TypeTotal is the summed amount of every transaction sharing a type label.
type TypeTotal struct {
	Type  TransactionType
	Total float64
}

// Summary maps a type label to the sum of its amounts. Labels with no rows are absent.
type Summary map[TransactionType]float64

// Totals returns the summary entries with income and expense first, then any
// other label alphabetically.
func (s Summary) Totals() []TypeTotal {
	out := make([]TypeTotal, 0, len(s))
	for _, t := range Types() {
		if v, ok := s[t]; ok {
			out = append(out, TypeTotal{Type: t, Total: v})
		}
	}
	var rest []TypeTotal
	for t, v := range s {
		if !t.IsValid() {
			rest = append(rest, TypeTotal{Type: t, Total: v})
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Type < rest[j].Type })
	return append(out, rest...)
}
