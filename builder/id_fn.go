// SPDX-License-Identifier: MIT

package builder

import (
	"strconv"
)

// IDFn maps a vertex index to its id. It must be injective on the indices a
// constructor uses.
type IDFn func(idx int) string

// DefaultIDFn returns decimal ids: "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnIDFn returns spreadsheet column ids: "A".."Z", "AA", "AB", ...
// Negative indices yield "".
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		return ""
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix followed by the decimal index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithSymbolIDs names vertices "A", "B", ... (ExcelColumnIDFn).
func WithSymbolIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithSymbNumb names vertices prefix+index.
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
