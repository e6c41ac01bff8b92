// SPDX-License-Identifier: MIT

package builder

import (
	"strconv"
)

// IDFn maps a zero-based vertex index to its identifier. Implementations must
// be pure: the same idx always yields the same string. Negative indices are
// never produced by the constructors in this package.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal form of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn returns lowercase spreadsheet-style names: 0→"a", 25→"z",
// 26→"aa", 27→"ab". Handy for fixtures labelled a, b, c, ...
func LetterIDFn(idx int) string {
	return columnName(idx, 'a')
}

// ExcelColumnIDFn returns uppercase spreadsheet-style names: 0→"A", 26→"AA".
func ExcelColumnIDFn(idx int) string {
	return columnName(idx, 'A')
}

// PrefixIDFn returns an IDFn producing prefix+decimal: "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// columnName renders idx in bijective base-26 starting at base.
// Complexity: O(log₂₆ idx).
func columnName(idx int, base rune) string {
	if idx < 0 {
		return strconv.Itoa(idx)
	}
	var buf []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, base+rune(i%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithLetterIDs selects LetterIDFn.
func WithLetterIDs() BuilderOption { return WithIDScheme(LetterIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs selects PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
