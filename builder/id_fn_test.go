package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/domset/builder"
)

func TestIDFns(t *testing.T) {
	tests := []struct {
		name string
		fn   builder.IDFn
		in   int
		want string
	}{
		{"Default_zero", builder.DefaultIDFn, 0, "0"},
		{"Default_multi", builder.DefaultIDFn, 123, "123"},
		{"Letter_first", builder.LetterIDFn, 0, "a"},
		{"Letter_last", builder.LetterIDFn, 25, "z"},
		{"Letter_wrap", builder.LetterIDFn, 26, "aa"},
		{"Letter_wrap2", builder.LetterIDFn, 27, "ab"},
		{"Excel_first", builder.ExcelColumnIDFn, 0, "A"},
		{"Excel_wrap", builder.ExcelColumnIDFn, 701, "ZZ"},
		{"Excel_three", builder.ExcelColumnIDFn, 702, "AAA"},
		{"Excel_negative", builder.ExcelColumnIDFn, -1, "-1"},
		{"Prefix", builder.PrefixIDFn("v"), 12, "v12"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.in))
		})
	}
}
