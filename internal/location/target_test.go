package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want Target
	}{
		{in: "src/app.ts", want: Target{Path: "src/app.ts"}},
		{in: "src/app.ts:10", want: Target{Path: "src/app.ts", Selections: []Selection{{StartLine: 9, EndLine: 9, Empty: true}}}},
		{in: "src/app.ts:10-20", want: Target{Path: "src/app.ts", Selections: []Selection{{StartLine: 9, EndLine: 19}}}},
		{in: "src/app.ts:7-7", want: Target{Path: "src/app.ts", Selections: []Selection{{StartLine: 6, EndLine: 6}}}},
		{in: "src/app.ts:20-10", want: Target{Path: "src/app.ts", Selections: []Selection{{StartLine: 9, EndLine: 19}}}},
		{in: "a.go:3,10-12", want: Target{Path: "a.go", Selections: []Selection{
			{StartLine: 2, EndLine: 2, Empty: true},
			{StartLine: 9, EndLine: 11},
		}}},
		{in: `C:\src\app.ts`, want: Target{Path: `C:\src\app.ts`}},
		{in: "weird:name.txt", want: Target{Path: "weird:name.txt"}},
		{in: "  spaced.txt:2 ", want: Target{Path: "spaced.txt", Selections: []Selection{{StartLine: 1, EndLine: 1, Empty: true}}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTargetErrors(t *testing.T) {
	for _, in := range []string{"a.go:0", "a.go:1-", "a.go:-3", "a.go:1--2", ":5", "a.go:1,,2"} {
		_, err := ParseTarget(in)
		assert.Error(t, err, in)
	}
}
