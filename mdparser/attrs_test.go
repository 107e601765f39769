package mdparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "whitespace only", raw: "   ", want: nil},
		{name: "quoted value", raw: `title="Stay calm"`, want: map[string]string{"title": "Stay calm"}},
		{name: "single quoted value", raw: `title='Stay calm'`, want: map[string]string{"title": "Stay calm"}},
		{name: "bare value", raw: "width=40", want: map[string]string{"width": "40"}},
		{name: "bare key", raw: "disabled", want: map[string]string{"disabled": ""}},
		{name: "id shorthand", raw: "#intro", want: map[string]string{"id": "intro"}},
		{name: "class shorthand", raw: ".callout", want: map[string]string{"class": "callout"}},
		{name: "classes accumulate", raw: ".callout .wide", want: map[string]string{"class": "callout wide"}},
		{
			name: "mixed",
			raw:  `title="A b" .callout #tip width=40`,
			want: map[string]string{"title": "A b", "class": "callout", "id": "tip", "width": "40"},
		},
		{
			name: "escaped quote in value",
			raw:  `title="say \"hi\""`,
			want: map[string]string{"title": `say "hi"`},
		},
		{
			name: "escaped backslash in value",
			raw:  `path="a\\b"`,
			want: map[string]string{"path": `a\b`},
		},
		{name: "value with braces", raw: `expr="{x}"`, want: map[string]string{"expr": "{x}"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseAttributes(tc.raw))
		})
	}
}

func TestReadAttrBlock(t *testing.T) {
	raw, end, ok := readAttrBlock([]byte(`{a="b"} tail`), 0)
	require.True(t, ok)
	assert.Equal(t, `a="b"`, raw)
	assert.Equal(t, 7, end)
}

func TestReadAttrBlockQuotedBrace(t *testing.T) {
	raw, end, ok := readAttrBlock([]byte(`{expr="{x}"}`), 0)
	require.True(t, ok)
	assert.Equal(t, `expr="{x}"`, raw)
	assert.Equal(t, 12, end)
}

func TestReadAttrBlockUnterminated(t *testing.T) {
	_, _, ok := readAttrBlock([]byte(`{a="b"`), 0)
	assert.False(t, ok)
}

func TestReadAttrBlockNotABlock(t *testing.T) {
	_, _, ok := readAttrBlock([]byte(`a="b"}`), 0)
	assert.False(t, ok)

	_, _, ok = readAttrBlock([]byte{}, 0)
	assert.False(t, ok)
}
