package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	valid := []string{"a", "center", "myNote", "with-dash", "with_underscore", "v2"}
	for _, name := range valid {
		assert.True(t, ValidName(name), "expected %q to be valid", name)
	}

	invalid := []string{"", "1abc", "-abc", "_abc", "with space", "with.dot", "emoji😀", "a:b"}
	for _, name := range invalid {
		assert.False(t, ValidName(name), "expected %q to be invalid", name)
	}
}

func TestIsDirective(t *testing.T) {
	assert.True(t, Node{Kind: KindContainer, Name: "center"}.IsDirective())
	assert.True(t, Node{Kind: KindLeaf, Name: "break"}.IsDirective())
	assert.True(t, Node{Kind: KindText, Name: "note", Text: "x"}.IsDirective())

	assert.False(t, Node{Kind: KindDocument}.IsDirective())
	assert.False(t, Node{Kind: KindParagraph}.IsDirective())
	assert.False(t, Node{Kind: KindMarkdown, Text: "# Title"}.IsDirective())
}

func TestPlainTextJoinsBlocksWithBlankLines(t *testing.T) {
	doc := Node{
		Kind: KindDocument,
		Children: []Node{
			{Kind: KindMarkdown, Text: "# Title"},
			{
				Kind: KindContainer,
				Name: "center",
				Children: []Node{
					{Kind: KindMarkdown, Text: "First."},
					{Kind: KindMarkdown, Text: "Second."},
				},
			},
		},
	}

	assert.Equal(t, "# Title\n\nFirst.\n\nSecond.", doc.PlainText())
}

func TestPlainTextParagraphKeepsInlineRuns(t *testing.T) {
	para := Node{
		Kind: KindParagraph,
		Children: []Node{
			{Kind: KindMarkdown, Text: "see "},
			{Kind: KindText, Name: "ref", Text: "the docs"},
			{Kind: KindMarkdown, Text: " for details"},
		},
	}

	assert.Equal(t, "see the docs for details", para.PlainText())
}

func TestPlainTextLeafIsEmpty(t *testing.T) {
	assert.Equal(t, "", Node{Kind: KindLeaf, Name: "break"}.PlainText())
}

func TestCloneIsDeep(t *testing.T) {
	original := Node{
		Kind:  KindContainer,
		Name:  "warn",
		Attrs: map[string]string{"title": "careful"},
		Children: []Node{
			{Kind: KindMarkdown, Text: "body"},
		},
	}

	cloned := original.Clone()
	cloned.Attrs["title"] = "changed"
	cloned.Children[0].Text = "changed"

	assert.Equal(t, "careful", original.Attrs["title"])
	assert.Equal(t, "body", original.Children[0].Text)
}
