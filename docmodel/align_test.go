package docmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penbridge/directive-converter/directive"
)

func threeParagraphs() directive.Node {
	return doc(md("p1"), md("p2"), md("p3"))
}

func TestStateOfUnaligned(t *testing.T) {
	aligner := NewAligner(NewTree(threeParagraphs()))

	state := aligner.StateOf(Range{Parent: Path{}, Start: 0, End: 2})
	assert.False(t, state.Aligned)
}

func TestApplyWrapsUnalignedRange(t *testing.T) {
	tree := NewTree(threeParagraphs())
	aligner := NewAligner(tree)

	result, ok := aligner.Apply(Range{Parent: Path{}, Start: 0, End: 2}, directive.AlignCenter)
	require.True(t, ok)

	assert.True(t, result.State.Aligned)
	assert.Equal(t, "center", result.State.Alignment)
	assert.Equal(t, Path{0}, result.State.Container)
	assert.Equal(t, Range{Parent: Path{0}, Start: 0, End: 2}, result.Content)

	assert.Equal(t, doc(container("center", md("p1"), md("p2")), md("p3")), tree.Document())
}

func TestApplySameAlignmentTogglesOff(t *testing.T) {
	tree := NewTree(doc(container("center", md("p1"), md("p2")), md("p3")))
	aligner := NewAligner(tree)

	result, ok := aligner.Apply(Range{Parent: Path{}, Start: 0, End: 1}, directive.AlignCenter)
	require.True(t, ok)

	assert.False(t, result.State.Aligned)
	assert.Equal(t, Range{Parent: Path{}, Start: 0, End: 2}, result.Content)
	assert.Equal(t, threeParagraphs(), tree.Document())
}

func TestApplyTwiceRestoresOriginal(t *testing.T) {
	tree := NewTree(threeParagraphs())
	aligner := NewAligner(tree)

	r := Range{Parent: Path{}, Start: 0, End: 2}
	first, ok := aligner.Apply(r, directive.AlignRight)
	require.True(t, ok)

	_, ok = aligner.Apply(Range{Parent: Path{}, Start: first.State.Container[0], End: first.State.Container[0] + 1}, directive.AlignRight)
	require.True(t, ok)

	assert.Equal(t, threeParagraphs(), tree.Document())
}

func TestApplyDifferentAlignmentReplacesAtomically(t *testing.T) {
	tree := NewTree(doc(container("center", md("p1"), md("p2")), md("p3")))
	aligner := NewAligner(tree)

	result, ok := aligner.Apply(Range{Parent: Path{}, Start: 0, End: 1}, directive.AlignRight)
	require.True(t, ok)

	assert.Equal(t, "right", result.State.Alignment)
	assert.Equal(t, Path{0}, result.State.Container)
	assert.Equal(t, Range{Parent: Path{0}, Start: 0, End: 2}, result.Content)

	// Never wrap-inside-wrap: one container, renamed in place.
	assert.Equal(t, doc(container("right", md("p1"), md("p2")), md("p3")), tree.Document())
}

func TestApplyInsideAlignedContainerTogglesAncestor(t *testing.T) {
	tree := NewTree(doc(container("center", md("p1"), md("p2")), md("p3")))
	aligner := NewAligner(tree)

	result, ok := aligner.Apply(Range{Parent: Path{0}, Start: 0, End: 2}, directive.AlignCenter)
	require.True(t, ok)

	assert.False(t, result.State.Aligned)
	assert.Equal(t, threeParagraphs(), tree.Document())
}

func TestApplyRejectsNonAlignmentName(t *testing.T) {
	tree := NewTree(threeParagraphs())
	aligner := NewAligner(tree)

	_, ok := aligner.Apply(Range{Parent: Path{}, Start: 0, End: 1}, "middle")
	assert.False(t, ok)
	assert.Equal(t, threeParagraphs(), tree.Document())
}

func TestApplyInvalidRangeIsNoOp(t *testing.T) {
	tree := NewTree(threeParagraphs())
	aligner := NewAligner(tree)

	_, ok := aligner.Apply(Range{Parent: Path{}, Start: 5, End: 9}, directive.AlignCenter)
	assert.False(t, ok)
	assert.Equal(t, threeParagraphs(), tree.Document())
}

func TestApplyToBlockWrap(t *testing.T) {
	tree := NewTree(doc(md("![img](a.png)"), md("p2")))
	aligner := NewAligner(tree)

	path, ok := aligner.ApplyToBlock(Path{0}, directive.AlignCenter)
	require.True(t, ok)
	assert.Equal(t, Path{0, 0}, path)

	node, found := tree.Node(path)
	require.True(t, found)
	assert.Equal(t, "![img](a.png)", node.Text)
}

func TestApplyToBlockToggleOffRestoresPath(t *testing.T) {
	tree := NewTree(doc(container("center", md("![img](a.png)")), md("p2")))
	aligner := NewAligner(tree)

	path, ok := aligner.ApplyToBlock(Path{0, 0}, directive.AlignCenter)
	require.True(t, ok)
	assert.Equal(t, Path{0}, path)
	assert.Equal(t, doc(md("![img](a.png)"), md("p2")), tree.Document())
}

func TestApplyToBlockToggleOffReanchorsSiblings(t *testing.T) {
	tree := NewTree(doc(container("center", md("![img](a.png)"), md("caption"))))
	aligner := NewAligner(tree)

	path, ok := aligner.ApplyToBlock(Path{0, 1}, directive.AlignCenter)
	require.True(t, ok)
	assert.Equal(t, Path{1}, path)

	node, found := tree.Node(path)
	require.True(t, found)
	assert.Equal(t, "caption", node.Text)
}

func TestApplyToBlockSwitchKeepsPath(t *testing.T) {
	tree := NewTree(doc(container("center", md("![img](a.png)"))))
	aligner := NewAligner(tree)

	path, ok := aligner.ApplyToBlock(Path{0, 0}, directive.AlignJustify)
	require.True(t, ok)
	assert.Equal(t, Path{0, 0}, path)
	assert.Equal(t, doc(container("justify", md("![img](a.png)"))), tree.Document())
}

func TestApplyToBlockRejectsInvalidInput(t *testing.T) {
	tree := NewTree(threeParagraphs())
	aligner := NewAligner(tree)

	_, ok := aligner.ApplyToBlock(Path{}, directive.AlignCenter)
	assert.False(t, ok)
	_, ok = aligner.ApplyToBlock(Path{0}, "middle")
	assert.False(t, ok)
	_, ok = aligner.ApplyToBlock(Path{9}, directive.AlignCenter)
	assert.False(t, ok)
	assert.Equal(t, threeParagraphs(), tree.Document())
}
