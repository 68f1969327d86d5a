package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseBlankLines(t *testing.T) {
	inputs := []string{
		"",
		"a\nb",
		"a\n\nb",
		"a\n\n\nb",
		"a\n\n\n\n\n\nb\n\n\n",
		"\n\n\n\nstart",
		"| x |\n\n\n\ntext\n\n",
	}

	for _, in := range inputs {
		once := CollapseBlankLines(in)
		assert.Equal(t, once, CollapseBlankLines(once), "not idempotent for %q", in)
		assert.NotContains(t, once, "\n\n\n")
	}
	assert.Equal(t, "a\n\nb\n\n", CollapseBlankLines("a\n\n\n\n\n\nb\n\n\n"))
}

func TestPostProcessor_Badge(t *testing.T) {
	p := NewPostProcessor(DefaultBadge)
	buf := NewLineBuffer("# My Doc", "", "Body...", "", "More body", "")

	got := p.Process(buf, 0)

	want := "# My Doc\n\n" + DefaultBadge + "\n\nBody...\n\nMore body\n"
	assert.Equal(t, want, got)
	assert.Less(t, strings.Index(got, "Body..."), strings.Index(got, "More body"))
}

func TestPostProcessor_BadgeWithoutBody(t *testing.T) {
	p := NewPostProcessor("BADGE")
	assert.Equal(t, "# T\n\nBADGE\n", p.Process(NewLineBuffer("# T"), 0))
	assert.Equal(t, "# T\n\nBADGE\n\nx\n", p.Process(NewLineBuffer("# T", "x"), 0))
}

func TestPostProcessor_NoBadge(t *testing.T) {
	buf := NewLineBuffer("# Title", "", "text")

	assert.Equal(t, "# Title\n\ntext\n", NewPostProcessor("").Process(buf, 0))
	assert.Equal(t, "# Title\n\ntext\n", NewPostProcessor(DefaultBadge).Process(buf, -1))
}

func TestPostProcessor_BadgeFollowsTitleNotBody(t *testing.T) {
	// A body line that looks like a heading must not attract the badge.
	buf := NewLineBuffer("", "", "# Real Title", "", "# not a title", "")
	got := NewPostProcessor("B").Process(buf, 2)
	assert.Equal(t, "\n# Real Title\n\nB\n\n# not a title\n", got)
}

func TestPostProcessor_CollapsesBlankRuns(t *testing.T) {
	buf := NewLineBuffer("# T", "", "", "", "a", "", "", "b", "", "")
	got := NewPostProcessor("").Process(buf, 0)
	assert.Equal(t, "# T\n\na\n\nb\n", got)
	assert.Equal(t, got, CollapseBlankLines(got))
}

func TestPostProcessor_TableSeparation(t *testing.T) {
	buf := NewLineBuffer(
		"# T", "",
		"| a   |",
		"| --- |",
		"| 1   |",
		"after table",
		"| b   |",
		"",
		"end",
	)
	got := NewPostProcessor("").Process(buf, 0)
	assert.Equal(t, "# T\n\n| a   |\n| --- |\n| 1   |\n\nafter table\n| b   |\n\nend\n", got)
}

func TestPostProcessor_Empty(t *testing.T) {
	assert.Equal(t, "", NewPostProcessor(DefaultBadge).Process(NewLineBuffer(), -1))
	assert.Equal(t, "", NewPostProcessor("").Process(NewLineBuffer("", ""), -1))
}
