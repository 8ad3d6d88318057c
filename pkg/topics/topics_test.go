package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"rings.md":          {Data: []byte("# Rings\n\nRing 1 is the border.")},
		"sorting.txt":       {Data: []byte("Sorting values around a diagonal")},
		"option-format.md":  {Data: []byte("# --format\n\nSelects the output.")},
		"nested/deep.md":    {Data: []byte("nested topic")},
		"notes.txxt":        {Data: []byte("custom extension")},
		"ignored.json":      {Data: []byte("{}")},
		"nested/other.toml": {Data: []byte("rows = [[1]]")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"rings", true, "# Rings\n\nRing 1 is the border."},
			{"sorting", true, "Sorting values around a diagonal"},
			{"deep", true, "nested topic"},
			{"notes", false, ""},
			{"ignored", false, ""},
			{"other", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicFlagNames(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"option-format", "format", "--format", "-format"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-format.md", topic.FilePath)
	}

	_, ok := tm.GetTopic("--ring")
	assert.False(t, ok)
}

func TestTopicManager_WriteList(t *testing.T) {
	t.Run("groups option topics", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		var buf bytes.Buffer
		tm.WriteList(&buf, "matrixlab")

		out := buf.String()
		assert.Contains(t, out, "General topics:\n  deep\n  rings\n  sorting\n")
		assert.Contains(t, out, "Option topics:\n  --format\n")
		assert.Contains(t, out, "Use 'matrixlab help <topic>'")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		New(fstest.MapFS{}).WriteList(&buf, "matrixlab")
		assert.Equal(t, "No help topics available.\n", buf.String())
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty"}
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
	assert.Contains(t, r.Render("# Rings", ".md"), "Rings")
}

func TestBuiltinTopics(t *testing.T) {
	tm := New(Builtin())
	require.NoError(t, tm.scanTopics())

	names := tm.ListTopics()
	for _, want := range []string{"rings", "sorting", "diagonals", "sums", "config", "input-files", "option-format"} {
		assert.Contains(t, names, want)
	}
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "matrixlab", Short: "Matrix exercises"}
	root.AddCommand(&cobra.Command{
		Use:   "sums",
		Short: "Print row and column sums",
		Run:   func(*cobra.Command, []string) {},
	})
	return root
}

func runHelp(t *testing.T, args ...string) string {
	t.Helper()

	root := newRoot()
	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"help"}, args...))
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestHelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		assert.Equal(t, "# Rings\n\nRing 1 is the border.", runHelp(t, "rings"))
	})

	t.Run("flag topic", func(t *testing.T) {
		assert.Contains(t, runHelp(t, "--format"), "Selects the output.")
	})

	t.Run("topic list", func(t *testing.T) {
		assert.Contains(t, runHelp(t, "topics"), "Available help topics:")
	})

	t.Run("command", func(t *testing.T) {
		assert.Contains(t, runHelp(t, "sums"), "Print row and column sums")
	})

	t.Run("no arguments", func(t *testing.T) {
		assert.Contains(t, runHelp(t), "Matrix exercises")
	})
}
