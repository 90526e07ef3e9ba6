package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typecodec/pkg/logical"
	"github.com/dmitrymomot/typecodec/pkg/schema"
)

func TestSchema_Snapshot(t *testing.T) {
	t.Parallel()

	s := postsSchema(t)
	reg := newTestRegistry(t)

	row := map[string]any{
		"id":       int64(1),
		"title":    "hello",
		"metadata": map[string]any{"tags": []string{"go"}},
	}

	snap, err := s.Snapshot(reg, "test", row)
	require.NoError(t, err)

	// In-place mutation of the mutable field must not reach the snapshot.
	row["metadata"].(map[string]any)["tags"] = []string{"go", "db"}

	assert.Equal(t, map[string]any{"tags": []string{"go"}}, snap["metadata"])
	assert.Equal(t, "hello", snap["title"])

	t.Run("unknown field fails", func(t *testing.T) {
		t.Parallel()
		_, err := s.Snapshot(reg, "test", map[string]any{"nope": 1})
		require.ErrorIs(t, err, schema.ErrUnknownField)
	})
}

func TestSchema_Changed(t *testing.T) {
	t.Parallel()

	s := postsSchema(t)
	reg := newTestRegistry(t)

	original := map[string]any{
		"id":       int64(1),
		"title":    "hello",
		"status":   "draft",
		"metadata": map[string]any{"views": 0},
	}

	t.Run("identical rows report nothing", func(t *testing.T) {
		t.Parallel()
		changed, err := s.Changed(reg, "test", original, map[string]any{
			"id":       int64(1),
			"title":    "hello",
			"status":   "draft",
			"metadata": map[string]any{"views": 0},
		})
		require.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("modified fields come back sorted", func(t *testing.T) {
		t.Parallel()
		changed, err := s.Changed(reg, "test", original, map[string]any{
			"id":       int64(1),
			"title":    "goodbye",
			"status":   "published",
			"metadata": map[string]any{"views": 0},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"status", "title"}, changed)
	})

	t.Run("deep change in a mutable field is detected", func(t *testing.T) {
		t.Parallel()

		live := map[string]any{"metadata": map[string]any{"views": 0}}
		snap, err := s.Snapshot(reg, "test", live)
		require.NoError(t, err)

		live["metadata"].(map[string]any)["views"] = 10

		changed, err := s.Changed(reg, "test", snap, live)
		require.NoError(t, err)
		assert.Equal(t, []string{"metadata"}, changed)
	})

	t.Run("missing on one side counts as changed", func(t *testing.T) {
		t.Parallel()
		changed, err := s.Changed(reg, "test",
			map[string]any{"title": "hello"},
			map[string]any{"status": "draft"},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"status", "title"}, changed)
	})
}

func TestSchema_SnapshotImmutableByReference(t *testing.T) {
	t.Parallel()

	s, err := schema.New("notes",
		schema.Field{Name: "tags", Type: logical.Pickled(false, nil)},
	)
	require.NoError(t, err)
	reg := newTestRegistry(t)

	live := map[string]any{"tags": map[string]any{"a": 1}}
	snap, err := s.Snapshot(reg, "test", live)
	require.NoError(t, err)

	// Immutable declaration means reference copy: edits show through.
	live["tags"].(map[string]any)["a"] = 2
	assert.Equal(t, live["tags"], snap["tags"])
}
