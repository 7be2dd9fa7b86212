package registry

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntity struct {
	id   string
	kind string
}

func (f *fakeEntity) ID() string   { return f.id }
func (f *fakeEntity) Kind() string { return f.kind }

func newTestRegistry(t *testing.T) (*Registry, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(WithLogger(logger)), buf
}

func TestNew(t *testing.T) {
	r := New()
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.IDs())
	assert.Equal(t, slog.Default(), r.Logger())
}

func TestPutAndGet(t *testing.T) {
	r, _ := newTestRegistry(t)

	_, ok := r.Get("MNXM4")
	assert.False(t, ok)
	assert.False(t, r.Contains("MNXM4"))

	e := &fakeEntity{id: "MNXM4", kind: "Compound"}
	r.Put(e)

	got, ok := r.Get("MNXM4")
	require.True(t, ok)
	assert.Same(t, e, got)
	assert.True(t, r.Contains("MNXM4"))
	assert.Equal(t, 1, r.Len())
}

func TestPut_LastWriteWins(t *testing.T) {
	r, _ := newTestRegistry(t)
	first := &fakeEntity{id: "X", kind: "Compound"}
	second := &fakeEntity{id: "X", kind: "Reaction"}

	r.Put(first)
	r.Put(second)

	got, ok := r.Get("X")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, r.Len())
}

func TestPut_RejectsEmptyIdentifier(t *testing.T) {
	r, logs := newTestRegistry(t)

	r.Put(&fakeEntity{id: ""})
	r.Put(nil)

	assert.Equal(t, 0, r.Len())
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestRename(t *testing.T) {
	t.Run("moves entry", func(t *testing.T) {
		r, _ := newTestRegistry(t)
		e := &fakeEntity{id: "old", kind: "Compound"}
		r.Put(e)

		assert.True(t, r.Rename("old", "new"))
		assert.False(t, r.Contains("old"))
		got, ok := r.Get("new")
		require.True(t, ok)
		assert.Same(t, e, got)
	})

	t.Run("same identifier keeps entry", func(t *testing.T) {
		r, _ := newTestRegistry(t)
		e := &fakeEntity{id: "same"}
		r.Put(e)

		assert.True(t, r.Rename("same", "same"))
		got, ok := r.Get("same")
		require.True(t, ok)
		assert.Same(t, e, got)
	})

	t.Run("empty new identifier is a no-op", func(t *testing.T) {
		r, _ := newTestRegistry(t)
		r.Put(&fakeEntity{id: "old"})

		assert.False(t, r.Rename("old", ""))
		assert.True(t, r.Contains("old"))
	})

	t.Run("missing old identifier is logged", func(t *testing.T) {
		r, logs := newTestRegistry(t)

		assert.False(t, r.Rename("ghost", "new"))
		assert.False(t, r.Contains("new"))
		assert.Contains(t, logs.String(), "Cannot rename unknown registry entry.")
	})
}

func TestIDsAndFind(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.Put(&fakeEntity{id: "b", kind: "Reaction"})
	r.Put(&fakeEntity{id: "c", kind: "Compound"})
	r.Put(&fakeEntity{id: "a", kind: "Compound"})

	assert.Equal(t, []string{"a", "b", "c"}, r.IDs())

	got, ok := r.Find(func(e Entity) bool { return e.Kind() == "Compound" })
	require.True(t, ok)
	assert.Equal(t, "a", got.ID())

	_, ok = r.Find(func(e Entity) bool { return e.Kind() == "Pathway" })
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.Put(&fakeEntity{id: "a"})
	r.Put(&fakeEntity{id: "b"})

	r.Reset()

	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Contains("a"))
}
