package sync_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
	syncengine "go.trai.ch/mirror/internal/engine/sync"
)

// recorder collects every event published on the bus.
type recorder struct {
	events []domain.ChangeEvent
}

func record(t *testing.T, s *syncengine.Syncer) *recorder {
	t.Helper()
	r := &recorder{}
	unsub := s.Bus().Subscribe(func(e domain.ChangeEvent) {
		r.events = append(r.events, e)
	})
	t.Cleanup(unsub)
	return r
}

func (r *recorder) ofType(t domain.EventType) []domain.ChangeEvent {
	var out []domain.ChangeEvent
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func statFile(f *fixture, p string) {
	f.fs.EXPECT().Stat(gomock.Any(), p).Return(ports.EntryInfo{Kind: ports.EntryFile}, nil)
}

func TestHandleFileChange_ChangeRefreshesCacheAndPublishes(t *testing.T) {
	f := newFixture(t, testConfig())
	r := record(t, f.syncer)

	statFile(f, "notes.txt")
	f.fs.EXPECT().ReadTextFile(gomock.Any(), "notes.txt").Return("v2", nil)

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "change", Paths: []string{"notes.txt"}}})

	got := f.syncer.ReadFile(context.Background(), "notes.txt")
	require.NotNil(t, got)
	assert.Equal(t, "v2", got.Text)

	require.Len(t, r.events, 1)
	assert.Equal(t, domain.EventChange, r.events[0].Type)
	assert.Equal(t, []string{"notes.txt"}, r.events[0].Paths)
	assert.False(t, r.events[0].Timestamp.IsZero())
}

func TestHandleFileChange_ChangedSourceReindexesBeforeCommit(t *testing.T) {
	f := newFixture(t, testConfig())

	statFile(f, "app.tsx")
	f.fs.EXPECT().ReadTextFile(gomock.Any(), "app.tsx").Return("<B/>", nil)
	f.parser.EXPECT().ExtractNodes("app.tsx", "<B/>").
		Return([]domain.TemplateNode{{OID: "oid-b", Path: "app.tsx"}}, "<B/>", nil)

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "change", Paths: []string{"app.tsx"}}})

	assert.NotNil(t, f.syncer.TemplateNode("oid-b"))
	got := f.syncer.ReadFile(context.Background(), "app.tsx")
	require.NotNil(t, got)
	assert.Equal(t, "<B/>", got.Text)
}

func TestHandleFileChange_NormalizedSourceIsPersisted(t *testing.T) {
	f := newFixture(t, testConfig())

	// The mapper annotates the source; the annotated form is what gets
	// cached and written back.
	statFile(f, "app.tsx")
	f.fs.EXPECT().ReadTextFile(gomock.Any(), "app.tsx").Return("<B/>", nil)
	f.parser.EXPECT().ExtractNodes("app.tsx", "<B/>").
		Return([]domain.TemplateNode{{OID: "oid-b", Path: "app.tsx"}}, `<B oid="oid-b"/>`, nil)
	f.fs.EXPECT().WriteTextFile(gomock.Any(), "app.tsx", `<B oid="oid-b"/>`).Return(nil)

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "change", Paths: []string{"app.tsx"}}})

	got := f.syncer.ReadFile(context.Background(), "app.tsx")
	require.NotNil(t, got)
	assert.Equal(t, `<B oid="oid-b"/>`, got.Text)
}

func TestHandleFileChange_EmptyReadKeepsPreviousContent(t *testing.T) {
	f := newFixture(t, testConfig())

	f.fs.EXPECT().WriteTextFile(gomock.Any(), "notes.txt", "v1").Return(nil)
	require.True(t, f.syncer.WriteFile(context.Background(), "notes.txt", "v1"))

	statFile(f, "notes.txt")
	f.fs.EXPECT().ReadTextFile(gomock.Any(), "notes.txt").Return("", nil)

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "change", Paths: []string{"notes.txt"}}})

	got := f.syncer.ReadFile(context.Background(), "notes.txt")
	require.NotNil(t, got)
	assert.Equal(t, "v1", got.Text, "an empty read leaves the cache stale rather than corrupted")
}

func TestHandleFileChange_UnchangedContentSkipsReindex(t *testing.T) {
	f := newFixture(t, testConfig())

	f.fs.EXPECT().WriteTextFile(gomock.Any(), "app.tsx", "<A/>").Return(nil)
	f.parser.EXPECT().ExtractNodes("app.tsx", "<A/>").
		Return([]domain.TemplateNode{{OID: "oid-a", Path: "app.tsx"}}, "<A/>", nil).
		Times(1)
	require.True(t, f.syncer.WriteFile(context.Background(), "app.tsx", "<A/>"))

	// Same bytes come back; the parser must not run again.
	statFile(f, "app.tsx")
	f.fs.EXPECT().ReadTextFile(gomock.Any(), "app.tsx").Return("<A/>", nil)

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "change", Paths: []string{"app.tsx"}}})
}

func TestHandleFileChange_NewImageStaysLazy(t *testing.T) {
	f := newFixture(t, testConfig())
	r := record(t, f.syncer)

	statFile(f, "logo.png")
	// No ReadFile expectation: an image add only registers a
	// placeholder.

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "add", Paths: []string{"logo.png"}}})

	for _, cf := range f.syncer.ListAllFiles() {
		if cf.Path == "logo.png" {
			assert.False(t, cf.Loaded)
		}
	}
	require.Len(t, r.ofType(domain.EventAdd), 1)
}

func TestHandleFileChange_LoadedImageIsRefetched(t *testing.T) {
	f := newFixture(t, testConfig())

	f.fs.EXPECT().WriteFile(gomock.Any(), "logo.png", []byte{0x01}).Return(nil)
	require.True(t, f.syncer.WriteBinaryFile(context.Background(), "logo.png", []byte{0x01}))

	statFile(f, "logo.png")
	f.fs.EXPECT().ReadFile(gomock.Any(), "logo.png").Return([]byte{0x02}, nil)

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "change", Paths: []string{"logo.png"}}})

	got := f.syncer.ReadFile(context.Background(), "logo.png")
	require.NotNil(t, got)
	assert.Equal(t, []byte{0x02}, got.Data)
}

func TestHandleFileChange_DirectoryAddRecordsDirectory(t *testing.T) {
	f := newFixture(t, testConfig())
	r := record(t, f.syncer)

	f.fs.EXPECT().Stat(gomock.Any(), "assets").
		Return(ports.EntryInfo{Kind: ports.EntryDirectory}, nil)

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "add", Paths: []string{"assets"}}})

	assert.Contains(t, f.syncer.ListAllDirectories(), "assets")
	assert.Empty(t, r.events, "directory adds are recorded silently")
}

func TestHandleFileChange_StatFailureSkipsPath(t *testing.T) {
	f := newFixture(t, testConfig())
	r := record(t, f.syncer)

	f.fs.EXPECT().Stat(gomock.Any(), "gone.txt").Return(ports.EntryInfo{}, assert.AnError)

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "change", Paths: []string{"gone.txt"}}})

	assert.Empty(t, r.events)
	assert.Empty(t, f.syncer.ListAllFiles())
}

func TestHandleFileChange_ExcludedPathIsInvisible(t *testing.T) {
	f := newFixture(t, testConfig())
	r := record(t, f.syncer)

	// No Stat and no fetch may ever happen for an excluded subtree.
	f.syncer.HandleFileChange([]ports.RawEvent{
		{Type: "change", Paths: []string{"node_modules/react/index.js"}},
		{Type: "remove", Paths: []string{".git/HEAD"}},
	})

	assert.Empty(t, r.events)
	assert.Empty(t, f.syncer.ListAllFiles())
}

func TestHandleFileChange_RemoveFile(t *testing.T) {
	f := newFixture(t, testConfig())
	r := record(t, f.syncer)

	f.fs.EXPECT().WriteTextFile(gomock.Any(), "a.tsx", "<A/>").Return(nil)
	f.parser.EXPECT().ExtractNodes("a.tsx", "<A/>").
		Return([]domain.TemplateNode{{OID: "oid-a", Path: "a.tsx"}}, "<A/>", nil)
	require.True(t, f.syncer.WriteFile(context.Background(), "a.tsx", "<A/>"))

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "remove", Paths: []string{"a.tsx"}}})

	assert.Empty(t, f.syncer.ListAllFiles())
	assert.Nil(t, f.syncer.TemplateNode("oid-a"))
	require.Len(t, r.events, 1)
	assert.Equal(t, domain.EventRemove, r.events[0].Type)
	assert.Equal(t, []string{"a.tsx"}, r.events[0].Paths)
}

func TestHandleFileChange_RemoveDirectoryPublishesPerPath(t *testing.T) {
	f := newFixture(t, testConfig())

	f.fs.EXPECT().WriteTextFile(gomock.Any(), "src/a.txt", "a").Return(nil)
	f.fs.EXPECT().WriteTextFile(gomock.Any(), "src/b.txt", "b").Return(nil)
	require.True(t, f.syncer.WriteFile(context.Background(), "src/a.txt", "a"))
	require.True(t, f.syncer.WriteFile(context.Background(), "src/b.txt", "b"))

	f.fs.EXPECT().Stat(gomock.Any(), "src").
		Return(ports.EntryInfo{Kind: ports.EntryDirectory}, nil)
	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "add", Paths: []string{"src"}}})

	r := record(t, f.syncer)
	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "remove", Paths: []string{"src"}}})

	assert.Empty(t, f.syncer.ListAllFiles())
	assert.Empty(t, f.syncer.ListAllDirectories())

	removed := r.ofType(domain.EventRemove)
	require.Len(t, removed, 3, "directory removal surfaces one event per removed path")
	var paths []string
	for _, e := range removed {
		paths = append(paths, e.Paths...)
	}
	assert.ElementsMatch(t, []string{"src", "src/a.txt", "src/b.txt"}, paths)
}

func TestHandleFileChange_RenamePublishesBothPaths(t *testing.T) {
	f := newFixture(t, testConfig())

	f.fs.EXPECT().WriteTextFile(gomock.Any(), "old.txt", "body").Return(nil)
	require.True(t, f.syncer.WriteFile(context.Background(), "old.txt", "body"))

	r := record(t, f.syncer)

	// The rename pair is applied first, then each path is processed as
	// a regular change. The vanished old path fails its stat and is
	// skipped; the new path refreshes from the remote.
	f.fs.EXPECT().Stat(gomock.Any(), "new.txt").
		Return(ports.EntryInfo{Kind: ports.EntryFile}, nil).Times(2)
	f.fs.EXPECT().Stat(gomock.Any(), "old.txt").Return(ports.EntryInfo{}, assert.AnError)
	f.fs.EXPECT().ReadTextFile(gomock.Any(), "new.txt").Return("body", nil)

	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "change", Paths: []string{"old.txt", "new.txt"}}})

	renames := r.ofType(domain.EventRename)
	require.Len(t, renames, 1)
	assert.Equal(t, []string{"old.txt", "new.txt"}, renames[0].Paths,
		"rename events carry both paths as delivered")

	assert.Nil(t, f.syncer.ReadFile(context.Background(), "old.txt"))
	got := f.syncer.ReadFile(context.Background(), "new.txt")
	require.NotNil(t, got)
	assert.Equal(t, "body", got.Text)
}

func TestHandleFileChange_DirectoryRenameMovesSubtree(t *testing.T) {
	f := newFixture(t, testConfig())

	f.fs.EXPECT().WriteTextFile(gomock.Any(), "a/x.tsx", "<X/>").Return(nil)
	f.parser.EXPECT().ExtractNodes("a/x.tsx", "<X/>").
		Return([]domain.TemplateNode{{OID: "oid-x", Path: "a/x.tsx"}}, "<X/>", nil)
	require.True(t, f.syncer.WriteFile(context.Background(), "a/x.tsx", "<X/>"))

	f.fs.EXPECT().Stat(gomock.Any(), "b").
		Return(ports.EntryInfo{Kind: ports.EntryDirectory}, nil).Times(2)
	f.fs.EXPECT().Stat(gomock.Any(), "a").Return(ports.EntryInfo{}, assert.AnError)

	r := record(t, f.syncer)
	f.syncer.HandleFileChange([]ports.RawEvent{{Type: "change", Paths: []string{"a", "b"}}})

	renames := r.ofType(domain.EventRename)
	require.Len(t, renames, 1)
	assert.Equal(t, []string{"a", "b"}, renames[0].Paths)

	assert.Nil(t, f.syncer.ReadFile(context.Background(), "a/x.tsx"))
	moved := f.syncer.ReadFile(context.Background(), "b/x.tsx")
	require.NotNil(t, moved)
	assert.Equal(t, "<X/>", moved.Text)

	node := f.syncer.TemplateNode("oid-x")
	require.NotNil(t, node)
	assert.Equal(t, "b/x.tsx", node.Path)
}
