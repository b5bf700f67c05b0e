package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/seed"
)

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveDocumentOp(op, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, op+":"+outcome)
}

func (o *recordingObserver) last() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.outcomes) == 0 {
		return ""
	}
	return o.outcomes[len(o.outcomes)-1]
}

type countingBackend struct {
	*MemoryBackend
	writes  int
	readErr error
}

func (b *countingBackend) Read(ctx context.Context) ([]byte, bool, error) {
	if b.readErr != nil {
		return nil, false, b.readErr
	}
	return b.MemoryBackend.Read(ctx)
}

func (b *countingBackend) Write(ctx context.Context, data []byte) error {
	b.writes++
	return b.MemoryBackend.Write(ctx, data)
}

func newTestStore(t *testing.T) (*DocumentStore, *countingBackend, *recordingObserver) {
	t.Helper()
	backend := &countingBackend{MemoryBackend: NewMemoryBackend()}
	observer := &recordingObserver{}
	return NewDocumentStore(backend, seed.Document, nil, observer), backend, observer
}

func TestLoadWithoutStoredDocumentReturnsSeed(t *testing.T) {
	store, backend, observer := newTestStore(t)

	doc := store.Load(context.Background())

	assert.Equal(t, seed.Document(), doc)
	assert.Equal(t, "load:seeded", observer.last())
	assert.Zero(t, backend.writes)
}

func TestPersistThenLoadRoundTrips(t *testing.T) {
	store, _, observer := newTestStore(t)
	ctx := context.Background()

	doc := store.Load(ctx)
	doc.Schools = doc.Schools[:1]
	doc.Schools[0].Name = "Renamed Campus"
	require.NoError(t, store.Persist(ctx, doc))

	loaded := store.Load(ctx)
	assert.Equal(t, doc, loaded)
	assert.Equal(t, "load:hit", observer.last())
}

func TestLoadCorruptDocumentFallsBackToSeed(t *testing.T) {
	store, backend, observer := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, backend.MemoryBackend.Write(ctx, []byte("{not json")))

	doc := store.Load(ctx)

	assert.Equal(t, seed.Document(), doc)
	assert.Equal(t, "load:corrupt", observer.last())
}

func TestLoadRejectsOtherSchemaVersion(t *testing.T) {
	store, backend, observer := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, backend.MemoryBackend.Write(ctx, []byte(`{"schemaVersion":99,"users":[]}`)))

	doc := store.Load(ctx)

	assert.Len(t, doc.Users, len(seed.Document().Users))
	assert.Equal(t, "load:corrupt", observer.last())
}

func TestLoadBackendErrorFallsBackToSeed(t *testing.T) {
	store, backend, observer := newTestStore(t)
	backend.readErr = errors.New("connection refused")

	doc := store.Load(context.Background())

	assert.Equal(t, seed.Document(), doc)
	assert.Equal(t, "load:error", observer.last())
}

func TestUpdateRefusesToWriteWhenReadFails(t *testing.T) {
	store, backend, _ := newTestStore(t)
	ctx := context.Background()
	schools := NewSchoolRepository(store)

	for _, id := range []string{"S101", "S102", "S103"} {
		require.NoError(t, schools.Save(ctx, models.School{ID: id, Name: "Campus " + id, Type: models.SchoolBranch}))
	}
	before := schools.List(ctx)
	require.Len(t, before, 5)
	writes := backend.writes

	backend.readErr = errors.New("i/o timeout")
	called := false
	err := store.Update(ctx, func(doc *models.Document) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.readErr)
	assert.False(t, called)

	err = schools.Save(ctx, models.School{ID: "S999", Name: "Late Campus", Type: models.SchoolBranch})
	require.Error(t, err)
	assert.Equal(t, writes, backend.writes)

	backend.readErr = nil
	assert.Equal(t, before, schools.List(ctx))
}

func TestUpdateSkipsWriteOnError(t *testing.T) {
	store, backend, _ := newTestStore(t)
	boom := errors.New("boom")

	err := store.Update(context.Background(), func(doc *models.Document) error {
		doc.Schools = nil
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, backend.writes)
}

func TestUpdateNoChangeSkipsWrite(t *testing.T) {
	store, backend, _ := newTestStore(t)

	err := store.Update(context.Background(), func(doc *models.Document) error {
		return ErrNoChange
	})

	require.NoError(t, err)
	assert.Zero(t, backend.writes)
}

func TestResetRestoresSeed(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	schools := NewSchoolRepository(store)

	require.NoError(t, schools.Delete(ctx, "S001"))
	require.NoError(t, schools.Save(ctx, models.School{ID: "S900", Name: "Pop-up", Type: models.SchoolOnline}))
	require.Len(t, schools.List(ctx), 2)

	require.NoError(t, store.Reset(ctx))

	assert.Equal(t, seed.Document().Schools, schools.List(ctx))
	assert.Equal(t, seed.Document(), store.Load(ctx))
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	announcements := NewAnnouncementRepository(store)
	before := len(announcements.List(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = announcements.Save(ctx, models.Announcement{ID: "concurrent-" + string(rune('a'+i)), Title: "t"})
		}(i)
	}
	wg.Wait()

	assert.Len(t, announcements.List(ctx), before+20)
}
