package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/iftu-lms-api/internal/seed"
	"github.com/noah-isme/iftu-lms-api/pkg/storage"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestMemoryBackendCopiesPayload(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	_, found, err := backend.Read(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	payload := []byte(`{"a":1}`)
	require.NoError(t, backend.Write(ctx, payload))
	payload[0] = 'x'

	data, found, err := backend.Read(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"a":1}`, string(data))

	require.NoError(t, backend.Clear(ctx))
	_, found, _ = backend.Read(ctx)
	assert.False(t, found)
}

func TestFileBackendLifecycle(t *testing.T) {
	ctx := context.Background()
	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	backend := NewFileBackend(local, "iftu_lms_db")

	_, found, err := backend.Read(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, backend.Write(ctx, []byte(`{"schemaVersion":1}`)))
	data, found, err := backend.Read(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"schemaVersion":1}`, string(data))
	assert.FileExists(t, local.Path("iftu_lms_db.json"))

	require.NoError(t, backend.Clear(ctx))
	require.NoError(t, backend.Clear(ctx))
	_, found, err = backend.Read(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgresBackendRead(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	backend := NewPostgresBackend(db, "iftu_lms_db")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT body FROM lms_documents WHERE key = $1")).
		WithArgs("iftu_lms_db").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(`{"schemaVersion":1}`)))

	data, found, err := backend.Read(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"schemaVersion":1}`, string(data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackendReadMissingRow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	backend := NewPostgresBackend(db, "iftu_lms_db")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT body FROM lms_documents WHERE key = $1")).
		WithArgs("iftu_lms_db").
		WillReturnRows(sqlmock.NewRows([]string{"body"}))

	_, found, err := backend.Read(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackendReadError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	backend := NewPostgresBackend(db, "iftu_lms_db")

	mock.ExpectQuery("SELECT body FROM lms_documents").WillReturnError(errors.New("conn reset"))

	_, _, err := backend.Read(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackendWriteAndClear(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	backend := NewPostgresBackend(db, "iftu_lms_db")

	mock.ExpectExec("INSERT INTO lms_documents").
		WithArgs("iftu_lms_db", []byte(`{}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM lms_documents").
		WithArgs("iftu_lms_db").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, backend.Write(context.Background(), []byte(`{}`)))
	require.NoError(t, backend.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// fakeRedis implements the string commands the backend issues; anything else panics.
type fakeRedis struct {
	redis.Cmdable
	values  map[string]string
	expiry  map[string]time.Duration
	failErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, expiry: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	f.values[key] = string(value.([]byte))
	f.expiry[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisBackendLifecycle(t *testing.T) {
	client := newFakeRedis()
	backend := NewRedisBackend(client, "iftu_lms_db")
	ctx := context.Background()

	data, found, err := backend.Read(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)

	require.NoError(t, backend.Write(ctx, []byte(`{"schemaVersion":1}`)))
	assert.Equal(t, time.Duration(0), client.expiry["iftu_lms_db"])

	data, found, err = backend.Read(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"schemaVersion":1}`, string(data))

	require.NoError(t, backend.Clear(ctx))
	_, found, err = backend.Read(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisBackendErrors(t *testing.T) {
	client := newFakeRedis()
	client.failErr = errors.New("connection reset")
	backend := NewRedisBackend(client, "iftu_lms_db")
	ctx := context.Background()

	_, found, err := backend.Read(ctx)
	assert.False(t, found)
	assert.ErrorIs(t, err, client.failErr)
	assert.Contains(t, err.Error(), "iftu_lms_db")

	assert.ErrorIs(t, backend.Write(ctx, []byte("{}")), client.failErr)
	assert.ErrorIs(t, backend.Clear(ctx), client.failErr)
}

func TestRedisReadErrorBlocksUpdate(t *testing.T) {
	client := newFakeRedis()
	store := NewDocumentStore(NewRedisBackend(client, "iftu_lms_db"), seed.Document, nil, nil)
	ctx := context.Background()
	news := NewNewsRepository(store)

	require.NoError(t, news.Delete(ctx, "np-missing"))
	stored := client.values["iftu_lms_db"]
	require.NotEmpty(t, stored)

	client.failErr = errors.New("connection reset")
	assert.Error(t, news.Delete(ctx, "np-missing"))

	client.failErr = nil
	assert.Equal(t, stored, client.values["iftu_lms_db"])
}
