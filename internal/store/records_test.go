package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/mindwell/internal/record"
	"github.com/blackwell-systems/mindwell/internal/sentiment"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestFreshDatabaseIsEmpty(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	checkins, err := db.ReadAllCheckIns(ctx)
	require.NoError(t, err)
	assert.Empty(t, checkins)
	assert.NotNil(t, checkins)

	entries, err := db.ReadAllJournalEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	streak, err := db.ReadStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestCheckInRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	zone := time.FixedZone("UTC+9", 9*60*60)
	first := record.CheckIn{
		ID: 1000, Date: time.Date(2026, 3, 14, 23, 30, 0, 0, zone), Mood: 4,
		Activities: []string{"exercise", "reading"}, Notes: "long walk", Timestamp: 1000,
	}
	second := record.CheckIn{
		ID: 2000, Date: time.Date(2026, 3, 15, 8, 0, 0, 0, zone), Mood: 2,
		Activities: nil, Timestamp: 2000,
	}
	// Insert out of order; reads come back by timestamp.
	require.NoError(t, db.AppendCheckIn(ctx, second))
	require.NoError(t, db.AppendCheckIn(ctx, first))

	got, err := db.ReadAllCheckIns(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1000), got[0].ID)
	assert.True(t, first.Date.Equal(got[0].Date))
	// The stored offset keeps the user's calendar day.
	assert.Equal(t, 14, got[0].Date.Day())
	assert.Equal(t, []string{"exercise", "reading"}, got[0].Activities)
	assert.Equal(t, "long walk", got[0].Notes)
	assert.Equal(t, 4, got[0].Mood)

	assert.Equal(t, []string{}, got[1].Activities)
}

func TestAppendCheckIn_DuplicateIDFails(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	c := record.CheckIn{ID: 1, Date: time.Now(), Mood: 3, Timestamp: 1}
	require.NoError(t, db.AppendCheckIn(ctx, c))
	assert.Error(t, db.AppendCheckIn(ctx, c))
}

func TestJournalRoundTrip_SentimentFrozen(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// A label that disagrees with the score must survive as stored.
	entry := record.JournalEntry{
		ID: 5, Date: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), Text: "hello",
		Sentiment: sentiment.FromStored(0.9, "Negative"), Timestamp: 5,
	}
	require.NoError(t, db.AppendJournalEntry(ctx, entry))

	got, err := db.ReadAllJournalEntries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Text)
	assert.Equal(t, sentiment.Negative, got[0].Sentiment.Label)
	assert.Equal(t, 0.9, got[0].Sentiment.Score)
}

func TestStreakReadWrite(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.WriteStreak(ctx, 4))
	require.NoError(t, db.WriteStreak(ctx, 5))

	streak, err := db.ReadStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, streak)
}

func TestCorruptRowsDegradeGracefully(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Conn().Exec(`INSERT INTO checkins (id, date, mood, activities, notes, timestamp)
		VALUES (1, 'not a date', 3, '[]', '', 1),
		       (2, '2026-03-14T10:00:00Z', 3, '{broken', '', 2),
		       (3, '2026-03-14T11:00:00Z', 5, '["work"]', '', 3),
		       (4, '2026-03-14T12:00:00Z', 9, '[]', '', 4),
		       (5, '2026-03-14T13:00:00Z', 0, '[]', '', 5)`)
	require.NoError(t, err)
	_, err = db.Conn().Exec(`INSERT INTO journal_entries (id, date, text, sentiment_score, sentiment_label, timestamp)
		VALUES (1, 'yesterday-ish', 'x', 0.5, 'Neutral', 1)`)
	require.NoError(t, err)
	_, err = db.Conn().Exec(`INSERT INTO meta (key, value) VALUES ('streak', 'lots')`)
	require.NoError(t, err)

	checkins, err := db.ReadAllCheckIns(ctx)
	require.NoError(t, err)
	require.Len(t, checkins, 1)
	assert.Equal(t, int64(3), checkins[0].ID)

	entries, err := db.ReadAllJournalEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	streak, err := db.ReadStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Migrate())

	var version int
	require.NoError(t, db.Conn().QueryRow("SELECT version FROM schema_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestOpen_CreatesFile(t *testing.T) {
	path := t.TempDir() + "/nested/mindwell.db"
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.WriteStreak(context.Background(), 2))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	streak, err := db.ReadStreak(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestOpen_UsesWAL(t *testing.T) {
	path := t.TempDir() + "/wal.db"
	db, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var mode string
	require.NoError(t, db.Conn().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
	assert.Equal(t, path, db.Path())
}
