package waitlist

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/votigram/waitlist-api/internal/models"
	apperrors "github.com/votigram/waitlist-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newRepositoryDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(models.ModelRegistry...))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}

func pendingEntry(email, handle, key string) *models.WaitlistEntry {
	return &models.WaitlistEntry{
		Email:         email,
		TwitterHandle: handle,
		HandleKey:     key,
		Status:        models.StatusPending,
		Source:        SourceDirect,
		JoinedAt:      time.Now().UTC(),
	}
}

func TestWaitlistRepository_CreateEntry_AssignsSequentialPositions(t *testing.T) {
	db := newRepositoryDB(t)
	repo := NewWaitlistRepository(db)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		entry := pendingEntry(
			fmt.Sprintf("user%d@example.com", i),
			fmt.Sprintf("user_%d", i),
			fmt.Sprintf("user_%d", i),
		)

		created, err := repo.CreateEntry(ctx, entry)
		require.NoError(t, err)
		assert.Equal(t, int64(i), created.Position)
	}
}

func TestWaitlistRepository_CreateEntry_UniqueIndexConflicts(t *testing.T) {
	db := newRepositoryDB(t)
	repo := NewWaitlistRepository(db)
	ctx := context.Background()

	first, err := repo.CreateEntry(ctx, pendingEntry("a@x.com", "alice_1", "alice_1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Position)

	// An insert that slipped past the pre-insert lookups and lost the race
	// hits the unique index; the conflict must map back to the email field.
	_, err = repo.CreateEntry(ctx, pendingEntry("a@x.com", "bob_2", "bob_2"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
	assert.Equal(t, "email", apperrors.GetErrorField(err))

	// The lowercased key column catches a handle collision regardless of the
	// casing the latecomer submitted.
	_, err = repo.CreateEntry(ctx, pendingEntry("b@x.com", "ALICE_1", "alice_1"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
	assert.Equal(t, "username", apperrors.GetErrorField(err))

	// Aborted admissions roll the counter increment back with the
	// transaction, so the next successful entry is position 2, not 4.
	second, err := repo.CreateEntry(ctx, pendingEntry("c@x.com", "carol_3", "carol_3"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Position)

	var count int64
	require.NoError(t, db.Model(&models.WaitlistEntry{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var counter models.WaitlistCounter
	require.NoError(t, db.First(&counter, models.WaitlistCounterID).Error)
	assert.Equal(t, int64(2), counter.Value)
}

func TestWaitlistRepository_TakenLookups(t *testing.T) {
	db := newRepositoryDB(t)
	repo := NewWaitlistRepository(db)
	ctx := context.Background()

	_, err := repo.CreateEntry(ctx, pendingEntry("a@x.com", "Alice_1", "alice_1"))
	require.NoError(t, err)

	taken, err := repo.EmailTaken(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailTaken(ctx, "A@X.COM")
	require.NoError(t, err)
	assert.False(t, taken, "email comparison is exact")

	taken, err = repo.HandleTaken(ctx, "alice_1")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.HandleTaken(ctx, "bob_2")
	require.NoError(t, err)
	assert.False(t, taken)
}
