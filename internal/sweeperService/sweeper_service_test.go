package sweeper

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"lot-market/internal/marketerrors"
	model "lot-market/internal/models"
	"lot-market/internal/repository"
	"lot-market/internal/storage"

	"github.com/stretchr/testify/require"
)

// flakyStore wraps a DiskStore and fails deletion for chosen keys.
type flakyStore struct {
	*storage.DiskStore
	failKeys map[string]bool
}

func (s *flakyStore) Delete(keys []string) map[string]error {
	results := make(map[string]error, len(keys))
	var pass []string
	for _, key := range keys {
		if s.failKeys[key] {
			results[key] = marketerrors.ErrStorage
			continue
		}
		pass = append(pass, key)
	}
	for key, err := range s.DiskStore.Delete(pass) {
		results[key] = err
	}
	return results
}

func newTestStore(t *testing.T) *storage.DiskStore {
	t.Helper()
	store, err := storage.NewDiskStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	return store
}

func seedExpiredLot(t *testing.T, repo *repository.MemoryRepo, store storage.ObjectStore, lotID string, endTime time.Time, images int) {
	t.Helper()
	lot := model.Lot{
		LotID:     lotID,
		UserID:    "u1",
		Kind:      model.KindLot,
		Title:     lotID,
		Price:     10,
		Active:    true,
		CreatedAt: endTime.Add(-time.Hour),
		EndTime:   &endTime,
	}
	for i := 0; i < images; i++ {
		key := fmt.Sprintf("%s/img%d.jpg", lotID, i)
		url, err := store.Put(key, strings.NewReader("jpeg bytes"), "image/jpeg")
		require.NoError(t, err)
		lot.Images = append(lot.Images, url)
	}
	require.NoError(t, repo.CreateLot(lot))
}

// Tests the sweep across expired and live lots
func TestSweeperService_SweepExpired(t *testing.T) {
	repo := repository.NewMemoryRepo()
	store := newTestStore(t)
	service := NewSweeperService(repo, store)

	now := time.Now().UTC()
	seedExpiredLot(t, repo, store, "expired1", now.Add(-time.Hour), 2)
	seedExpiredLot(t, repo, store, "expired2", now.Add(-time.Minute), 1)
	seedExpiredLot(t, repo, store, "live", now.Add(time.Hour), 1)

	result, err := service.SweepExpired(now)
	require.NoError(t, err)
	require.Equal(t, 2, result.DeactivatedCount)
	require.Zero(t, result.ImageErrors)

	for _, id := range []string{"expired1", "expired2"} {
		lot, err := repo.GetLotByID(id)
		require.NoError(t, err)
		require.False(t, lot.Active)
	}

	live, err := repo.GetLotByID("live")
	require.NoError(t, err)
	require.True(t, live.Active)

	// the live lot's image is untouched
	key, ok := store.KeyFromURL(live.Images[0])
	require.True(t, ok)
	require.NotEmpty(t, key)
}

// Tests idempotence: a second sweep with no new expirations is a no-op
func TestSweeperService_SweepExpired_Idempotent(t *testing.T) {
	repo := repository.NewMemoryRepo()
	store := newTestStore(t)
	service := NewSweeperService(repo, store)

	now := time.Now().UTC()
	seedExpiredLot(t, repo, store, "expired1", now.Add(-time.Hour), 1)

	first, err := service.SweepExpired(now)
	require.NoError(t, err)
	require.Equal(t, 1, first.DeactivatedCount)

	second, err := service.SweepExpired(now)
	require.NoError(t, err)
	require.Zero(t, second.DeactivatedCount)
	require.Zero(t, second.ImageErrors)
}

// Tests that a failing image delete does not abort the sweep
func TestSweeperService_SweepExpired_BestEffortImages(t *testing.T) {
	repo := repository.NewMemoryRepo()
	disk := newTestStore(t)
	store := &flakyStore{DiskStore: disk, failKeys: map[string]bool{"expired1/img0.jpg": true}}
	service := NewSweeperService(repo, store)

	now := time.Now().UTC()
	seedExpiredLot(t, repo, disk, "expired1", now.Add(-time.Hour), 1)
	seedExpiredLot(t, repo, disk, "expired2", now.Add(-time.Hour), 1)

	result, err := service.SweepExpired(now)
	require.NoError(t, err, "image failures are collected, not propagated")
	require.Equal(t, 2, result.DeactivatedCount, "both lots deactivated despite the bad object")
	require.Equal(t, 1, result.ImageErrors)
}

// Tests overlapping sweeps
func TestSweeperService_SweepExpired_Concurrent(t *testing.T) {
	repo := repository.NewMemoryRepo()
	store := newTestStore(t)
	service := NewSweeperService(repo, store)

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		seedExpiredLot(t, repo, store, fmt.Sprintf("expired%d", i), now.Add(-time.Hour), 0)
	}

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.SweepExpired(now)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	// regardless of interleaving, everything ends up inactive
	for i := 0; i < 5; i++ {
		lot, err := repo.GetLotByID(fmt.Sprintf("expired%d", i))
		require.NoError(t, err)
		require.False(t, lot.Active)
	}

	result, err := service.SweepExpired(now)
	require.NoError(t, err)
	require.Zero(t, result.DeactivatedCount)
}
