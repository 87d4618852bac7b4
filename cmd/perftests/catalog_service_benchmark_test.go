package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	catalog "lot-market/internal/catalogService"
	model "lot-market/internal/models"
	repository "lot-market/internal/repository"
	"lot-market/internal/storage"
	sweeper "lot-market/internal/sweeperService"
)

func newBenchCatalog(b *testing.B) (*repository.MemoryRepo, *catalog.CatalogService) {
	b.Helper()
	repo := repository.NewMemoryRepo()
	store, err := storage.NewDiskStore(b.TempDir(), "")
	if err != nil {
		b.Fatalf("failed to init store: %v", err)
	}
	svc := catalog.NewCatalogService(repo, repo, repo, store, catalog.Policy{
		FreeLotQuota:     5,
		PremiumLotQuota:  20,
		ListDefaultLimit: 10,
	})
	return repo, svc
}

func seedLot(repo *repository.MemoryRepo, lotID string) model.Lot {
	lot := model.Lot{
		LotID:     lotID,
		UserID:    "seller_bench",
		Kind:      model.KindLot,
		Title:     "benchmark lot " + lotID,
		Price:     50,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	_ = repo.CreateLot(lot)
	return lot
}

// Benchmark 1: PlaceBid - Isolated Lots (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	repo, svc := newBenchCatalog(b)

	for i := 0; i < b.N; i++ {
		seedLot(repo, fmt.Sprintf("lot_%d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		userID := fmt.Sprintf("user_%d", i)
		lotID := fmt.Sprintf("lot_%d", i)
		amount := float64(50 + rand.Intn(100))
		if _, err := svc.PlaceBid(lotID, userID, amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Lot (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedLot(b *testing.B) {
	repo, svc := newBenchCatalog(b)
	lot := seedLot(repo, "shared_lot_1")

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := fmt.Sprintf("user_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid(lot.LotID, userID, float64(nextBid))
		}
	})
}

// Benchmark 3: GetBidsForLot - Single-Threaded (Low Contention)
func Benchmark_GetBidsForLot_SingleThreaded(b *testing.B) {
	repo, svc := newBenchCatalog(b)

	for i := 0; i < b.N; i++ {
		lot := seedLot(repo, fmt.Sprintf("lot_%d", i))
		for j := 0; j < 10; j++ {
			userID := fmt.Sprintf("user_%d_%d", i, j)
			_, _ = svc.PlaceBid(lot.LotID, userID, float64(50+j*10))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		lotID := fmt.Sprintf("lot_%d", i)
		if _, err := svc.GetBidsForLot(lotID); err != nil {
			b.Fatalf("failed to get bids: %v", err)
		}
	}
}

// Benchmark 4: GetBidsForLot - Concurrent (High Contention)
func Benchmark_GetBidsForLot_ConcurrentSharedLot(b *testing.B) {
	repo, svc := newBenchCatalog(b)
	lot := seedLot(repo, "shared_lot_1")

	for j := 0; j < 100; j++ {
		userID := fmt.Sprintf("user_%d", j)
		_, _ = svc.PlaceBid(lot.LotID, userID, float64(50+j))
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetBidsForLot(lot.LotID); err != nil {
				b.Fatalf("failed to get bids: %v", err)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedLot(b *testing.B) {
	repo, svc := newBenchCatalog(b)
	lot := seedLot(repo, "shared_lot_1")

	for j := 0; j < 50; j++ {
		userID := fmt.Sprintf("user_seed_%d", j)
		_, _ = svc.PlaceBid(lot.LotID, userID, float64(50+j*2))
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 150
	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				// Writer: place a new bid
				userID := fmt.Sprintf("user_writer_%d", rnd.Int())
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = svc.PlaceBid(lot.LotID, userID, float64(nextBid))
			default:
				// Reader: fetch the ledger
				_, _ = svc.GetBidsForLot(lot.LotID)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 6: CreateLot - Quota-Checked Insert (one owner per iteration)
func Benchmark_CreateLot_QuotaChecked(b *testing.B) {
	repo, svc := newBenchCatalog(b)

	for i := 0; i < b.N; i++ {
		_ = repo.CreateUser(model.User{UserID: fmt.Sprintf("owner_%d", i)})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ownerID := fmt.Sprintf("owner_%d", i)
		_, err := svc.CreateLot(ownerID, catalog.NewLotFields{
			Kind:        model.KindSale,
			Title:       "benchmark sale",
			Description: "quota-checked insert",
			Price:       25,
		})
		if err != nil {
			b.Fatalf("failed to create lot: %v", err)
		}
	}
}

// Benchmark 7: SweepExpired - Batched Deactivation
func Benchmark_SweepExpired_Batch(b *testing.B) {
	repo := repository.NewMemoryRepo()
	store, err := storage.NewDiskStore(b.TempDir(), "")
	if err != nil {
		b.Fatalf("failed to init store: %v", err)
	}
	svc := sweeper.NewSweeperService(repo, store)

	past := time.Now().UTC().Add(-time.Hour)
	cutoff := time.Now().UTC()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for j := 0; j < 100; j++ {
			end := past
			_ = repo.CreateLot(model.Lot{
				LotID:     fmt.Sprintf("expired_%d_%d", i, j),
				UserID:    "seller_bench",
				Kind:      model.KindLot,
				Title:     "expired benchmark lot",
				Active:    true,
				CreatedAt: past.Add(-time.Hour),
				EndTime:   &end,
			})
		}
		b.StartTimer()

		result, err := svc.SweepExpired(cutoff)
		if err != nil {
			b.Fatalf("sweep failed: %v", err)
		}
		if result.DeactivatedCount != 100 {
			b.Fatalf("expected 100 deactivations, got %d", result.DeactivatedCount)
		}
	}
}
