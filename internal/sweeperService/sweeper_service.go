package sweeper

import (
	"fmt"
	"time"

	"lot-market/internal/repository"
	"lot-market/internal/storage"
	"lot-market/utils"
)

// SweepResult reports what one sweep did.
type SweepResult struct {
	DeactivatedCount int `json:"deactivated_count"`
	ImageErrors      int `json:"image_errors"`
}

// SweeperService deactivates lots past their end time and removes their
// stored images.
type SweeperService struct {
	lots  repository.LotDB
	store storage.ObjectStore
}

// NewSweeperService creates a new SweeperService instance
func NewSweeperService(lots repository.LotDB, store storage.ObjectStore) *SweeperService {
	return &SweeperService{
		lots:  lots,
		store: store,
	}
}

// SweepExpired finds active lots with an end time before now, best-effort
// deletes their images and flips them inactive in one batched update.
// Image-deletion failures are collected, never propagated: one bad object
// must not abort the sweep for other lots. Running the sweep twice with no
// new expirations is a no-op returning a zero count.
func (s *SweeperService) SweepExpired(now time.Time) (SweepResult, error) {
	expired, err := s.lots.ListExpiredLots(now)
	if err != nil {
		return SweepResult{}, fmt.Errorf("service: failed to list expired lots: %w", err)
	}
	if len(expired) == 0 {
		return SweepResult{}, nil
	}

	var keys []string
	lotIDs := make([]string, 0, len(expired))
	for _, lot := range expired {
		lotIDs = append(lotIDs, lot.LotID)
		for _, url := range lot.Images {
			if key, ok := s.store.KeyFromURL(url); ok {
				keys = append(keys, key)
			}
		}
	}

	imageErrors := 0
	for key, delErr := range s.store.Delete(keys) {
		if delErr != nil {
			imageErrors++
			utils.Warn("sweep: image delete failed", map[string]any{"key": key, "error": delErr.Error()})
		}
	}

	if err := s.lots.DeactivateLots(lotIDs); err != nil {
		return SweepResult{}, fmt.Errorf("service: failed to deactivate expired lots: %w", err)
	}

	utils.Info("sweep completed", map[string]any{
		"deactivated":  len(lotIDs),
		"image_errors": imageErrors,
	})
	return SweepResult{DeactivatedCount: len(lotIDs), ImageErrors: imageErrors}, nil
}
