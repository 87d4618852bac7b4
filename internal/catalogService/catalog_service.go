package catalog

import (
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"lot-market/internal/marketerrors"
	"lot-market/internal/models"
	"lot-market/internal/repository"
	"lot-market/internal/storage"
	"lot-market/utils"
)

// Quota ceilings and strict-bid behavior for the catalog.
type Policy struct {
	FreeLotQuota     int
	PremiumLotQuota  int
	ListDefaultLimit int
	// StrictBids rejects bids at or below the current highest bid. Off by
	// default: the ledger accepts any amount.
	StrictBids bool
}

// NewLotFields carries the caller-supplied fields for lot creation.
type NewLotFields struct {
	Kind        string
	Title       string
	Description string
	Price       float64
	BuyNowPrice *float64
	StartPrice  *float64
	Tags        []string
	Images      []string
	IsPremium   bool
	Location    string
	EndTime     *time.Time
}

// LotUpdate carries a partial edit; nil fields are left unchanged.
type LotUpdate struct {
	Kind        *string
	Title       *string
	Description *string
	Price       *float64
	BuyNowPrice *float64
	Tags        []string
	Images      []string
	IsPremium   *bool
	Location    *string
	Active      *bool
	EndTime     *time.Time
}

// CatalogService implements the lot catalog: listing, lifecycle, quota policy
// and the append-only bid ledger.
type CatalogService struct {
	lots     repository.LotDB
	users    repository.UserDB
	activity repository.ActivityDB
	store    storage.ObjectStore
	policy   Policy
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(lots repository.LotDB, users repository.UserDB, activity repository.ActivityDB, store storage.ObjectStore, policy Policy) *CatalogService {
	return &CatalogService{
		lots:     lots,
		users:    users,
		activity: activity,
		store:    store,
		policy:   policy,
	}
}

// ListLots returns lots matching kind (empty for all), newest first. A zero
// limit uses the configured default.
func (s *CatalogService) ListLots(kind string, limit int) ([]models.Lot, error) {
	if kind != "" && !validKind(kind) {
		return nil, fmt.Errorf("service: %w - unknown lot kind %q", marketerrors.ErrValidation, kind)
	}
	if limit <= 0 {
		limit = s.policy.ListDefaultLimit
	}

	lots, err := s.lots.ListLots(kind, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list lots: %w", err)
	}
	return lots, nil
}

// GetLot returns one lot and bumps its view counter.
func (s *CatalogService) GetLot(lotID string) (models.Lot, error) {
	if lotID == "" {
		return models.Lot{}, fmt.Errorf("service: %w - empty lot ID", marketerrors.ErrValidation)
	}

	lot, err := s.lots.GetLotByID(lotID)
	if err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}

	if err := s.lots.IncrementViews(lotID); err != nil {
		utils.Warn("view counter increment failed", map[string]any{"lot_id": lotID, "error": err.Error()})
	} else {
		lot.Views++
	}
	return lot, nil
}

// RegisterClick bumps the click counter for a lot.
func (s *CatalogService) RegisterClick(lotID string) error {
	if lotID == "" {
		return fmt.Errorf("service: %w - empty lot ID", marketerrors.ErrValidation)
	}
	if err := s.lots.IncrementClicks(lotID); err != nil {
		return fmt.Errorf("service: failed to register click for lot %s: %w", lotID, err)
	}
	return nil
}

// CreateLot validates the fields, enforces the owner's active-lot quota and
// persists the lot, recording a `created` activity entry.
func (s *CatalogService) CreateLot(ownerID string, fields NewLotFields) (models.Lot, error) {
	if err := s.validateNewLot(ownerID, fields); err != nil {
		return models.Lot{}, err
	}

	owner, err := s.users.GetUserByID(ownerID)
	if err != nil {
		if errors.Is(err, marketerrors.ErrUserNotFound) {
			return models.Lot{}, fmt.Errorf("service: %w - owner %s not found", marketerrors.ErrValidation, ownerID)
		}
		return models.Lot{}, fmt.Errorf("service: failed to resolve owner %s: %w", ownerID, err)
	}

	ceiling := s.policy.FreeLotQuota
	if owner.IsPremium {
		ceiling = s.policy.PremiumLotQuota
	}

	lot := models.Lot{
		LotID:       utils.GenerateID(),
		UserID:      ownerID,
		Kind:        fields.Kind,
		Title:       fields.Title,
		Description: fields.Description,
		Price:       fields.Price,
		BuyNowPrice: fields.BuyNowPrice,
		StartPrice:  fields.StartPrice,
		Tags:        fields.Tags,
		Images:      fields.Images,
		IsPremium:   fields.IsPremium,
		Location:    fields.Location,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
		EndTime:     fields.EndTime,
	}

	if err := s.lots.CreateLotIfUnderQuota(lot, ceiling); err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to create lot for user %s: %w", ownerID, err)
	}

	s.recordActivity(ownerID, models.ActionCreated, lot.LotID)
	return lot, nil
}

// UpdateLot merges the supplied fields into the lot (last write wins) and
// records an `edited` activity entry. The merge and the activity write are
// two independent operations; callers must not assume atomicity across them.
func (s *CatalogService) UpdateLot(lotID string, update LotUpdate) (models.Lot, error) {
	if lotID == "" {
		return models.Lot{}, fmt.Errorf("service: %w - empty lot ID", marketerrors.ErrValidation)
	}
	if update.Price != nil && *update.Price < 0 {
		return models.Lot{}, fmt.Errorf("service: %w - negative price", marketerrors.ErrValidation)
	}
	if update.Kind != nil && !validKind(*update.Kind) {
		return models.Lot{}, fmt.Errorf("service: %w - unknown lot kind %q", marketerrors.ErrValidation, *update.Kind)
	}

	lot, err := s.lots.GetLotByID(lotID)
	if err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}

	applyUpdate(&lot, update)

	if lot.EndTime != nil && !lot.EndTime.After(lot.CreatedAt) {
		return models.Lot{}, fmt.Errorf("service: %w - end time not after creation time", marketerrors.ErrValidation)
	}

	if err := s.lots.UpdateLot(lot); err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to update lot %s: %w", lotID, err)
	}

	s.recordActivity(lot.UserID, models.ActionEdited, lot.LotID)
	return lot, nil
}

// DeleteLot removes the lot, best-effort deletes its stored images and
// records a `deleted` activity entry.
func (s *CatalogService) DeleteLot(lotID string) error {
	if lotID == "" {
		return fmt.Errorf("service: %w - empty lot ID", marketerrors.ErrValidation)
	}

	lot, err := s.lots.DeleteLot(lotID)
	if err != nil {
		return fmt.Errorf("service: failed to delete lot %s: %w", lotID, err)
	}

	s.deleteImages(lot)
	s.recordActivity(lot.UserID, models.ActionDeleted, lot.LotID)
	return nil
}

// PlaceBid appends a bid to the lot's ledger. Any amount is accepted unless
// strict validation is enabled, in which case the bid must exceed the current
// highest one.
func (s *CatalogService) PlaceBid(lotID, bidderID string, amount float64) (models.Lot, error) {
	if err := s.validateBid(lotID, bidderID, amount); err != nil {
		return models.Lot{}, err
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		LotID:     lotID,
		UserID:    bidderID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.lots.AppendBid(bid); err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to record bid for lot %s by user %s: %w", lotID, bidderID, err)
	}

	lot, err := s.lots.GetLotByID(lotID)
	if err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to reload lot %s after bid: %w", lotID, err)
	}
	return lot, nil
}

// validateBid checks input validity and, in strict mode, the business rule
func (s *CatalogService) validateBid(lotID, bidderID string, amount float64) error {
	if lotID == "" || bidderID == "" {
		return fmt.Errorf("service: %w - missing lotID or bidderID", marketerrors.ErrValidation)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrValidation)
	}

	if !s.policy.StrictBids {
		return nil
	}

	winningBid, err := s.lots.GetWinningBid(lotID)
	if err == nil {
		if amount <= winningBid.Amount {
			return fmt.Errorf("service: %w - current highest bid is %.2f", marketerrors.ErrBidTooLow, winningBid.Amount)
		}
	} else if !errors.Is(err, marketerrors.ErrNoBids) {
		return fmt.Errorf("service: failed to check winning bid: %w", err)
	}

	return nil
}

// GetBidsForLot returns the lot's ledger in insertion order.
func (s *CatalogService) GetBidsForLot(lotID string) ([]models.Bid, error) {
	if lotID == "" {
		return nil, fmt.Errorf("service: %w - empty lot ID", marketerrors.ErrValidation)
	}

	bids, err := s.lots.ListBids(lotID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for lot %s: %w", lotID, err)
	}
	return bids, nil
}

// AttachImage stores an uploaded image and appends its URL to the lot.
func (s *CatalogService) AttachImage(lotID string, r io.Reader, filename, contentType string) (models.Lot, error) {
	if lotID == "" {
		return models.Lot{}, fmt.Errorf("service: %w - empty lot ID", marketerrors.ErrValidation)
	}

	lot, err := s.lots.GetLotByID(lotID)
	if err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}

	url, err := s.store.Put(utils.ObjectKey(lotID, path.Ext(filename)), r, contentType)
	if err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to store image for lot %s: %w", lotID, err)
	}

	lot.Images = append(lot.Images, url)
	if err := s.lots.UpdateLot(lot); err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to attach image to lot %s: %w", lotID, err)
	}
	return lot, nil
}

func (s *CatalogService) validateNewLot(ownerID string, fields NewLotFields) error {
	switch {
	case ownerID == "":
		return fmt.Errorf("service: %w - empty owner ID", marketerrors.ErrValidation)
	case fields.Title == "":
		return fmt.Errorf("service: %w - missing title", marketerrors.ErrValidation)
	case fields.Description == "":
		return fmt.Errorf("service: %w - missing description", marketerrors.ErrValidation)
	case !validKind(fields.Kind):
		return fmt.Errorf("service: %w - unknown lot kind %q", marketerrors.ErrValidation, fields.Kind)
	case fields.Price < 0:
		return fmt.Errorf("service: %w - negative price", marketerrors.ErrValidation)
	case fields.Price == 0 && fields.StartPrice == nil:
		return fmt.Errorf("service: %w - missing price or start price", marketerrors.ErrValidation)
	case fields.EndTime != nil && !fields.EndTime.After(time.Now()):
		return fmt.Errorf("service: %w - end time not in the future", marketerrors.ErrValidation)
	}
	return nil
}

// deleteImages best-effort removes a lot's stored images; failures are logged
// and never propagated.
func (s *CatalogService) deleteImages(lot models.Lot) {
	keys := make([]string, 0, len(lot.Images))
	for _, url := range lot.Images {
		if key, ok := s.store.KeyFromURL(url); ok {
			keys = append(keys, key)
		}
	}
	for key, err := range s.store.Delete(keys) {
		if err != nil {
			utils.Warn("image delete failed", map[string]any{"lot_id": lot.LotID, "key": key, "error": err.Error()})
		}
	}
}

// recordActivity appends an audit entry. The mutation it logs has already
// been persisted; a failure here is logged, not surfaced.
func (s *CatalogService) recordActivity(userID, action, targetID string) {
	entry := models.ActivityLogEntry{
		EntryID:   utils.GenerateID(),
		UserID:    userID,
		Action:    action,
		TargetID:  targetID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.activity.RecordActivity(entry); err != nil {
		utils.Warn("activity log write failed", map[string]any{
			"user_id":   userID,
			"action":    action,
			"target_id": targetID,
			"error":     err.Error(),
		})
	}
}

func applyUpdate(lot *models.Lot, update LotUpdate) {
	if update.Kind != nil {
		lot.Kind = *update.Kind
	}
	if update.Title != nil {
		lot.Title = *update.Title
	}
	if update.Description != nil {
		lot.Description = *update.Description
	}
	if update.Price != nil {
		lot.Price = *update.Price
	}
	if update.BuyNowPrice != nil {
		lot.BuyNowPrice = update.BuyNowPrice
	}
	if update.Tags != nil {
		lot.Tags = update.Tags
	}
	if update.Images != nil {
		lot.Images = update.Images
	}
	if update.IsPremium != nil {
		lot.IsPremium = *update.IsPremium
	}
	if update.Location != nil {
		lot.Location = *update.Location
	}
	if update.Active != nil {
		lot.Active = *update.Active
	}
	if update.EndTime != nil {
		lot.EndTime = update.EndTime
	}
}

func validKind(kind string) bool {
	switch kind {
	case models.KindService, models.KindSale, models.KindLot:
		return true
	}
	return false
}
