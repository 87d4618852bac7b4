package repository

import (
	"time"

	model "lot-market/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// UserDB defines user storage for the marketplace
type UserDB interface {
	CreateUser(user model.User) error
	GetUserByID(userID string) (model.User, error)
	GetUserByEmail(email string) (model.User, error)
	GetUserByChatID(chatID int64) (model.User, error)
	UpdateUser(user model.User) error
}

// LotDB defines lot and bid-ledger storage
type LotDB interface {
	CreateLot(lot model.Lot) error
	// CreateLotIfUnderQuota counts the owner's active lots and inserts the lot
	// in one atomic step, failing with ErrQuotaExceeded at or above ceiling.
	CreateLotIfUnderQuota(lot model.Lot, ceiling int) error
	GetLotByID(lotID string) (model.Lot, error)
	ListLots(kind string, limit int) ([]model.Lot, error)
	ListLotsByUser(userID string) ([]model.Lot, error)
	UpdateLot(lot model.Lot) error
	DeleteLot(lotID string) (model.Lot, error)
	AppendBid(bid model.Bid) error
	ListBids(lotID string) ([]model.Bid, error)
	GetWinningBid(lotID string) (model.Bid, error)
	CountActiveLotsByUser(userID string) (int, error)
	ListExpiredLots(now time.Time) ([]model.Lot, error)
	// DeactivateLots flips active=false for the given lots. Already-inactive
	// lots are a no-op, so overlapping sweeps are safe.
	DeactivateLots(lotIDs []string) error
	IncrementViews(lotID string) error
	IncrementClicks(lotID string) error
}

// MessageDB defines message storage
type MessageDB interface {
	CreateMessage(msg model.Message) error
	// ListMessages filters by recipient and/or sender; empty strings mean no
	// filter on that side. Newest first.
	ListMessages(toUserID, fromUserID string) ([]model.Message, error)
	MarkRead(messageID string) error
}

// ActivityDB defines the append-only activity log
type ActivityDB interface {
	RecordActivity(entry model.ActivityLogEntry) error
	ListActivityByUser(userID string) ([]model.ActivityLogEntry, error)
}
