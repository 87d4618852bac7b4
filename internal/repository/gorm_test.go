package repository

import (
	"testing"
	"time"

	"lot-market/internal/marketerrors"
	model "lot-market/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGormRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every statement on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo, err := NewGormRepo(db)
	require.NoError(t, err)
	return repo
}

func TestGormRepo_EmailUniqueness(t *testing.T) {
	repo := setupGormRepo(t)

	require.NoError(t, repo.CreateUser(model.User{UserID: "u1", Email: strPtr("a@example.com")}))
	require.NoError(t, repo.CreateUser(model.User{UserID: "u2", Email: strPtr("b@example.com")}))

	err := repo.CreateUser(model.User{UserID: "u3", Email: strPtr("a@example.com")})
	require.ErrorIs(t, err, marketerrors.ErrEmailTaken)

	// an update cannot steal another account's email either
	err = repo.UpdateUser(model.User{UserID: "u2", Email: strPtr("a@example.com")})
	require.ErrorIs(t, err, marketerrors.ErrEmailTaken)

	got, err := repo.GetUserByEmail("a@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", got.UserID)

	// keeping your own email and moving to a free one both succeed
	require.NoError(t, repo.UpdateUser(model.User{UserID: "u1", Email: strPtr("a@example.com"), IsPremium: true}))
	require.NoError(t, repo.UpdateUser(model.User{UserID: "u2", Email: strPtr("c@example.com")}))
}

func TestGormRepo_AppendBidRequiresLiveLot(t *testing.T) {
	repo := setupGormRepo(t)

	lot := model.Lot{LotID: "l1", UserID: "u1", Kind: model.KindLot, Title: "clock", Active: true, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.CreateLot(lot))

	bid := model.Bid{BidID: "b1", LotID: "l1", UserID: "u2", Amount: 100, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.AppendBid(bid))

	_, err := repo.DeleteLot("l1")
	require.NoError(t, err)

	// once the lot is gone the insert rolls back and no orphan row remains
	err = repo.AppendBid(model.Bid{BidID: "b2", LotID: "l1", UserID: "u2", Amount: 120, CreatedAt: time.Now().UTC()})
	require.ErrorIs(t, err, marketerrors.ErrLotNotFound)

	bids, err := repo.ListBids("l1")
	require.NoError(t, err)
	require.Empty(t, bids)
}
