package repository

import (
	"errors"
	"fmt"
	"time"

	"lot-market/internal/marketerrors"
	model "lot-market/internal/models"

	"gorm.io/gorm"
)

// GormRepo implements all four storage interfaces over a gorm database.
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo migrates the schema and returns a repository over db.
func NewGormRepo(db *gorm.DB) (*GormRepo, error) {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Lot{},
		&model.Bid{},
		&model.Message{},
		&model.ActivityLogEntry{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &GormRepo{db: db}, nil
}

// ---- UserDB ----

func (r *GormRepo) CreateUser(user model.User) error {
	if user.Email != nil {
		var cnt int64
		if err := r.db.Model(&model.User{}).Where("email = ?", *user.Email).Count(&cnt).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if cnt > 0 {
			return fmt.Errorf("create user %s: %w", *user.Email, marketerrors.ErrEmailTaken)
		}
	}
	if err := r.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create user: %w", marketerrors.ErrEmailTaken)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *GormRepo) GetUserByID(userID string) (model.User, error) {
	var user model.User
	if err := r.db.First(&user, "user_id = ?", userID).Error; err != nil {
		return model.User{}, wrapNotFound(err, "get user "+userID, marketerrors.ErrUserNotFound)
	}
	return user, nil
}

func (r *GormRepo) GetUserByEmail(email string) (model.User, error) {
	var user model.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return model.User{}, wrapNotFound(err, "get user by email "+email, marketerrors.ErrUserNotFound)
	}
	return user, nil
}

func (r *GormRepo) GetUserByChatID(chatID int64) (model.User, error) {
	var user model.User
	if err := r.db.First(&user, "chat_id = ?", chatID).Error; err != nil {
		return model.User{}, wrapNotFound(err, fmt.Sprintf("get user by chat id %d", chatID), marketerrors.ErrUserNotFound)
	}
	return user, nil
}

func (r *GormRepo) UpdateUser(user model.User) error {
	if user.Email != nil {
		var cnt int64
		if err := r.db.Model(&model.User{}).
			Where("email = ? AND user_id <> ?", *user.Email, user.UserID).
			Count(&cnt).Error; err != nil {
			return fmt.Errorf("update user %s: %w", user.UserID, err)
		}
		if cnt > 0 {
			return fmt.Errorf("update user %s: %w", *user.Email, marketerrors.ErrEmailTaken)
		}
	}
	res := r.db.Model(&model.User{}).Where("user_id = ?", user.UserID).Select("*").Omit("user_id", "created_at").Updates(&user)
	if res.Error != nil {
		// The unique index backstops the race between the check and the write.
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("update user %s: %w", user.UserID, marketerrors.ErrEmailTaken)
		}
		return fmt.Errorf("update user %s: %w", user.UserID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update user %s: %w", user.UserID, marketerrors.ErrUserNotFound)
	}
	return nil
}

// ---- LotDB ----

func (r *GormRepo) CreateLot(lot model.Lot) error {
	if err := r.db.Create(&lot).Error; err != nil {
		return fmt.Errorf("create lot: %w", err)
	}
	return nil
}

func (r *GormRepo) CreateLotIfUnderQuota(lot model.Lot, ceiling int) error {
	// Count and insert inside one transaction so concurrent creations at the
	// quota boundary cannot both pass.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&model.Lot{}).
			Where("user_id = ? AND active = ?", lot.UserID, true).
			Count(&active).Error; err != nil {
			return err
		}
		if int(active) >= ceiling {
			return marketerrors.ErrQuotaExceeded
		}
		return tx.Create(&lot).Error
	})
	if err != nil {
		return fmt.Errorf("create lot for user %s: %w", lot.UserID, err)
	}
	return nil
}

func (r *GormRepo) GetLotByID(lotID string) (model.Lot, error) {
	var lot model.Lot
	err := r.db.Preload("Bids", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&lot, "lot_id = ?", lotID).Error
	if err != nil {
		return model.Lot{}, wrapNotFound(err, "get lot "+lotID, marketerrors.ErrLotNotFound)
	}
	return lot, nil
}

func (r *GormRepo) ListLots(kind string, limit int) ([]model.Lot, error) {
	q := r.db.Preload("Bids").Order("created_at DESC")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var lots []model.Lot
	if err := q.Find(&lots).Error; err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	return lots, nil
}

func (r *GormRepo) ListLotsByUser(userID string) ([]model.Lot, error) {
	var lots []model.Lot
	err := r.db.Preload("Bids").Where("user_id = ?", userID).Order("created_at DESC").Find(&lots).Error
	if err != nil {
		return nil, fmt.Errorf("list lots for user %s: %w", userID, err)
	}
	return lots, nil
}

func (r *GormRepo) UpdateLot(lot model.Lot) error {
	res := r.db.Model(&model.Lot{}).Where("lot_id = ?", lot.LotID).
		Select("*").Omit("lot_id", "created_at", "Bids").Updates(&lot)
	if res.Error != nil {
		return fmt.Errorf("update lot %s: %w", lot.LotID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update lot %s: %w", lot.LotID, marketerrors.ErrLotNotFound)
	}
	return nil
}

func (r *GormRepo) DeleteLot(lotID string) (model.Lot, error) {
	lot, err := r.GetLotByID(lotID)
	if err != nil {
		return model.Lot{}, err
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lot_id = ?", lotID).Delete(&model.Bid{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Lot{}, "lot_id = ?", lotID).Error
	})
	if err != nil {
		return model.Lot{}, fmt.Errorf("delete lot %s: %w", lotID, err)
	}
	return lot, nil
}

func (r *GormRepo) AppendBid(bid model.Bid) error {
	// A bid is a child-row insert, not a read-modify-write of an array field,
	// so concurrent bids cannot lose each other's writes. The existence check
	// shares a transaction with the insert so a concurrent delete of the lot
	// cannot leave an orphaned bid row behind.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.Lot{}).Where("lot_id = ?", bid.LotID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return marketerrors.ErrLotNotFound
		}
		return tx.Create(&bid).Error
	})
	if err != nil {
		return fmt.Errorf("append bid for lot %s: %w", bid.LotID, err)
	}
	return nil
}

func (r *GormRepo) ListBids(lotID string) ([]model.Bid, error) {
	var bids []model.Bid
	err := r.db.Where("lot_id = ?", lotID).Order("created_at ASC").Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("list bids for lot %s: %w", lotID, err)
	}
	return bids, nil
}

func (r *GormRepo) GetWinningBid(lotID string) (model.Bid, error) {
	var bid model.Bid
	err := r.db.Where("lot_id = ?", lotID).
		Order("amount DESC").Order("created_at ASC").
		First(&bid).Error
	if err != nil {
		return model.Bid{}, wrapNotFound(err, "get winning bid for lot "+lotID, marketerrors.ErrNoBids)
	}
	return bid, nil
}

func (r *GormRepo) CountActiveLotsByUser(userID string) (int, error) {
	var cnt int64
	err := r.db.Model(&model.Lot{}).Where("user_id = ? AND active = ?", userID, true).Count(&cnt).Error
	if err != nil {
		return 0, fmt.Errorf("count active lots for user %s: %w", userID, err)
	}
	return int(cnt), nil
}

func (r *GormRepo) ListExpiredLots(now time.Time) ([]model.Lot, error) {
	var lots []model.Lot
	err := r.db.Where("active = ? AND end_time IS NOT NULL AND end_time < ?", true, now).Find(&lots).Error
	if err != nil {
		return nil, fmt.Errorf("list expired lots: %w", err)
	}
	return lots, nil
}

func (r *GormRepo) DeactivateLots(lotIDs []string) error {
	if len(lotIDs) == 0 {
		return nil
	}
	err := r.db.Model(&model.Lot{}).Where("lot_id IN ?", lotIDs).Update("active", false).Error
	if err != nil {
		return fmt.Errorf("deactivate lots: %w", err)
	}
	return nil
}

func (r *GormRepo) IncrementViews(lotID string) error {
	return r.increment(lotID, "views")
}

func (r *GormRepo) IncrementClicks(lotID string) error {
	return r.increment(lotID, "clicks")
}

func (r *GormRepo) increment(lotID, column string) error {
	res := r.db.Model(&model.Lot{}).Where("lot_id = ?", lotID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return fmt.Errorf("increment %s for lot %s: %w", column, lotID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("increment %s for lot %s: %w", column, lotID, marketerrors.ErrLotNotFound)
	}
	return nil
}

// ---- MessageDB ----

func (r *GormRepo) CreateMessage(msg model.Message) error {
	if err := r.db.Create(&msg).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

func (r *GormRepo) ListMessages(toUserID, fromUserID string) ([]model.Message, error) {
	q := r.db.Order("created_at DESC")
	if toUserID != "" {
		q = q.Where("to_user_id = ?", toUserID)
	}
	if fromUserID != "" {
		q = q.Where("from_user_id = ?", fromUserID)
	}
	var msgs []model.Message
	if err := q.Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (r *GormRepo) MarkRead(messageID string) error {
	res := r.db.Model(&model.Message{}).Where("message_id = ?", messageID).Update("read", true)
	if res.Error != nil {
		return fmt.Errorf("mark message %s read: %w", messageID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("mark message %s read: %w", messageID, marketerrors.ErrMessageNotFound)
	}
	return nil
}

// ---- ActivityDB ----

func (r *GormRepo) RecordActivity(entry model.ActivityLogEntry) error {
	if err := r.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func (r *GormRepo) ListActivityByUser(userID string) ([]model.ActivityLogEntry, error) {
	var entries []model.ActivityLogEntry
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list activity for user %s: %w", userID, err)
	}
	return entries, nil
}

func wrapNotFound(err error, op string, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, notFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
