package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"lot-market/internal/marketerrors"
	model "lot-market/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of all four
// storage interfaces, used by tests and local development.
type MemoryRepo struct {
	mu       sync.RWMutex
	users    map[string]model.User  // key: userID
	lots     map[string]model.Lot   // key: lotID
	bids     map[string][]model.Bid // key: lotID -> ordered ledger
	messages []model.Message
	activity []model.ActivityLogEntry
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users: make(map[string]model.User),
		lots:  make(map[string]model.Lot),
		bids:  make(map[string][]model.Bid),
	}
}

// ---- UserDB ----

func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.Email != nil {
		for _, u := range r.users {
			if u.Email != nil && *u.Email == *user.Email {
				return fmt.Errorf("create user %s: %w", *user.Email, marketerrors.ErrEmailTaken)
			}
		}
	}
	r.users[user.UserID] = user
	return nil
}

func (r *MemoryRepo) GetUserByID(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return user, nil
}

func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user by email %s: %w", email, marketerrors.ErrUserNotFound)
}

func (r *MemoryRepo) GetUserByChatID(chatID int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ChatID != nil && *u.ChatID == chatID {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user by chat id %d: %w", chatID, marketerrors.ErrUserNotFound)
}

func (r *MemoryRepo) UpdateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserID]; !ok {
		return fmt.Errorf("update user %s: %w", user.UserID, marketerrors.ErrUserNotFound)
	}
	if user.Email != nil {
		for _, u := range r.users {
			if u.UserID != user.UserID && u.Email != nil && *u.Email == *user.Email {
				return fmt.Errorf("update user %s: %w", *user.Email, marketerrors.ErrEmailTaken)
			}
		}
	}
	r.users[user.UserID] = user
	return nil
}

// ---- LotDB ----

func (r *MemoryRepo) CreateLot(lot model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lots[lot.LotID] = lot
	return nil
}

func (r *MemoryRepo) CreateLotIfUnderQuota(lot model.Lot, ceiling int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Count and insert under one lock hold so concurrent creations at the
	// boundary cannot both pass.
	active := 0
	for _, l := range r.lots {
		if l.UserID == lot.UserID && l.Active {
			active++
		}
	}
	if active >= ceiling {
		return fmt.Errorf("create lot for user %s: %w", lot.UserID, marketerrors.ErrQuotaExceeded)
	}
	r.lots[lot.LotID] = lot
	return nil
}

func (r *MemoryRepo) GetLotByID(lotID string) (model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, marketerrors.ErrLotNotFound)
	}
	lot.Bids = append([]model.Bid(nil), r.bids[lotID]...)
	return lot, nil
}

func (r *MemoryRepo) ListLots(kind string, limit int) ([]model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lots := make([]model.Lot, 0, len(r.lots))
	for _, l := range r.lots {
		if kind != "" && l.Kind != kind {
			continue
		}
		l.Bids = append([]model.Bid(nil), r.bids[l.LotID]...)
		lots = append(lots, l)
	}
	sortLotsNewestFirst(lots)
	if limit > 0 && len(lots) > limit {
		lots = lots[:limit]
	}
	return lots, nil
}

func (r *MemoryRepo) ListLotsByUser(userID string) ([]model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lots := make([]model.Lot, 0)
	for _, l := range r.lots {
		if l.UserID != userID {
			continue
		}
		l.Bids = append([]model.Bid(nil), r.bids[l.LotID]...)
		lots = append(lots, l)
	}
	sortLotsNewestFirst(lots)
	return lots, nil
}

func (r *MemoryRepo) UpdateLot(lot model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[lot.LotID]; !ok {
		return fmt.Errorf("update lot %s: %w", lot.LotID, marketerrors.ErrLotNotFound)
	}
	lot.Bids = nil // the ledger lives in r.bids
	r.lots[lot.LotID] = lot
	return nil
}

func (r *MemoryRepo) DeleteLot(lotID string) (model.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("delete lot %s: %w", lotID, marketerrors.ErrLotNotFound)
	}
	delete(r.lots, lotID)
	delete(r.bids, lotID)
	return lot, nil
}

func (r *MemoryRepo) AppendBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[bid.LotID]; !ok {
		return fmt.Errorf("append bid for lot %s: %w", bid.LotID, marketerrors.ErrLotNotFound)
	}
	r.bids[bid.LotID] = append(r.bids[bid.LotID], bid)
	return nil
}

func (r *MemoryRepo) ListBids(lotID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.lots[lotID]; !ok {
		return nil, fmt.Errorf("list bids for lot %s: %w", lotID, marketerrors.ErrLotNotFound)
	}
	return append([]model.Bid(nil), r.bids[lotID]...), nil
}

func (r *MemoryRepo) GetWinningBid(lotID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := r.bids[lotID]
	if len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for lot %s: %w", lotID, marketerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

func (r *MemoryRepo) CountActiveLotsByUser(userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, l := range r.lots {
		if l.UserID == userID && l.Active {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepo) ListExpiredLots(now time.Time) ([]model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	expired := make([]model.Lot, 0)
	for _, l := range r.lots {
		if l.Active && l.EndTime != nil && l.EndTime.Before(now) {
			expired = append(expired, l)
		}
	}
	sortLotsNewestFirst(expired)
	return expired, nil
}

func (r *MemoryRepo) DeactivateLots(lotIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range lotIDs {
		if lot, ok := r.lots[id]; ok {
			lot.Active = false
			r.lots[id] = lot
		}
	}
	return nil
}

func (r *MemoryRepo) IncrementViews(lotID string) error {
	return r.increment(lotID, func(l *model.Lot) { l.Views++ })
}

func (r *MemoryRepo) IncrementClicks(lotID string) error {
	return r.increment(lotID, func(l *model.Lot) { l.Clicks++ })
}

func (r *MemoryRepo) increment(lotID string, bump func(*model.Lot)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return fmt.Errorf("increment counter for lot %s: %w", lotID, marketerrors.ErrLotNotFound)
	}
	bump(&lot)
	r.lots[lotID] = lot
	return nil
}

// ---- MessageDB ----

func (r *MemoryRepo) CreateMessage(msg model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, msg)
	return nil
}

func (r *MemoryRepo) ListMessages(toUserID, fromUserID string) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := make([]model.Message, 0)
	for _, m := range r.messages {
		if toUserID != "" && m.ToUserID != toUserID {
			continue
		}
		if fromUserID != "" && m.FromUserID != fromUserID {
			continue
		}
		msgs = append(msgs, m)
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.After(msgs[j].CreatedAt)
	})
	return msgs, nil
}

func (r *MemoryRepo) MarkRead(messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.messages {
		if m.MessageID == messageID {
			r.messages[i].Read = true
			return nil
		}
	}
	return fmt.Errorf("mark message %s read: %w", messageID, marketerrors.ErrMessageNotFound)
}

// ---- ActivityDB ----

func (r *MemoryRepo) RecordActivity(entry model.ActivityLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activity = append(r.activity, entry)
	return nil
}

func (r *MemoryRepo) ListActivityByUser(userID string) ([]model.ActivityLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]model.ActivityLogEntry, 0)
	for _, e := range r.activity {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func sortLotsNewestFirst(lots []model.Lot) {
	sort.SliceStable(lots, func(i, j int) bool {
		return lots[i].CreatedAt.After(lots[j].CreatedAt)
	})
}
