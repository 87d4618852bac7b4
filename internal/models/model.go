package models

import "time"

// Lot kinds accepted by the catalog
const (
	KindService = "service"
	KindSale    = "sale"
	KindLot     = "lot"
)

// Activity log actions
const (
	ActionCreated = "created"
	ActionEdited  = "edited"
	ActionDeleted = "deleted"
)

// User represents a marketplace account. Accounts created through the chat
// bridge have no email or password hash, only a ChatID.
type User struct {
	UserID       string    `gorm:"primaryKey" json:"user_id"`
	Email        *string   `gorm:"uniqueIndex;size:100" json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	IsPremium    bool      `json:"is_premium"`
	ChatID       *int64    `gorm:"uniqueIndex" json:"chat_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Lot represents a sellable or biddable listing. EndTime is set only on the
// scheduled (admin-created) variant; the sweeper deactivates lots past it.
type Lot struct {
	LotID       string     `gorm:"primaryKey" json:"lot_id"`
	UserID      string     `gorm:"index" json:"user_id"`
	Kind        string     `gorm:"size:16;index" json:"kind"`
	Title       string     `gorm:"size:255" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Price       float64    `json:"price"`
	BuyNowPrice *float64   `json:"buy_now_price,omitempty"`
	StartPrice  *float64   `json:"start_price,omitempty"`
	Tags        []string   `gorm:"serializer:json" json:"tags"`
	Images      []string   `gorm:"serializer:json" json:"images"`
	Views       int64      `json:"views"`
	Clicks      int64      `json:"clicks"`
	IsPremium   bool       `json:"is_premium"`
	Location    string     `gorm:"size:255" json:"location"`
	Active      bool       `gorm:"index" json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	EndTime     *time.Time `gorm:"index" json:"end_time,omitempty"`

	Bids []Bid `gorm:"foreignKey:LotID" json:"bids"`
}

// Bid is one entry in a lot's append-only ledger. Bids are never mutated or
// removed once recorded.
type Bid struct {
	BidID     string    `gorm:"primaryKey" json:"bid_id"`
	LotID     string    `gorm:"index" json:"lot_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a directed message between two users, optionally about a lot.
// Immutable once sent except for the read flag.
type Message struct {
	MessageID  string    `gorm:"primaryKey" json:"message_id"`
	FromUserID string    `gorm:"index" json:"from_user_id"`
	ToUserID   string    `gorm:"index" json:"to_user_id"`
	Text       string    `gorm:"type:text" json:"text"`
	LotID      *string   `json:"lot_id,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityLogEntry records a create/edit/delete action against a lot.
type ActivityLogEntry struct {
	EntryID   string    `gorm:"primaryKey" json:"entry_id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Action    string    `gorm:"size:16" json:"action"`
	TargetID  string    `gorm:"index" json:"target_id"`
	CreatedAt time.Time `json:"created_at"`
}
