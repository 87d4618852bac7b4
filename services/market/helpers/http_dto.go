package helpers

import "time"

// Request/Response DTOs
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type CreateLotRequest struct {
	UserID      string   `json:"user_id" binding:"required"`
	Kind        string   `json:"kind" binding:"required,oneof=service sale lot"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"gte=0"`
	BuyNowPrice *float64 `json:"buy_now_price"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	IsPremium   bool     `json:"is_premium"`
	Location    string   `json:"location"`
}

type UpdateLotRequest struct {
	Kind        *string  `json:"kind"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	BuyNowPrice *float64 `json:"buy_now_price"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	IsPremium   *bool    `json:"is_premium"`
	Location    *string  `json:"location"`
	Active      *bool    `json:"active"`
}

type PlaceBidRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	LotID     string  `json:"lot_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type SendMessageRequest struct {
	FromUserID string  `json:"from_user_id" binding:"required"`
	ToUserID   string  `json:"to_user_id" binding:"required"`
	Text       string  `json:"text" binding:"required"`
	LotID      *string `json:"lot_id"`
}

type UpdateProfileRequest struct {
	UserID    string  `json:"user_id" binding:"required"`
	Email     *string `json:"email"`
	IsPremium *bool   `json:"is_premium"`
}

// AdminCreateLotRequest is the scheduled auction variant: a start price and a
// duration in hours instead of a plain price.
type AdminCreateLotRequest struct {
	UserID        string   `json:"user_id"`
	Kind          string   `json:"kind" binding:"required,oneof=service sale lot"`
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	StartPrice    float64  `json:"start_price" binding:"required,gt=0"`
	BuyNowPrice   *float64 `json:"buy_now_price"`
	DurationHours int      `json:"duration_hours" binding:"required,gt=0"`
	Tags          []string `json:"tags"`
	Location      string   `json:"location"`
}

// EndTime computes the lot's end time from the requested duration.
func (r AdminCreateLotRequest) EndTime(now time.Time) time.Time {
	return now.Add(time.Duration(r.DurationHours) * time.Hour)
}
