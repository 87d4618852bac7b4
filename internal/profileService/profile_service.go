package profile

import (
	"fmt"

	"lot-market/internal/marketerrors"
	"lot-market/internal/models"
	"lot-market/internal/repository"
)

// Profile is the aggregate view of one user's account.
type Profile struct {
	User     models.User               `json:"user"`
	Lots     []models.Lot              `json:"lots"`
	Messages ProfileMessages           `json:"messages"`
	Activity []models.ActivityLogEntry `json:"activity"`
}

type ProfileMessages struct {
	Received []models.Message `json:"received"`
	Sent     []models.Message `json:"sent"`
}

// ProfileUpdate carries a partial profile edit; nil fields are unchanged.
// The password hash is never touched through this path.
type ProfileUpdate struct {
	Email     *string
	IsPremium *bool
}

// ProfileService assembles the profile aggregate and applies profile edits.
type ProfileService struct {
	users    repository.UserDB
	lots     repository.LotDB
	messages repository.MessageDB
	activity repository.ActivityDB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(users repository.UserDB, lots repository.LotDB, messages repository.MessageDB, activity repository.ActivityDB) *ProfileService {
	return &ProfileService{
		users:    users,
		lots:     lots,
		messages: messages,
		activity: activity,
	}
}

// GetProfile returns the user with their lots, sent/received messages and
// activity log. If any sub-read fails the whole aggregate fails; no partial
// profile is returned.
func (s *ProfileService) GetProfile(userID string) (Profile, error) {
	if userID == "" {
		return Profile{}, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrValidation)
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return Profile{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	user.PasswordHash = ""

	lots, err := s.lots.ListLotsByUser(userID)
	if err != nil {
		return Profile{}, fmt.Errorf("service: failed to list lots for user %s: %w", userID, err)
	}

	received, err := s.messages.ListMessages(userID, "")
	if err != nil {
		return Profile{}, fmt.Errorf("service: failed to list received messages for user %s: %w", userID, err)
	}

	sent, err := s.messages.ListMessages("", userID)
	if err != nil {
		return Profile{}, fmt.Errorf("service: failed to list sent messages for user %s: %w", userID, err)
	}

	activity, err := s.activity.ListActivityByUser(userID)
	if err != nil {
		return Profile{}, fmt.Errorf("service: failed to list activity for user %s: %w", userID, err)
	}

	return Profile{
		User:     user,
		Lots:     lots,
		Messages: ProfileMessages{Received: received, Sent: sent},
		Activity: activity,
	}, nil
}

// UpdateProfile merges the supplied fields into the user record. The
// returned record never carries the password hash.
func (s *ProfileService) UpdateProfile(userID string, update ProfileUpdate) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrValidation)
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}

	if update.Email != nil {
		user.Email = update.Email
	}
	if update.IsPremium != nil {
		user.IsPremium = *update.IsPremium
	}

	if err := s.users.UpdateUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to update user %s: %w", userID, err)
	}

	user.PasswordHash = ""
	return user, nil
}
