package messaging

import (
	"errors"
	"fmt"
	"time"

	"lot-market/internal/marketerrors"
	"lot-market/internal/models"
	"lot-market/internal/repository"
	"lot-market/utils"
)

// MessagingService implements the directed message log.
type MessagingService struct {
	messages repository.MessageDB
	users    repository.UserDB
}

// NewMessagingService creates a new MessagingService instance
func NewMessagingService(messages repository.MessageDB, users repository.UserDB) *MessagingService {
	return &MessagingService{
		messages: messages,
		users:    users,
	}
}

// ListMessages returns messages newest first, filtered by recipient and/or
// sender. Empty filters return all messages.
func (s *MessagingService) ListMessages(toUserID, fromUserID string) ([]models.Message, error) {
	msgs, err := s.messages.ListMessages(toUserID, fromUserID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list messages: %w", err)
	}
	return msgs, nil
}

// SendMessage persists a new unread message after resolving both users.
func (s *MessagingService) SendMessage(fromUserID, toUserID, text string, lotID *string) (models.Message, error) {
	if text == "" {
		return models.Message{}, fmt.Errorf("service: %w - empty message text", marketerrors.ErrValidation)
	}
	if fromUserID == "" || toUserID == "" {
		return models.Message{}, fmt.Errorf("service: %w - missing sender or recipient", marketerrors.ErrValidation)
	}

	for _, id := range []string{fromUserID, toUserID} {
		if _, err := s.users.GetUserByID(id); err != nil {
			if errors.Is(err, marketerrors.ErrUserNotFound) {
				return models.Message{}, fmt.Errorf("service: %w - user %s not found", marketerrors.ErrValidation, id)
			}
			return models.Message{}, fmt.Errorf("service: failed to resolve user %s: %w", id, err)
		}
	}

	msg := models.Message{
		MessageID:  utils.GenerateID(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Text:       text,
		LotID:      lotID,
		Read:       false,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.messages.CreateMessage(msg); err != nil {
		return models.Message{}, fmt.Errorf("service: failed to send message from %s to %s: %w", fromUserID, toUserID, err)
	}
	return msg, nil
}

// MarkRead flips the read flag on a message.
func (s *MessagingService) MarkRead(messageID string) error {
	if messageID == "" {
		return fmt.Errorf("service: %w - empty message ID", marketerrors.ErrValidation)
	}
	if err := s.messages.MarkRead(messageID); err != nil {
		return fmt.Errorf("service: failed to mark message %s read: %w", messageID, err)
	}
	return nil
}
