package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/npezzotti/go-microblog/internal/database"
)

const maxMessageLength = 255

type MessageService struct {
	log *log.Logger
	db  database.MicroblogRepository
}

func NewMessageService(logger *log.Logger, db database.MicroblogRepository) *MessageService {
	return &MessageService{
		log: logger,
		db:  db,
	}
}

// validateText checks emptiness on the trimmed text but length on the
// raw text, so padded input near the limit still rejects.
func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: message text is blank", ErrInvalidInput)
	}
	if len(text) > maxMessageLength {
		return fmt.Errorf("%w: message text exceeds %d characters", ErrInvalidInput, maxMessageLength)
	}
	return nil
}

// Submit validates and persists a new message. The posted_by account
// must exist at insert time; it is not re-verified afterward.
func (s *MessageService) Submit(postedBy int, text string, timePostedEpoch int64) (database.Message, error) {
	if err := validateText(text); err != nil {
		return database.Message{}, err
	}

	if _, err := s.db.GetAccountById(postedBy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Message{}, fmt.Errorf("%w: no account with id %d", ErrInvalidInput, postedBy)
		}
		return database.Message{}, fmt.Errorf("lookup account: %w", err)
	}

	msg, err := s.db.CreateMessage(database.CreateMessageParams{
		PostedBy:        postedBy,
		MessageText:     text,
		TimePostedEpoch: timePostedEpoch,
	})
	if err != nil {
		s.log.Println("create message:", err)
		return database.Message{}, fmt.Errorf("create message: %w", err)
	}

	return msg, nil
}

// ListAll returns every persisted message in the store's natural order.
func (s *MessageService) ListAll() ([]database.Message, error) {
	messages, err := s.db.GetAllMessages()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}

func (s *MessageService) GetById(messageId int) (database.Message, error) {
	msg, err := s.db.GetMessageById(messageId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Message{}, ErrNotFound
		}
		return database.Message{}, fmt.Errorf("lookup message: %w", err)
	}

	return msg, nil
}

// ListByAccount returns all messages posted by the given account,
// empty when it has none or does not exist.
func (s *MessageService) ListByAccount(accountId int) ([]database.Message, error) {
	messages, err := s.db.GetMessagesByAccountId(accountId)
	if err != nil {
		return nil, fmt.Errorf("list messages by account: %w", err)
	}

	return messages, nil
}

// DeleteById removes a message and returns its pre-deletion snapshot.
// Deleting a missing id is a no-op success returning a zero message.
func (s *MessageService) DeleteById(messageId int) (database.Message, error) {
	msg, err := s.db.GetMessageById(messageId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Message{}, nil
		}
		return database.Message{}, fmt.Errorf("lookup message: %w", err)
	}

	if err := s.db.DeleteMessage(messageId); err != nil {
		s.log.Println("delete message:", err)
		return database.Message{}, fmt.Errorf("delete message: %w", err)
	}

	return msg, nil
}

// UpdateById replaces a message's text. The id, posted_by and
// time_posted_epoch fields are immutable.
func (s *MessageService) UpdateById(messageId int, newText string) (database.Message, error) {
	msg, err := s.db.GetMessageById(messageId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Message{}, ErrNotFound
		}
		return database.Message{}, fmt.Errorf("lookup message: %w", err)
	}

	if err := validateText(newText); err != nil {
		return database.Message{}, err
	}

	if err := s.db.UpdateMessageText(messageId, newText); err != nil {
		s.log.Println("update message:", err)
		return database.Message{}, fmt.Errorf("update message: %w", err)
	}

	msg.MessageText = newText
	return msg, nil
}
