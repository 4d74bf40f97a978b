package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/npezzotti/go-microblog/internal/database"
)

const minPasswordLength = 4

type AccountService struct {
	log *log.Logger
	db  database.MicroblogRepository
}

func NewAccountService(logger *log.Logger, db database.MicroblogRepository) *AccountService {
	return &AccountService{
		log: logger,
		db:  db,
	}
}

// Register validates and persists a new account. Checks run in a fixed
// order: blank username, short password, duplicate username. The unique
// constraint on accounts.username is the backstop for concurrent
// registrations racing past the duplicate check.
func (s *AccountService) Register(username, password string) (database.Account, error) {
	if strings.TrimSpace(username) == "" {
		return database.Account{}, fmt.Errorf("%w: username is blank", ErrInvalidInput)
	}

	if len(password) < minPasswordLength {
		return database.Account{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	_, err := s.db.GetAccountByUsername(username)
	if err == nil {
		return database.Account{}, fmt.Errorf("%w: username already taken", ErrInvalidInput)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return database.Account{}, fmt.Errorf("lookup account: %w", err)
	}

	account, err := s.db.CreateAccount(database.CreateAccountParams{
		Username: username,
		Password: password,
	})
	if err != nil {
		s.log.Println("create account:", err)
		return database.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// Login returns the stored account on an exact username and password
// match.
func (s *AccountService) Login(username, password string) (database.Account, error) {
	account, err := s.db.GetAccountByCredentials(username, password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Account{}, ErrInvalidCredentials
		}
		return database.Account{}, fmt.Errorf("lookup credentials: %w", err)
	}

	return account, nil
}
