package database

import (
	"github.com/stretchr/testify/mock"
)

type MockMicroblogRepository struct {
	mock.Mock
}

func (m *MockMicroblogRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMicroblogRepository) CreateAccount(params CreateAccountParams) (Account, error) {
	args := m.Called(params)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockMicroblogRepository) GetAccountByUsername(username string) (Account, error) {
	args := m.Called(username)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockMicroblogRepository) GetAccountByCredentials(username, password string) (Account, error) {
	args := m.Called(username, password)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockMicroblogRepository) GetAccountById(accountId int) (Account, error) {
	args := m.Called(accountId)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockMicroblogRepository) CreateMessage(params CreateMessageParams) (Message, error) {
	args := m.Called(params)
	return args.Get(0).(Message), args.Error(1)
}

func (m *MockMicroblogRepository) GetAllMessages() ([]Message, error) {
	args := m.Called()
	return args.Get(0).([]Message), args.Error(1)
}

func (m *MockMicroblogRepository) GetMessageById(messageId int) (Message, error) {
	args := m.Called(messageId)
	return args.Get(0).(Message), args.Error(1)
}

func (m *MockMicroblogRepository) GetMessagesByAccountId(accountId int) ([]Message, error) {
	args := m.Called(accountId)
	return args.Get(0).([]Message), args.Error(1)
}

func (m *MockMicroblogRepository) DeleteMessage(messageId int) error {
	args := m.Called(messageId)
	return args.Error(0)
}

func (m *MockMicroblogRepository) UpdateMessageText(messageId int, text string) error {
	args := m.Called(messageId, text)
	return args.Error(0)
}
