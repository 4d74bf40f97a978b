package database

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) (*PgMicroblogRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	return &PgMicroblogRepository{conn: db}, mock
}

func TestCreateAccount(t *testing.T) {
	repo, mock := setupTestDB(t)

	params := CreateAccountParams{
		Username: "alice",
		Password: "pass1",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs(params.Username, params.Password).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(1, params.Username, params.Password))

	account, err := repo.CreateAccount(params)
	assert.NoError(t, err, "expected no error creating account")
	assert.Equal(t, Account{Id: 1, Username: "alice", Password: "pass1"}, account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_duplicateUsername(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs("alice", "pass1").
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "accounts_username_key"`))

	_, err := repo.CreateAccount(CreateAccountParams{Username: "alice", Password: "pass1"})
	assert.Error(t, err, "expected unique constraint violation to surface")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByUsername(t *testing.T) {
	repo, mock := setupTestDB(t)

	tcases := []struct {
		name        string
		username    string
		rows        *sqlmock.Rows
		expected    Account
		expectedErr error
	}{
		{
			name:     "account exists",
			username: "alice",
			rows: sqlmock.NewRows([]string{"id", "username", "password"}).
				AddRow(1, "alice", "pass1"),
			expected: Account{Id: 1, Username: "alice", Password: "pass1"},
		},
		{
			name:        "account missing",
			username:    "bob",
			rows:        sqlmock.NewRows([]string{"id", "username", "password"}),
			expectedErr: sql.ErrNoRows,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password FROM accounts WHERE username = $1")).
				WithArgs(tc.username).
				WillReturnRows(tc.rows)

			account, err := repo.GetAccountByUsername(tc.username)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, account)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByCredentials(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password FROM accounts WHERE username = $1 AND password = $2")).
		WithArgs("alice", "wrong").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}))

	_, err := repo.GetAccountByCredentials("alice", "wrong")
	assert.ErrorIs(t, err, sql.ErrNoRows, "expected no rows for mismatched credentials")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMessage(t *testing.T) {
	repo, mock := setupTestDB(t)

	params := CreateMessageParams{
		PostedBy:        1,
		MessageText:     "hello",
		TimePostedEpoch: 1000,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO messages")).
		WithArgs(params.PostedBy, params.MessageText, params.TimePostedEpoch).
		WillReturnRows(sqlmock.NewRows([]string{"id", "posted_by", "message_text", "time_posted_epoch"}).
			AddRow(1, 1, "hello", 1000))

	msg, err := repo.CreateMessage(params)
	assert.NoError(t, err)
	assert.Equal(t, Message{Id: 1, PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1000}, msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllMessages(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, posted_by, message_text, time_posted_epoch FROM messages")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "posted_by", "message_text", "time_posted_epoch"}).
			AddRow(1, 1, "hello", 1000).
			AddRow(2, 1, "again", 2000))

	messages, err := repo.GetAllMessages()
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "again", messages[1].MessageText)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllMessages_empty(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, posted_by, message_text, time_posted_epoch FROM messages")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "posted_by", "message_text", "time_posted_epoch"}))

	messages, err := repo.GetAllMessages()
	assert.NoError(t, err)
	assert.NotNil(t, messages, "expected empty slice, not nil")
	assert.Empty(t, messages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMessagesByAccountId(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE posted_by = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "posted_by", "message_text", "time_posted_epoch"}).
			AddRow(1, 1, "hello", 1000))

	messages, err := repo.GetMessagesByAccountId(1)
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, 1, messages[0].PostedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMessage(t *testing.T) {
	repo, mock := setupTestDB(t)

	// deleting a missing row is still a successful exec
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM messages WHERE id = $1")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteMessage(42)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMessageText(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE messages SET message_text = $2 WHERE id = $1")).
		WithArgs(1, "updated").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateMessageText(1, "updated")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
