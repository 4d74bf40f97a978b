package database

func (db *PgMicroblogRepository) CreateAccount(params CreateAccountParams) (Account, error) {
	res := db.conn.QueryRow(
		"INSERT INTO accounts (username, password) "+
			"VALUES ($1, $2) RETURNING id, username, password",
		params.Username,
		params.Password,
	)

	var a Account
	err := res.Scan(
		&a.Id,
		&a.Username,
		&a.Password,
	)

	return a, err
}

func (db *PgMicroblogRepository) GetAccountByUsername(username string) (Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password FROM accounts "+
			"WHERE username = $1 LIMIT 1",
		username,
	)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.Username,
		&a.Password,
	)

	return a, err
}

func (db *PgMicroblogRepository) GetAccountByCredentials(username, password string) (Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password FROM accounts "+
			"WHERE username = $1 AND password = $2 LIMIT 1",
		username,
		password,
	)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.Username,
		&a.Password,
	)

	return a, err
}

func (db *PgMicroblogRepository) GetAccountById(accountId int) (Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password FROM accounts "+
			"WHERE id = $1 LIMIT 1",
		accountId,
	)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.Username,
		&a.Password,
	)

	return a, err
}

func (db *PgMicroblogRepository) CreateMessage(params CreateMessageParams) (Message, error) {
	res := db.conn.QueryRow(
		"INSERT INTO messages (posted_by, message_text, time_posted_epoch) "+
			"VALUES ($1, $2, $3) RETURNING id, posted_by, message_text, time_posted_epoch",
		params.PostedBy,
		params.MessageText,
		params.TimePostedEpoch,
	)

	var m Message
	err := res.Scan(
		&m.Id,
		&m.PostedBy,
		&m.MessageText,
		&m.TimePostedEpoch,
	)

	return m, err
}

func (db *PgMicroblogRepository) GetAllMessages() ([]Message, error) {
	rows, err := db.conn.Query(
		"SELECT id, posted_by, message_text, time_posted_epoch FROM messages",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages = make([]Message, 0)
	for rows.Next() {
		var m Message
		if err = rows.Scan(&m.Id, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch); err != nil {
			break
		}

		messages = append(messages, m)
	}

	return messages, err
}

func (db *PgMicroblogRepository) GetMessageById(messageId int) (Message, error) {
	row := db.conn.QueryRow(
		"SELECT id, posted_by, message_text, time_posted_epoch FROM messages "+
			"WHERE id = $1 LIMIT 1",
		messageId,
	)

	var m Message
	err := row.Scan(
		&m.Id,
		&m.PostedBy,
		&m.MessageText,
		&m.TimePostedEpoch,
	)

	return m, err
}

func (db *PgMicroblogRepository) GetMessagesByAccountId(accountId int) ([]Message, error) {
	rows, err := db.conn.Query(
		"SELECT id, posted_by, message_text, time_posted_epoch FROM messages "+
			"WHERE posted_by = $1",
		accountId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages = make([]Message, 0)
	for rows.Next() {
		var m Message
		if err = rows.Scan(&m.Id, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch); err != nil {
			break
		}

		messages = append(messages, m)
	}

	return messages, err
}

func (db *PgMicroblogRepository) DeleteMessage(messageId int) error {
	_, err := db.conn.Exec(
		"DELETE FROM messages WHERE id = $1",
		messageId,
	)

	return err
}

func (db *PgMicroblogRepository) UpdateMessageText(messageId int, text string) error {
	_, err := db.conn.Exec(
		"UPDATE messages SET message_text = $2 WHERE id = $1",
		messageId,
		text,
	)

	return err
}
