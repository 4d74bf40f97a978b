package database

type MicroblogRepository interface {
	Ping() error
	CreateAccount(params CreateAccountParams) (Account, error)
	GetAccountByUsername(username string) (Account, error)
	GetAccountByCredentials(username, password string) (Account, error)
	GetAccountById(accountId int) (Account, error)
	CreateMessage(params CreateMessageParams) (Message, error)
	GetAllMessages() ([]Message, error)
	GetMessageById(messageId int) (Message, error)
	GetMessagesByAccountId(accountId int) ([]Message, error)
	DeleteMessage(messageId int) error
	UpdateMessageText(messageId int, text string) error
}
