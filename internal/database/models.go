package database

type Account struct {
	Id       int
	Username string
	Password string
}

type Message struct {
	Id              int
	PostedBy        int
	MessageText     string
	TimePostedEpoch int64
}

type CreateAccountParams struct {
	Username string
	Password string
}

type CreateMessageParams struct {
	PostedBy        int
	MessageText     string
	TimePostedEpoch int64
}
