// Package types defines the JSON shapes exchanged with API clients.
// Field names match the original service's wire format.
package types

type Account struct {
	Id       int    `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Message struct {
	Id              int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}
