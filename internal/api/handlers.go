package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/npezzotti/go-microblog/internal/service"
	"github.com/npezzotti/go-microblog/internal/stats"
	"github.com/npezzotti/go-microblog/internal/types"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SubmitMessageRequest struct {
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

type UpdateMessageRequest struct {
	MessageText string `json:"message_text"`
}

func (s *MicroblogApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

func (s *MicroblogApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.log.Println("health check:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *MicroblogApp) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	account, err := s.accounts.Register(req.Username, req.Password)
	if err != nil {
		// rejected registrations and store failures are not
		// distinguished on the wire
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.stats.Incr(stats.AccountsCreated)
	s.writeJson(w, http.StatusOK, types.Account{
		Id:       account.Id,
		Username: account.Username,
		Password: account.Password,
	})
}

func (s *MicroblogApp) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	account, err := s.accounts.Login(req.Username, req.Password)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, service.ErrInvalidCredentials) {
			errResp = NewUnauthorizedError()
		} else {
			s.log.Println("login:", err)
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, types.Account{
		Id:       account.Id,
		Username: account.Username,
		Password: account.Password,
	})
}

func (s *MicroblogApp) submitMessage(w http.ResponseWriter, r *http.Request) {
	var req SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msg, err := s.messages.Submit(req.PostedBy, req.MessageText, req.TimePostedEpoch)
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.stats.Incr(stats.MessagesCreated)
	s.writeJson(w, http.StatusOK, types.Message{
		Id:              msg.Id,
		PostedBy:        msg.PostedBy,
		MessageText:     msg.MessageText,
		TimePostedEpoch: msg.TimePostedEpoch,
	})
}

func (s *MicroblogApp) listMessages(w http.ResponseWriter, _ *http.Request) {
	msgs, err := s.messages.ListAll()
	if err != nil {
		s.log.Println("list messages:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messages := make([]types.Message, 0, len(msgs))
	for _, msg := range msgs {
		messages = append(messages, types.Message{
			Id:              msg.Id,
			PostedBy:        msg.PostedBy,
			MessageText:     msg.MessageText,
			TimePostedEpoch: msg.TimePostedEpoch,
		})
	}

	s.writeJson(w, http.StatusOK, messages)
}

func (s *MicroblogApp) getMessage(w http.ResponseWriter, r *http.Request) {
	messageId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msg, err := s.messages.GetById(messageId)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			// a missing message is a successful empty response
			s.writeJson(w, http.StatusOK, nil)
			return
		}
		s.log.Println("get message:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, types.Message{
		Id:              msg.Id,
		PostedBy:        msg.PostedBy,
		MessageText:     msg.MessageText,
		TimePostedEpoch: msg.TimePostedEpoch,
	})
}

func (s *MicroblogApp) deleteMessage(w http.ResponseWriter, r *http.Request) {
	messageId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msg, err := s.messages.DeleteById(messageId)
	if err != nil {
		s.log.Println("delete message:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if msg.Id == 0 {
		// already absent, idempotent success with an empty body
		s.writeJson(w, http.StatusOK, nil)
		return
	}

	s.stats.Incr(stats.MessagesDeleted)
	s.writeJson(w, http.StatusOK, types.Message{
		Id:              msg.Id,
		PostedBy:        msg.PostedBy,
		MessageText:     msg.MessageText,
		TimePostedEpoch: msg.TimePostedEpoch,
	})
}

func (s *MicroblogApp) updateMessage(w http.ResponseWriter, r *http.Request) {
	messageId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msg, err := s.messages.UpdateById(messageId, req.MessageText)
	if err != nil {
		// missing id, invalid text and store failures all reject
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, types.Message{
		Id:              msg.Id,
		PostedBy:        msg.PostedBy,
		MessageText:     msg.MessageText,
		TimePostedEpoch: msg.TimePostedEpoch,
	})
}

func (s *MicroblogApp) listAccountMessages(w http.ResponseWriter, r *http.Request) {
	accountId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msgs, err := s.messages.ListByAccount(accountId)
	if err != nil {
		s.log.Println("list account messages:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messages := make([]types.Message, 0, len(msgs))
	for _, msg := range msgs {
		messages = append(messages, types.Message{
			Id:              msg.Id,
			PostedBy:        msg.PostedBy,
			MessageText:     msg.MessageText,
			TimePostedEpoch: msg.TimePostedEpoch,
		})
	}

	s.writeJson(w, http.StatusOK, messages)
}
