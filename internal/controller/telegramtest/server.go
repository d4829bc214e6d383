// Package telegramtest поднимает фейковый Bot API для тестов обработчиков
package telegramtest

import (
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	resultTrue    = `{"ok":true,"result":true}`
	resultMessage = `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}}`
)

// Request один вызов метода Bot API
type Request struct {
	Method string
	Fields map[string]string
	Files  map[string]string // имя поля -> имя файла
}

// Server записывает все вызовы Bot API
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	requests []Request
}

// NewServer запускает сервер, который закрывается по окончании теста
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	req := Request{
		Method: path.Base(r.URL.Path),
		Fields: map[string]string{},
		Files:  map[string]string{},
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err == nil {
			for name, values := range r.MultipartForm.Value {
				if len(values) > 0 {
					req.Fields[name] = values[0]
				}
			}
			for name, files := range r.MultipartForm.File {
				if len(files) > 0 {
					req.Files[name] = files[0].Filename
				}
			}
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch req.Method {
	case "answerCallbackQuery", "setMyCommands", "setWebhook", "deleteWebhook":
		w.Write([]byte(resultTrue))
	default:
		w.Write([]byte(resultMessage))
	}
}

// URL адрес сервера
func (s *Server) URL() string {
	return s.srv.URL
}

// Bot создаёт клиента, который ходит в этот сервер
func (s *Server) Bot(t *testing.T, opts ...bot.Option) *bot.Bot {
	t.Helper()

	opts = append([]bot.Option{bot.WithSkipGetMe(), bot.WithServerURL(s.srv.URL)}, opts...)
	b, err := bot.New("123456:test-token", opts...)
	if err != nil {
		t.Fatalf("create bot: %v", err)
	}
	return b
}

// Requests все записанные вызовы
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Calls вызовы конкретного метода
func (s *Server) Calls(method string) []Request {
	var calls []Request
	for _, req := range s.Requests() {
		if req.Method == method {
			calls = append(calls, req)
		}
	}
	return calls
}

// MessageUpdate апдейт с текстовым сообщением от пользователя userID
func MessageUpdate(userID int64, text string) *models.Update {
	return &models.Update{
		ID: 1,
		Message: &models.Message{
			ID:   10,
			From: &models.User{ID: userID, FirstName: "Test"},
			Chat: models.Chat{ID: userID, Type: "private"},
			Text: text,
		},
	}
}

// CallbackUpdate апдейт с нажатием на кнопку под сообщением в чате userID
func CallbackUpdate(userID int64, data string) *models.Update {
	return &models.Update{
		ID: 2,
		CallbackQuery: &models.CallbackQuery{
			ID:   "cb-1",
			From: models.User{ID: userID, FirstName: "Test"},
			Message: models.MaybeInaccessibleMessage{
				Message: &models.Message{
					ID:   20,
					Chat: models.Chat{ID: userID, Type: "private"},
				},
			},
			Data: data,
		},
	}
}
