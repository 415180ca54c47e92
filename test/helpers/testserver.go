package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"lexhub_backend/database"
	"lexhub_backend/internal/ai"
	"lexhub_backend/internal/app"
	"lexhub_backend/internal/config"
	"lexhub_backend/internal/middleware"

	"gorm.io/gorm"
)

const SessionSecret = "integration-session-secret"

type TestServer struct {
	Server    *httptest.Server
	DB        *gorm.DB
	Completer *ScriptedCompleter
}

// ScriptedCompleter отвечает заранее заданным текстом и запоминает запросы
type ScriptedCompleter struct {
	mu       sync.Mutex
	Reply    string
	Requests []ai.CompletionRequest
}

func (s *ScriptedCompleter) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requests = append(s.Requests, req)
	return s.Reply, nil
}

// NewTestServer поднимает роутер на живой БД из TEST_DATABASE_URL.
// Без переменной тест пропускается.
func NewTestServer(t *testing.T) *TestServer {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set, skipping integration test")
	}

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.DSN = dsn
	cfg.Auth.SessionSecret = SessionSecret
	cfg.Auth.CookieName = "session-token"
	cfg.AI.TimeoutSeconds = 5
	cfg.RateLimit.Requests = 1000
	cfg.RateLimit.WindowSeconds = 60
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	db, err := database.Connect(dsn, false)
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}
	if err := app.Seed(db, cfg); err != nil {
		t.Fatalf("Не удалось заполнить справочники: %v", err)
	}

	completer := &ScriptedCompleter{Reply: "This is general legal information."}
	router := app.SetupRouter(cfg, app.Deps{
		DB:          db,
		Completer:   completer,
		RateLimiter: middleware.NewMemoryRateLimiter(cfg.RateLimit.Requests, time.Minute),
	})

	log.Println("Test server started")
	return &TestServer{
		Server:    httptest.NewServer(router),
		DB:        db,
		Completer: completer,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// ClearTables очищает все таблицы, кроме справочника категорий
func (ts *TestServer) ClearTables(t *testing.T) {
	err := ts.DB.Exec("TRUNCATE TABLE reviews, consultations, documents, lawyer_languages, lawyer_categories, lawyer_profiles, client_profiles, users RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("Не удалось очистить таблицы: %v", err)
	}
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return res, string(resBodyBytes)
}
