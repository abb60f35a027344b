package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"botschema/api/jsonschema"
	"botschema/internal/inspect/usecase"
	"botschema/internal/middleware"
	"botschema/pkg/response"
	"botschema/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// ── Helpers ────────────────────────────────────────────────────────────────

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	schemas, err := jsonschema.Load()
	if err != nil {
		t.Fatalf("load schemas: %v", err)
	}

	l := &mockLogger{}
	h := New(l, usecase.New(l, telegram.PolicyLenient, schemas))

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(l, middleware.Config{}))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int                    `json:"error_code"`
	Message   string                 `json:"message"`
	Data      json.RawMessage        `json:"data"`
	Errors    []response.ErrorDetail `json:"errors"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response: %v: %s", err, w.Body.String())
	}
	return env
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestDecodeHandler(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/v1/decode/user", `{"id": 42, "first_name": "Ann", "is_bot": false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	var data struct {
		Entity string          `json:"entity"`
		Policy string          `json:"policy"`
		Value  json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Entity != "User" || data.Policy != "lenient" {
		t.Errorf("unexpected entity/policy: %s/%s", data.Entity, data.Policy)
	}
	if string(data.Value) != `{"id":42,"first_name":"Ann"}` {
		t.Errorf("unexpected value: %s", data.Value)
	}
}

func TestDecodeHandlerErrors(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
		wantKind string
		wantFld  string
	}{
		{"unknown entity", "/api/v1/decode/Poll", `{}`, http.StatusNotFound, "", ""},
		{"malformed", "/api/v1/decode/User", `{"id":`, http.StatusBadRequest, "", ""},
		{"empty body", "/api/v1/decode/User", ``, http.StatusBadRequest, "", ""},
		{"bad policy", "/api/v1/decode/User?policy=loose", `{"id":1}`, http.StatusBadRequest, "", ""},
		{"missing id", "/api/v1/decode/User", `{"first_name":"Ann"}`, http.StatusUnprocessableEntity, "schema_violation", "id"},
		{"type mismatch", "/api/v1/decode/User", `{"id":"42"}`, http.StatusUnprocessableEntity, "type_mismatch", "id"},
		{"strict enum", "/api/v1/decode/Chat?policy=strict", `{"id":1,"type":"forum"}`, http.StatusUnprocessableEntity, "unknown_enum_value", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
			if tt.wantKind == "" {
				return
			}
			env := decodeEnvelope(t, w)
			if len(env.Errors) != 1 {
				t.Fatalf("expected 1 error detail, got %+v", env.Errors)
			}
			if env.Errors[0].Kind != tt.wantKind || env.Errors[0].Field != tt.wantFld {
				t.Errorf("unexpected detail: %+v", env.Errors[0])
			}
		})
	}
}

func TestEncodeHandler(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/v1/encode/sendMessage", `{"chat_id":5,"text":"hi","reply_markup":{"resize_keyboard":true}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var data encodeResp
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Method != "sendMessage" || len(data.Documents) != 1 {
		t.Fatalf("unexpected data: %+v", data)
	}
	if got := string(data.Documents[0]); got != `{"chat_id":5,"text":"hi","reply_markup":{"resize_keyboard":true}}` {
		t.Errorf("unexpected document: %s", got)
	}
}

func TestEncodeHandlerSplit(t *testing.T) {
	r := setupRouter(t)
	body := `{"chat_id":5,"text":"` + strings.Repeat("z", telegram.MaxMessageLength+1) + `"}`

	w := do(r, http.MethodPost, "/api/v1/encode/sendMessage", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 without split, got %d", w.Code)
	}

	w = do(r, http.MethodPost, "/api/v1/encode/sendMessage?split=true", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var data encodeResp
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(data.Documents) != 2 {
		t.Errorf("expected 2 documents, got %d", len(data.Documents))
	}

	w = do(r, http.MethodPost, "/api/v1/encode/sendMessage?split=maybe", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for split=maybe, got %d", w.Code)
	}
}

func TestEncodeHandlerErrors(t *testing.T) {
	r := setupRouter(t)

	if w := do(r, http.MethodPost, "/api/v1/encode/sendPhoto", `{}`); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	w := do(r, http.MethodPost, "/api/v1/encode/sendMessage", `{"chat_id":5}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if len(env.Errors) != 1 || env.Errors[0].Field != "text" {
		t.Errorf("unexpected errors: %+v", env.Errors)
	}

	if w := do(r, http.MethodPost, "/api/v1/encode/getFile?split=true", `{"file_id":"a"}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCatalogHandlers(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/v1/enums", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var enums enumsResp
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &enums); err != nil {
		t.Fatalf("unmarshal enums: %v", err)
	}
	if len(enums.Enums) != 4 {
		t.Errorf("expected 4 enums, got %d", len(enums.Enums))
	}

	w = do(r, http.MethodGet, "/api/v1/entities/chatmember", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var ent entityResp
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &ent); err != nil {
		t.Fatalf("unmarshal entity: %v", err)
	}
	if ent.Name != "ChatMember" || strings.Join(ent.Fields, ",") != "user,status" {
		t.Errorf("unexpected entity: %+v", ent)
	}

	if w := do(r, http.MethodGet, "/api/v1/entities/Poll", ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
