package apicontrollers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"githubchat/internal/domain/entities"
	"githubchat/internal/domain/services"
	"githubchat/internal/impl/integrations"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, toolkitHandler http.HandlerFunc) (*echo.Echo, func()) {
	t.Helper()
	toolkit := httptest.NewServer(toolkitHandler)

	logger := zap.NewNop()
	client := integrations.NewToolkitClient(toolkit.URL, logger)
	chatService := services.NewChatService(client, logger)

	e := echo.New()
	NewChatController(logger, chatService).RegisterRoutes(e)

	return e, toolkit.Close
}

func TestChat_StreamsFinalAnswer(t *testing.T) {
	e, closeToolkit := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/github-toolkit", r.URL.Path)
		w.Write([]byte(`{"response":"hello"}`))
	})
	defer closeToolkit()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"user_input":"greet me"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	assert.Equal(t, "hello", rec.Body.String())
}

func TestChat_IntermediateSteps(t *testing.T) {
	e, closeToolkit := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"input":"greet me","output":"hi"}}`))
	})
	defer closeToolkit()

	body := `{"user_input":"greet me","show_intermediate_steps":true}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp entities.ChatResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Messages, 1)
	assert.Equal(t, "assistant", resp.Messages[0].Role)
	assert.Equal(t, "hi", resp.Messages[0].Content)
}

func TestChat_UpstreamFailure(t *testing.T) {
	e, closeToolkit := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	defer closeToolkit()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"user_input":"anything"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestChat_MissingUserInput(t *testing.T) {
	e, closeToolkit := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("toolkit should not be called")
	})
	defer closeToolkit()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_InvalidBody(t *testing.T) {
	e, closeToolkit := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("toolkit should not be called")
	})
	defer closeToolkit()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_StreamsAssistantLine(t *testing.T) {
	e, closeToolkit := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "summarize my week", r.URL.Query().Get("user_input"))
		w.Write([]byte(`{"response":{"input":"summarize my week","output":"2 PRs reviewed"}}`))
	})
	defer closeToolkit()

	body := `{"messages":[{"role":"user","content":"summarize my week"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat/github-cli/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/event-stream")
	assert.True(t, strings.HasSuffix(rec.Body.String(), "\n"))

	var resp entities.ChatResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Messages, 1)
	assert.Equal(t, "assistant", resp.Messages[0].Role)
	assert.Equal(t, "2 PRs reviewed", resp.Messages[0].Content)
}

func TestAnalyze_ToolkitFailureStreamedAsAssistantError(t *testing.T) {
	e, closeToolkit := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer closeToolkit()

	body := `{"messages":[{"role":"user","content":"anything"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat/github-cli/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp entities.ChatResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0].Content, "An error occurred")
}

func TestAnalyze_NoMessages(t *testing.T) {
	e, closeToolkit := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("toolkit should not be called")
	})
	defer closeToolkit()

	req := httptest.NewRequest(http.MethodPost, "/api/chat/github-cli/analyze", strings.NewReader(`{"messages":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
