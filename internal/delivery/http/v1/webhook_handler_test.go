package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-autoresponder-backend/config"
	v1 "go-autoresponder-backend/internal/delivery/http/v1"
	"go-autoresponder-backend/internal/domain"
	"go-autoresponder-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Send(ctx context.Context, msg domain.EmailMessage) (domain.DeliveryResult, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(domain.DeliveryResult), args.Error(1)
}

func newTestRouter(dispatcher domain.EmailDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)

	uc := usecase.NewAutoResponderUsecase(dispatcher, domain.Party{
		Address: "contact@cjinashville.org",
		Name:    "Choosing Justice Initiative",
	})

	return v1.NewRouter(v1.RouterDeps{
		AutoResponderUC: uc,
		Config:          &config.Config{Port: "3000"},
	})
}

func postWebhook(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/form-webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookSuccess(t *testing.T) {
	mockDispatcher := new(MockDispatcher)
	router := newTestRouter(mockDispatcher)

	var sent domain.EmailMessage
	mockDispatcher.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(domain.EmailMessage)
		}).
		Return(domain.DeliveryResult{MessageID: "msg-789"}, nil)

	w := postWebhook(router, `{"email":"a@b.com","firstName":"Jane","lastName":"Doe","subject":"Help","message":"Hi\nthere"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Auto-response sent successfully", body["message"])
	assert.Equal(t, "a@b.com", body["emailSentTo"])

	assert.Equal(t, "a@b.com", sent.Recipient.Address)
	assert.Equal(t, "Jane Doe", sent.Recipient.Name)
	assert.Contains(t, sent.HTMLBody, "Hi<br>there")
}

func TestWebhookMissingEmail(t *testing.T) {
	bodies := map[string]string{
		"empty object":     `{}`,
		"empty email":      `{"email":""}`,
		"whitespace email": `{"email":"   "}`,
		"numeric email":    `{"email":123}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			mockDispatcher := new(MockDispatcher)
			router := newTestRouter(mockDispatcher)

			w := postWebhook(router, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Email is required"}`, w.Body.String())

			mockDispatcher.AssertNotCalled(t, "Send")
		})
	}
}

func TestWebhookMalformedJSON(t *testing.T) {
	mockDispatcher := new(MockDispatcher)
	router := newTestRouter(mockDispatcher)

	w := postWebhook(router, `{"email":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON payload"}`, w.Body.String())

	mockDispatcher.AssertNotCalled(t, "Send")
}

func TestWebhookDeliveryFailure(t *testing.T) {
	mockDispatcher := new(MockDispatcher)
	router := newTestRouter(mockDispatcher)

	mockDispatcher.On("Send", mock.Anything, mock.Anything).
		Return(domain.DeliveryResult{}, assert.AnError)

	w := postWebhook(router, `{"email":"x@y.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to send auto-response", body["error"])
	assert.Contains(t, body["details"], assert.AnError.Error())

	mockDispatcher.AssertNumberOfCalls(t, "Send", 1)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(new(MockDispatcher))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Server is running!", w.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(new(MockDispatcher))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
