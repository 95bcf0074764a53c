package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dietplan/config"
	deliverycontext "dietplan/internal/delivery/context"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/service"
	mockUsecase "dietplan/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockShoppingListExportUsecase) {
	t.Helper()

	exportUC := mockUsecase.NewMockShoppingListExportUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:   &config.Config{},
		Logger:   newDiscardLogger(),
		ExportUC: exportUC,
	})

	return h, exportUC
}

func createTestPushBody(t *testing.T, event *service.WeeklyDietGeneratedEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Message.Attributes = attrs
	msg.Subscription = "projects/local/subscriptions/weekly-diet-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	userID := uuid.New()
	weekStart := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setup      func(exportUC *mockUsecase.MockShoppingListExportUsecase)
		wantStatus int
	}{
		{
			name: "exported",
			setup: func(exportUC *mockUsecase.MockShoppingListExportUsecase) {
				exportUC.EXPECT().
					ExportShoppingList(mock.Anything, userID, weekStart).
					RunAndReturn(func(ctx context.Context, _ uuid.UUID, _ time.Time) (*service.ShoppingListExportResult, error) {
						assert.Equal(t, "req-from-attrs", deliverycontext.RequestIDFrom(ctx))

						return &service.ShoppingListExportResult{ListKey: "k.json", QRKey: "k.png"}, nil
					}).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "plan gone is acked",
			setup: func(exportUC *mockUsecase.MockShoppingListExportUsecase) {
				exportUC.EXPECT().
					ExportShoppingList(mock.Anything, userID, weekStart).
					Return(nil, errors.Wrap(domainerrors.ErrWeeklyDietNotFound, "weekly diet not found")).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "bucket failure is retried",
			setup: func(exportUC *mockUsecase.MockShoppingListExportUsecase) {
				exportUC.EXPECT().
					ExportShoppingList(mock.Anything, userID, weekStart).
					Return(nil, errors.Wrap(domainerrors.ErrShoppingListExportFailed, "bucket gone")).
					Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, exportUC := createTestPushHandler(t)
			tt.setup(exportUC)

			body := createTestPushBody(t, &service.WeeklyDietGeneratedEvent{
				RequestID:    "req-from-event",
				WeeklyDietID: uuid.NewString(),
				UserID:       userID.String(),
				WeekStart:    "2026-10-12",
				DishCount:    12,
			}, map[string]string{"request_id": "req-from-attrs"})

			rec := servePush(h, body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_BadMessages(t *testing.T) {
	tests := []struct {
		name       string
		body       func(t *testing.T) string
		wantStatus int
	}{
		{
			name:       "not json",
			body:       func(*testing.T) string { return `{"message":` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data not base64",
			body:       func(*testing.T) string { return `{"message": {"data": "%%%"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data not an event",
			body: func(*testing.T) string {
				return `{"message": {"data": "` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid user id is acked",
			body: func(t *testing.T) string {
				return createTestPushBody(t, &service.WeeklyDietGeneratedEvent{UserID: "nope", WeekStart: "2026-10-12"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid week start is acked",
			body: func(t *testing.T) string {
				return createTestPushBody(t, &service.WeeklyDietGeneratedEvent{UserID: uuid.NewString(), WeekStart: "soon"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestPushHandler(t)

			rec := servePush(h, tt.body(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_Unauthorized(t *testing.T) {
	h, _ := createTestPushHandler(t)
	h.verify = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := servePush(h, `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideLocal(t *testing.T) {
	newCfg := func(env, provider string) *config.Config {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
		cfg.Env.Env = env

		return cfg
	}

	tests := []struct {
		name       string
		cfg        *config.Config
		wantVerify bool
	}{
		{name: "google in production", cfg: newCfg("production", config.PubSubProviderGoogle), wantVerify: true},
		{name: "google locally", cfg: newCfg(config.EnvLocal, config.PubSubProviderGoogle)},
		{name: "local provider", cfg: newCfg("production", config.PubSubProviderLocal)},
		{name: "no pubsub config", cfg: &config.Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPushHandler(PushHandlerParams{Config: tt.cfg, Logger: newDiscardLogger()})

			assert.Equal(t, tt.wantVerify, h.verify != nil)
		})
	}
}

func TestTokenVerifier_RejectsMissingBearer(t *testing.T) {
	verify := newTokenVerifier("https://worker.example.com/push", "")

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.ErrorContains(t, verify(req), "missing bearer token")

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	assert.ErrorContains(t, verify(req), "missing bearer token")
}
