// Package handler serves the Pub/Sub push endpoint of the shopping list worker.
package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"dietplan/config"
	deliverycontext "dietplan/internal/delivery/context"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/service"
	"dietplan/internal/usecase"
	"dietplan/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body Pub/Sub posts to push endpoints.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenVerifier checks the OIDC token Google attaches to push requests
type tokenVerifier func(req *http.Request) error

// PushHandler exports the shopping list of every announced weekly diet
type PushHandler struct {
	verify   tokenVerifier
	logger   *slog.Logger
	exportUC usecase.ShoppingListExportUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	ExportUC usecase.ShoppingListExportUsecase
}

// NewPushHandler creates the push handler. Tokens are verified for the google
// provider outside local runs.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:   params.Logger,
		exportUC: params.ExportUC,
	}

	ps := params.Config.PubSub
	if ps != nil && ps.Provider == config.PubSubProviderGoogle && params.Config.Env.Env != config.EnvLocal {
		h.verify = newTokenVerifier(ps.PushAudience, ps.PushServiceAccount)
	}

	return h
}

// HandlePush answers 200 to ack and 503 to have Pub/Sub redeliver. Events that can never
// succeed (bad ids, a plan replaced since) are acked.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("[Worker] Malformed push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := deliverycontext.WithScope(c.Request().Context(), requestIDOf(c, msg, event), h.logger)
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("weekly_diet_id", event.WeeklyDietID),
		slog.String("user_id", event.UserID),
		slog.String("week_start", event.WeekStart),
	)

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		logger.Warn("[Worker] Dropping event with invalid user id", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
	weekStart, err := util.ParseDate(event.WeekStart)
	if err != nil {
		logger.Warn("[Worker] Dropping event with invalid week start", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	result, err := h.exportUC.ExportShoppingList(ctx, userID, weekStart)
	switch {
	case err == nil:
		logger.Info("[Worker] Shopping list exported",
			slog.String("list_key", result.ListKey),
			slog.String("qr_key", result.QRKey),
		)

		return c.NoContent(http.StatusOK)
	case errors.Is(err, domainerrors.ErrWeeklyDietNotFound):
		logger.Warn("[Worker] Weekly diet gone, dropping event", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	default:
		logger.Error("[Worker] Shopping list export failed, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}
}

func decodePush(c echo.Context) (*PubSubMessage, *service.WeeklyDietGeneratedEvent, error) {
	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		return nil, nil, errors.Wrap(err, "failed to bind push body")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.WeeklyDietGeneratedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse weekly diet event")
	}

	return &msg, &event, nil
}

// requestIDOf keeps the trace of the API request that stored the plan: message
// attributes first, then the event, then the push request itself.
func requestIDOf(c echo.Context, msg *PubSubMessage, event *service.WeeklyDietGeneratedEvent) string {
	if id := msg.Message.Attributes["request_id"]; id != "" {
		return id
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if id := deliverycontext.RequestIDFrom(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

// newTokenVerifier validates the bearer token of Google push requests.
// See https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions.
func newTokenVerifier(audience, serviceAccount string) tokenVerifier {
	return func(req *http.Request) error {
		token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !ok || token == "" {
			return errors.New("missing bearer token")
		}

		aud := audience
		if aud == "" {
			scheme := "https"
			if req.TLS == nil {
				scheme = "http"
			}
			aud = scheme + "://" + req.Host + req.URL.Path
		}

		payload, err := idtoken.Validate(req.Context(), token, aud)
		if err != nil {
			return errors.Wrap(err, "failed to validate token")
		}
		if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
			return errors.Errorf("unexpected issuer %s", payload.Issuer)
		}
		if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
			return errors.New("token email not verified")
		}
		if serviceAccount != "" && payload.Claims["email"] != serviceAccount {
			return errors.Errorf("unexpected push service account %v", payload.Claims["email"])
		}

		return nil
	}
}
