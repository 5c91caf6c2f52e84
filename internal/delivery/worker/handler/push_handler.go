package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tankwatch/config"
	deliverycontext "tankwatch/internal/delivery/context"
	"tankwatch/internal/domain/constants"
	"tankwatch/internal/domain/service"
	"tankwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// errMalformedEvent marks events that can never be processed
var errMalformedEvent = errors.New("malformed change event")

// tokenValidator validates Google-signed OIDC tokens
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying tank change events
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	notifierUC     usecase.NotifierUsecase
	aggregatorUC   usecase.AggregatorUsecase
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	NotifierUC   usecase.NotifierUsecase
	AggregatorUC usecase.AggregatorUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google-delivered pushes carry an OIDC token, and never in development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		notifierUC:     params.NotifierUC,
		aggregatorUC:   params.AggregatorUC,
		now:            time.Now,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Pub/Sub redelivers anything but 2xx, so undecodable messages are acknowledged and dropped
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	var event service.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse change event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing change event",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("uid", event.UID),
	)

	// Events are never redelivered: a failed run is logged and the next change or day starts fresh
	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process change event",
			slog.String("event_id", event.EventID),
			slog.Bool("malformed", errors.Is(err, errMalformedEvent)),
			slog.Any("error", err),
		)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ChangeEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent routes a change event to its use case
func (h *PushHandler) processEvent(ctx context.Context, event *service.ChangeEvent) error {
	switch event.Type {
	case constants.EventWaterLevel:
		if event.UID == "" || event.LevelBefore == nil || event.LevelAfter == nil {
			return errors.Wrap(errMalformedEvent, "water_level needs uid, level_before and level_after")
		}

		if err := h.notifierUC.HandleLevelChange(ctx, event.UID, *event.LevelBefore, *event.LevelAfter); err != nil {
			return errors.Wrap(err, "handle level change")
		}

	case constants.EventPumpStatus:
		if event.UID == "" || event.PumpBefore == nil || event.PumpAfter == nil {
			return errors.Wrap(errMalformedEvent, "pump_status needs uid, pump_before and pump_after")
		}

		if err := h.notifierUC.HandlePumpChange(ctx, event.UID, *event.PumpBefore, *event.PumpAfter); err != nil {
			return errors.Wrap(err, "handle pump change")
		}

	case constants.EventDailyStats:
		return h.runAggregation(ctx, event.Date)

	default:
		return errors.Wrapf(errMalformedEvent, "unknown event type %q", event.Type)
	}

	return nil
}

func (h *PushHandler) runAggregation(ctx context.Context, date string) error {
	var (
		summary *usecase.AggregationSummary
		err     error
	)
	if date == "" {
		summary, err = h.aggregatorUC.RunDaily(ctx, h.now())
	} else {
		summary, err = h.aggregatorUC.AggregateDate(ctx, date)
	}
	if err != nil {
		return errors.Wrap(err, "aggregate daily stats")
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Daily aggregation completed",
		slog.String("date", summary.Date),
		slog.Int("processed", summary.Processed),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
