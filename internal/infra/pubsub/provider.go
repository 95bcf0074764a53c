// Package pubsub announces stored weekly diets to the shopping list worker.
package pubsub

import (
	"context"
	"log/slog"
	"time"

	"dietplan/config"
	"dietplan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPublishTimeout = 10 * time.Second

type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishWeeklyDietGenerated(_ context.Context, event *service.WeeklyDietGeneratedEvent) error {
	p.logger.Debug("[NoopPubSub] Dropping weekly diet event",
		slog.String("weekly_diet_id", event.WeeklyDietID),
		slog.String("user_id", event.UserID),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider. A missing block
// or the noop provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" || cfg.Provider == config.PubSubProviderNoop {
		params.Logger.Info("Weekly diet events disabled")

		return NewNoopPublisher(params.Logger), nil
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	var (
		publisher service.EventPublisher
		err       error
	)
	switch cfg.Provider {
	case config.PubSubProviderLocal:
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, timeout, params.Logger)
	case config.PubSubProviderGoogle:
		publisher, err = NewGooglePubSubPublisher(params.Ctx, googleOptions{
			projectID:   cfg.ProjectID,
			topicID:     cfg.TopicID,
			timeout:     timeout,
			orderByUser: cfg.OrderByUser,
		}, params.Logger)
		if err != nil {
			return nil, err
		}
	}

	params.Logger.Info("Weekly diet events enabled",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
		slog.String("endpoint", cfg.LocalEndpoint),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func validateConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
