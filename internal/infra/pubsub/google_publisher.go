package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"dietplan/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googleOptions struct {
	projectID   string
	topicID     string
	timeout     time.Duration
	orderByUser bool
}

type googlePubSubPublisher struct {
	client      *pubsub.Client
	publisher   *pubsub.Publisher
	timeout     time.Duration
	orderByUser bool
	logger      *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic, failing when it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, opts googleOptions, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, opts.projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := "projects/" + opts.projectID + "/topics/" + opts.topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not available", topic)
	}

	publisher := client.Publisher(opts.topicID)
	publisher.EnableMessageOrdering = opts.orderByUser

	return &googlePubSubPublisher{
		client:      client,
		publisher:   publisher,
		timeout:     opts.timeout,
		orderByUser: opts.orderByUser,
		logger:      logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishWeeklyDietGenerated(ctx context.Context, event *service.WeeklyDietGeneratedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}
	if p.orderByUser {
		msg.OrderingKey = event.UserID
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		if p.orderByUser {
			// An ordered key stays paused after a failure until resumed.
			p.publisher.ResumePublish(msg.OrderingKey)
		}

		return errors.Wrapf(err, "failed to publish weekly diet %s", event.WeeklyDietID)
	}

	p.logger.Debug("[GooglePubSub] Weekly diet event published",
		slog.String("weekly_diet_id", event.WeeklyDietID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
