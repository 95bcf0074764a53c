package service

import (
	"context"
	"time"
)

// WeeklyDietGeneratedEvent announces a stored weekly plan to downstream consumers.
type WeeklyDietGeneratedEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	WeeklyDietID string    `json:"weekly_diet_id"`
	UserID       string    `json:"user_id"`
	WeekStart    string    `json:"week_start"` // YYYY-MM-DD
	MissingDates []string  `json:"missing_dates,omitempty"`
	DishCount    int       `json:"dish_count"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishWeeklyDietGenerated publishes the event for async processing
	PublishWeeklyDietGenerated(ctx context.Context, event *WeeklyDietGeneratedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
