package ports

import (
	"context"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for delivery
// session aggregates and their owned medication loads.
type SessionRepository interface {
	// Add persists a newly opened session.
	Add(ctx context.Context, aggregate *session.DeliverySession) error

	// Update persists changes to an existing session, including upserts
	// of its medication loads.
	Update(ctx context.Context, aggregate *session.DeliverySession) error

	// GetOpenByID retrieves the open session with the given id,
	// including its loads. Returns an ObjectNotFoundError when the
	// session does not exist or is already completed — a closed loading
	// window is indistinguishable from an absent session to callers.
	GetOpenByID(ctx context.Context, id kernel.UUID) (*session.DeliverySession, error)

	// GetOpenByDroneID retrieves the drone's open session, if any.
	// Returns an ObjectNotFoundError when the drone has no open session.
	GetOpenByDroneID(ctx context.Context, droneID kernel.UUID) (*session.DeliverySession, error)

	// GetLatestByDroneID retrieves the drone's most recent session
	// regardless of completion, for manifest reads after the loading
	// window closed. Returns an ObjectNotFoundError when the drone
	// never had a session.
	GetLatestByDroneID(ctx context.Context, droneID kernel.UUID) (*session.DeliverySession, error)

	// GetTotalWeight computes the summed (unit weight x quantity) of
	// the session's loads against the medication catalog. Zero when the
	// session has no loads.
	GetTotalWeight(ctx context.Context, sessionID kernel.UUID) (float64, error)
}
