package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

// RecordCounter exposes the size of a record store for health reporting.
type RecordCounter interface {
	Len() int
}

// HealthService reports liveness and per-store record counts.
type HealthService struct {
	log    *slog.Logger
	stores map[string]RecordCounter
}

// NewHealthService creates a HealthService over the named stores.
func NewHealthService(log *slog.Logger, stores map[string]RecordCounter) *HealthService {
	return &HealthService{
		log:    log,
		stores: stores,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check reports the overall health status. The in-memory stores have no
// failure mode to probe, so components report their record counts.
func (s *HealthService) Check(_ context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}
	for name, store := range s.stores {
		status.Components[name] = ComponentHealth{
			Status:  "healthy",
			Message: fmt.Sprintf("%d records", store.Len()),
		}
	}
	return status
}
