package usecase

import (
	"context"
	"log/slog"

	"forumapi/src/core/ports"
)

// HealthService reports the health of the storage behind the forum.
type HealthService struct {
	log        *slog.Logger
	components map[string]ports.Repository
}

// NewHealthService creates a HealthService checking each named component.
func NewHealthService(log *slog.Logger, components map[string]ports.Repository) *HealthService {
	return &HealthService{
		log:        log,
		components: components,
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

// Check performs a health check of all application components.
// Any failing component degrades the overall status.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth, len(s.components)),
	}

	for name, c := range s.components {
		if err := c.Health(ctx); err != nil {
			s.log.Warn("component unhealthy", "component", name, "error", err)
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			continue
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}

var _ ports.ExternalService = (*HealthService)(nil)

// Health adapts the service to ports.ExternalService.
func (s *HealthService) Health(ctx context.Context) error {
	status := s.Check(ctx)
	if status.Status != "ok" {
		return &healthError{status: status.Status}
	}
	return nil
}

type healthError struct {
	status string
}

func (e *healthError) Error() string {
	return "health check failed: " + e.status
}
