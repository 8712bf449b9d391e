package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/domain/audit"
)

// Recorder is the write side handed to other services. Recording is
// best-effort: a failed audit insert is logged, never bubbled up to the
// request that caused it.
type Recorder interface {
	Record(ctx context.Context, action, entity, entityID, detail string)
}

type AuditService interface {
	Recorder
	List(ctx context.Context, filter audit.Filter) (audit.ListResponse, error)
}

type AuditServiceImpl struct {
	audit.AuditRepository
}

func NewAuditService(auditRepo audit.AuditRepository) AuditService {
	return &AuditServiceImpl{AuditRepository: auditRepo}
}

// Record implements Recorder.
func (a *AuditServiceImpl) Record(ctx context.Context, action, entity, entityID, detail string) {
	actorID := "system"
	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if id, ok := claims["user_id"].(string); ok && id != "" {
			actorID = id
		}
	}

	entry := audit.Entry{
		ID:        uuid.NewString(),
		ActorID:   actorID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}

	if err := a.AuditRepository.Create(ctx, entry); err != nil {
		slog.Error("Failed to write audit entry", "action", action, "entity", entity, "error", err)
	}
}

// List implements AuditService.
func (a *AuditServiceImpl) List(ctx context.Context, filter audit.Filter) (audit.ListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	entries, total, err := a.AuditRepository.List(ctx, filter)
	if err != nil {
		return audit.ListResponse{}, fmt.Errorf("failed to list audit entries: %w", err)
	}

	responses := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, audit.EntryResponse{
			ID:        e.ID,
			ActorID:   e.ActorID,
			Action:    e.Action,
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return audit.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Entries:    responses,
	}, nil
}
