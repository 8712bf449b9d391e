package postgresql

import (
	"context"
	"fmt"

	"github.com/workpulse/workpulse-backend-go/internal/domain/audit"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}

// Create implements audit.AuditRepository.
func (r *auditRepository) Create(ctx context.Context, e audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_logs (id, actor_id, action, entity, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query, e.ID, e.ActorID, e.Action, e.Entity, e.EntityID, e.Detail, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	return nil
}

// List implements audit.AuditRepository.
func (r *auditRepository) List(ctx context.Context, filter audit.Filter) ([]audit.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.ActorID != nil && *filter.ActorID != "" {
		baseWhere += fmt.Sprintf(" AND actor_id = $%d", argIdx)
		args = append(args, *filter.ActorID)
		argIdx++
	}
	if filter.Entity != nil && *filter.Entity != "" {
		baseWhere += fmt.Sprintf(" AND entity = $%d", argIdx)
		args = append(args, *filter.Entity)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM audit_logs WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, actor_id, action, entity, entity_id, detail, created_at
		FROM audit_logs
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.Entity, &e.EntityID, &e.Detail, &e.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}
