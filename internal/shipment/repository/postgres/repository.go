package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/domain"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DBTX
}

func NewPostgresShipmentRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const shipmentColumns = `id, owner_id, customer_id, type, mode, cost, is_delivered,
		start_date, estimated_delivery_date, delivery_date, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, s *domain.Shipment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO shipments (id, owner_id, customer_id, type, mode, cost, is_delivered,
			start_date, estimated_delivery_date, delivery_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, s.ID, s.OwnerID, s.CustomerID, s.Type, s.Mode, s.Cost, s.IsDelivered,
		s.StartDate, s.EstimatedDeliveryDate, s.DeliveryDate, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Shipment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM shipments
		WHERE owner_id = $1 AND id = $2
		LIMIT 1;
	`, shipmentColumns)
	row := r.db.QueryRow(ctx, query, ownerID, id)

	return scanShipment(row)
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string, f domain.Filter) ([]domain.Shipment, int, error) {
	where := `WHERE owner_id = $1`
	args := []any{ownerID}

	if f.Type != "" {
		args = append(args, f.Type)
		where += fmt.Sprintf(` AND type = $%d`, len(args))
	}
	if f.Mode != "" {
		args = append(args, f.Mode)
		where += fmt.Sprintf(` AND mode = $%d`, len(args))
	}
	if f.IsDelivered != nil {
		args = append(args, *f.IsDelivered)
		where += fmt.Sprintf(` AND is_delivered = $%d`, len(args))
	}
	if f.CustomerID != "" {
		args = append(args, f.CustomerID)
		where += fmt.Sprintf(` AND customer_id = $%d`, len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM shipments ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shipments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM shipments
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d;
	`, shipmentColumns, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shipments: %w", err)
	}
	defer rows.Close()

	var shipments []domain.Shipment
	for rows.Next() {
		s, err := scanShipmentValues(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan shipment row: %w", err)
		}

		shipments = append(shipments, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read shipment rows: %w", err)
	}

	return shipments, total, nil
}

func (r *PostgresRepository) Update(ctx context.Context, s *domain.Shipment) (*domain.Shipment, error) {
	query := fmt.Sprintf(`
		UPDATE shipments
		SET type = $3, mode = $4, cost = $5, is_delivered = $6,
			estimated_delivery_date = $7, delivery_date = $8, updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING %s;
	`, shipmentColumns)
	row := r.db.QueryRow(ctx, query, s.OwnerID, s.ID, s.Type, s.Mode, s.Cost,
		s.IsDelivered, s.EstimatedDeliveryDate, s.DeliveryDate)

	return scanShipment(row)
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM shipments WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete shipment: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) Stats(ctx context.Context, ownerID string) (*domain.Stats, error) {
	stats := &domain.Stats{
		ByType: make(map[string]int),
		ByMode: make(map[string]int),
	}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE is_delivered),
			COALESCE(SUM(cost), 0)
		FROM shipments
		WHERE owner_id = $1
	`, ownerID).Scan(&stats.Total, &stats.Delivered, &stats.TotalCost)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate shipments: %w", err)
	}

	stats.Pending = stats.Total - stats.Delivered

	if err := r.groupCount(ctx, ownerID, "type", stats.ByType); err != nil {
		return nil, err
	}
	if err := r.groupCount(ctx, ownerID, "mode", stats.ByMode); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *PostgresRepository) groupCount(ctx context.Context, ownerID, column string, dest map[string]int) error {
	// column is one of the fixed identifiers "type"/"mode", never user input.
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM shipments WHERE owner_id = $1 GROUP BY %s`, column, column)

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return fmt.Errorf("failed to group shipments by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("failed to scan %s group row: %w", column, err)
		}

		dest[key] = count
	}

	return rows.Err()
}

func scanShipment(row pgx.Row) (*domain.Shipment, error) {
	s, err := scanShipmentValues(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to scan shipment row: %w", err)
	}

	return s, nil
}

func scanShipmentValues(row pgx.Row) (*domain.Shipment, error) {
	var s domain.Shipment
	err := row.Scan(&s.ID, &s.OwnerID, &s.CustomerID, &s.Type, &s.Mode, &s.Cost,
		&s.IsDelivered, &s.StartDate, &s.EstimatedDeliveryDate, &s.DeliveryDate,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
