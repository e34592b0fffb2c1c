package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/customer/domain"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DBTX
}

func NewPostgresCustomerRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *domain.Customer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (id, owner_id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, c.ID, c.OwnerID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Customer, error) {
	query := `
		SELECT id, owner_id, name, email, phone, address, created_at, updated_at
		FROM customers
		WHERE owner_id = $1 AND id = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, ownerID, id)

	return scanCustomer(row)
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string, q domain.ListQuery) ([]domain.Customer, int, error) {
	where := `WHERE owner_id = $1`
	args := []any{ownerID}

	if q.Search != "" {
		where += ` AND (name ILIKE $2 OR email ILIKE $2 OR phone ILIKE $2)`
		args = append(args, "%"+q.Search+"%")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM customers ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, owner_id, name, email, phone, address, created_at, updated_at
		FROM customers
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d;
	`, where, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Address,
			&c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer row: %w", err)
		}

		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read customer rows: %w", err)
	}

	return customers, total, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET name = $3, email = $4, phone = $5, address = $6, updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING id, owner_id, name, email, phone, address, created_at, updated_at;
	`
	row := r.db.QueryRow(ctx, query, c.OwnerID, c.ID, c.Name, c.Email, c.Phone, c.Address)

	return scanCustomer(row)
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM customers WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete customer: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Address,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to scan customer row: %w", err)
	}

	return &c, nil
}
