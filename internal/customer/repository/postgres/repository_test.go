package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/customer/domain"
)

var customerColumns = []string{"id", "owner_id", "name", "email", "phone", "address", "created_at", "updated_at"}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *PostgresRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewPostgresCustomerRepository(mock)
}

func sampleCustomer() *domain.Customer {
	now := time.Now()
	return &domain.Customer{
		ID:        "c1a2b3c4-0000-0000-0000-000000000001",
		OwnerID:   "owner-1",
		Name:      "Acme Traders",
		Email:     "acme@example.com",
		Phone:     "+919812345678",
		Address:   "12 Market Road",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func customerRow(c *domain.Customer) *pgxmock.Rows {
	return pgxmock.NewRows(customerColumns).
		AddRow(c.ID, c.OwnerID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt)
}

func TestPostgresRepository_Create(t *testing.T) {
	mock, repo := newMock(t)
	c := sampleCustomer()

	mock.ExpectExec("INSERT INTO customers").
		WithArgs(c.ID, c.OwnerID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_List(t *testing.T) {
	t.Run("without search", func(t *testing.T) {
		mock, repo := newMock(t)
		c := sampleCustomer()

		mock.ExpectQuery("SELECT COUNT").
			WithArgs(c.OwnerID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT id, owner_id, name, email, phone, address").
			WithArgs(c.OwnerID, 10, 0).
			WillReturnRows(customerRow(c))

		got, total, err := repo.List(context.Background(), c.OwnerID, domain.ListQuery{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, c.Name, got[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search narrows both queries", func(t *testing.T) {
		mock, repo := newMock(t)
		c := sampleCustomer()

		mock.ExpectQuery("SELECT COUNT").
			WithArgs(c.OwnerID, "%acme%").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT id, owner_id, name, email, phone, address").
			WithArgs(c.OwnerID, "%acme%", 10, 10).
			WillReturnRows(customerRow(c))

		_, total, err := repo.List(context.Background(), c.OwnerID,
			domain.ListQuery{Page: 2, Limit: 10, Search: "acme"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_Update(t *testing.T) {
	mock, repo := newMock(t)
	c := sampleCustomer()

	mock.ExpectQuery("UPDATE customers").
		WithArgs(c.OwnerID, c.ID, c.Name, c.Email, c.Phone, c.Address).
		WillReturnRows(customerRow(c))

	got, err := repo.Update(context.Background(), c)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Delete(t *testing.T) {
	t.Run("row removed", func(t *testing.T) {
		mock, repo := newMock(t)

		mock.ExpectExec("DELETE FROM customers").
			WithArgs("owner-1", "c1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.Delete(context.Background(), "owner-1", "c1")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row", func(t *testing.T) {
		mock, repo := newMock(t)

		mock.ExpectExec("DELETE FROM customers").
			WithArgs("owner-1", "missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.Delete(context.Background(), "owner-1", "missing")
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
