package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/domain"
)

var shipmentTestColumns = []string{
	"id", "owner_id", "customer_id", "type", "mode", "cost", "is_delivered",
	"start_date", "estimated_delivery_date", "delivery_date", "created_at", "updated_at",
}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *PostgresRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewPostgresShipmentRepository(mock)
}

func sampleShipment() *domain.Shipment {
	now := time.Now()
	return &domain.Shipment{
		ID:                    "s1a2b3c4-0000-0000-0000-000000000001",
		OwnerID:               "owner-1",
		CustomerID:            "c1a2b3c4-0000-0000-0000-000000000001",
		Type:                  domain.TypeNational,
		Mode:                  domain.ModeLand,
		Cost:                  499.50,
		StartDate:             now,
		EstimatedDeliveryDate: now.Add(72 * time.Hour),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func shipmentRow(s *domain.Shipment) *pgxmock.Rows {
	return pgxmock.NewRows(shipmentTestColumns).
		AddRow(s.ID, s.OwnerID, s.CustomerID, s.Type, s.Mode, s.Cost, s.IsDelivered,
			s.StartDate, s.EstimatedDeliveryDate, s.DeliveryDate, s.CreatedAt, s.UpdatedAt)
}

func TestPostgresRepository_Create(t *testing.T) {
	mock, repo := newMock(t)
	s := sampleShipment()

	mock.ExpectExec("INSERT INTO shipments").
		WithArgs(s.ID, s.OwnerID, s.CustomerID, s.Type, s.Mode, s.Cost, s.IsDelivered,
			s.StartDate, s.EstimatedDeliveryDate, s.DeliveryDate, s.CreatedAt, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetByID(t *testing.T) {
	mock, repo := newMock(t)
	want := sampleShipment()

	mock.ExpectQuery("SELECT (.+) FROM shipments").
		WithArgs(want.OwnerID, want.ID).
		WillReturnRows(shipmentRow(want))

	got, err := repo.GetByID(context.Background(), want.OwnerID, want.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.CustomerID, got.CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_List(t *testing.T) {
	t.Run("plain listing", func(t *testing.T) {
		mock, repo := newMock(t)
		s := sampleShipment()

		mock.ExpectQuery("SELECT COUNT").
			WithArgs(s.OwnerID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM shipments").
			WithArgs(s.OwnerID, 10, 0).
			WillReturnRows(shipmentRow(s))

		got, total, err := repo.List(context.Background(), s.OwnerID, domain.Filter{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, got, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filters add numbered predicates", func(t *testing.T) {
		mock, repo := newMock(t)
		s := sampleShipment()
		delivered := false

		mock.ExpectQuery("SELECT COUNT").
			WithArgs(s.OwnerID, domain.TypeNational, domain.ModeLand, delivered, s.CustomerID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM shipments").
			WithArgs(s.OwnerID, domain.TypeNational, domain.ModeLand, delivered, s.CustomerID, 10, 0).
			WillReturnRows(shipmentRow(s))

		_, total, err := repo.List(context.Background(), s.OwnerID, domain.Filter{
			Page:        1,
			Limit:       10,
			Type:        domain.TypeNational,
			Mode:        domain.ModeLand,
			IsDelivered: &delivered,
			CustomerID:  s.CustomerID,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_Update(t *testing.T) {
	mock, repo := newMock(t)
	s := sampleShipment()
	s.IsDelivered = true
	deliveredAt := time.Now()
	s.DeliveryDate = &deliveredAt

	mock.ExpectQuery("UPDATE shipments").
		WithArgs(s.OwnerID, s.ID, s.Type, s.Mode, s.Cost, s.IsDelivered,
			s.EstimatedDeliveryDate, s.DeliveryDate).
		WillReturnRows(shipmentRow(s))

	got, err := repo.Update(context.Background(), s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsDelivered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Delete(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec("DELETE FROM shipments").
		WithArgs("owner-1", "missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), "owner-1", "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Stats(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("owner-1").
		WillReturnRows(pgxmock.NewRows([]string{"count", "delivered", "sum"}).AddRow(4, 1, 1200.75))
	mock.ExpectQuery("SELECT type, COUNT").
		WithArgs("owner-1").
		WillReturnRows(pgxmock.NewRows([]string{"type", "count"}).AddRow("LOCAL", 2).AddRow("NATIONAL", 2))
	mock.ExpectQuery("SELECT mode, COUNT").
		WithArgs("owner-1").
		WillReturnRows(pgxmock.NewRows([]string{"mode", "count"}).AddRow("LAND", 3).AddRow("AIR", 1))

	stats, err := repo.Stats(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Delivered)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 1200.75, stats.TotalCost)
	assert.Equal(t, map[string]int{"LOCAL": 2, "NATIONAL": 2}, stats.ByType)
	assert.Equal(t, map[string]int{"LAND": 3, "AIR": 1}, stats.ByMode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
