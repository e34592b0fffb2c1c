package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authservice "github.com/itsaryankaushik/Shipsy-sub001/internal/auth/service"
	customerdomain "github.com/itsaryankaushik/Shipsy-sub001/internal/customer/domain"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/middleware"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/mocks"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/domain"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/handler"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/service"
)

const (
	ownerID    = "owner-1"
	customerID = "c1a2b3c4-0000-0000-0000-000000000001"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testEnv struct {
	app         *fiber.App
	shipments   *mocks.MockShipmentRepository
	customers   *mocks.MockCustomerRepository
	accessToken string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	shipments := mocks.NewMockShipmentRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	tokens := authservice.NewTokenService("access-secret", "refresh-secret", 4*time.Hour, 360*time.Hour)

	accessToken, err := tokens.Issue(ownerID, "owner@example.com", authservice.AccessToken)
	require.NoError(t, err)

	app := fiber.New()
	handler.RegisterRoutes(app,
		handler.NewShipmentHandler(service.NewShipmentService(shipments, customers)),
		middleware.RequireAuth(tokens))

	return &testEnv{app: app, shipments: shipments, customers: customers, accessToken: accessToken}
}

func (e *testEnv) request(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+e.accessToken)
	return req
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func sampleShipment() *domain.Shipment {
	now := time.Now()
	return &domain.Shipment{
		ID:                    "s1a2b3c4-0000-0000-0000-000000000001",
		OwnerID:               ownerID,
		CustomerID:            customerID,
		Type:                  domain.TypeNational,
		Mode:                  domain.ModeLand,
		Cost:                  499.50,
		StartDate:             now,
		EstimatedDeliveryDate: now.Add(72 * time.Hour),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func TestShipmentHandler_Create(t *testing.T) {
	start := time.Now().UTC().Truncate(time.Second)

	t.Run("valid payload", func(t *testing.T) {
		env := newTestEnv(t)

		env.customers.EXPECT().GetByID(gomock.Any(), ownerID, customerID).
			Return(&customerdomain.Customer{ID: customerID, OwnerID: ownerID}, nil)
		env.shipments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		req := env.request(t, http.MethodPost, "/shipments/", fiber.Map{
			"customerId":            customerID,
			"type":                  "NATIONAL",
			"mode":                  "LAND",
			"cost":                  499.50,
			"startDate":             start.Format(time.RFC3339),
			"estimatedDeliveryDate": start.Add(72 * time.Hour).Format(time.RFC3339),
		})

		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("unknown customer returns 400", func(t *testing.T) {
		env := newTestEnv(t)

		env.customers.EXPECT().GetByID(gomock.Any(), ownerID, customerID).Return(nil, nil)

		req := env.request(t, http.MethodPost, "/shipments/", fiber.Map{
			"customerId":            customerID,
			"type":                  "NATIONAL",
			"mode":                  "LAND",
			"cost":                  499.50,
			"startDate":             start.Format(time.RFC3339),
			"estimatedDeliveryDate": start.Add(72 * time.Hour).Format(time.RFC3339),
		})

		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		out := decode(t, resp)
		require.NotNil(t, out.Error)
		assert.Contains(t, out.Error.Details, "customerId")
	})

	t.Run("bad enum returns 400", func(t *testing.T) {
		env := newTestEnv(t)

		req := env.request(t, http.MethodPost, "/shipments/", fiber.Map{
			"customerId":            customerID,
			"type":                  "GALACTIC",
			"mode":                  "LAND",
			"cost":                  499.50,
			"startDate":             start.Format(time.RFC3339),
			"estimatedDeliveryDate": start.Add(72 * time.Hour).Format(time.RFC3339),
		})

		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		out := decode(t, resp)
		require.NotNil(t, out.Error)
		assert.Contains(t, out.Error.Details, "type")
	})
}

func TestShipmentHandler_List(t *testing.T) {
	env := newTestEnv(t)
	s := sampleShipment()

	delivered := false
	env.shipments.EXPECT().
		List(gomock.Any(), ownerID, domain.Filter{
			Page:        1,
			Limit:       10,
			Type:        domain.TypeNational,
			IsDelivered: &delivered,
		}).
		Return([]domain.Shipment{*s}, 1, nil)

	req := env.request(t, http.MethodGet, "/shipments/?type=NATIONAL&isDelivered=false", nil)

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode(t, resp)
	var data struct {
		Items []struct {
			Type string `json:"type"`
		} `json:"items"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "NATIONAL", data.Items[0].Type)
	assert.Equal(t, 1, data.Total)
}

func TestShipmentHandler_Stats(t *testing.T) {
	env := newTestEnv(t)

	env.shipments.EXPECT().Stats(gomock.Any(), ownerID).Return(&domain.Stats{
		Total:     4,
		Delivered: 1,
		Pending:   3,
		TotalCost: 1200.75,
		ByType:    map[string]int{"LOCAL": 2, "NATIONAL": 2},
		ByMode:    map[string]int{"LAND": 3, "AIR": 1},
	}, nil)

	req := env.request(t, http.MethodGet, "/shipments/stats", nil)

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode(t, resp)
	var data struct {
		Total     int            `json:"total"`
		Pending   int            `json:"pending"`
		TotalCost float64        `json:"totalCost"`
		ByMode    map[string]int `json:"byMode"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &data))
	assert.Equal(t, 4, data.Total)
	assert.Equal(t, 3, data.Pending)
	assert.Equal(t, 1200.75, data.TotalCost)
	assert.Equal(t, map[string]int{"LAND": 3, "AIR": 1}, data.ByMode)
}

func TestShipmentHandler_MarkDelivered(t *testing.T) {
	env := newTestEnv(t)
	s := sampleShipment()

	env.shipments.EXPECT().GetByID(gomock.Any(), ownerID, s.ID).Return(s, nil)
	env.shipments.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, updated *domain.Shipment) (*domain.Shipment, error) {
			return updated, nil
		})

	req := env.request(t, http.MethodPatch, "/shipments/"+s.ID+"/deliver", nil)

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode(t, resp)
	var data struct {
		IsDelivered  bool       `json:"isDelivered"`
		DeliveryDate *time.Time `json:"deliveryDate"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &data))
	assert.True(t, data.IsDelivered)
	assert.NotNil(t, data.DeliveryDate)
}

func TestShipmentHandler_Get(t *testing.T) {
	t.Run("missing returns 404", func(t *testing.T) {
		env := newTestEnv(t)

		env.shipments.EXPECT().GetByID(gomock.Any(), ownerID, "missing").Return(nil, nil)

		req := env.request(t, http.MethodGet, "/shipments/missing", nil)

		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("rejects without a token", func(t *testing.T) {
		env := newTestEnv(t)

		req := httptest.NewRequest(http.MethodGet, "/shipments/anything", nil)

		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestShipmentHandler_Delete(t *testing.T) {
	env := newTestEnv(t)

	env.shipments.EXPECT().Delete(gomock.Any(), ownerID, "s1").Return(true, nil)

	req := env.request(t, http.MethodDelete, "/shipments/s1", nil)

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
