package dto

import (
	"time"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/domain"
)

type CreateShipmentInput struct {
	CustomerID            string    `json:"customerId" validate:"required,uuid"`
	Type                  string    `json:"type" validate:"required,oneof=LOCAL NATIONAL INTERNATIONAL"`
	Mode                  string    `json:"mode" validate:"required,oneof=LAND AIR WATER"`
	Cost                  float64   `json:"cost" validate:"gte=0"`
	StartDate             time.Time `json:"startDate" validate:"required"`
	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate" validate:"required"`
}

type UpdateShipmentInput struct {
	Type                  *string    `json:"type" validate:"omitempty,oneof=LOCAL NATIONAL INTERNATIONAL"`
	Mode                  *string    `json:"mode" validate:"omitempty,oneof=LAND AIR WATER"`
	Cost                  *float64   `json:"cost" validate:"omitempty,gte=0"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate"`
}

type ShipmentOutput struct {
	ID                    string     `json:"id"`
	CustomerID            string     `json:"customerId"`
	Type                  string     `json:"type"`
	Mode                  string     `json:"mode"`
	Cost                  float64    `json:"cost"`
	IsDelivered           bool       `json:"isDelivered"`
	StartDate             time.Time  `json:"startDate"`
	EstimatedDeliveryDate time.Time  `json:"estimatedDeliveryDate"`
	DeliveryDate          *time.Time `json:"deliveryDate,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func NewShipmentOutput(s *domain.Shipment) ShipmentOutput {
	return ShipmentOutput{
		ID:                    s.ID,
		CustomerID:            s.CustomerID,
		Type:                  string(s.Type),
		Mode:                  string(s.Mode),
		Cost:                  s.Cost,
		IsDelivered:           s.IsDelivered,
		StartDate:             s.StartDate,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		DeliveryDate:          s.DeliveryDate,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

type ShipmentListOutput struct {
	Items []ShipmentOutput `json:"items"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int              `json:"total"`
}

type StatsOutput struct {
	Total     int            `json:"total"`
	Delivered int            `json:"delivered"`
	Pending   int            `json:"pending"`
	TotalCost float64        `json:"totalCost"`
	ByType    map[string]int `json:"byType"`
	ByMode    map[string]int `json:"byMode"`
}

func NewStatsOutput(s *domain.Stats) StatsOutput {
	return StatsOutput{
		Total:     s.Total,
		Delivered: s.Delivered,
		Pending:   s.Pending,
		TotalCost: s.TotalCost,
		ByType:    s.ByType,
		ByMode:    s.ByMode,
	}
}
