package domain

import "time"

type ShipmentType string

const (
	TypeLocal         ShipmentType = "LOCAL"
	TypeNational      ShipmentType = "NATIONAL"
	TypeInternational ShipmentType = "INTERNATIONAL"
)

type ShipmentMode string

const (
	ModeLand  ShipmentMode = "LAND"
	ModeAir   ShipmentMode = "AIR"
	ModeWater ShipmentMode = "WATER"
)

// Shipment is owned by a shop owner and references one of their customers.
type Shipment struct {
	ID                    string
	OwnerID               string
	CustomerID            string
	Type                  ShipmentType
	Mode                  ShipmentMode
	Cost                  float64
	IsDelivered           bool
	StartDate             time.Time
	EstimatedDeliveryDate time.Time
	DeliveryDate          *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Filter narrows a shipment listing; nil/empty fields are ignored.
type Filter struct {
	Page        int
	Limit       int
	Type        ShipmentType
	Mode        ShipmentMode
	IsDelivered *bool
	CustomerID  string
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Clamp normalizes out-of-range pagination to safe bounds.
func (f Filter) Clamp() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	return f
}

// Stats aggregates an owner's shipments.
type Stats struct {
	Total     int
	Delivered int
	Pending   int
	TotalCost float64
	ByType    map[string]int
	ByMode    map[string]int
}
