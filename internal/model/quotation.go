package model

import (
	"time"

	"github.com/google/uuid"
)

// Quotation is the persisted document for one customer enquiry: the
// drawn rooms plus everything needed to reprice and re-export it later.
type Quotation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Customer    string `json:"customer"`
	Phone       string `json:"phone,omitempty"`
	SiteAddress string `json:"site_address,omitempty"`

	Rooms           []Room `json:"rooms"`
	ActiveRoomIndex int    `json:"active_room_index"`

	Settings ProductionSettings `json:"settings"`
	Rates    *RateConfig        `json:"rates,omitempty"`

	ShutterLaminate string `json:"shutter_laminate,omitempty"`
	LoftLaminate    string `json:"loft_laminate,omitempty"`

	Adjustments PanelAdjustments `json:"adjustments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewQuotation(name, customer string) Quotation {
	now := time.Now()
	return Quotation{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Customer:  customer,
		Settings:  DefaultProductionSettings(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AllUnits flattens every room's units in room order.
func (q Quotation) AllUnits() []DrawnUnit {
	var units []DrawnUnit
	for _, room := range q.Rooms {
		units = append(units, room.DrawnUnits...)
	}
	return units
}

// ActiveUnits returns the drawn units of the active room, or nil when
// the index is out of range.
func (q Quotation) ActiveUnits() []DrawnUnit {
	if q.ActiveRoomIndex < 0 || q.ActiveRoomIndex >= len(q.Rooms) {
		return nil
	}
	return q.Rooms[q.ActiveRoomIndex].DrawnUnits
}
