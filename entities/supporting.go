package entities

import "time"

// PlantingRecord holds one season's planting and irrigation-water figures.
type PlantingRecord struct {
	RecordID        uint    `gorm:"primaryKey" json:"record_id"`
	Season          string  `json:"season"` // e.g. MT-1 2025/2026
	PlannedAreaHa   float64 `json:"planned_area_ha"`
	RealizedAreaHa  float64 `json:"realized_area_ha"`
	SupplyDischarge float64 `json:"supply_discharge"` // debit andalan, m3/s
	DemandDischarge float64 `json:"demand_discharge"` // kebutuhan, m3/s
	YieldTonHa      float64 `json:"yield_ton_ha"`
	TargetYieldTon  float64 `json:"target_yield_ton_ha"`

	CreatedAt time.Time
}

// FaktorK is the supply/demand discharge ratio for the season; 0 when no
// demand is recorded, never a division error.
func (p PlantingRecord) FaktorK() float64 {
	if p.DemandDischarge <= 0 {
		return 0
	}
	return p.SupplyDischarge / p.DemandDischarge
}

// P3A activity levels.
const (
	ActivityActive   = "active"
	ActivityPartial  = "partial"
	ActivityInactive = "inactive"
)

// AssociationRecord is one water-user association (P3A) on the scheme.
type AssociationRecord struct {
	RecordID      uint   `gorm:"primaryKey" json:"record_id"`
	Name          string `json:"name"`
	LegalStatus   bool   `json:"legal_status"` // berbadan hukum
	ActivityLevel string `json:"activity_level"`
	MemberCount   int    `json:"member_count"`

	CreatedAt time.Time
}

// StaffingRecord is one O&M staffing entry (juru, PPA, operators, ...).
type StaffingRecord struct {
	RecordID uint   `gorm:"primaryKey" json:"record_id"`
	Position string `json:"position"`
	Count    int    `json:"count"`

	CreatedAt time.Time
}

// FacilityRecord is one supporting O&M facility or equipment entry.
type FacilityRecord struct {
	RecordID uint   `gorm:"primaryKey" json:"record_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Adequate bool   `json:"adequate"`

	CreatedAt time.Time
}

// DocumentRecord is one required-documentation checklist item.
type DocumentRecord struct {
	RecordID uint   `gorm:"primaryKey" json:"record_id"`
	Name     string `json:"name"`
	Present  bool   `json:"present"`

	CreatedAt time.Time
}
