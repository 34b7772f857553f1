package entities

import "time"

// Inspection is one field survey of an asset. Rows are append-only: the
// current state of an asset is its most recent inspection by date.
type Inspection struct {
	InspectionID uint      `gorm:"primaryKey" json:"inspection_id"`
	AssetID      uint      `json:"asset_id" gorm:"index"`
	Date         time.Time `json:"date" gorm:"index"`
	Surveyor     string    `json:"surveyor"`

	// Condition = physical intactness, function = hydraulic performance.
	// Civil covers the structural part, Mech the gates and moving parts.
	// All four are percentages in [0,100].
	CivilCondition float64 `json:"civil_condition"`
	MechCondition  float64 `json:"mech_condition"`
	CivilFunction  float64 `json:"civil_function"`
	MechFunction   float64 `json:"mech_function"`

	ImpactedAreaHa float64 `json:"impacted_area_ha"`
	Recommendation string  `json:"recommendation"`
	CostEstimate   float64 `json:"cost_estimate"`
	PhotoRef       string  `json:"photo_ref,omitempty"`

	CreatedAt time.Time
}
