package entities

import "time"

// Asset type labels follow the inventory blangko categories.
const (
	TypeBendung   = "Bendung"
	TypeSaluran   = "Saluran"
	TypeBagi      = "Bangunan Bagi"
	TypeSadap     = "Bangunan Sadap"
	TypeUkur      = "Bangunan Ukur"
	TypeTerjunan  = "Terjunan"
	TypeGorong    = "Gorong-Gorong"
	TypeJembatan  = "Jembatan"
	TypeUmum      = "Umum"
)

type Asset struct {
	AssetID          uint                `gorm:"primaryKey" json:"asset_id"`
	Code             string              `json:"code" gorm:"uniqueIndex"`
	Name             string              `json:"name"`
	Type             string              `json:"type"`
	Unit             string              `json:"unit"` // bh|m|unit
	BuiltYear        int                 `json:"built_year"`
	RehabYear        int                 `json:"rehab_year"`
	Dimensions       TechnicalDimensions `gorm:"serializer:json" json:"dimensions"`
	DesignAreaHa     float64             `json:"design_area_ha"`
	ReplacementValue float64             `json:"replacement_value"`
	GeometryRef      string              `json:"geometry_ref,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TechnicalDimensions is keyed by asset type: exactly one variant is set.
// Stored as a JSON column; condition and function never live here.
type TechnicalDimensions struct {
	Canal *CanalDimensions `json:"canal,omitempty"`
	Weir  *WeirDimensions  `json:"weir,omitempty"`
	Gate  *GateDimensions  `json:"gate,omitempty"`
}

type CanalDimensions struct {
	BottomWidthM float64 `json:"b_m"`
	DepthM       float64 `json:"h_m"`
	SideSlope    float64 `json:"m"`
	LengthM      float64 `json:"length_m"`
}

type WeirDimensions struct {
	CrestHeightM float64 `json:"crest_height_m"`
	CrestWidthM  float64 `json:"crest_width_m"`
}

type GateDimensions struct {
	LeafWidthM  float64 `json:"leaf_width_m"`
	LeafHeightM float64 `json:"leaf_height_m"`
	Openings    int     `json:"openings"`
}

// DamageVolume is the current per-asset damage inventory (zero-or-one per
// asset): quantities observed in good, lightly damaged and heavily damaged
// state, in the asset's own unit. Score is the volume-weighted condition
// value recomputed from the quantities; it is derived, never entered.
type DamageVolume struct {
	AssetID        uint    `gorm:"primaryKey" json:"asset_id"`
	GoodQty        float64 `json:"good_qty"`         // B
	LightDamageQty float64 `json:"light_damage_qty"` // RR
	HeavyDamageQty float64 `json:"heavy_damage_qty"` // RB
	Score          float64 `json:"score"`

	UpdatedAt time.Time
}
