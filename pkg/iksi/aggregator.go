// Package iksi computes the composite irrigation-system performance index:
// a weighted sum of six policy pillars over the whole scheme.
package iksi

import (
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/config"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/scoring"
)

// Pillar names as they appear in reports.
const (
	PillarPhysical      = "physical_infrastructure"
	PillarPlanting      = "planting_productivity"
	PillarFacilities    = "supporting_facilities"
	PillarStaffing      = "staffing_organization"
	PillarDocumentation = "documentation"
	PillarAssociation   = "water_user_association"
)

// AssetCondition is one inspected asset's contribution to the physical
// pillar: the latest inspection's four axes plus the design service area
// used as its weight.
type AssetCondition struct {
	AssetID        uint
	DesignAreaHa   float64
	CivilCondition float64
	MechCondition  float64
	CivilFunction  float64
	MechFunction   float64
}

type Inputs struct {
	Assets       []AssetCondition
	Planting     []entities.PlantingRecord
	Facilities   []entities.FacilityRecord
	Staffing     []entities.StaffingRecord
	Documents    []entities.DocumentRecord
	Associations []entities.AssociationRecord

	// Total design service area of the scheme, for the staffing mandate.
	TotalAreaHa float64
}

type PillarScore struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Score    float64 `json:"score"`
	Weighted float64 `json:"weighted"`
}

type Result struct {
	Total   float64       `json:"total"`
	Pillars []PillarScore `json:"pillars"`
}

type Aggregator struct {
	pol config.Policy
}

func New(p config.Policy) *Aggregator { return &Aggregator{pol: p} }

// Compute never fails: an empty pillar input scores the pillar 0, the
// conservative reading the condition scorer also uses for missing data.
func (g *Aggregator) Compute(in Inputs) Result {
	pillars := []PillarScore{
		{Name: PillarPhysical, Weight: g.pol.WeightPhysical, Score: g.physicalScore(in.Assets)},
		{Name: PillarPlanting, Weight: g.pol.WeightPlanting, Score: g.plantingScore(in.Planting)},
		{Name: PillarFacilities, Weight: g.pol.WeightFacilities, Score: g.facilityScore(in.Facilities)},
		{Name: PillarStaffing, Weight: g.pol.WeightStaffing, Score: g.staffingScore(in.Staffing, in.TotalAreaHa)},
		{Name: PillarDocumentation, Weight: g.pol.WeightDocumentation, Score: g.documentScore(in.Documents)},
		{Name: PillarAssociation, Weight: g.pol.WeightAssociation, Score: g.associationScore(in.Associations)},
	}

	total := 0.0
	for i := range pillars {
		pillars[i].Score = scoring.Round2(pillars[i].Score)
		pillars[i].Weighted = scoring.Round2(pillars[i].Score * pillars[i].Weight)
		total += pillars[i].Score * pillars[i].Weight
	}
	return Result{Total: scoring.Round2(total), Pillars: pillars}
}
