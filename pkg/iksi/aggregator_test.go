package iksi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/config"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
)

func testAggregator(t *testing.T) *Aggregator {
	t.Helper()
	pol, err := config.LoadPolicy("")
	require.NoError(t, err)
	return New(pol)
}

func TestComputeAllEmptyInputs(t *testing.T) {
	g := testAggregator(t)
	res := g.Compute(Inputs{})
	assert.Equal(t, 0.0, res.Total)
	require.Len(t, res.Pillars, 6)
	for _, p := range res.Pillars {
		assert.Equal(t, 0.0, p.Score, p.Name)
	}
}

func TestComputeWeightsSumToOne(t *testing.T) {
	g := testAggregator(t)
	res := g.Compute(Inputs{})
	sum := 0.0
	for _, p := range res.Pillars {
		sum += p.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestComputeBoundedWhenAllPillarsFull(t *testing.T) {
	g := testAggregator(t)
	in := Inputs{
		Assets: []AssetCondition{{
			DesignAreaHa:   100,
			CivilCondition: 100, MechCondition: 100,
			CivilFunction: 100, MechFunction: 100,
		}},
		Planting: []entities.PlantingRecord{{
			Season: "MT-1", PlannedAreaHa: 100, RealizedAreaHa: 100,
			SupplyDischarge: 2, DemandDischarge: 1,
			YieldTonHa: 6, TargetYieldTon: 6,
		}},
		Facilities:   []entities.FacilityRecord{{Name: "Kantor", Quantity: 1, Adequate: true}},
		Staffing:     []entities.StaffingRecord{{Position: "Juru", Count: 10}},
		Documents:    []entities.DocumentRecord{{Name: "Skema", Present: true}},
		Associations: []entities.AssociationRecord{{Name: "P3A", LegalStatus: true, ActivityLevel: entities.ActivityActive}},
		TotalAreaHa:  100,
	}
	res := g.Compute(in)
	assert.InDelta(t, 100.0, res.Total, 0.01)
	for _, p := range res.Pillars {
		assert.GreaterOrEqual(t, p.Score, 0.0)
		assert.LessOrEqual(t, p.Score, 100.0)
	}
}

func TestPhysicalPillarAreaWeighted(t *testing.T) {
	g := testAggregator(t)
	assets := []AssetCondition{
		// combined value (min cond + min func)/2 = (80+60)/2 = 70, area 900
		{DesignAreaHa: 900, CivilCondition: 80, MechCondition: 90, CivilFunction: 60, MechFunction: 70},
		// combined value (20+40)/2 = 30, area 100
		{DesignAreaHa: 100, CivilCondition: 20, MechCondition: 50, CivilFunction: 40, MechFunction: 90},
	}
	got := g.physicalScore(assets)
	assert.InDelta(t, 66.0, got, 1e-9) // (70*900 + 30*100) / 1000
}

func TestPhysicalPillarUnweightedFallback(t *testing.T) {
	g := testAggregator(t)
	assets := []AssetCondition{
		{DesignAreaHa: 0, CivilCondition: 100, MechCondition: 100, CivilFunction: 100, MechFunction: 100},
		{DesignAreaHa: 0, CivilCondition: 0, MechCondition: 0, CivilFunction: 0, MechFunction: 0},
	}
	assert.InDelta(t, 50.0, g.physicalScore(assets), 1e-9)
}

func TestWaterAdequacyBands(t *testing.T) {
	g := testAggregator(t)
	assert.Equal(t, 100.0, g.waterAdequacyScore(1.2))
	assert.Equal(t, 100.0, g.waterAdequacyScore(1.0))
	assert.Equal(t, 80.0, g.waterAdequacyScore(0.8))
	assert.Equal(t, 80.0, g.waterAdequacyScore(0.7))
	assert.Equal(t, 60.0, g.waterAdequacyScore(0.4))
	assert.Equal(t, 0.0, g.waterAdequacyScore(0))
}

func TestPlantingZeroDemandIsNotAnError(t *testing.T) {
	g := testAggregator(t)
	rec := entities.PlantingRecord{Season: "MT-2", SupplyDischarge: 3, DemandDischarge: 0}
	assert.Equal(t, 0.0, rec.FaktorK())
	got := g.plantingScore([]entities.PlantingRecord{rec})
	assert.Equal(t, 0.0, got)
}

func TestPlantingBlend(t *testing.T) {
	g := testAggregator(t)
	rec := entities.PlantingRecord{
		Season:          "MT-1",
		PlannedAreaHa:   100,
		RealizedAreaHa:  50, // area sub-score 50
		SupplyDischarge: 1, DemandDischarge: 1, // water 100
		YieldTonHa: 3, TargetYieldTon: 6, // yield 50
	}
	got := g.plantingScore([]entities.PlantingRecord{rec})
	assert.InDelta(t, 100*0.60+50*0.27+50*0.13, got, 1e-9)
}

func TestAssociationRuleTable(t *testing.T) {
	g := testAggregator(t)
	cases := []struct {
		rec  entities.AssociationRecord
		want float64
	}{
		{entities.AssociationRecord{LegalStatus: true, ActivityLevel: entities.ActivityActive}, 100},
		{entities.AssociationRecord{LegalStatus: true, ActivityLevel: entities.ActivityPartial}, 75},
		{entities.AssociationRecord{LegalStatus: true, ActivityLevel: entities.ActivityInactive}, 50},
		{entities.AssociationRecord{LegalStatus: false, ActivityLevel: entities.ActivityActive}, 50},
		{entities.AssociationRecord{}, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, g.associationScore([]entities.AssociationRecord{tc.rec}))
	}
}

func TestDocumentationPercentage(t *testing.T) {
	g := testAggregator(t)
	docs := []entities.DocumentRecord{
		{Present: true}, {Present: true}, {Present: false}, {Present: true},
	}
	assert.Equal(t, 75.0, g.documentScore(docs))
}

func TestStaffingCappedAtHundred(t *testing.T) {
	g := testAggregator(t)
	staff := []entities.StaffingRecord{{Position: "Juru", Count: 50}}
	// mandate: 1000 ha -> 7 staff; 50 actual overshoots, cap applies
	assert.Equal(t, 100.0, g.staffingScore(staff, 1000))
	// half the mandate scores half
	half := []entities.StaffingRecord{{Position: "Juru", Count: 7}}
	assert.InDelta(t, 50.0, g.staffingScore(half, 2000), 1e-9)
	// no service area, no mandate to compare against
	assert.Equal(t, 0.0, g.staffingScore(staff, 0))
}

func TestComputeWeightedTotal(t *testing.T) {
	g := testAggregator(t)
	in := Inputs{
		Assets: []AssetCondition{{
			DesignAreaHa:   500,
			CivilCondition: 80, MechCondition: 80, CivilFunction: 80, MechFunction: 80,
		}},
		TotalAreaHa: 500,
	}
	res := g.Compute(in)
	// only the physical pillar scores: 80 * 0.45
	assert.InDelta(t, 36.0, res.Total, 0.01)
}
