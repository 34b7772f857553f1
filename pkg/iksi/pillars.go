package iksi

import (
	"math"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
)

// physicalScore is the service-area-weighted mean of each asset's combined
// condition/function value, falling back to an unweighted mean when no
// asset carries a design area.
func (g *Aggregator) physicalScore(assets []AssetCondition) float64 {
	if len(assets) == 0 {
		return 0
	}
	var weightedSum, areaSum, plainSum float64
	for _, a := range assets {
		k := math.Min(a.CivilCondition, a.MechCondition)
		f := math.Min(a.CivilFunction, a.MechFunction)
		value := (k + f) / 2
		weightedSum += value * a.DesignAreaHa
		areaSum += a.DesignAreaHa
		plainSum += value
	}
	if areaSum == 0 {
		return plainSum / float64(len(assets))
	}
	return weightedSum / areaSum
}

// plantingScore averages the per-season blend of water adequacy, realized
// planting and yield achievement.
func (g *Aggregator) plantingScore(records []entities.PlantingRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range records {
		water := g.waterAdequacyScore(r.FaktorK())
		area := ratioScore(r.RealizedAreaHa, r.PlannedAreaHa)
		yield := ratioScore(r.YieldTonHa, r.TargetYieldTon)
		sum += water*g.pol.PlantingWaterWeight +
			area*g.pol.PlantingAreaWeight +
			yield*g.pol.PlantingYieldWeight
	}
	return sum / float64(len(records))
}

// waterAdequacyScore maps faktor K onto the decree's discrete bands.
func (g *Aggregator) waterAdequacyScore(k float64) float64 {
	switch {
	case k >= 1.0:
		return g.pol.FaktorKFullScore
	case k >= g.pol.FaktorKGoodRatio:
		return g.pol.FaktorKGoodScore
	case k > 0:
		return g.pol.FaktorKPartialScore
	default:
		return 0
	}
}

func (g *Aggregator) facilityScore(records []entities.FacilityRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	ok := 0
	for _, r := range records {
		if r.Quantity > 0 && r.Adequate {
			ok++
		}
	}
	return float64(ok) / float64(len(records)) * 100
}

// staffingScore compares actual O&M personnel against the mandated
// headcount per 1000 ha of design area, capped at 100.
func (g *Aggregator) staffingScore(records []entities.StaffingRecord, totalAreaHa float64) float64 {
	if totalAreaHa <= 0 {
		return 0
	}
	mandated := totalAreaHa / 1000 * g.pol.StaffPer1000Ha
	if mandated <= 0 {
		return 0
	}
	actual := 0
	for _, r := range records {
		actual += r.Count
	}
	return math.Min(100, float64(actual)/mandated*100)
}

func (g *Aggregator) documentScore(records []entities.DocumentRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	present := 0
	for _, r := range records {
		if r.Present {
			present++
		}
	}
	return float64(present) / float64(len(records)) * 100
}

// associationScore grants half the marks for legal registration and the
// rest by activity level, averaged over all P3A on the scheme.
func (g *Aggregator) associationScore(records []entities.AssociationRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range records {
		s := 0.0
		if r.LegalStatus {
			s += g.pol.AssociationLegalScore
		}
		switch r.ActivityLevel {
		case entities.ActivityActive:
			s += g.pol.AssociationActiveScore
		case entities.ActivityPartial:
			s += g.pol.AssociationPartialScore
		}
		sum += s
	}
	return sum / float64(len(records))
}

// ratioScore turns achieved/target into a 0-100 value; no target means no
// score, and overshooting the target never scores above 100.
func ratioScore(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(100, actual/target*100)
}
