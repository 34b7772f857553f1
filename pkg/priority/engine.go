// Package priority ranks inspected assets by repair urgency.
package priority

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/config"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/scoring"
)

// Urgency classes, highest first.
const (
	ClassEmergency = "Emergency"
	ClassUrgent    = "Urgent"
	ClassAttention = "Needs Attention"
	ClassRoutine   = "Routine"
)

type RankedAsset struct {
	AssetID        uint      `json:"asset_id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	InspectionDate time.Time `json:"inspection_date"`
	Condition      float64   `json:"condition"` // K, worse of civil/mech condition
	Function       float64   `json:"function"`  // F, worse of civil/mech function
	ImpactedAreaHa float64   `json:"impacted_area_ha"`
	Urgency        float64   `json:"urgency"`
	Class          string    `json:"class"`
}

// Ranking splits scored assets from those that cannot be scored yet.
// Uninspected assets land in Pending, never as a silent zero.
type Ranking struct {
	Ranked  []RankedAsset    `json:"ranked"`
	Pending []entities.Asset `json:"pending_inspection"`
}

type Engine struct {
	pol config.Policy
}

func New(p config.Policy) *Engine { return &Engine{pol: p} }

// Rank joins each asset with its most recent inspection and orders the
// result by descending urgency. Ties break by impacted area descending,
// then asset code ascending, so re-running on unchanged input yields an
// identical ordering.
func (e *Engine) Rank(assets []entities.Asset, inspections []entities.Inspection) (Ranking, error) {
	latest := latestPerAsset(inspections)

	var out Ranking
	for _, a := range assets {
		ins, ok := latest[a.AssetID]
		if !ok {
			out.Pending = append(out.Pending, a)
			continue
		}
		r, err := e.score(a, ins)
		if err != nil {
			return Ranking{}, fmt.Errorf("asset %s (%s): %w", a.Code, a.Name, err)
		}
		out.Ranked = append(out.Ranked, r)
	}

	sort.SliceStable(out.Ranked, func(i, j int) bool {
		a, b := out.Ranked[i], out.Ranked[j]
		if a.Urgency != b.Urgency {
			return a.Urgency > b.Urgency
		}
		if a.ImpactedAreaHa != b.ImpactedAreaHa {
			return a.ImpactedAreaHa > b.ImpactedAreaHa
		}
		return a.Code < b.Code
	})
	sort.SliceStable(out.Pending, func(i, j int) bool {
		return out.Pending[i].Code < out.Pending[j].Code
	})
	return out, nil
}

func (e *Engine) score(a entities.Asset, ins entities.Inspection) (RankedAsset, error) {
	for name, v := range map[string]float64{
		"civil_condition": ins.CivilCondition,
		"mech_condition":  ins.MechCondition,
		"civil_function":  ins.CivilFunction,
		"mech_function":   ins.MechFunction,
	} {
		if v < 0 || v > 100 {
			return RankedAsset{}, fmt.Errorf("%w: %s=%.2f outside [0,100]",
				entities.ErrInvalidInput, name, v)
		}
	}
	if ins.ImpactedAreaHa < 0 {
		return RankedAsset{}, fmt.Errorf("%w: impacted area %.2f ha is negative",
			entities.ErrInvalidInput, ins.ImpactedAreaHa)
	}

	// Bottleneck rule: an intact structure with a jammed gate is still
	// non-functional, so each axis takes the worse subsystem.
	k := math.Min(ins.CivilCondition, ins.MechCondition)
	f := math.Min(ins.CivilFunction, ins.MechFunction)

	urgency := scoring.Round2(e.urgency(k, f, ins.ImpactedAreaHa))
	return RankedAsset{
		AssetID:        a.AssetID,
		Code:           a.Code,
		Name:           a.Name,
		InspectionDate: ins.Date,
		Condition:      k,
		Function:       f,
		ImpactedAreaHa: ins.ImpactedAreaHa,
		Urgency:        urgency,
		Class:          e.Classify(urgency),
	}, nil
}

func (e *Engine) urgency(k, f, areaHa float64) float64 {
	// log10 damping keeps a 10,000 ha asset from drowning out a 100 ha one.
	impact := 0.0
	if areaHa > 0 {
		impact = math.Log10(areaHa + 1)
	}
	damageTerm := (100 - k) * e.pol.UrgencyDamageWeight
	functionTerm := (100 - f) * e.pol.UrgencyFunctionFactor * e.pol.UrgencyFunctionWeight
	return (damageTerm + functionTerm) * impact
}

func (e *Engine) Classify(urgency float64) string {
	switch {
	case urgency > e.pol.ThresholdEmergency:
		return ClassEmergency
	case urgency > e.pol.ThresholdUrgent:
		return ClassUrgent
	case urgency > e.pol.ThresholdAttention:
		return ClassAttention
	default:
		return ClassRoutine
	}
}

// latestPerAsset picks the newest inspection per asset; equal dates break
// by the higher row id since rows are append-only.
func latestPerAsset(inspections []entities.Inspection) map[uint]entities.Inspection {
	latest := make(map[uint]entities.Inspection, len(inspections))
	for _, ins := range inspections {
		cur, ok := latest[ins.AssetID]
		if !ok || ins.Date.After(cur.Date) ||
			(ins.Date.Equal(cur.Date) && ins.InspectionID > cur.InspectionID) {
			latest[ins.AssetID] = ins
		}
	}
	return latest
}
