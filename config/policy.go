package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Policy carries the regulatory scoring constants (Permen PUPR figures).
// They change by ministerial decree, not by code change, so every one of
// them can be overridden through a policy file or SIKI_* env vars.
type Policy struct {
	// Volume-weighted condition scorer (§ condition weights).
	ConditionWeightGood  float64
	ConditionWeightLight float64
	ConditionWeightHeavy float64

	// Urgency formula.
	UrgencyDamageWeight   float64 // pillar weight on (100-K)
	UrgencyFunctionWeight float64 // pillar weight on the function term
	UrgencyFunctionFactor float64 // super-linear factor on (100-F)

	// Urgency class thresholds, strictly descending.
	ThresholdEmergency float64
	ThresholdUrgent    float64
	ThresholdAttention float64

	// IKSI pillar weights, sum to 1.0.
	WeightPhysical      float64
	WeightPlanting      float64
	WeightFacilities    float64
	WeightStaffing      float64
	WeightDocumentation float64
	WeightAssociation   float64

	// Faktor-K water adequacy bands.
	FaktorKFullScore    float64 // ratio >= 1.0
	FaktorKGoodRatio    float64
	FaktorKGoodScore    float64
	FaktorKPartialScore float64 // any positive ratio below the good band

	// Planting pillar blend of water / realized-area / yield sub-scores.
	PlantingWaterWeight float64
	PlantingAreaWeight  float64
	PlantingYieldWeight float64

	// Association scoring.
	AssociationLegalScore    float64
	AssociationActiveScore   float64
	AssociationPartialScore  float64

	// Mandated O&M personnel per 1000 ha of design service area.
	StaffPer1000Ha float64
}

// LoadPolicy reads the policy file at path (optional) on top of the decree
// defaults, with SIKI_* environment overrides taking highest precedence.
func LoadPolicy(path string) (Policy, error) {
	v := viper.New()

	v.SetDefault("condition.weight_good", 100.0)
	v.SetDefault("condition.weight_light", 70.0)
	v.SetDefault("condition.weight_heavy", 50.0)

	v.SetDefault("urgency.damage_weight", 0.4)
	v.SetDefault("urgency.function_weight", 0.6)
	v.SetDefault("urgency.function_factor", 1.5)
	v.SetDefault("urgency.threshold_emergency", 200.0)
	v.SetDefault("urgency.threshold_urgent", 100.0)
	v.SetDefault("urgency.threshold_attention", 50.0)

	v.SetDefault("iksi.weight_physical", 0.45)
	v.SetDefault("iksi.weight_planting", 0.15)
	v.SetDefault("iksi.weight_facilities", 0.10)
	v.SetDefault("iksi.weight_staffing", 0.15)
	v.SetDefault("iksi.weight_documentation", 0.05)
	v.SetDefault("iksi.weight_association", 0.10)

	v.SetDefault("planting.faktor_k_full_score", 100.0)
	v.SetDefault("planting.faktor_k_good_ratio", 0.7)
	v.SetDefault("planting.faktor_k_good_score", 80.0)
	v.SetDefault("planting.faktor_k_partial_score", 60.0)
	v.SetDefault("planting.water_weight", 0.60)
	v.SetDefault("planting.area_weight", 0.27)
	v.SetDefault("planting.yield_weight", 0.13)

	v.SetDefault("association.legal_score", 50.0)
	v.SetDefault("association.active_score", 50.0)
	v.SetDefault("association.partial_score", 25.0)

	v.SetDefault("staffing.per_1000_ha", 7.0)

	v.SetEnvPrefix("SIKI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Policy{}, fmt.Errorf("read policy file %s: %w", path, err)
		}
	}

	p := Policy{
		ConditionWeightGood:  v.GetFloat64("condition.weight_good"),
		ConditionWeightLight: v.GetFloat64("condition.weight_light"),
		ConditionWeightHeavy: v.GetFloat64("condition.weight_heavy"),

		UrgencyDamageWeight:   v.GetFloat64("urgency.damage_weight"),
		UrgencyFunctionWeight: v.GetFloat64("urgency.function_weight"),
		UrgencyFunctionFactor: v.GetFloat64("urgency.function_factor"),
		ThresholdEmergency:    v.GetFloat64("urgency.threshold_emergency"),
		ThresholdUrgent:       v.GetFloat64("urgency.threshold_urgent"),
		ThresholdAttention:    v.GetFloat64("urgency.threshold_attention"),

		WeightPhysical:      v.GetFloat64("iksi.weight_physical"),
		WeightPlanting:      v.GetFloat64("iksi.weight_planting"),
		WeightFacilities:    v.GetFloat64("iksi.weight_facilities"),
		WeightStaffing:      v.GetFloat64("iksi.weight_staffing"),
		WeightDocumentation: v.GetFloat64("iksi.weight_documentation"),
		WeightAssociation:   v.GetFloat64("iksi.weight_association"),

		FaktorKFullScore:    v.GetFloat64("planting.faktor_k_full_score"),
		FaktorKGoodRatio:    v.GetFloat64("planting.faktor_k_good_ratio"),
		FaktorKGoodScore:    v.GetFloat64("planting.faktor_k_good_score"),
		FaktorKPartialScore: v.GetFloat64("planting.faktor_k_partial_score"),
		PlantingWaterWeight: v.GetFloat64("planting.water_weight"),
		PlantingAreaWeight:  v.GetFloat64("planting.area_weight"),
		PlantingYieldWeight: v.GetFloat64("planting.yield_weight"),

		AssociationLegalScore:   v.GetFloat64("association.legal_score"),
		AssociationActiveScore:  v.GetFloat64("association.active_score"),
		AssociationPartialScore: v.GetFloat64("association.partial_score"),

		StaffPer1000Ha: v.GetFloat64("staffing.per_1000_ha"),
	}

	sum := p.WeightPhysical + p.WeightPlanting + p.WeightFacilities +
		p.WeightStaffing + p.WeightDocumentation + p.WeightAssociation
	if sum < 0.999 || sum > 1.001 {
		return Policy{}, fmt.Errorf("iksi pillar weights sum to %.4f, want 1.0", sum)
	}
	if p.ThresholdEmergency <= p.ThresholdUrgent || p.ThresholdUrgent <= p.ThresholdAttention {
		return Policy{}, fmt.Errorf("urgency thresholds must be strictly descending")
	}
	return p, nil
}
