package serviceImp

import (
	"go.uber.org/zap"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/analysis/service"
	assetRepo "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repository"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/iksi"
	inspRepo "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/inspection/repository"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/priority"
	supRepo "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/supporting/repository"
)

type analysisSvc struct {
	assets      assetRepo.AssetRepository
	inspections inspRepo.InspectionRepository
	supporting  supRepo.SupportingRepository
	engine      *priority.Engine
	aggregator  *iksi.Aggregator
	log         *zap.Logger
}

func New(
	assets assetRepo.AssetRepository,
	inspections inspRepo.InspectionRepository,
	supporting supRepo.SupportingRepository,
	engine *priority.Engine,
	aggregator *iksi.Aggregator,
	log *zap.Logger,
) service.AnalysisService {
	return &analysisSvc{
		assets:      assets,
		inspections: inspections,
		supporting:  supporting,
		engine:      engine,
		aggregator:  aggregator,
		log:         log,
	}
}

func (s *analysisSvc) RankPriorities() (priority.Ranking, error) {
	assets, err := s.assets.List()
	if err != nil {
		return priority.Ranking{}, err
	}
	latest, err := s.inspections.LatestPerAsset()
	if err != nil {
		return priority.Ranking{}, err
	}
	ranking, err := s.engine.Rank(assets, latest)
	if err != nil {
		return priority.Ranking{}, err
	}
	s.log.Info("priority ranking computed",
		zap.Int("ranked", len(ranking.Ranked)),
		zap.Int("pending_inspection", len(ranking.Pending)))
	return ranking, nil
}

func (s *analysisSvc) ComputeIKSI() (iksi.Result, error) {
	assets, err := s.assets.List()
	if err != nil {
		return iksi.Result{}, err
	}
	latest, err := s.inspections.LatestPerAsset()
	if err != nil {
		return iksi.Result{}, err
	}

	byAsset := make(map[uint]entities.Inspection, len(latest))
	for _, ins := range latest {
		byAsset[ins.AssetID] = ins
	}

	in := iksi.Inputs{}
	for _, a := range assets {
		in.TotalAreaHa += a.DesignAreaHa
		ins, ok := byAsset[a.AssetID]
		if !ok {
			continue // uninspected assets carry no physical-pillar value
		}
		in.Assets = append(in.Assets, iksi.AssetCondition{
			AssetID:        a.AssetID,
			DesignAreaHa:   a.DesignAreaHa,
			CivilCondition: ins.CivilCondition,
			MechCondition:  ins.MechCondition,
			CivilFunction:  ins.CivilFunction,
			MechFunction:   ins.MechFunction,
		})
	}

	if in.Planting, err = s.supporting.ListPlanting(); err != nil {
		return iksi.Result{}, err
	}
	if in.Facilities, err = s.supporting.ListFacilities(); err != nil {
		return iksi.Result{}, err
	}
	if in.Staffing, err = s.supporting.ListStaffing(); err != nil {
		return iksi.Result{}, err
	}
	if in.Documents, err = s.supporting.ListDocuments(); err != nil {
		return iksi.Result{}, err
	}
	if in.Associations, err = s.supporting.ListAssociations(); err != nil {
		return iksi.Result{}, err
	}

	res := s.aggregator.Compute(in)
	s.log.Info("iksi computed", zap.Float64("total", res.Total))
	return res, nil
}
