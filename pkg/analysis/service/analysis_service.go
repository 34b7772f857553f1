package service

import (
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/iksi"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/priority"
)

// AnalysisService runs the two headline computations over the stored data.
type AnalysisService interface {
	RankPriorities() (priority.Ranking, error)
	ComputeIKSI() (iksi.Result, error)
}
