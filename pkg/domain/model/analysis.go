package model

import "github.com/m-mizutani/devmemory/pkg/domain/types"

// AnalysisResult reports the outcome of one batch analysis run.
type AnalysisResult struct {
	RunID   string
	Days    int
	Scanned int
	Skipped int
	Found   int
	Saved   int
	Failed  int
	ByType  map[types.DecisionType]int
}
