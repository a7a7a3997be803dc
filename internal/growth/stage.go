package growth

// Stage is the phenological state machine derived from dvs and health.
type Stage uint8

const (
	StageSeed Stage = iota
	StageSeedling
	StageVegetative
	StageFlowering
	StageHarvest
	StageDead
)

// Name returns a human-readable stage name.
func (s Stage) Name() string {
	switch s {
	case StageSeed:
		return "SEED"
	case StageSeedling:
		return "SEEDLING"
	case StageVegetative:
		return "VEGETATIVE"
	case StageFlowering:
		return "FLOWERING"
	case StageHarvest:
		return "HARVEST"
	case StageDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// Stage thresholds on the dvs clock. Flowering begins at dvs 1.0 by
// definition; harvest readiness a little before full maturity at 2.0.
const (
	seedlingDVS   = 0.15
	vegetativeDVS = 0.40
	floweringDVS  = 1.0
	harvestDVS    = 1.8
)

// DeriveStage maps dvs and health to a stage. Zero health always yields
// StageDead regardless of dvs; the orchestrator keeps DEAD absorbing
// across days until an explicit harvest/replant.
func DeriveStage(dvs, health float64) Stage {
	if health <= 0 {
		return StageDead
	}
	switch {
	case dvs < seedlingDVS:
		return StageSeed
	case dvs < vegetativeDVS:
		return StageSeedling
	case dvs < floweringDVS:
		return StageVegetative
	case dvs < harvestDVS:
		return StageFlowering
	default:
		return StageHarvest
	}
}
