package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartSummary is the per-part line of a run Summary (§6).
type PartSummary struct {
	Part              Part
	GrossRequirements decimal.Decimal
	ScheduledReceipts decimal.Decimal
	ProjectedBalance  decimal.Decimal
	NetRequirements   decimal.Decimal
	FirstPlannedQty   decimal.Decimal
	FirstPlannedDate  time.Time
	RescheduleCount   int
}

// Summary is returned from a completed run.
type Summary struct {
	RunTime           time.Duration
	Parameters        Config
	PlannedOrderCount int
	TotalPlannedQty   decimal.Decimal
	PartSummaries     []PartSummary
}

// Parameters is the audited record of a run's configuration, persisted
// through the storage adapter's write side (§6 Audit).
type Parameters struct {
	RunID                  string
	RunAt                  time.Time
	UseMrpDemands          string
	UseReorderLevelDemands string
	UseEOQ                 string
	UsePanSize             string
	UseShrinkage           string
	LeewayDays             int
	Locations              string
}

// yn renders a bool as the audit row's "y"/"n" convention.
func yn(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

// NewParameters builds the audit Parameters row for a run, joining the
// location filter and rendering flags as y/n per §6.
func NewParameters(runID string, runAt time.Time, cfg Config, locationsJoined string) Parameters {
	return Parameters{
		RunID:                  runID,
		RunAt:                  runAt,
		UseMrpDemands:          yn(cfg.UseMrpDemands),
		UseReorderLevelDemands: yn(cfg.UseReorderLevelDemands),
		UseEOQ:                 yn(cfg.UseEOQ),
		UsePanSize:             yn(cfg.UsePanSize),
		UseShrinkage:           yn(cfg.UseShrinkage),
		LeewayDays:             cfg.LeewayDays,
		Locations:              locationsJoined,
	}
}
