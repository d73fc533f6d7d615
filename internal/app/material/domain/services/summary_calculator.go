package services

import (
	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
)

// ProjectSummary holds the material counts shown on project list and detail views.
type ProjectSummary struct {
	TotalMaterials     int
	PendingMaterials   int
	OrderedMaterials   int
	DeliveredMaterials int
	// RecentChanges counts materials that carry unconfirmed changes.
	RecentChanges int
}

// SummaryCalculator is a domain service that derives aggregate counts from a project's materials.
// Domain services are used when business logic doesn't naturally fit within a single aggregate.
type SummaryCalculator struct{}

// NewSummaryCalculator creates a new SummaryCalculator instance.
func NewSummaryCalculator() *SummaryCalculator {
	return &SummaryCalculator{}
}

// Summarize counts the project's materials by status and confirmation state.
// A nil project or one without materials yields all zeros.
func (sc *SummaryCalculator) Summarize(project *domain.Project) ProjectSummary {
	return sc.SummarizeMaterials(project.Materials())
}

// SummarizeMaterials is Summarize over a bare material collection.
func (sc *SummaryCalculator) SummarizeMaterials(materials []domain.Material) ProjectSummary {
	var s ProjectSummary
	for _, m := range materials {
		s.TotalMaterials++
		switch m.Status() {
		case domain.MaterialStatusPending:
			s.PendingMaterials++
		case domain.MaterialStatusOrdered:
			s.OrderedMaterials++
		case domain.MaterialStatusDelivered:
			s.DeliveredMaterials++
		}
		if !m.Confirmed() {
			s.RecentChanges++
		}
	}
	return s
}
