package dto

// ProjectDTO contains project fields returned by read queries.
// Timestamps use *string (RFC3339) to mirror how they come from
// Spanner/SQL. Use utils helpers to parse them into time.Time.
type ProjectDTO struct {
	ProjectID string
	Name      string
	Status    string
	CreatedBy string
	CreatedAt *string
	UpdatedAt *string
}

// MaterialDTO contains full material fields returned by read queries.
type MaterialDTO struct {
	MaterialID string
	ProjectID  string
	Name       string
	Category   string
	Quantity   float64
	Unit       string
	Price      *float64
	Supplier   *string
	Status     string
	Confirmed  bool
	CreatedBy  string
	CreatedAt  *string
	UpdatedAt  *string

	// History is populated by GetMaterial only.
	History []*HistoryDTO
}

// HistoryDTO is one persisted change record. Values are stored as a
// (kind, raw) pair, see domain.Value.Encode.
type HistoryDTO struct {
	HistoryID   string
	MaterialID  string
	Seq         int64
	Field       string
	OldKind     string
	OldValue    string
	NewKind     string
	NewValue    string
	ChangedAt   *string
	ChangedBy   string
	Confirmed   bool
	ConfirmedBy *string
	ConfirmedAt *string
}

// ProjectSummaryDTO is returned by the project summary query.
type ProjectSummaryDTO struct {
	ProjectID          string
	TotalMaterials     int
	PendingMaterials   int
	OrderedMaterials   int
	DeliveredMaterials int
	RecentChanges      int

	// Cost figures are decimal strings.
	TotalCost       string
	PendingCost     string
	OrderedCost     string
	DeliveredCost   string
	UnpricedEntries int
}
