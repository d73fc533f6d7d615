package domain

import "github.com/google/uuid"

// Identifier prefixes by entity type.
const (
	ProjectIDPrefix  = "prj_"
	MaterialIDPrefix = "mat_"
	HistoryIDPrefix  = "hist_"
)

// NewProjectID returns a fresh project identifier.
func NewProjectID() string { return ProjectIDPrefix + uuid.New().String() }

// NewMaterialID returns a fresh material identifier.
func NewMaterialID() string { return MaterialIDPrefix + uuid.New().String() }

// NewHistoryID returns a fresh history entry identifier.
func NewHistoryID() string { return HistoryIDPrefix + uuid.New().String() }
