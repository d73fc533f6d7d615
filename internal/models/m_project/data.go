package m_project

import (
	"time"

	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// BuildInsertMap prepares the canonical fields for insertion.
func BuildInsertMap(projectID, name, status, createdBy string, createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColProjectID: projectID,
		ColName:      name,
		ColStatus:    status,
		ColCreatedBy: createdBy,
		ColCreatedAt: createdAt,
		ColUpdatedAt: updatedAt,
	}
}

// InsertWrite builds an insert for a project row.
func InsertWrite(values map[string]interface{}) *commitplan.Write {
	return &commitplan.Write{Op: commitplan.OpInsert, Table: TableName, KeyColumn: ColProjectID, Values: values}
}
