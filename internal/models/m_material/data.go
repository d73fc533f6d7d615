package m_material

import (
	"time"

	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// InsertWrite builds an insert for a material using a map of values.
// Expected keys are the column names declared in fields.go.
func InsertWrite(values map[string]interface{}) *commitplan.Write {
	return &commitplan.Write{Op: commitplan.OpInsert, Table: TableName, KeyColumn: ColMaterialID, Values: values}
}

// UpdateWrite builds an update for a material.
// The values map should NOT include the material_id key (we accept materialID separately).
func UpdateWrite(materialID string, values map[string]interface{}) *commitplan.Write {
	row := make(map[string]interface{}, len(values)+1)
	for col, v := range values {
		row[col] = v
	}
	row[ColMaterialID] = materialID
	return &commitplan.Write{Op: commitplan.OpUpdate, Table: TableName, KeyColumn: ColMaterialID, Values: row}
}

// BuildInsertMap prepares the canonical fields for insertion.
// Optional price and supplier are stored as NULL when absent.
func BuildInsertMap(materialID, projectID, name, category string, quantity float64, unit string,
	price *float64, supplier string, status string, confirmed bool, createdBy string,
	createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColMaterialID: materialID,
		ColProjectID:  projectID,
		ColName:       name,
		ColCategory:   category,
		ColQuantity:   quantity,
		ColUnit:       unit,
		ColStatus:     status,
		ColConfirmed:  confirmed,
		ColCreatedBy:  createdBy,
		ColCreatedAt:  createdAt,
		ColUpdatedAt:  updatedAt,
	}

	if price != nil {
		m[ColPrice] = *price
	} else {
		m[ColPrice] = nil
	}

	if supplier != "" {
		m[ColSupplier] = supplier
	} else {
		m[ColSupplier] = nil
	}

	return m
}
