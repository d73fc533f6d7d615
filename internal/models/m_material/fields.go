package m_material

// Field constants for the materials table.
const (
	TableName = "materials"

	ColMaterialID = "material_id"
	ColProjectID  = "project_id"
	ColName       = "name"
	ColCategory   = "category"
	ColQuantity   = "quantity"
	ColUnit       = "unit"
	ColPrice      = "price"
	ColSupplier   = "supplier"
	ColStatus     = "status"
	ColConfirmed  = "confirmed"
	ColCreatedBy  = "created_by"
	ColCreatedAt  = "created_at"
	ColUpdatedAt  = "updated_at"
)
