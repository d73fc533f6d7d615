package m_project

// Field constants for the projects table.
const (
	TableName = "projects"

	ColProjectID = "project_id"
	ColName      = "name"
	ColStatus    = "status"
	ColCreatedBy = "created_by"
	ColCreatedAt = "created_at"
	ColUpdatedAt = "updated_at"
)
