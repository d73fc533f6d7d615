package m_history

// Field constants for the material_history table.
const (
	TableName = "material_history"

	ColHistoryID   = "history_id"
	ColMaterialID  = "material_id"
	ColSeq         = "seq"
	ColField       = "field"
	ColOldKind     = "old_kind"
	ColOldValue    = "old_value"
	ColNewKind     = "new_kind"
	ColNewValue    = "new_value"
	ColChangedAt   = "changed_at"
	ColChangedBy   = "changed_by"
	ColConfirmed   = "confirmed"
	ColConfirmedBy = "confirmed_by"
	ColConfirmedAt = "confirmed_at"
)
