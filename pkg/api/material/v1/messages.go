// Package materialv1 declares the materials.v1 gRPC API. Messages travel
// with the "json" codec registered by this package.
package materialv1

// Project is the wire shape of a project.
type Project struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Material is the wire shape of a material. History is set by GetMaterial,
// UpdateMaterial and ConfirmMaterial only.
type Material struct {
	Id        string          `json:"id"`
	ProjectId string          `json:"project_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  float64         `json:"quantity"`
	Unit      string          `json:"unit"`
	Price     *float64        `json:"price"`
	Supplier  *string         `json:"supplier"`
	Status    string          `json:"status"`
	Ordered   bool            `json:"ordered"`
	Delivered bool            `json:"delivered"`
	Confirmed bool            `json:"confirmed"`
	CreatedBy string          `json:"created_by"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
	History   []*HistoryEntry `json:"history,omitempty"`
}

// HistoryEntry values are JSON scalars; null stands for a cleared field.
type HistoryEntry struct {
	Id          string      `json:"id"`
	Field       string      `json:"field"`
	OldValue    interface{} `json:"old_value"`
	NewValue    interface{} `json:"new_value"`
	ChangedAt   string      `json:"changed_at"`
	ChangedBy   string      `json:"changed_by"`
	Confirmed   bool        `json:"confirmed"`
	ConfirmedBy string      `json:"confirmed_by,omitempty"`
	ConfirmedAt string      `json:"confirmed_at,omitempty"`
}

type ProjectSummary struct {
	ProjectId          string `json:"project_id"`
	TotalMaterials     int32  `json:"total_materials"`
	PendingMaterials   int32  `json:"pending_materials"`
	OrderedMaterials   int32  `json:"ordered_materials"`
	DeliveredMaterials int32  `json:"delivered_materials"`
	RecentChanges      int32  `json:"recent_changes"`
	TotalCost          string `json:"total_cost"`
	PendingCost        string `json:"pending_cost"`
	OrderedCost        string `json:"ordered_cost"`
	DeliveredCost      string `json:"delivered_cost"`
	UnpricedMaterials  int32  `json:"unpriced_materials"`
}

type CreateProjectRequest struct {
	Name         string `json:"name"`
	Status       string `json:"status,omitempty"`
	ActingUserId string `json:"acting_user_id"`
}

type CreateProjectReply struct {
	ProjectId string `json:"project_id"`
}

type GetProjectRequest struct {
	ProjectId string `json:"project_id"`
}

type GetProjectReply struct {
	Project *Project `json:"project"`
}

type CreateMaterialRequest struct {
	ProjectId    string   `json:"project_id"`
	Name         string   `json:"name"`
	Category     string   `json:"category,omitempty"`
	Quantity     float64  `json:"quantity"`
	Unit         string   `json:"unit,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Supplier     string   `json:"supplier,omitempty"`
	Status       string   `json:"status,omitempty"`
	ActingUserId string   `json:"acting_user_id"`
}

type CreateMaterialReply struct {
	MaterialId string `json:"material_id"`
}

// UpdateMaterialRequest carries a partial update keyed by field name.
// A null value clears price or supplier.
type UpdateMaterialRequest struct {
	MaterialId   string                 `json:"material_id"`
	Changes      map[string]interface{} `json:"changes"`
	ActingUserId string                 `json:"acting_user_id"`
}

type UpdateMaterialReply struct {
	Material *Material `json:"material"`
}

type ConfirmMaterialRequest struct {
	MaterialId   string `json:"material_id"`
	ActingUserId string `json:"acting_user_id"`
}

type ConfirmMaterialReply struct {
	Material *Material `json:"material"`
}

type GetMaterialRequest struct {
	MaterialId string `json:"material_id"`
}

type GetMaterialReply struct {
	Material *Material `json:"material"`
}

type ListMaterialsRequest struct {
	ProjectId string  `json:"project_id"`
	Status    *string `json:"status,omitempty"`
	PageSize  int32   `json:"page_size,omitempty"`
	PageToken string  `json:"page_token,omitempty"`
}

type ListMaterialsReply struct {
	Materials     []*Material `json:"materials"`
	NextPageToken string      `json:"next_page_token,omitempty"`
}

type GetProjectSummaryRequest struct {
	ProjectId string `json:"project_id"`
}

type GetProjectSummaryReply struct {
	Summary *ProjectSummary `json:"summary"`
}

type GetChangeSummaryRequest struct {
	MaterialId string `json:"material_id"`
}

type GetChangeSummaryReply struct {
	MaterialId     string `json:"material_id"`
	Summary        string `json:"summary"`
	PendingChanges int32  `json:"pending_changes"`
}
