package material

import (
	"fmt"

	materialv1 "github.com/murkotick/material-tracking-service/pkg/api/material/v1"
)

func validateCreateProject(req *materialv1.CreateProjectRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.ActingUserId == "" {
		return fmt.Errorf("acting_user_id is required")
	}
	return nil
}

func validateCreateMaterial(req *materialv1.CreateMaterialRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.ProjectId == "" {
		return fmt.Errorf("project_id is required")
	}
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.ActingUserId == "" {
		return fmt.Errorf("acting_user_id is required")
	}
	return nil
}

func validateUpdateMaterial(req *materialv1.UpdateMaterialRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.MaterialId == "" {
		return fmt.Errorf("material_id is required")
	}
	if req.ActingUserId == "" {
		return fmt.Errorf("acting_user_id is required")
	}
	// At least one field should be present
	if len(req.Changes) == 0 {
		return fmt.Errorf("at least one change must be provided")
	}
	return nil
}

func validateConfirmMaterial(req *materialv1.ConfirmMaterialRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.MaterialId == "" {
		return fmt.Errorf("material_id is required")
	}
	if req.ActingUserId == "" {
		return fmt.Errorf("acting_user_id is required")
	}
	return nil
}
