package dto

import (
	"time"

	"github.com/google/uuid"

	"cospace/internal/domains/workspace/model"
	"cospace/shared/constant"
	gModel "cospace/shared/model"
	"cospace/shared/timezone"
)

type CreateWorkspaceRequest struct {
	Number string `json:"number" validate:"required,max=20"`
	Type   string `json:"type"   validate:"required,max=50"`
}

func (c *CreateWorkspaceRequest) ToModel(user string) model.Workspace {
	return model.Workspace{
		ID:     uuid.NewString(),
		Number: c.Number,
		Type:   c.Type,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// AvailabilityWindow is the optional half-open interval a listing is checked
// against. Nil window means no occupancy is computed.
type AvailabilityWindow struct {
	StartTime time.Time
	EndTime   time.Time
}

type WorkspaceResponse struct {
	ID     string `json:"workspace_id"`
	Number string `json:"workspace_number"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

func (r *WorkspaceResponse) FromModel(workspace model.Workspace, booked bool) {
	r.ID = workspace.ID
	r.Number = workspace.Number
	r.Type = workspace.Type

	r.Status = constant.WorkspaceStatusAvailable
	if booked {
		r.Status = constant.WorkspaceStatusBooked
	}
}

type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

func (r *ListWorkspacesResponse) FromModels(models []model.Workspace, bookedIDs map[string]struct{}) {
	r.Workspaces = make([]WorkspaceResponse, len(models))
	for i, mod := range models {
		_, booked := bookedIDs[mod.ID]
		r.Workspaces[i].FromModel(mod, booked)
	}
}
