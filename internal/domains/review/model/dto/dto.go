package dto

import (
	"github.com/google/uuid"

	"cospace/internal/domains/review/model"
	gModel "cospace/shared/model"
	"cospace/shared/timezone"
)

type CreateReviewRequest struct {
	WorkspaceID string `json:"workspace_id" validate:"required"`
	Rating      int    `json:"rating"       validate:"required,min=1,max=5"`
	Comment     string `json:"comment"      validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(user string) model.Review {
	return model.Review{
		ID:          uuid.NewString(),
		UserID:      user,
		WorkspaceID: c.WorkspaceID,
		Rating:      c.Rating,
		Comment:     c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReviewRequest struct {
	Rating  int    `db:"rating"  json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment string `db:"comment" json:"comment" validate:"omitempty,max=1000"`
}

type ReviewResponse struct {
	ID          string `json:"review_id"`
	UserID      string `json:"user_id"`
	WorkspaceID string `json:"workspace_id"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment,omitempty"`
}

func (r *ReviewResponse) FromModel(mod model.Review) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.WorkspaceID = mod.WorkspaceID
	r.Rating = mod.Rating
	r.Comment = mod.Comment
}

type GetReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review) {
	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
