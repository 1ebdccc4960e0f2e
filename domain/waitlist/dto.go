package waitlist

import (
	"github.com/votigram/waitlist-api/internal/models"
	"github.com/votigram/waitlist-api/pkg/constants"
)

type JoinWaitlistRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Username string `json:"username" binding:"required,max=64"`
}

// ConfirmationResponse is the payload returned after a successful admission.
type ConfirmationResponse struct {
	TwitterHandle       string `json:"twitterHandle"`
	Position            int64  `json:"position"`
	JoinedAt            string `json:"joinedAt"`
	EstimatedAccessDate string `json:"estimatedAccessDate"`
}

func ToConfirmationResponse(entry *models.WaitlistEntry) ConfirmationResponse {
	if entry == nil {
		return ConfirmationResponse{}
	}
	return ConfirmationResponse{
		TwitterHandle:       entry.TwitterHandle,
		Position:            entry.Position,
		JoinedAt:            entry.JoinedAt.Format(constants.RFC3339DateTimeFormat),
		EstimatedAccessDate: estimatedAccessDate(entry).Format(constants.RFC3339DateTimeFormat),
	}
}
