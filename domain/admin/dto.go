package admin

import (
	"github.com/votigram/waitlist-api/internal/models"
	"github.com/votigram/waitlist-api/pkg/constants"
)

type ListEntriesQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
}

type UpdateEntryRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type EntryResponse struct {
	ID            uint   `json:"id"`
	Email         string `json:"email"`
	TwitterHandle string `json:"twitterHandle"`
	Status        string `json:"status"`
	Position      int64  `json:"position"`
	Source        string `json:"source"`
	JoinedAt      string `json:"joinedAt"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type ListEntriesResponse struct {
	Entries    []EntryResponse `json:"entries"`
	Pagination Pagination      `json:"pagination"`
}

func ToEntryResponse(entry *models.WaitlistEntry) EntryResponse {
	if entry == nil {
		return EntryResponse{}
	}

	resp := EntryResponse{
		ID:            entry.ID,
		Email:         entry.Email,
		TwitterHandle: entry.TwitterHandle,
		Status:        entry.Status,
		Position:      entry.Position,
		Source:        entry.Source,
		JoinedAt:      entry.JoinedAt.Format(constants.RFC3339DateTimeFormat),
	}
	if entry.UpdatedAt != nil {
		resp.UpdatedAt = entry.UpdatedAt.Format(constants.RFC3339DateTimeFormat)
	}

	return resp
}
