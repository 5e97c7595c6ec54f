package handler

import (
	"time"

	"ferry/internal/court/models"
	"ferry/internal/court/service"
	"ferry/pkg/domain"
)

type accusationResponse struct {
	ID        domain.AccusationID `json:"id"`
	Quote     string              `json:"quote"`
	Suspect   domain.PersonID     `json:"suspect"`
	CreatedBy domain.PersonID     `json:"created_by"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func renderAccusation(a models.Accusation) accusationResponse {
	return accusationResponse{
		ID:        a.ID,
		Quote:     a.Quote,
		Suspect:   a.Suspect,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func renderAccusations(accusations []models.Accusation) []accusationResponse {
	out := make([]accusationResponse, 0, len(accusations))
	for _, a := range accusations {
		out = append(out, renderAccusation(a))
	}
	return out
}

type ratificationResponse struct {
	ID          domain.RatificationID `json:"id"`
	Accusation  domain.AccusationID   `json:"accusation"`
	Consequence domain.ConsequenceID  `json:"consequence"`
	CreatedBy   domain.PersonID       `json:"created_by"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func renderRatification(r models.Ratification) ratificationResponse {
	return ratificationResponse{
		ID:          r.ID,
		Accusation:  r.Accusation,
		Consequence: r.Consequence,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type consequenceResponse struct {
	ID        domain.ConsequenceID `json:"id"`
	Content   string               `json:"content"`
	IsEnabled bool                 `json:"is_enabled"`
	CreatedBy domain.PersonID      `json:"created_by"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func renderConsequence(c models.Consequence) consequenceResponse {
	return consequenceResponse{
		ID:        c.ID,
		Content:   c.Content,
		IsEnabled: c.IsEnabled,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func renderConsequences(consequences []models.Consequence) []consequenceResponse {
	out := make([]consequenceResponse, 0, len(consequences))
	for _, c := range consequences {
		out = append(out, renderConsequence(c))
	}
	return out
}

type personResponse struct {
	ID          domain.PersonID `json:"id"`
	DisplayName string          `json:"display_name"`
	ExternalID  *int64          `json:"external_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func renderPerson(p models.Person) personResponse {
	return personResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		ExternalID:  p.ExternalID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type personSummaryResponse struct {
	personResponse
	CurrentScore            domain.Score `json:"current_score"`
	NumRatifiedAccusations  int          `json:"num_ratified_accusations"`
	Rank                    int          `json:"rank"`
	Train                   string       `json:"train"`
}

func renderPersonSummary(s service.PersonSummary) personSummaryResponse {
	return personSummaryResponse{
		personResponse:         renderPerson(s.Person),
		CurrentScore:           s.Score,
		NumRatifiedAccusations: s.RatifiedCount,
		Rank:                   s.Rank,
		Train:                  s.Train,
	}
}

func renderPersonSummaries(summaries []service.PersonSummary) []personSummaryResponse {
	out := make([]personSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, renderPersonSummary(s))
	}
	return out
}
