package rest

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"sedrouting/internal/domain"
	"sedrouting/pkg/platform/sentinel"
)

// LegacyCaseClient implements ports.LegacyCaseLookup against the upstream
// pension system.
type LegacyCaseClient struct {
	client
}

func NewLegacyCaseClient(baseURL string, tokens *TokenProvider) *LegacyCaseClient {
	return &LegacyCaseClient{client: newClient(baseURL, tokens)}
}

type legacyCasePayload struct {
	ID         string   `json:"sakId"`
	Type       string   `json:"sakType"`
	Status     string   `json:"sakStatus"`
	OwningUnit string   `json:"owningUnit"`
	SubCases   []string `json:"subCases"`
}

// CasesForPerson returns the person's legacy case records. A person with
// no cases is an empty list.
func (c *LegacyCaseClient) CasesForPerson(ctx context.Context, id domain.NationalID) ([]domain.LegacyCase, error) {
	var payload []legacyCasePayload
	err := c.getJSON(ctx, "/persons/"+url.PathEscape(id.String())+"/cases", &payload)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup legacy cases: %w", err)
	}

	out := make([]domain.LegacyCase, 0, len(payload))
	for _, p := range payload {
		out = append(out, domain.LegacyCase{
			ID:         p.ID,
			Type:       domain.BenefitType(p.Type),
			Status:     domain.CaseStatus(p.Status),
			OwningUnit: domain.OrgUnit(p.OwningUnit),
			SubCases:   p.SubCases,
		})
	}
	return out, nil
}
