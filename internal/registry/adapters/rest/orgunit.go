package rest

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"sedrouting/internal/domain"
	"sedrouting/pkg/platform/sentinel"
)

// OrgUnitClient implements ports.OrgUnitOverride against the
// organizational assignment service.
type OrgUnitClient struct {
	client
}

func NewOrgUnitClient(baseURL string, tokens *TokenProvider) *OrgUnitClient {
	return &OrgUnitClient{client: newClient(baseURL, tokens)}
}

// Lookup asks for a geography-based unit assignment. No assignment and
// upstream 404 both report ok=false without error.
func (c *OrgUnitClient) Lookup(ctx context.Context, residencyCountry, geographicKey string, confidentiality domain.Confidentiality) (domain.OrgUnit, bool, error) {
	query := url.Values{
		"residencyCountry": {residencyCountry},
		"geographicKey":    {geographicKey},
	}
	if confidentiality != domain.ConfidentialityNone {
		query.Set("confidentiality", string(confidentiality))
	}

	var payload struct {
		Unit string `json:"unit"`
	}
	err := c.getJSON(ctx, "/assignments?"+query.Encode(), &payload)
	if errors.Is(err, sentinel.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("org unit lookup: %w", err)
	}
	if payload.Unit == "" {
		return "", false, nil
	}
	return domain.OrgUnit(payload.Unit), true, nil
}
