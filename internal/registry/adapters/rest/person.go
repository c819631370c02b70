package rest

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"sedrouting/internal/domain"
	"sedrouting/pkg/platform/sentinel"
)

// PersonClient implements ports.PersonRegistry against the person registry
// REST API.
type PersonClient struct {
	client
}

func NewPersonClient(baseURL string, tokens *TokenProvider) *PersonClient {
	return &PersonClient{client: newClient(baseURL, tokens)}
}

type personPayload struct {
	NationalID       string `json:"nationalId"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	BirthDate        string `json:"birthDate"`
	Confidentiality  string `json:"confidentiality"`
	ResidencyCountry string `json:"residencyCountry"`
	GeographicKey    string `json:"geographicKey"`
}

// Resolve fetches the person behind a national id. A missing person is
// (nil, nil), not an error.
func (c *PersonClient) Resolve(ctx context.Context, id domain.NationalID) (*domain.PersonRecord, error) {
	var payload personPayload
	err := c.getJSON(ctx, "/persons/"+url.PathEscape(id.String()), &payload)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve person: %w", err)
	}

	record := &domain.PersonRecord{
		NationalID:       domain.NationalID(payload.NationalID),
		FirstName:        payload.FirstName,
		LastName:         payload.LastName,
		Confidentiality:  domain.Confidentiality(payload.Confidentiality),
		ResidencyCountry: payload.ResidencyCountry,
		GeographicKey:    payload.GeographicKey,
	}
	if payload.BirthDate != "" {
		if birth, err := time.Parse("2006-01-02", payload.BirthDate); err == nil {
			record.BirthDate = birth
		}
	}
	return record, nil
}

// Search looks a person up by name and birth date. No match is the zero
// NationalID, not an error.
func (c *PersonClient) Search(ctx context.Context, criteria domain.SearchCriteria) (domain.NationalID, error) {
	if !criteria.Complete() {
		return "", nil
	}
	query := url.Values{
		"firstName": {criteria.FirstName},
		"lastName":  {criteria.LastName},
		"birthDate": {criteria.BirthDate.Format("2006-01-02")},
	}
	var payload struct {
		NationalID string `json:"nationalId"`
	}
	err := c.getJSON(ctx, "/persons/search?"+query.Encode(), &payload)
	if errors.Is(err, sentinel.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("search person: %w", err)
	}
	return domain.NationalID(payload.NationalID), nil
}
