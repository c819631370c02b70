// Package documents fetches case documents from the cross-border document
// API and fronts it with a short-lived cache. Retrieval is plain I/O; all
// interpretation happens in the extraction packages.
package documents

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"sedrouting/internal/domain"
	"sedrouting/internal/registry/adapters/rest"
	"sedrouting/pkg/platform/sentinel"
)

// Stored pairs a document with its case-level id, in case order.
type Stored struct {
	ID       string
	Document *domain.Document
}

// Fetcher retrieves documents. Failures are sentinel.ErrNotFound or
// sentinel.ErrUnavailable.
type Fetcher interface {
	CaseDocuments(ctx context.Context, caseID string) ([]Stored, error)
	Document(ctx context.Context, caseID, documentID string) (*domain.Document, error)
}

// HTTPFetcher talks to the document API.
type HTTPFetcher struct {
	baseURL string
	http    *http.Client
	tokens  *rest.TokenProvider
}

func NewHTTPFetcher(baseURL string, tokens *rest.TokenProvider) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

type storedPayload struct {
	ID      string          `json:"id"`
	Content json.RawMessage `json:"content"`
}

// CaseDocuments returns every document of a case in listed order.
// Documents whose payload does not decode are skipped, not fatal: one
// malformed document never hides the rest of the case.
func (f *HTTPFetcher) CaseDocuments(ctx context.Context, caseID string) ([]Stored, error) {
	raw, err := f.get(ctx, "/cases/"+url.PathEscape(caseID)+"/documents")
	if err != nil {
		return nil, err
	}
	var payload []storedPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode case documents: %w", err)
	}

	out := make([]Stored, 0, len(payload))
	for _, p := range payload {
		doc, err := domain.DecodeDocument(p.Content)
		if err != nil {
			continue
		}
		out = append(out, Stored{ID: p.ID, Document: doc})
	}
	return out, nil
}

// Document fetches a single document.
func (f *HTTPFetcher) Document(ctx context.Context, caseID, documentID string) (*domain.Document, error) {
	raw, err := f.get(ctx, "/cases/"+url.PathEscape(caseID)+"/documents/"+url.PathEscape(documentID))
	if err != nil {
		return nil, err
	}
	return domain.DecodeDocument(raw)
}

func (f *HTTPFetcher) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.tokens != nil {
		token, err := f.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, sentinel.ErrNotFound
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: document api returned %d", sentinel.ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("document api returned %d for %s", resp.StatusCode, path)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	}
	return body, nil
}

var _ Fetcher = (*HTTPFetcher)(nil)
