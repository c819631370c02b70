package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sedrouting/internal/domain"
	"sedrouting/pkg/platform/sentinel"
)

func TestPersonClientResolve(t *testing.T) {
	t.Run("decodes the person record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/persons/04075800075", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"nationalId":       "04075800075",
				"firstName":        "Ola",
				"lastName":         "Nordmann",
				"birthDate":        "1958-07-04",
				"confidentiality":  "FORTROLIG",
				"residencyCountry": "NOR",
				"geographicKey":    "030102",
			})
		}))
		defer srv.Close()

		got, err := NewPersonClient(srv.URL, nil).Resolve(context.Background(), "04075800075")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.NationalID("04075800075"), got.NationalID)
		assert.Equal(t, time.Date(1958, 7, 4, 0, 0, 0, 0, time.UTC), got.BirthDate)
		assert.Equal(t, domain.ConfidentialityRestricted, got.Confidentiality)
		assert.Equal(t, "NOR", got.ResidencyCountry)
		assert.Equal(t, "030102", got.GeographicKey)
	})

	t.Run("absence is nil without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		got, err := NewPersonClient(srv.URL, nil).Resolve(context.Background(), "04075800075")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("upstream failure is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewPersonClient(srv.URL, nil).Resolve(context.Background(), "04075800075")
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})
}

func TestPersonClientSearch(t *testing.T) {
	criteria := domain.SearchCriteria{
		FirstName: "Ola",
		LastName:  "Nordmann",
		BirthDate: time.Date(1958, 7, 4, 0, 0, 0, 0, time.UTC),
	}

	t.Run("passes the criteria and returns the match", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/persons/search", r.URL.Path)
			assert.Equal(t, "Ola", r.URL.Query().Get("firstName"))
			assert.Equal(t, "Nordmann", r.URL.Query().Get("lastName"))
			assert.Equal(t, "1958-07-04", r.URL.Query().Get("birthDate"))
			_ = json.NewEncoder(w).Encode(map[string]string{"nationalId": "04075800075"})
		}))
		defer srv.Close()

		got, err := NewPersonClient(srv.URL, nil).Search(context.Background(), criteria)
		require.NoError(t, err)
		assert.Equal(t, domain.NationalID("04075800075"), got)
	})

	t.Run("no match is the zero id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		got, err := NewPersonClient(srv.URL, nil).Search(context.Background(), criteria)
		require.NoError(t, err)
		assert.True(t, got.IsNil())
	})

	t.Run("incomplete criteria never hit the wire", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			t.Error("unexpected request")
		}))
		defer srv.Close()

		got, err := NewPersonClient(srv.URL, nil).Search(context.Background(), domain.SearchCriteria{FirstName: "Ola"})
		require.NoError(t, err)
		assert.True(t, got.IsNil())
	})
}

func TestLegacyCaseClient(t *testing.T) {
	t.Run("decodes the case list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/persons/04075800075/cases", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"sakId": "22874955", "sakType": "UFOREP", "sakStatus": "AVSLUTTET", "subCases": []string{"krav-1"}},
			})
		}))
		defer srv.Close()

		got, err := NewLegacyCaseClient(srv.URL, nil).CasesForPerson(context.Background(), "04075800075")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "22874955", got[0].ID)
		assert.Equal(t, domain.BenefitUforep, got[0].Type)
		assert.Equal(t, domain.CaseStatusClosed, got[0].Status)
		assert.Equal(t, []string{"krav-1"}, got[0].SubCases)
	})

	t.Run("unknown person has no cases", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		got, err := NewLegacyCaseClient(srv.URL, nil).CasesForPerson(context.Background(), "04075800075")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestOrgUnitClientLookup(t *testing.T) {
	t.Run("assignment found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "NOR", r.URL.Query().Get("residencyCountry"))
			assert.Equal(t, "030102", r.URL.Query().Get("geographicKey"))
			assert.Equal(t, "FORTROLIG", r.URL.Query().Get("confidentiality"))
			_ = json.NewEncoder(w).Encode(map[string]string{"unit": "4476"})
		}))
		defer srv.Close()

		unit, ok, err := NewOrgUnitClient(srv.URL, nil).
			Lookup(context.Background(), "NOR", "030102", domain.ConfidentialityRestricted)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, domain.UnitDisabilityDomestic, unit)
	})

	t.Run("no assignment", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer srv.Close()

		_, ok, err := NewOrgUnitClient(srv.URL, nil).
			Lookup(context.Background(), "NOR", "030102", domain.ConfidentialityNone)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("404 is no assignment", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, ok, err := NewOrgUnitClient(srv.URL, nil).
			Lookup(context.Background(), "SWE", "", domain.ConfidentialityNone)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("upstream failure propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, _, err := NewOrgUnitClient(srv.URL, nil).
			Lookup(context.Background(), "NOR", "030102", domain.ConfidentialityNone)
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})
}

func signedTestToken(t *testing.T, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": expires.Unix(),
		"sub": "sedrouting",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenProvider(t *testing.T) {
	t.Run("caches until expiry", func(t *testing.T) {
		var hits int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			assert.Equal(t, "sedrouting", r.PostForm.Get("client_id"))
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token": signedTestToken(t, time.Now().Add(time.Hour)),
			})
		}))
		defer srv.Close()

		p := NewTokenProvider(srv.URL, "sedrouting", "secret", srv.Client())
		first, err := p.Token(context.Background())
		require.NoError(t, err)
		second, err := p.Token(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, hits)
	})

	t.Run("refreshes an expiring token", func(t *testing.T) {
		var hits int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits++
			_ = json.NewEncoder(w).Encode(map[string]string{
				// Expires inside the refresh skew, so the next call refetches.
				"access_token": signedTestToken(t, time.Now().Add(time.Second)),
			})
		}))
		defer srv.Close()

		p := NewTokenProvider(srv.URL, "sedrouting", "secret", srv.Client())
		_, err := p.Token(context.Background())
		require.NoError(t, err)
		_, err = p.Token(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, hits)
	})

	t.Run("error statuses fail the call", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		p := NewTokenProvider(srv.URL, "sedrouting", "wrong", srv.Client())
		_, err := p.Token(context.Background())
		assert.Error(t, err)
	})

	t.Run("nil without a token URL", func(t *testing.T) {
		assert.Nil(t, NewTokenProvider("", "id", "secret", nil))
	})
}
