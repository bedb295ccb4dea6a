package googleads

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saka/internal/domain/ads"
)

func testCredentials() *Credentials {
	return &Credentials{
		DeveloperToken:  "dev-token",
		ClientID:        "client-id",
		ClientSecret:    "client-secret",
		RefreshToken:    "refresh-token",
		LoginCustomerID: "1112223334",
	}
}

func testClient(srv *httptest.Server) *Client {
	return &Client{
		httpClient: srv.Client(),
		endpoint:   srv.URL,
		creds:      testCredentials(),
		logger:     zap.NewNop(),
	}
}

func TestParseCredentials(t *testing.T) {
	t.Run("parses the secret manager payload", func(t *testing.T) {
		raw := `{
			"developer_token": "dev-token",
			"client_id": "client-id",
			"client_secret": "client-secret",
			"refresh_token": "refresh-token",
			"login_customer_id": "1112223334"
		}`

		creds, err := ParseCredentials(raw)

		require.NoError(t, err)
		assert.Equal(t, "dev-token", creds.DeveloperToken)
		assert.Equal(t, "refresh-token", creds.RefreshToken)
		assert.Equal(t, "1112223334", creds.LoginCustomerID)
	})

	t.Run("login customer id is optional", func(t *testing.T) {
		raw := `{
			"developer_token": "dev-token",
			"client_id": "client-id",
			"client_secret": "client-secret",
			"refresh_token": "refresh-token"
		}`

		creds, err := ParseCredentials(raw)

		require.NoError(t, err)
		assert.Empty(t, creds.LoginCustomerID)
	})

	t.Run("missing required field", func(t *testing.T) {
		raw := `{"developer_token": "dev-token", "client_id": "client-id"}`

		creds, err := ParseCredentials(raw)

		require.Error(t, err)
		assert.Nil(t, creds)
	})

	t.Run("malformed json", func(t *testing.T) {
		creds, err := ParseCredentials("not json")

		require.Error(t, err)
		assert.Nil(t, creds)
	})
}

func TestValidateCustomerID(t *testing.T) {
	assert.NoError(t, validateCustomerID("1234567890"))
	assert.ErrorIs(t, validateCustomerID("12345"), ads.ErrInvalidCustomerID)
	assert.ErrorIs(t, validateCustomerID("12345678901"), ads.ErrInvalidCustomerID)
	assert.ErrorIs(t, validateCustomerID("123456789a"), ads.ErrInvalidCustomerID)
	assert.ErrorIs(t, validateCustomerID("123-456-78"), ads.ErrInvalidCustomerID)
}

func TestBuildQuery(t *testing.T) {
	t.Run("no campaign filter", func(t *testing.T) {
		got := buildQuery(searchTermsQuery, nil)

		assert.Equal(t, searchTermsQuery, got)
	})

	t.Run("joins campaign ids without a trailing separator", func(t *testing.T) {
		got := buildQuery(searchTermsQuery, []string{"123", "456"})

		assert.True(t, strings.HasSuffix(got, " AND campaign.id IN (123,456)"))
	})

	t.Run("single campaign id", func(t *testing.T) {
		got := buildQuery(adGroupStatsQuery, []string{"123"})

		assert.True(t, strings.HasSuffix(got, " AND campaign.id IN (123)"))
	})
}

func TestSearchTerms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v16/customers/1234567890/googleAds:searchStream", r.URL.Path)
		assert.Equal(t, "dev-token", r.Header.Get("developer-token"))
		assert.Equal(t, "1112223334", r.Header.Get("login-customer-id"))

		var req struct {
			Query string `json:"query"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "FROM\n    search_term_view")
		assert.Contains(t, req.Query, "AND campaign.id IN (123,456)")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"results": [
				{
					"searchTermView": {"searchTerm": "running shoes", "status": "NONE"},
					"metrics": {"conversions": 2.5, "clicks": "6", "ctr": 0.25},
					"adGroup": {"name": "ag1"},
					"campaign": {"id": "12345", "name": "camp1"},
					"segments": {"keyword": {"info": {"text": "shoes"}}}
				}
			]},
			{"results": [
				{
					"searchTermView": {"searchTerm": "trail shoes", "status": "UNKNOWN"},
					"metrics": {"conversions": 0, "clicks": "11", "ctr": 0.5},
					"adGroup": {"name": "ag2"},
					"campaign": {"id": "67890", "name": "camp2"}
				}
			]}
		]`))
	}))
	defer srv.Close()

	client := testClient(srv)

	rows, err := client.SearchTerms(context.Background(), "1234567890", []string{"123", "456"})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ads.SearchTermRow{
		SearchTerm:   "running shoes",
		Status:       "NONE",
		Conversions:  2.5,
		Clicks:       6,
		AdGroupName:  "ag1",
		CampaignID:   "12345",
		CampaignName: "camp1",
		CTR:          0.25,
		KeywordText:  "shoes",
	}, rows[0])
	assert.Equal(t, int64(11), rows[1].Clicks)
	assert.Equal(t, "67890", rows[1].CampaignID)
}

func TestAdGroupStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "FROM\n    ad_group")
		assert.NotContains(t, req.Query, "campaign.id IN")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"results": [
				{"adGroup": {"name": "ag1"}, "metrics": {"ctr": 0.3}},
				{"adGroup": {"name": "ag2"}, "metrics": {"ctr": 0.1}}
			]}
		]`))
	}))
	defer srv.Close()

	client := testClient(srv)

	stats, err := client.AdGroupStats(context.Background(), "1234567890", nil)

	require.NoError(t, err)
	assert.Equal(t, []ads.AdGroupStat{
		{AdGroupName: "ag1", CTR: 0.3},
		{AdGroupName: "ag2", CTR: 0.1},
	}, stats)
}

func TestSearchStream_Errors(t *testing.T) {
	t.Run("invalid customer id short-circuits before the request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not reach the api")
		}))
		defer srv.Close()

		client := testClient(srv)

		_, err := client.SearchTerms(context.Background(), "12345", nil)

		assert.ErrorIs(t, err, ads.ErrInvalidCustomerID)
	})

	t.Run("non-2xx response surfaces status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "permission denied", http.StatusForbidden)
		}))
		defer srv.Close()

		client := testClient(srv)

		_, err := client.SearchTerms(context.Background(), "1234567890", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("malformed response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := testClient(srv)

		_, err := client.AdGroupStats(context.Background(), "1234567890", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})
}
