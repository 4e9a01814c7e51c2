package gadsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/vfg2006/ads-dashboard-api/internal/config"
	gadsdomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const requestTimeout = 30 * time.Second

// Client executes GAQL searches against the Google Ads REST endpoint,
// following pagination until the response is exhausted.
type Client interface {
	Search(ctx context.Context, customerID, query string) ([]*gadsdomain.SearchResult, error)
}

type client struct {
	httpClient *http.Client
	cfg        *config.Config
}

// New builds the client with an oauth2 transport seeded from the stored
// refresh token, so access tokens renew transparently between requests.
func New(cfg *config.Config) Client {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleAds.ClientID,
		ClientSecret: cfg.GoogleAds.ClientSecret,
		Endpoint:     google.Endpoint,
	}

	source := oauthConfig.TokenSource(
		context.Background(),
		&oauth2.Token{RefreshToken: cfg.GoogleAds.RefreshToken},
	)

	httpClient := oauth2.NewClient(context.Background(), source)
	httpClient.Timeout = requestTimeout

	return &client{
		httpClient: httpClient,
		cfg:        cfg,
	}
}

func (c *client) Search(ctx context.Context, customerID, query string) ([]*gadsdomain.SearchResult, error) {
	results := make([]*gadsdomain.SearchResult, 0)
	pageToken := ""

	for {
		page, err := c.searchPage(ctx, customerID, query, pageToken)
		if err != nil {
			return nil, err
		}

		results = append(results, page.Results...)

		if page.NextPageToken == "" {
			return results, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *client) searchPage(
	ctx context.Context,
	customerID, query, pageToken string,
) (*gadsdomain.SearchResponse, error) {
	body, err := json.Marshal(&gadsdomain.SearchRequest{
		Query:     query,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, errors.Wrap(err, "gadsclient: encoding search request")
	}

	url := fmt.Sprintf(
		"%s/customers/%s/googleAds:search",
		c.cfg.GoogleAds.URL,
		SanitizeCustomerID(customerID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "gadsclient: building search request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.cfg.GoogleAds.DeveloperToken)
	if login := c.cfg.GoogleAds.LoginCustomerID; login != "" {
		req.Header.Set("login-customer-id", SanitizeCustomerID(login))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "gadsclient: executing search request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, errors.Errorf(
			"gadsclient: search returned status %d: %s",
			resp.StatusCode, string(detail),
		)
	}

	searchResponse := &gadsdomain.SearchResponse{}
	if err := json.NewDecoder(resp.Body).Decode(searchResponse); err != nil {
		return nil, errors.Wrap(err, "gadsclient: decoding search response")
	}

	return searchResponse, nil
}

// SanitizeCustomerID strips the display dashes from a customer id
// (123-456-7890 and 1234567890 address the same customer).
func SanitizeCustomerID(customerID string) string {
	return strings.ReplaceAll(customerID, "-", "")
}
