// Package domain holds the wire types of the Google Ads reporting API.
// Int64 metrics arrive as JSON strings; rate and conversion metrics are
// plain numbers. Normalization into internal types happens in the
// integrator, never here.
package domain

type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []*SearchResult `json:"results"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

// SearchResult is one row of a googleAds:search response. Only the
// attributes selected by the query are populated.
type SearchResult struct {
	Customer *Customer `json:"customer,omitempty"`
	Campaign *Campaign `json:"campaign,omitempty"`
	Metrics  *Metrics  `json:"metrics,omitempty"`
	Segments *Segments `json:"segments,omitempty"`
}

type Customer struct {
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
	Status          string `json:"status"`
}

type Campaign struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
}

type Metrics struct {
	Impressions      string  `json:"impressions"`
	Clicks           string  `json:"clicks"`
	CostMicros       string  `json:"costMicros"`
	Ctr              float64 `json:"ctr"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

type Segments struct {
	Date string `json:"date"`
}
