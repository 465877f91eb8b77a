package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/maxaizer/irreplaceable/internal/clients/base"
	"net/url"
	"strconv"
)

const apiURL = "https://api.adzuna.com/v1/api/jobs"

type Client struct {
	*base.Client
	appID   string
	appKey  string
	country string
}

func NewClient(appID, appKey, country string) *Client {
	if country == "" {
		country = "us"
	}
	return &Client{Client: base.NewClient(), appID: appID, appKey: appKey, country: country}
}

func (c *Client) HasCredentials() bool {
	return c.appID != "" && c.appKey != ""
}

type SearchParameters struct {
	What    string
	Where   string
	Page    int
	PerPage int
}

func (s SearchParameters) Validate() error {
	if s.Page < 1 {
		return fmt.Errorf("page must be positive")
	}
	if s.PerPage < 1 || s.PerPage > 50 {
		return fmt.Errorf("per page must be between 1 and 50")
	}
	return nil
}

func (c *Client) Search(ctx context.Context, parameters SearchParameters) (*SearchResponse, error) {

	if err := parameters.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("results_per_page", strconv.Itoa(parameters.PerPage))
	params.Set("what", parameters.What)
	if parameters.Where != "" {
		params.Set("where", parameters.Where)
	}
	params.Set("sort_by", "date")
	params.Set("content-type", "application/json")

	endpoint := fmt.Sprintf("%s/%s/search/%d?%s", apiURL, c.country, parameters.Page, params.Encode())
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var response SearchResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %w", err)
	}
	return &response, nil
}
