package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/maxaizer/irreplaceable/internal/clients/base"
	"net/url"
	"strconv"
)

const defaultHost = "jsearch.p.rapidapi.com"

type Client struct {
	*base.Client
	host   string
	hasKey bool
}

func NewClient(apiKey, host string) *Client {
	if host == "" {
		host = defaultHost
	}
	client := &Client{Client: base.NewClient(), host: host, hasKey: apiKey != ""}
	client.SetHeader("X-RapidAPI-Key", apiKey)
	client.SetHeader("X-RapidAPI-Host", host)
	return client
}

func (c *Client) HasCredentials() bool {
	return c.hasKey
}

type SearchParameters struct {
	Query      string
	Page       int
	NumPages   int
	RemoteOnly bool
}

func (c *Client) Search(ctx context.Context, parameters SearchParameters) ([]Job, error) {

	if parameters.Page < 1 || parameters.NumPages < 1 {
		return nil, fmt.Errorf("invalid parameters: page and num_pages must be positive")
	}

	params := url.Values{}
	params.Set("query", parameters.Query)
	params.Set("page", strconv.Itoa(parameters.Page))
	params.Set("num_pages", strconv.Itoa(parameters.NumPages))
	if parameters.RemoteOnly {
		params.Set("remote_jobs_only", "true")
	}

	body, err := c.Get(ctx, "https://"+c.host+"/search?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response searchResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %w", err)
	}
	if response.Status != "" && response.Status != "OK" {
		return nil, fmt.Errorf("jsearch returned status %q", response.Status)
	}
	return response.Data, nil
}
