package hh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/maxaizer/irreplaceable/internal/clients/base"
)

const apiURL = "https://api.hh.ru/vacancies"

type getVacanciesResponse struct {
	Vacancies []Vacancy `json:"items"`
	Found     int       `json:"found"`
}

type Client struct {
	*base.Client
}

func NewClient() *Client {
	client := &Client{Client: base.NewClient()}
	client.SetHeader("User-Agent", "irreplaceable/1.0 (jobs@irreplaceable.jobs)")
	return client
}

func (c *Client) GetVacancies(ctx context.Context, parameters SearchParameters) ([]Vacancy, error) {

	if err := parameters.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	body, err := c.Get(ctx, apiURL+"?"+parameters.ToUrlParams().Encode())
	if err != nil {
		return nil, err
	}

	var vacanciesResponse getVacanciesResponse
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&vacanciesResponse); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %w", err)
	}

	return vacanciesResponse.Vacancies, nil
}
