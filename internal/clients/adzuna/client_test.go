package adzuna

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"os"
	"testing"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func searchMock() (*http.Response, error) {
	file, err := os.ReadFile("testdata/search.json")
	return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewBuffer(file))}, err
}

func Test_AdzunaClient_Search_ShouldBeSuccessful(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return req.URL.Path == "/v1/api/jobs/gb/search/2" &&
			q.Get("app_id") == "id" && q.Get("app_key") == "key" &&
			q.Get("what") == "nurse" && q.Get("where") == "London" && q.Get("results_per_page") == "20"
	})).Return(searchMock())

	client := NewClient("id", "key", "gb")
	client.SetHTTPClient(mockClient)

	response, err := client.Search(context.Background(), SearchParameters{What: "nurse", Where: "London", Page: 2, PerPage: 20})
	require.NoError(t, err)

	require.Len(t, response.Results, 2)
	assert.Equal(t, "4711", response.Results[0].ID)
	assert.Equal(t, "Mercy Health", response.Results[0].Company.DisplayName)
	assert.Equal(t, 98000.5, response.Results[0].SalaryMax)
	assert.Equal(t, "healthcare-nursing-jobs", response.Results[0].Category.Tag)
	assert.Zero(t, response.Results[1].SalaryMin)
	mockClient.AssertExpectations(t)
}

func Test_AdzunaClient_HasCredentials(t *testing.T) {
	assert.True(t, NewClient("id", "key", "").HasCredentials())
	assert.False(t, NewClient("", "key", "").HasCredentials())
	assert.False(t, NewClient("id", "", "").HasCredentials())
}

func Test_AdzunaClient_InvalidParameters(t *testing.T) {
	client := NewClient("id", "key", "us")
	_, err := client.Search(context.Background(), SearchParameters{What: "nurse", Page: 0, PerPage: 10})
	assert.Error(t, err)
	_, err = client.Search(context.Background(), SearchParameters{What: "nurse", Page: 1, PerPage: 51})
	assert.Error(t, err)
}
