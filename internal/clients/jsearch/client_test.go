package jsearch

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

func fileResponse(path string) (*http.Response, error) {
	file, err := os.ReadFile(path)
	return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewBuffer(file))}, err
}

func Test_JSearchClient_Search_ShouldBeSuccessful(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "jsearch.p.rapidapi.com" &&
			req.URL.Query().Get("query") == "electrician in Chicago" &&
			req.Header.Get("X-RapidAPI-Key") == "rapid-key"
	})).Return(fileResponse("testdata/search.json"))

	client := NewClient("rapid-key", "")
	client.SetHTTPClient(mockClient)

	jobs, err := client.Search(context.Background(), SearchParameters{Query: "electrician in Chicago", Page: 1, NumPages: 1})
	require.NoError(t, err)

	require.Len(t, jobs, 2)
	assert.Equal(t, "x1Y2z3", jobs[0].ID)
	require.NotNil(t, jobs[0].MinSalary)
	assert.Equal(t, 80000.0, *jobs[0].MinSalary)
	assert.Equal(t, []string{"401k", "Health insurance"}, jobs[0].Highlights.Benefits)
	assert.True(t, jobs[1].IsRemote)
	assert.Nil(t, jobs[1].MinSalary)
	assert.Empty(t, jobs[1].City)
}

func Test_JSearchClient_ErrorStatus(t *testing.T) {
	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBufferString(`{"status":"ERROR","data":[]}`)),
	}, nil)

	client := NewClient("rapid-key", "")
	client.SetHTTPClient(mockClient)

	_, err := client.Search(context.Background(), SearchParameters{Query: "nurse", Page: 1, NumPages: 1})
	assert.Error(t, err)
}

func Test_JSearchClient_HasCredentials(t *testing.T) {
	assert.True(t, NewClient("key", "").HasCredentials())
	assert.False(t, NewClient("", "").HasCredentials())
}
