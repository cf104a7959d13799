package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"flighttrack-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigured(t *testing.T) {
	withKey := NewAviationstackClient("", "secret", logger.NewNop())
	assert.True(t, withKey.Configured())

	withoutKey := NewAviationstackClient("", "", logger.NewNop())
	assert.False(t, withoutKey.Configured())
}

func TestFetch_BuildsSingleResultQuery(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"access_key":  r.URL.Query().Get("access_key"),
			"flight_iata": r.URL.Query().Get("flight_iata"),
			"limit":       r.URL.Query().Get("limit"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"pagination":{"limit":1,"count":1,"total":1},"data":[{"flight_date":"2025-03-10","flight_status":"active","flight":{"iata":"GA122"}}]}`))
	}))
	defer server.Close()

	client := NewAviationstackClient(server.URL, "secret", logger.NewNop())
	resp, err := client.Fetch(context.Background(), "GA122")

	require.NoError(t, err)
	assert.Equal(t, "/flights", gotPath)
	assert.Equal(t, "secret", gotQuery["access_key"])
	assert.Equal(t, "GA122", gotQuery["flight_iata"])
	assert.Equal(t, "1", gotQuery["limit"])

	require.Len(t, resp.Data, 1)
	assert.Equal(t, "active", resp.Data[0].FlightStatus)
	require.NotNil(t, resp.Data[0].Flight)
	assert.Equal(t, "GA122", resp.Data[0].Flight.Iata)
	assert.Nil(t, resp.Error)
}

func TestFetch_ProviderErrorIsReturnedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":"usage_limit_reached","message":"monthly usage limit reached"}}`))
	}))
	defer server.Close()

	client := NewAviationstackClient(server.URL, "secret", logger.NewNop())
	resp, err := client.Fetch(context.Background(), "GA122")

	// A provider-signalled error is data, not a transport failure
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "usage_limit_reached", resp.Error.Code)
	assert.Empty(t, resp.Data)
}

func TestFetch_TransportErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client := NewAviationstackClient(server.URL, "secret", logger.NewNop())
	_, err := client.Fetch(context.Background(), "GA122")

	assert.Error(t, err)
}

func TestFetch_UndecodableBodyIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer server.Close()

	client := NewAviationstackClient(server.URL, "secret", logger.NewNop())
	_, err := client.Fetch(context.Background(), "GA122")

	assert.Error(t, err)
}
