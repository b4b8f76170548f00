package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var got Notification

	var gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret-token")

	err := c.Send(context.Background(), Notification{
		To:    "ExponentPushToken[abc]",
		Title: "Budget Alert",
		Body:  "Alert: you've gone over your budget for Food by 20.00!",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "ExponentPushToken[abc]", got.To)
	assert.Equal(t, "Budget Alert", got.Title)
}

func TestClient_Send_GatewayError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "")

	err := c.Send(context.Background(), Notification{To: "tok"})
	assert.Error(t, err)
}
