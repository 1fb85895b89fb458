package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSend_PostsPayloadAndAuth(t *testing.T) {
	var got sendRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send", r.URL.Path)
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(sendResponse{Success: true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "gw-key", time.Second)
	err := client.Send(context.Background(), "+628123456789", "Halo")

	assert.NoError(t, err)
	assert.Equal(t, "+628123456789", got.PhoneNumber)
	assert.Equal(t, "Halo", got.Message)
	assert.Equal(t, "Bearer gw-key", auth)
}

func TestSend_GatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(sendResponse{Success: false, Message: "number not registered"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	err := client.Send(context.Background(), "+620000", "Halo")

	assert.ErrorContains(t, err, "number not registered")
}

func TestSend_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	err := client.Send(context.Background(), "+628123456789", "Halo")

	assert.ErrorContains(t, err, "status 502")
}

func TestSend_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 50*time.Millisecond)
	err := client.Send(context.Background(), "+628123456789", "Halo")

	assert.Error(t, err)
}
