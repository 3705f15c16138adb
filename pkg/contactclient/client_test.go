package contactclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adaRequest() types.ContactRequest {
	return types.ContactRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Message:   "Hi there",
	}
}

func TestClient_Send(t *testing.T) {
	var got types.ContactRequest
	var headers http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		headers = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Emails sent successfully"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithAPIKey("anon-key"))
	resp, err := client.Send(context.Background(), adaRequest())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Emails sent successfully", resp.Message)
	assert.Equal(t, adaRequest(), got)
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, "anon-key", headers.Get("apikey"))
	assert.Equal(t, "Bearer anon-key", headers.Get("Authorization"))
}

func TestClient_Send_NoAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("apikey"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Send(context.Background(), adaRequest())
	assert.NoError(t, err)
}

func TestClient_Send_ErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"validation", http.StatusBadRequest, `{"error":"Invalid email address"}`, "Invalid email address"},
		{"transport", http.StatusInternalServerError, `{"error":"Failed to send email"}`, "Failed to send email"},
		{"gateway html", http.StatusBadGateway, `<html>bad gateway</html>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL).Send(context.Background(), adaRequest())

			var respErr *ResponseError
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.status, respErr.StatusCode)
			assert.Equal(t, tt.wantMessage, respErr.Message)
		})
	}
}
