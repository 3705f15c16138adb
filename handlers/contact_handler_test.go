package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	apperrors "github.com/manish-reddy7/Manish-Reddy-Portfolio/errors"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/middleware"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func setupContactRouter(svc ContactSubmitter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.POST("/v1/contact", NewContactHandler(svc).SubmitContact)
	return router
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const adaBody = `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","subject":"Hello","message":"Hi there"}`

func TestSubmitContact_Success(t *testing.T) {
	mockSvc := new(MockContactService)
	expected := types.ContactRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Message:   "Hi there",
	}
	mockSvc.On("Submit", mock.Anything, expected).Return(expected.ToSubmission(), nil).Once()

	w := postContact(setupContactRouter(mockSvc), adaBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Emails sent successfully"}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestSubmitContact_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing fields",
			body:           `{"firstName":"Ada"}`,
			serviceErr:     apperrors.ValidationFailed(apperrors.MsgAllFieldsRequired, ""),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "All fields are required",
		},
		{
			name:           "invalid email",
			body:           adaBody,
			serviceErr:     apperrors.ValidationFailed(apperrors.MsgInvalidEmail, ""),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid email address",
		},
		{
			name:           "transport failure",
			body:           adaBody,
			serviceErr:     apperrors.TransportFailed(errors.New("The API key is invalid"), "notification"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "The API key is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockContactService)
			mockSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, tt.serviceErr).Once()

			w := postContact(setupContactRouter(mockSvc), tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, map[string]any{"error": tt.expectedError}, body)
		})
	}
}

func TestSubmitContact_MalformedBody(t *testing.T) {
	mockSvc := new(MockContactService)

	w := postContact(setupContactRouter(mockSvc), `{"firstName":`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	mockSvc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}
