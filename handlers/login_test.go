package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/testutil"
)

func TestLogin(t *testing.T) {
	env := testutil.SetupEnv(t)
	testutil.RegisterTeam(t, "ALPHA", "1234567")
	handler := NewLoginHandler(env.Tracker)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.LoginResponse)
	}{
		{
			name:           "valid login",
			body:           models.LoginRequest{TeamID: "ALPHA", RegNum: "1234567"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.LoginResponse) {
				if !resp.Success {
					t.Errorf("Expected success, got %q", resp.Message)
				}
				if resp.TeamID != "ALPHA" {
					t.Errorf("Expected teamId echoed, got %q", resp.TeamID)
				}
				if resp.QuestionSet != models.Round1 {
					t.Errorf("Expected round1 question set, got %q", resp.QuestionSet)
				}
			},
		},
		{
			name:           "second login refused",
			body:           models.LoginRequest{TeamID: "ALPHA", RegNum: "1234567"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.LoginResponse) {
				if resp.Success {
					t.Error("Second login must be refused")
				}
			},
		},
		{
			name:           "bad credentials refused",
			body:           models.LoginRequest{TeamID: "BETA", RegNum: "0000000"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.LoginResponse) {
				if resp.Success {
					t.Error("Unknown team must be refused")
				}
			},
		},
		{
			name:           "missing teamId",
			body:           models.LoginRequest{RegNum: "1234567"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing regNum",
			body:           models.LoginRequest{TeamID: "ALPHA"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed JSON",
			body:           "{broken",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/login", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.LoginResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}
