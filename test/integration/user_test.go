package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meDTO struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	IsAdmin   bool   `json:"is_admin"`
}

func TestGetMe(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	studentToken, studentID := createStudentToken(t, app.DB)

	resp := doRequest(t, app, http.MethodGet, "/api/users/me", studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me meDTO
	decodeData(t, resp, &me)
	assert.Equal(t, studentID, me.StudentID)
	assert.False(t, me.IsAdmin)
}

func TestGetMeAdmin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	adminToken := createAdminToken(t, app.DB)

	resp := doRequest(t, app, http.MethodGet, "/api/users/me", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me meDTO
	decodeData(t, resp, &me)
	assert.Equal(t, adminStudentID, me.StudentID)
	assert.True(t, me.IsAdmin)
}

func TestGetMeRequiresAuth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp := doRequest(t, app, http.MethodGet, "/api/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/users/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
