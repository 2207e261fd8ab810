package integration

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nthusa/voting/internal/adapters/adminlist"
	handler "github.com/nthusa/voting/internal/adapters/handler/http"
	repo "github.com/nthusa/voting/internal/adapters/repository/postgres"
	"github.com/nthusa/voting/internal/core/ports"
	"github.com/nthusa/voting/internal/core/services"
)

// MockVerifier stands in for Google's token validation endpoint.
type MockVerifier struct {
	studentID string
	name      string
}

func (m *MockVerifier) Verify(_ context.Context, _ string, _ string) (*ports.TokenPayload, error) {
	return &ports.TokenPayload{StudentID: m.studentID, Name: m.name}, nil
}

func setupAuthApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	userRepo := repo.NewUserRepository(db)
	authRepo := repo.NewAuthRepository(db)

	mockVerifier := &MockVerifier{studentID: "s7654321", name: "Test Student"}
	authSvc := services.NewAuthService(userRepo, authRepo, mockVerifier, []byte(testJWTSecret), "test-client-id")
	userSvc := services.NewUserService(userRepo)

	admins := adminlist.NewChecker(writeAdminRoster(t), time.Minute)

	router := handler.NewHandler(handler.RouterConfig{
		Activities:      handler.NewActivityHandler(services.NewActivityService(repo.NewActivityRepository(db)), nil),
		Options:         handler.NewOptionHandler(nil),
		Votes:           handler.NewVoteHandler(nil),
		Results:         handler.NewResultHandler(nil),
		Auth:            handler.NewAuthHandler(authSvc, "https://example.com/redirect", "", http.SameSiteLaxMode),
		Users:           handler.NewUserHandler(userSvc, admins),
		AuthMiddleware:  handler.AuthMiddleware([]byte(testJWTSecret)),
		AdminMiddleware: handler.AdminMiddleware(admins),
		AllowedOrigins:  []string{"*"},
	})

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func postCallback(t *testing.T, app *TestApp) *http.Response {
	t.Helper()

	form := url.Values{"credential": {"mock-google-credential"}}
	req, err := http.NewRequest(http.MethodPost, app.Server.URL+"/auth/google/callback", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestGoogleLoginFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupAuthApp(t)
	defer app.Teardown(t)

	resp := postCallback(t, app)
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "https://example.com/redirect", resp.Header.Get("Location"))

	accessCookie := cookieByName(resp.Cookies(), "access_token")
	refreshCookie := cookieByName(resp.Cookies(), "refresh_token")
	require.NotNil(t, accessCookie)
	require.NotNil(t, refreshCookie)
	assert.True(t, accessCookie.HttpOnly)
	assert.True(t, refreshCookie.HttpOnly)

	// First login provisions the user record.
	var studentID string
	err := app.DB.QueryRow("SELECT student_id FROM users").Scan(&studentID)
	require.NoError(t, err)
	assert.Equal(t, "s7654321", studentID)

	// The issued access token works against the API.
	req, err := http.NewRequest(http.MethodGet, app.Server.URL+"/api/users/me", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: accessCookie.Value})
	meResp, err := app.Client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, meResp.StatusCode)

	var me meDTO
	decodeData(t, meResp, &me)
	assert.Equal(t, "s7654321", me.StudentID)
	assert.Equal(t, "Test Student", me.Name)
}

func TestRefreshAndLogout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupAuthApp(t)
	defer app.Teardown(t)

	loginResp := postCallback(t, app)
	loginResp.Body.Close()
	refreshCookie := cookieByName(loginResp.Cookies(), "refresh_token")
	require.NotNil(t, refreshCookie)

	// Refresh issues a fresh access token.
	req, err := http.NewRequest(http.MethodPost, app.Server.URL+"/auth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshCookie.Value})
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, cookieByName(resp.Cookies(), "access_token"))

	// Logout revokes the refresh token.
	req, err = http.NewRequest(http.MethodPost, app.Server.URL+"/auth/logout", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshCookie.Value})
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err = http.NewRequest(http.MethodPost, app.Server.URL+"/auth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshCookie.Value})
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
