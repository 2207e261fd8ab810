package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/nthusa/voting/internal/adapters/adminlist"
	handler "github.com/nthusa/voting/internal/adapters/handler/http"
	repo "github.com/nthusa/voting/internal/adapters/repository/postgres"
	"github.com/nthusa/voting/internal/core/ports"
	"github.com/nthusa/voting/internal/core/services"
)

const (
	testJWTSecret  = "test-secret"
	adminStudentID = "admin001"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	SummarySvc  ports.SummaryService
	DBContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	activityRepo := repo.NewActivityRepository(db)
	optionRepo := repo.NewOptionRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	resultRepo := repo.NewResultRepository(db)
	userRepo := repo.NewUserRepository(db)

	activitySvc := services.NewActivityService(activityRepo)
	optionSvc := services.NewOptionService(activityRepo, optionRepo)
	voteSvc := services.NewVoteService(activityRepo, voteRepo)
	resultSvc := services.NewResultService(activityRepo, resultRepo)
	userSvc := services.NewUserService(userRepo)
	summarySvc := services.NewSummaryService(activityRepo, resultRepo)

	admins := adminlist.NewChecker(writeAdminRoster(t), time.Minute)

	router := handler.NewHandler(handler.RouterConfig{
		Activities:      handler.NewActivityHandler(activitySvc, optionSvc),
		Options:         handler.NewOptionHandler(optionSvc),
		Votes:           handler.NewVoteHandler(voteSvc),
		Results:         handler.NewResultHandler(resultSvc),
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
		SummarySvc:  summarySvc,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// writeAdminRoster materializes a one-admin CSV roster for the test server.
func writeAdminRoster(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adminList.csv")
	content := fmt.Sprintf("student_id,name\n%s,Test Admin\n", adminStudentID)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// createStudentToken registers a fresh student and returns a signed access
// token for them, plus the student id for assertions.
func createStudentToken(t *testing.T, db *sql.DB) (string, string) {
	t.Helper()
	studentID := "s" + uuid.NewString()[:8]
	return signToken(t, db, studentID), studentID
}

// createAdminToken registers the roster admin and returns their access token.
func createAdminToken(t *testing.T, db *sql.DB) string {
	t.Helper()
	return signToken(t, db, adminStudentID)
}

func signToken(t *testing.T, db *sql.DB, studentID string) string {
	t.Helper()

	name := fmt.Sprintf("User %s", studentID)
	var userID uuid.UUID
	err := db.QueryRow(
		"INSERT INTO users (id, student_id, name) VALUES ($1, $2, $3) ON CONFLICT (student_id) DO UPDATE SET name = EXCLUDED.name RETURNING id",
		uuid.New(), studentID, name,
	).Scan(&userID)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":        userID.String(),
		"student_id": studentID,
		"name":       name,
		"exp":        time.Now().Add(15 * time.Minute).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signedToken
}
