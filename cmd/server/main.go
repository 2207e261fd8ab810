package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	_ "github.com/nthusa/voting/docs"
	"github.com/nthusa/voting/internal/adapters/adminlist"
	handler "github.com/nthusa/voting/internal/adapters/handler/http"
	"github.com/nthusa/voting/internal/adapters/oauth/google"
	repo "github.com/nthusa/voting/internal/adapters/repository/postgres"
	"github.com/nthusa/voting/internal/core/services"
)

// @title        Campus Voting API
// @version      1.0
// @description  REST API for campus election activities and anonymous ballots.
// @BasePath     /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Println("Warning: JWT_SECRET not set")
	}
	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	activityRepo := repo.NewActivityRepository(db)
	optionRepo := repo.NewOptionRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	resultRepo := repo.NewResultRepository(db)
	userRepo := repo.NewUserRepository(db)
	authRepo := repo.NewAuthRepository(db)

	admins := adminlist.NewChecker(envOr("ADMIN_LIST_PATH", "data/adminList.csv"), adminlist.DefaultTTL)

	activitySvc := services.NewActivityService(activityRepo)
	optionSvc := services.NewOptionService(activityRepo, optionRepo)
	voteSvc := services.NewVoteService(activityRepo, voteRepo)
	resultSvc := services.NewResultService(activityRepo, resultRepo)
	userSvc := services.NewUserService(userRepo)
	authSvc := services.NewAuthService(userRepo, authRepo, google.NewVerifier(), []byte(jwtSecret), googleClientID)

	frontendURL := envOr("FRONTEND_URL", "http://localhost:3000")

	router := handler.NewHandler(handler.RouterConfig{
		Activities:      handler.NewActivityHandler(activitySvc, optionSvc),
		Options:         handler.NewOptionHandler(optionSvc),
		Votes:           handler.NewVoteHandler(voteSvc),
		Results:         handler.NewResultHandler(resultSvc),
		Auth:            handler.NewAuthHandler(authSvc, frontendURL, os.Getenv("COOKIE_DOMAIN"), stdhttp.SameSiteLaxMode),
		Users:           handler.NewUserHandler(userSvc, admins),
		AuthMiddleware:  handler.AuthMiddleware([]byte(jwtSecret)),
		AdminMiddleware: handler.AdminMiddleware(admins),
		AllowedOrigins:  []string{frontendURL},
	})

	addr := "0.0.0.0:" + envOr("PORT", "8080")
	server := &stdhttp.Server{Addr: addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func dbConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"), os.Getenv("POSTGRES_PORT"), os.Getenv("POSTGRES_DB"),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
