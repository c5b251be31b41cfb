package database

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/quran-quest/quran-quest-api/pkg/config"
)

var testCfg *config.Config

func mustStartPostgresContainer() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	var (
		dbName = "quran_quest_test"
		dbPwd  = "password"
		dbUser = "postgres"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		return dbContainer.Terminate, err
	}

	testCfg = &config.Config{
		DBHost:     dbHost,
		DBPort:     dbPort.Port(),
		DBName:     dbName,
		DBUser:     dbUser,
		DBPassword: dbPwd,
		DBSchema:   "public",
	}

	return dbContainer.Terminate, err
}

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	teardown, err := mustStartPostgresContainer()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	code := m.Run()

	if teardown != nil && teardown(context.Background()) != nil {
		log.Fatalf("could not teardown postgres container: %v", err)
	}

	os.Exit(code)
}

func TestNew(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	srv := New(testCfg)
	if srv == nil {
		t.Fatal("New() returned nil")
	}
}

func TestHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	srv := New(testCfg)

	stats := srv.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestMigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	srv := New(testCfg)

	if err := srv.Migrate(); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	// Migrations are idempotent; a second run must not fail.
	if err := srv.Migrate(); err != nil {
		t.Fatalf("second Migrate() failed: %v", err)
	}

	var count int
	row := srv.DB().QueryRow(`SELECT count(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name IN ('users', 'friendships', 'threads', 'comments', 'likes')`)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("counting tables: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5 tables after migration, got %d", count)
	}
}

func TestClose(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	srv := New(testCfg)

	if srv.Close() != nil {
		t.Fatalf("expected Close() to return nil")
	}
}
