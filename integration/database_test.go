//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestLadderboardWithMySQL tests the ladderboard CLI with a MySQL run backend.
func TestLadderboardWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "ladderboard",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/ladderboard?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("LADDERBOARD_RUN_BACKEND", "mysql")
	_ = os.Setenv("LADDERBOARD_RUN_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("LADDERBOARD_RUN_BACKEND") }()
	defer func() { _ = os.Unsetenv("LADDERBOARD_RUN_DB_CONNECT") }()

	// Run ladderboard runs clear
	err = runLadderboardCommand(t, "runs", "clear")
	require.NoError(t, err)

	// Run ladderboard rankings (bundled sample dataset)
	err = runLadderboardCommand(t, "rankings", "--limit", "5")
	require.NoError(t, err)

	// Run ladderboard compare
	err = runLadderboardCommand(t, "compare", "--base-year", "2015", "--target-year", "2024")
	require.NoError(t, err)

	// Run ladderboard runs status
	err = runLadderboardCommand(t, "runs", "status")
	require.NoError(t, err)
}

// TestLadderboardWithPostgres tests the ladderboard CLI with a PostgreSQL run backend.
func TestLadderboardWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("LADDERBOARD_RUN_BACKEND", "postgresql")
	_ = os.Setenv("LADDERBOARD_RUN_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("LADDERBOARD_RUN_BACKEND") }()
	defer func() { _ = os.Unsetenv("LADDERBOARD_RUN_DB_CONNECT") }()

	// Run ladderboard runs clear
	err = runLadderboardCommand(t, "runs", "clear")
	require.NoError(t, err)

	// Run ladderboard rankings (bundled sample dataset)
	err = runLadderboardCommand(t, "rankings", "--limit", "5")
	require.NoError(t, err)

	// Run ladderboard runs migrate
	err = runLadderboardCommand(t, "runs", "migrate")
	require.NoError(t, err)

	// Run ladderboard runs status
	err = runLadderboardCommand(t, "runs", "status")
	require.NoError(t, err)
}

func runLadderboardCommand(t *testing.T, args ...string) error {
	binaryPath := getLadderboardBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
