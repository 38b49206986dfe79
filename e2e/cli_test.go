package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunFolioGame/API-BackEnd/internal/api"
	"github.com/JunFolioGame/API-BackEnd/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "gsctl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gsctl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		Directory:         app.Directory,
		SessionController: app.SessionController,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type playerResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

type authResponse struct {
	Player playerResponse `json:"player"`
	Token  string         `json:"token"`
}

type memberResponse struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
}

type sessionResponse struct {
	Code      string `json:"code"`
	CreatorID string `json:"creator_id"`
	Bounds    struct {
		TeamMin        int `json:"team_min"`
		TeamMax        int `json:"team_max"`
		TeamPlayersMin int `json:"team_players_min"`
		TeamPlayersMax int `json:"team_players_max"`
	} `json:"bounds"`
	Lobby          []memberResponse `json:"lobby"`
	Capacity       int              `json:"capacity"`
	Active         bool             `json:"active"`
	FinalTeamCount *int             `json:"final_team_count"`
}

type finalizeResponse struct {
	Session   sessionResponse    `json:"session"`
	TeamCount int                `json:"team_count"`
	Teams     [][]memberResponse `json:"teams"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayerCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create guest
	output, err := cli.run("player", "guest", "--name", "Alice")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "Alice", authResp.Player.DisplayName)
	assert.True(t, authResp.Player.IsGuest)
	assert.NotEmpty(t, authResp.Token)

	// Get me (token should be saved in token file)
	output, err = cli.run("player", "me")
	require.NoError(t, err, "output: %s", output)

	var player playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	assert.Equal(t, "Alice", player.DisplayName)
	assert.Equal(t, authResp.Player.ID, player.ID)
}

func TestCLI_RegisterAndLogin(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("player", "register", "--user", "alice", "--pass", "secret123", "--name", "Alice")
	require.NoError(t, err, "output: %s", output)

	var registerResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &registerResp))
	assert.False(t, registerResp.Player.IsGuest)

	output, err = cli.run("player", "login", "--user", "alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	var loginResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &loginResp))
	assert.Equal(t, registerResp.Player.ID, loginResp.Player.ID)

	// Bad password fails with an error on stderr
	output, err = cli.run("player", "login", "--user", "alice", "--pass", "wrong")
	require.Error(t, err)
	assert.Contains(t, output, "INVALID_CREDENTIALS")
}

func TestCLI_SessionFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Creator
	output, err := cli.run("player", "guest", "--name", "Host")
	require.NoError(t, err, "output: %s", output)

	var hostAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &hostAuth))

	// Create session
	output, err = cli.runWithToken(hostAuth.Token, "session", "create",
		"--team-min", "2", "--team-max", "4", "--players-min", "4", "--players-max", "6")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Len(t, created.Code, 6)
	assert.Equal(t, hostAuth.Player.ID, created.CreatorID)
	assert.Equal(t, 24, created.Capacity)
	assert.True(t, created.Active)

	// Eight guests join
	for i := 0; i < 8; i++ {
		output, err = cli.run("player", "guest", "--name", fmt.Sprintf("p%d", i))
		require.NoError(t, err, "output: %s", output)

		var auth authResponse
		require.NoError(t, json.Unmarshal([]byte(output), &auth))

		output, err = cli.runWithToken(auth.Token, "session", "join", created.Code)
		require.NoError(t, err, "output: %s", output)
	}

	// Creator sees the full lobby
	output, err = cli.runWithToken(hostAuth.Token, "session", "get", created.Code)
	require.NoError(t, err, "output: %s", output)

	var fetched sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Len(t, fetched.Lobby, 8)

	// Finalize into two teams of four
	output, err = cli.runWithToken(hostAuth.Token, "session", "finalize", created.Code)
	require.NoError(t, err, "output: %s", output)

	var finalized finalizeResponse
	require.NoError(t, json.Unmarshal([]byte(output), &finalized))
	assert.Equal(t, 2, finalized.TeamCount)
	require.Len(t, finalized.Teams, 2)
	assert.Len(t, finalized.Teams[0], 4)
	assert.Len(t, finalized.Teams[1], 4)
	assert.False(t, finalized.Session.Active)

	// Finalize is one-shot
	output, err = cli.runWithToken(hostAuth.Token, "session", "finalize", created.Code)
	require.Error(t, err)
	assert.Contains(t, output, "SESSION_NOT_FOUND")
}

func TestCLI_SessionErrors(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("player", "guest", "--name", "Host")
	require.NoError(t, err, "output: %s", output)

	var hostAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &hostAuth))

	// Unknown session code
	output, err = cli.runWithToken(hostAuth.Token, "session", "join", "NOPE99")
	require.Error(t, err)
	assert.Contains(t, output, "SESSION_NOT_FOUND")

	// Invalid bounds report every offending field
	output, err = cli.runWithToken(hostAuth.Token, "session", "create",
		"--team-min", "0", "--team-max", "4", "--players-min", "-2", "--players-max", "6")
	require.Error(t, err)
	assert.Contains(t, output, "INVALID_BOUNDS")
	assert.Contains(t, output, "team_min")
	assert.Contains(t, output, "team_players_min")

	// Non-creators cannot read the lobby
	output, err = cli.runWithToken(hostAuth.Token, "session", "create",
		"--team-min", "2", "--team-max", "4", "--players-min", "4", "--players-max", "6")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	output, err = cli.run("player", "guest", "--name", "Other")
	require.NoError(t, err, "output: %s", output)

	var otherAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &otherAuth))

	output, err = cli.runWithToken(otherAuth.Token, "session", "get", created.Code)
	require.Error(t, err)
	assert.Contains(t, output, "SESSION_NOT_FOUND")
}
