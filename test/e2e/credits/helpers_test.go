package credits_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/lumenart/credits/pkg/cryptox"
	"github.com/lumenart/credits/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for credits service end-to-end tests.
 * This includes container setup, token minting, and assertions.
 */

const (
	testImageName = "lumenart-credits-test:latest"

	testIssuer = "lumenart-auth"
	serviceKey = "test-service-key-12345"

	tokenTTL = 15 * time.Minute
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Credits Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Credits Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/credits/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupCreditsContainer starts the credits service in a container. The test
// owns the signing keypair, so it can mint whatever tokens it needs; the
// container only ever sees the public half, the same trust shape as
// production where the auth service holds the private key.
func setupCreditsContainer(t *testing.T) (string, *jwtx.EdDSASigner, func()) {
	t.Helper()
	ctx := context.Background()

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer := jwtx.NewEdDSASigner(privateKey, testIssuer)

	serviceKeyHash, err := cryptox.HashServiceKey(serviceKey)
	require.NoError(t, err)

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"CREDITS_JWT_PUBLIC_KEY":   jwtx.EncodePublicKey(publicKey),
			"CREDITS_JWT_ISSUER":       testIssuer,
			"CREDITS_SERVICE_KEY_HASH": serviceKeyHash,
			"CREDITS_DATABASE_FILE":    "/credits.db",
			"ENV":                      "test",
			"LOG_LEVEL":                "info",
			"LOG_FORMAT":               "json",
			// Increase rate limits for E2E tests to prevent test failures.
			// Tests often make many rapid requests which would otherwise hit
			// the strict production limits
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, signer, cleanup
}

// mintUserToken issues a token carrying the standard user scopes.
func mintUserToken(t *testing.T, signer *jwtx.EdDSASigner, subject string) string {
	t.Helper()

	token, err := signer.Sign(subject, []string{"credits:read", "credits:spend"}, tokenTTL)
	require.NoError(t, err)
	return token
}

// mintAdminToken issues a token carrying admin scopes.
func mintAdminToken(t *testing.T, signer *jwtx.EdDSASigner, subject string) string {
	t.Helper()

	token, err := signer.Sign(
		subject,
		[]string{"credits:read", "credits:spend", "admin:read", "admin:write"},
		tokenTTL,
	)
	require.NoError(t, err)
	return token
}

// registerUser records a user with the engine via the admin surface.
func registerUser(t *testing.T, admin *creditsdk.Client, userID string, dailyLimit int64) {
	t.Helper()

	user, err := admin.RegisterUser(t.Context(), creditsdk.RegisterUserRequest{
		UserID:      userID,
		DisplayName: "e2e " + userID,
		DailyLimit:  dailyLimit,
	})
	require.NoError(t, err)
	require.Equal(t, userID, user.UserID)
}

// grantCredits issues credits to a user via the admin surface.
func grantCredits(t *testing.T, admin *creditsdk.Client, userID string, amount int64, expiresAt *time.Time) {
	t.Helper()

	resp, err := admin.AddCredits(t.Context(), creditsdk.AddCreditsRequest{
		UserID:    userID,
		Amount:    amount,
		Type:      "admin_grant",
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.TransactionID)
}

// assertAPICode verifies an error is an APIError carrying the given stable code.
func assertAPICode(t *testing.T, err error, code, context string) {
	t.Helper()

	require.Error(t, err, context)
	require.True(t, creditsdk.IsCode(err, code),
		"%s - expected code %s, got: %v", context, code, err)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health creditsdk.HealthResponse, err error) {
	t.Helper()

	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}
