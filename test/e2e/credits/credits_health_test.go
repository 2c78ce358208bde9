package credits_test

import (
	"testing"

	"github.com/lumenart/credits/pkg/creditsdk"
)

// TestLivezEndpoint verifies the liveness check endpoint works without auth.
func TestLivezEndpoint(t *testing.T) {
	baseURL, _, cleanup := setupCreditsContainer(t)
	defer cleanup()

	client := creditsdk.NewClient(baseURL)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the service reports its database as reachable.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, _, cleanup := setupCreditsContainer(t)
	defer cleanup()

	client := creditsdk.NewClient(baseURL)

	health, err := client.Readyz(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Readyz endpoint is healthy")
}
