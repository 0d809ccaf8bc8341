package clinic_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared helpers for the clinic end-to-end tests.
 * The image is built once per run from cmd/clinic/Dockerfile.
 */

const (
	testImageName = "clinic-test:latest"

	patientPassword = "Patient123!"
)

var dockerAvailable bool

// TestMain builds the Docker image once before all tests and removes it
// afterwards. Without a docker binary the suite is skipped.
func TestMain(m *testing.M) {
	if _, err := exec.LookPath("docker"); err != nil || testing.Short() {
		fmt.Fprintln(os.Stdout, "docker not available, skipping clinic e2e tests")
		os.Exit(m.Run())
	}
	dockerAvailable = true

	fmt.Fprintf(os.Stdout, "Building Clinic Service Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Clinic Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/clinic/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// baseEnv is the container environment shared by every setup.
func baseEnv() map[string]string {
	return map[string]string{
		"CLINIC_DATABASE_FILE": "/data/clinic.db",
		"CLINIC_PEPPER_FILE":   "/data/clinic.pepper",
		"CLINIC_ISSUER":        "clinic-e2e",
		"CLINIC_NUM_KEYS":      "1",
		"ENV":                  "test",
		"LOG_LEVEL":            "info",
		"LOG_FORMAT":           "json",
	}
}

// relaxedLimits raises every profile so rapid test traffic is not throttled.
func relaxedLimits(env map[string]string) map[string]string {
	for _, p := range []string{"STRICT", "MODERATE", "LENIENT", "PUBLIC"} {
		env["RATELIMIT_"+p+"_REQUESTS"] = "1000"
		env["RATELIMIT_"+p+"_WINDOW_SEC"] = "60"
		env["RATELIMIT_"+p+"_BURST"] = "1000"
	}
	return env
}

// setupClinicContainer starts the service with relaxed rate limits and
// returns its base URL.
func setupClinicContainer(t *testing.T) string {
	t.Helper()
	return startContainer(t, relaxedLimits(baseEnv()))
}

// setupClinicContainerWithDefaultRateLimits keeps production limits, for the
// tests that check throttling itself.
func setupClinicContainerWithDefaultRateLimits(t *testing.T) string {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) string {
	t.Helper()
	if !dockerAvailable {
		t.Skip("docker not available")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// newClient returns an SDK client with its own cookie jar.
func newClient(t *testing.T, baseURL string) *clinicsdk.SDKClient {
	t.Helper()
	c, err := clinicsdk.NewSDKClient(baseURL)
	require.NoError(t, err)
	return c
}

// signUp registers a fresh patient and returns a signed-in client.
func signUp(t *testing.T, baseURL, name, email string) (*clinicsdk.SDKClient, *clinicsdk.User) {
	t.Helper()
	c := newClient(t, baseURL)
	user, err := c.Signup(t.Context(), clinicsdk.SignupRequest{
		Name:     name,
		Email:    email,
		Password: patientPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, c.Cookie("token"), "signup should set the identity cookie")
	return c, user
}

// requireAPIError asserts err is an *clinicsdk.APIError with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) *clinicsdk.APIError {
	t.Helper()
	require.Error(t, err)

	var apiErr *clinicsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

// assertHealthy verifies that a health response indicates a healthy service.
func assertHealthy(t *testing.T, health *clinicsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
