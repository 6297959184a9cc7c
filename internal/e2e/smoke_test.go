package e2e

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const token = "smoke-token"

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	panel := newPanel(t)

	env := []string{
		"HOME=" + home,
		"VPNADM_API_URL=" + panel.URL + "/api",
		"VPNADM_SECRETS_BACKEND=file",
		"VPNADM_PASSWORD=secret",
	}

	stdout, stderr, err := runVPNAdm(t, binaryPath, env, "login", "-u", "admin")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Logged in as admin")

	stdout, stderr, err = runVPNAdm(t, binaryPath, env, "client", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "alice")

	_, stderr, err = runVPNAdm(t, binaryPath, env, "logout")
	require.NoError(t, err, "stderr: %s", stderr)

	_, _, err = runVPNAdm(t, binaryPath, env, "client", "list")
	require.Error(t, err)
}

func newPanel(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"access_token":"`+token+`","token_type":"bearer"}`)
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":"u-1","username":"admin","role":"admin","is_active":true}`)
	})
	mux.HandleFunc("GET /api/clients", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `[{"id":"c-1","name":"alice","address":"10.8.0.2/32","status":"active","data_used":0}]`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "vpnadm-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/vpnadm")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build vpnadm binary: %s", string(output))
	return binaryPath
}

func runVPNAdm(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
