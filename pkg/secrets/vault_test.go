package secrets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyVaultSecrets_KV2(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v1/secret/data/symptomchecker", r.URL.Path)
		assert.Equal(t, "root", r.Header.Get("X-Vault-Token"))
		assert.Equal(t, "team", r.Header.Get("X-Vault-Namespace"))
		w.Write([]byte(`{"data":{"data":{"SECRETS_TEST_KEY":"abc","SECRETS_TEST_PORT":5433,"SECRETS_TEST_KEEP":"vault"}}}`))
	}))
	defer server.Close()

	t.Setenv("SECRETS_TEST_KEY", "")
	t.Setenv("SECRETS_TEST_PORT", "")
	t.Setenv("SECRETS_TEST_KEEP", "local")

	result, err := ApplyVaultSecrets(context.Background(), VaultConfig{
		Enabled:   true,
		Addr:      server.URL + "/",
		Token:     "root",
		Namespace: "team",
		Mount:     "secret",
		Path:      "symptomchecker",
		KVVersion: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Loaded)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "abc", os.Getenv("SECRETS_TEST_KEY"))
	assert.Equal(t, "5433", os.Getenv("SECRETS_TEST_PORT"))
	assert.Equal(t, "local", os.Getenv("SECRETS_TEST_KEEP"))
	assert.Equal(t, int32(1), calls.Load())
}

func TestApplyVaultSecrets_ForbiddenIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"errors":["permission denied"]}`, http.StatusForbidden)
	}))
	defer server.Close()

	_, err := ApplyVaultSecrets(context.Background(), VaultConfig{
		Enabled: true, Addr: server.URL, Token: "bad", Mount: "secret", Path: "app", KVVersion: 2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, int32(1), calls.Load())
}

func TestApplyVaultSecrets_DisabledAndIncomplete(t *testing.T) {
	result, err := ApplyVaultSecrets(context.Background(), VaultConfig{})
	require.NoError(t, err)
	assert.False(t, result.Enabled)

	_, err = ApplyVaultSecrets(context.Background(), VaultConfig{Enabled: true, Addr: "http://vault"})
	assert.ErrorContains(t, err, "incomplete")
}

func TestBuildVaultURL(t *testing.T) {
	url, err := buildVaultURL("http://vault:8200", "/kv/", "/app", 1)
	require.NoError(t, err)
	assert.Equal(t, "http://vault:8200/v1/kv/app", url)

	_, err = buildVaultURL("http://vault:8200", "", "app", 2)
	assert.Error(t, err)
}

func TestExtractVaultData_KV1(t *testing.T) {
	data, err := extractVaultData([]byte(`{"data":{"K":true}}`), 1)
	require.NoError(t, err)
	assert.Equal(t, "true", stringifyVaultValue(data["K"]))

	_, err = extractVaultData([]byte(`{"data":{}}`), 2)
	assert.Error(t, err)
}

func TestLoadVaultConfigFromEnv(t *testing.T) {
	t.Setenv("VAULT_ENABLED", "TRUE")
	t.Setenv("VAULT_PATH", "from-env")
	t.Setenv("VAULT_MOUNT", "")
	t.Setenv("VAULT_KV_VERSION", "1")
	t.Setenv("VAULT_TIMEOUT_MS", "250")

	cfg := LoadVaultConfigFromEnv("")
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "from-env", cfg.Path)
	assert.Equal(t, "secret", cfg.Mount)
	assert.Equal(t, 1, cfg.KVVersion)
	assert.Equal(t, int64(250), cfg.Timeout.Milliseconds())

	assert.Equal(t, "override", LoadVaultConfigFromEnv("override").Path)
}
