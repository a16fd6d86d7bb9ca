package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every env var that Load() reads.
var allConfigKeys = []string{
	"GITHUB_TOKEN",
	"OPENAI_API_KEY",
	"GITHUB_REF",
	"GITHUB_REPOSITORY",
	"SALACIOUS_MODEL",
	"SALACIOUS_MAX_PATCH_BYTES",
	"SALACIOUS_OPENAI_BASE_URL",
	"SALACIOUS_LOG_LEVEL",
}

// isolateConfigEnv saves and unsets all env vars Load() reads so tests don't
// inherit values from the host environment (e.g. a real Actions runner).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

// setRequiredEnv sets the four variables Load() insists on.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "ghp_test123")
	t.Setenv("OPENAI_API_KEY", "sk-test456")
	t.Setenv("GITHUB_REPOSITORY", "octocat/hello-world")
	t.Setenv("GITHUB_REF", "refs/pull/42/merge")
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)
	t.Setenv("SALACIOUS_MODEL", "gpt-4o-mini")
	t.Setenv("SALACIOUS_MAX_PATCH_BYTES", "8000")
	t.Setenv("SALACIOUS_OPENAI_BASE_URL", "http://localhost:9999/v1/chat/completions")
	t.Setenv("SALACIOUS_LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "ghp_test123", cfg.GitHubToken)
	assert.Equal(t, "sk-test456", cfg.OpenAIKey)
	assert.Equal(t, "octocat/hello-world", cfg.Repo)
	assert.Equal(t, 42, cfg.PRNumber)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 8000, cfg.MaxPatchBytes)
	assert.Equal(t, "http://localhost:9999/v1/chat/completions", cfg.OpenAIBaseURL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 42, cfg.PRNumber)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Model)
	assert.Equal(t, 4097, cfg.MaxPatchBytes)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAIBaseURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_MissingGitHubToken(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)
	os.Unsetenv("GITHUB_TOKEN")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
}

func TestLoad_MissingOpenAIKey(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)
	os.Unsetenv("OPENAI_API_KEY")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_MissingRepository(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)
	os.Unsetenv("GITHUB_REPOSITORY")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_REPOSITORY")
}

func TestLoad_MissingRef(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)
	os.Unsetenv("GITHUB_REF")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_REF")
}

// TestLoad_BranchRef verifies that a non-PR ref surfaces the sentinel the
// caller uses to end the run as a successful no-op.
func TestLoad_BranchRef(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)
	t.Setenv("GITHUB_REF", "refs/heads/main")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrNotPullRequest)
}

// TestLoad_MalformedPullRef verifies that a ref with a "pull" segment but no
// usable number is a hard configuration error, not a graceful no-op.
func TestLoad_MalformedPullRef(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)
	t.Setenv("GITHUB_REF", "refs/pull/abc/merge")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotPullRequest)
}

func TestLoad_InvalidMaxPatchBytes(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)
	t.Setenv("SALACIOUS_MAX_PATCH_BYTES", "not-a-number")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SALACIOUS_MAX_PATCH_BYTES")
}

func TestLoad_NonPositiveMaxPatchBytes(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)
	t.Setenv("SALACIOUS_MAX_PATCH_BYTES", "0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SALACIOUS_MAX_PATCH_BYTES")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	isolateConfigEnv(t)
	setRequiredEnv(t)
	t.Setenv("SALACIOUS_LOG_LEVEL", "chatty")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SALACIOUS_LOG_LEVEL")
}

func TestParsePullRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    int
		wantErr error
	}{
		{name: "merge ref", ref: "refs/pull/42/merge", want: 42},
		{name: "head ref", ref: "refs/pull/7/head", want: 7},
		{name: "bare pull ref", ref: "pull/3/merge", want: 3},
		{name: "branch ref", ref: "refs/heads/main", wantErr: ErrNotPullRequest},
		{name: "tag ref", ref: "refs/tags/v1.0.0", wantErr: ErrNotPullRequest},
		{name: "empty ref", ref: "", wantErr: ErrNotPullRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePullRef(tt.ref)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePullRef_MalformedNumber(t *testing.T) {
	for _, ref := range []string{"refs/pull/abc/merge", "refs/pull"} {
		_, err := ParsePullRef(ref)
		require.Error(t, err, "ref %q", ref)
		assert.NotErrorIs(t, err, ErrNotPullRequest, "ref %q", ref)
	}
}
