package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigUnmarshalMarshalRoundTrip(t *testing.T) {
	raw := []byte("[core]\n\trepositoryformatversion = 0\n\tfilemode = true\n\tbare = false\n")

	var c Config
	require.NoError(t, Unmarshal(raw, &c))

	assert.Equal(t, 0, c.Core.RepositoryFormatVersion)
	assert.True(t, c.Core.FileMode)
	assert.False(t, c.Core.Bare)
	assert.Equal(t, raw, Marshal(&c))
}

func TestConfigUnmarshalUserIdentity(t *testing.T) {
	raw := []byte("[user]\n\tname = Ada Lovelace\n\temail = ada@example.com\n")

	var c Config
	require.NoError(t, Unmarshal(raw, &c))

	assert.Equal(t, "Ada Lovelace", c.User.Name)
	assert.Equal(t, "ada@example.com", c.User.Email)
}

func TestResolveIdentityPrefersRepoConfig(t *testing.T) {
	t.Setenv("GIT_AUTHOR_NAME", "Env Name")
	t.Setenv("GIT_AUTHOR_EMAIL", "env@example.com")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	repo := NewConfig()
	repo.User.Name = "Repo Name"
	repo.User.Email = "repo@example.com"

	id, err := ResolveIdentity(repo)
	require.NoError(t, err)
	assert.Equal(t, "Repo Name", id.Name)
	assert.Equal(t, "repo@example.com", id.Email)
}

func TestResolveIdentityFallsBackToEnv(t *testing.T) {
	t.Setenv("GIT_AUTHOR_NAME", "Env Name")
	t.Setenv("GIT_AUTHOR_EMAIL", "env@example.com")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	repo := NewConfig()

	id, err := ResolveIdentity(repo)
	require.NoError(t, err)
	assert.Equal(t, "Env Name", id.Name)
	assert.Equal(t, "env@example.com", id.Email)
}

func TestResolveIdentityMissing(t *testing.T) {
	t.Setenv("GIT_AUTHOR_NAME", "")
	t.Setenv("GIT_AUTHOR_EMAIL", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := ResolveIdentity(NewConfig())
	assert.Error(t, err)
}
