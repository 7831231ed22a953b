package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mytool/internal/core"
	"mytool/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	home := testsupport.IsolateHome(t)

	res := runCLIInPlace(t, "config", "validate")
	require.Equal(t, core.ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Config file did not exist; defaults were used")
	assert.Contains(t, res.stdout, "Configuration valid")

	res = runCLIInPlace(t, "config", "init")
	require.Equal(t, core.ExitOK, res.code, res.stderr)
	target := filepath.Join(home, ".config", "mytool", "config.toml")
	assert.Contains(t, res.stdout, "Wrote sample configuration to "+target)
	_, err := os.Stat(target)
	require.NoError(t, err)
	_, err = os.Stat(target + ".lock")
	assert.True(t, os.IsNotExist(err), "lock file is removed after writing")

	res = runCLIInPlace(t, "config", "validate")
	require.Equal(t, core.ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Config path: "+target)
	assert.NotContains(t, res.stdout, "defaults were used")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	testsupport.IsolateHome(t)
	target := filepath.Join(t.TempDir(), "nested", "mytool.toml")

	res := runCLIInPlace(t, "config", "init", "--path", target)
	require.Equal(t, core.ExitOK, res.code, res.stderr)

	res = runCLIInPlace(t, "config", "init", "--path", target)
	assert.Equal(t, core.ExitError, res.code)
	assert.Contains(t, res.stderr, "config file already exists")

	res = runCLIInPlace(t, "config", "init", "-p", target, "--overwrite")
	assert.Equal(t, core.ExitOK, res.code, res.stderr)
}

func TestConfigValidateReportsErrors(t *testing.T) {
	testsupport.IsolateHome(t)
	path := writeRaw(t, "[logging]\nformat = \"xml\"\n")

	res := runCLIInPlace(t, "--config", path, "config", "validate")
	assert.Equal(t, core.ExitError, res.code)
	assert.Contains(t, res.stderr, "logging.format must be console or json")

	path = writeRaw(t, "[hello]\nnickname = \"x\"\n")
	res = runCLIInPlace(t, "--config", path, "config", "validate")
	assert.Equal(t, core.ExitError, res.code)
	assert.Contains(t, res.stderr, "Error: load config: parse config")
}

func TestConfigShow(t *testing.T) {
	testsupport.IsolateHome(t)
	cfg := testsupport.NewConfig(t, testsupport.WithDefaultName("Ada"), testsupport.WithColor("never"))
	path := testsupport.WriteConfig(t, cfg)

	res := runCLIInPlace(t, "--config", path, "config", "show")
	require.Equal(t, core.ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Source: "+path)
	assert.Contains(t, res.stdout, "hello.default_name")
	assert.Contains(t, res.stdout, "Ada")
	assert.Contains(t, res.stdout, "output.color")

	res = runCLIInPlace(t, "--config", path, "config", "show", "--json")
	require.Equal(t, core.ExitOK, res.code, res.stderr)
	got := decodeJSON(t, res.stdout)
	assert.Equal(t, map[string]any{"default_name": "Ada"}, got["hello"])
	assert.Equal(t, map[string]any{"color": "never"}, got["output"])
}

func TestConfigShowWithoutFile(t *testing.T) {
	res := runCLI(t, "config", "show")
	require.Equal(t, core.ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "defaults (no config file found)")
	assert.Contains(t, res.stdout, "world")
}

func TestConfigRejectsUnknownSubcommand(t *testing.T) {
	res := runCLI(t, "config", "bogus")
	assert.Equal(t, core.ExitUsage, res.code)
	assert.Contains(t, res.stderr, `Error: unknown config command "bogus"`)
	assert.Contains(t, res.stderr, "Run 'mytool config --help' for usage.")
}
