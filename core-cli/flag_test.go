package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atlas-ledger/core-go/core"
)

// resetFlagState restores the package level flag state between tests. The
// flag sets themselves are bound to the package level variables at init, so
// only the values and the set-tracking map need resetting.
func resetFlagState(t *testing.T) {
	t.Helper()
	argv := os.Args
	t.Cleanup(func() {
		os.Args = argv
		flagIsSet = map[string]bool{}
		cmd = ""
		consumerAction = ""
		LogDebug = false
		Client.CoreServer = core.CoreServerDefault
		Client.Timeout = 15 * time.Second
		Client.DebugRequest = false
	})
	flagIsSet = map[string]bool{}
	cmd = ""
	consumerAction = ""
	LogDebug = false
	Client.CoreServer = core.CoreServerDefault
	Client.Timeout = 15 * time.Second
	Client.DebugRequest = false
}

func TestParseEnvFallbacks(t *testing.T) {
	assert := assert.New(t)
	resetFlagState(t)
	t.Setenv("CORECLI_CORE_SERVER", "http://env-server:1999")
	t.Setenv("CORECLI_TIMEOUT", "30s")
	t.Setenv("CORECLI_DEBUG", "true")

	os.Args = []string{"core-cli", "transactions"}
	assert.Equal("transactions", Parse())
	assert.Equal("http://env-server:1999", Client.CoreServer)
	assert.Equal(30*time.Second, Client.Timeout)
	assert.True(LogDebug)
	assert.True(Client.DebugRequest)
}

func TestParseFlagOverridesEnv(t *testing.T) {
	// Options specified on the command line win over environment
	// variables.
	assert := assert.New(t)
	resetFlagState(t)
	t.Setenv("CORECLI_CORE_SERVER", "http://env-server:1999")
	t.Setenv("CORECLI_TIMEOUT", "30s")

	os.Args = []string{"core-cli",
		"-s", "http://flag-server:1999", "transactions"}
	Parse()
	assert.Equal("http://flag-server:1999", Client.CoreServer)
	// Only the flag that was set on the command line masks its
	// environment variable.
	assert.Equal(30*time.Second, Client.Timeout)
}

func TestParseDebugEnvFalse(t *testing.T) {
	// A false-valued boolean environment variable does not enable the
	// flag.
	assert := assert.New(t)
	resetFlagState(t)
	t.Setenv("CORECLI_DEBUG", "false")

	os.Args = []string{"core-cli", "transactions"}
	Parse()
	assert.False(LogDebug)
	assert.False(Client.DebugRequest)
}

func TestParseConsumerAction(t *testing.T) {
	assert := assert.New(t)
	resetFlagState(t)

	os.Args = []string{"core-cli", "consumer", "update",
		"-id", "cons1", "-after", "pos5"}
	assert.Equal("consumer", Parse())
	assert.Equal("update", consumerAction)
	assert.Equal("cons1", id)
	assert.Equal("pos5", after)
	assert.NoError(Validate())
}
