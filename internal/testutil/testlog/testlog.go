package testlog

import (
	"testing"

	"github.com/danmuck/chanwire/internal/logging"
)

// Start configures the test logging profile and emits a marker line
// tagging subsequent log output with the running test's name.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logging.Log().Info().Str("test", t.Name()).Msg("test start")
}
