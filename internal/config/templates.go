package config

import (
	"fmt"
	"os"
)

// WriteTemplate writes a starter channel preset to path, refusing to
// clobber an existing file unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(presetTemplate), 0o600)
}

const presetTemplate = `name = "default"
protocol_version = 64831
max_payload = 67108864
start_id = 0
stats_backend = "none"
`
