package config_test

import (
	"testing"

	"github.com/adrg/xdg"
)

// setConfigHome points the XDG config home at dir for the duration of the test.
func setConfigHome(t *testing.T, dir string) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
}
