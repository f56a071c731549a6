package webmachine

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain guards against a resource callback that starts background work
// (e.g. a delete_resource that spawns a goroutine) and never waits on it.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
