// Package testutil provides testing utilities.
package testutil

import (
	"os"
	"testing"
)

// SkipAITests skips the test if RUN_AI_TESTS is not set.
// Use this for tests that call the OpenRouter API with a real key.
//
// Run AI tests with: RUN_AI_TESTS=1 go test ./...
func SkipAITests(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_AI_TESTS") == "" {
		t.Skip("Skipping AI test (set RUN_AI_TESTS=1 to run)")
	}
}

// SkipNetworkTests skips the test if RUN_NETWORK_TESTS is not set.
// Use this for tests that talk to the live Steam Web API.
func SkipNetworkTests(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_NETWORK_TESTS") == "" {
		t.Skip("Skipping network test (set RUN_NETWORK_TESTS=1 to run)")
	}
}
