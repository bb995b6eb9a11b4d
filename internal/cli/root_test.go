package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/mlanglet/coretrack/pkg/catalog"
)

func TestRootCommandWiring(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{"generate": false, "cache": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}

func TestRootCommandUnknownSubcommand(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"nonsense"})

	if err := root.Execute(); err == nil {
		t.Error("expected error for unknown subcommand")
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestAppendRecordGroupsByOwner(t *testing.T) {
	var cat catalog.Catalog

	appendRecord(&cat, "budude2", catalog.Record{DisplayName: "GBA for Pocket"})
	appendRecord(&cat, "agg23", catalog.Record{DisplayName: "SNES for Pocket"})
	appendRecord(&cat, "budude2", catalog.Record{DisplayName: "NDS for Pocket"})

	if len(cat) != 2 {
		t.Fatalf("expected 2 owner groups, got %d", len(cat))
	}
	if cat[0].Username != "budude2" || len(cat[0].Cores) != 2 {
		t.Errorf("first group = %s with %d cores", cat[0].Username, len(cat[0].Cores))
	}
	if cat[1].Username != "agg23" || len(cat[1].Cores) != 1 {
		t.Errorf("second group = %s with %d cores", cat[1].Username, len(cat[1].Cores))
	}
	// Config order is preserved within a group.
	if cat[0].Cores[1].DisplayName != "NDS for Pocket" {
		t.Errorf("core order not preserved: %+v", cat[0].Cores)
	}
}
