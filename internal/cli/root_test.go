package cli

import (
	"sort"
	"testing"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := RootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	sort.Strings(names)

	want := []string{"doctor", "engines", "frontend", "init", "scaffold"}
	if len(names) != len(want) {
		t.Fatalf("subcommands = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("subcommands = %v, want %v", names, want)
			break
		}
	}
}

func TestScaffoldCmd_Flags(t *testing.T) {
	cmd := ScaffoldCmd()
	for _, flag := range []string{"engine", "engine_structure", "domain", "dry-run"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("scaffold is missing --%s", flag)
		}
	}
}

func TestScaffoldCmd_RequiresStructure(t *testing.T) {
	cmd := ScaffoldCmd()
	if err := cmd.Args(cmd, nil); err == nil {
		t.Error("expected error without arguments")
	}
}
