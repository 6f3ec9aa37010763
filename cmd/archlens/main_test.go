package main

import (
	"testing"

	"github.com/archlens/archlens/catalog"
)

func TestParsePillarFlags(t *testing.T) {
	t.Run("accepts lower-case names", func(t *testing.T) {
		pillars, err := parsePillarFlags([]string{"security", " reliability "})
		if err != nil {
			t.Fatalf("parsePillarFlags() error = %v", err)
		}
		if pillars[0] != catalog.PillarSecurity || pillars[1] != catalog.PillarReliability {
			t.Errorf("got %v", pillars)
		}
	})

	t.Run("rejects unknown pillar", func(t *testing.T) {
		if _, err := parsePillarFlags([]string{"quality"}); err == nil {
			t.Error("expected error for unknown pillar")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		pillars, err := parsePillarFlags(nil)
		if err != nil || len(pillars) != 0 {
			t.Errorf("got %v, %v", pillars, err)
		}
	})
}

func TestRootCmdHasSubcommands(t *testing.T) {
	cmd := rootCmd()
	want := []string{"review", "pillars", "rules", "priorities", "matrix", "roadmap", "solutions", "serve", "version"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
