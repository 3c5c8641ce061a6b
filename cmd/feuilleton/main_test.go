package main

import (
	"bytes"
	"testing"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"input", "output-dir", "model", "prefix", "prefix-description"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s to be registered", name)
		}
	}

	if got := cmd.Flags().Lookup("prefix").DefValue; got != "Query: " {
		t.Errorf("expected default prefix %q, got %q", "Query: ", got)
	}
}

func TestRootCmdRequiresInputAndOutput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error when --input and --output-dir are missing")
	}
}
