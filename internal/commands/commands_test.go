package commands

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	reg := NewRegistry()
	fs := flag.NewFlagSet("steps", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	n := fs.Int("n", 1, "")
	var ran int
	reg.Register("steps", "run steps", fs, func() error {
		ran = *n
		return nil
	})
	failing := flag.NewFlagSet("fail", flag.ContinueOnError)
	reg.Register("fail", "always fails", failing, func() error { return errors.New("boom") })

	if err := reg.Execute([]string{"steps", "-n", "12"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ran != 12 {
		t.Errorf("flag value seen by Run = %d, want 12", ran)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"unknown", []string{"jump"}},
		{"bad flag", []string{"steps", "-n", "x"}},
		{"run error", []string{"fail"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := reg.Execute(tt.args); err == nil || errors.Is(err, ErrUsage) {
				t.Errorf("Execute(%q) error = %v", tt.args, err)
			}
		})
	}

	for _, args := range [][]string{nil, {"help"}, {"-h"}} {
		if err := reg.Execute(args); !errors.Is(err, ErrUsage) {
			t.Errorf("Execute(%q) error = %v, want ErrUsage", args, err)
		}
	}
}

func TestUsage_SortedCommands(t *testing.T) {
	reg := NewRegistry()
	reg.Register("view", "open a window", flag.NewFlagSet("view", flag.ContinueOnError), func() error { return nil })
	reg.Register("run", "headless", flag.NewFlagSet("run", flag.ContinueOnError), func() error { return nil })
	var b strings.Builder
	reg.Usage(&b, "balls")
	out := b.String()
	if !strings.HasPrefix(out, "usage: balls <command> [flags]") {
		t.Errorf("usage header missing: %q", out)
	}
	if strings.Index(out, "run") > strings.Index(out, "view") {
		t.Errorf("commands not sorted: %q", out)
	}
}
