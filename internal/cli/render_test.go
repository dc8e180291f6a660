package cli

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,png,json", []string{"svg", "png", "json"}},
		{"spaces trimmed", "svg, json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "words.txt")
	artifacts := map[string][]byte{
		"svg":  []byte("<svg/>"),
		"json": []byte("{}"),
	}

	t.Run("multiple formats use base path", func(t *testing.T) {
		err := writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   []string{"svg", "json"},
			input:     input,
		})
		if err != nil {
			t.Fatalf("writeArtifacts() error: %v", err)
		}
		for _, name := range []string{"words.svg", "words.json"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Errorf("expected %s: %v", name, err)
			}
		}
	})

	t.Run("single format honors output", func(t *testing.T) {
		out := filepath.Join(dir, "custom.image")
		err := writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   []string{"svg"},
			input:     input,
			output:    out,
		})
		if err != nil {
			t.Fatalf("writeArtifacts() error: %v", err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "<svg/>" {
			t.Errorf("content = %q, want %q", data, "<svg/>")
		}
	})

	t.Run("missing artifact", func(t *testing.T) {
		err := writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   []string{"png"},
			input:     input,
		})
		if err == nil {
			t.Error("writeArtifacts() should fail for a format that was not rendered")
		}
	})
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	var (
		lf layoutFlags
		rf renderFlags
		tf tagFlags
	)
	cmd := &cobra.Command{Use: "test"}
	lf.register(cmd)
	rf.register(cmd)
	tf.register(cmd)

	if err := cmd.ParseFlags([]string{"--step", "0", "--center-x", "5", "--style", "outline", "-f", "svg,png", "--weighted"}); err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	opts := pipeline.DefaultOptions()
	want := opts
	tf.apply(cmd, &opts)
	lf.apply(cmd, &opts)
	if err := rf.apply(cmd, &opts); err != nil {
		t.Fatalf("apply() error: %v", err)
	}

	if opts.CompactionStep != 0 {
		t.Errorf("CompactionStep = %d, want 0", opts.CompactionStep)
	}
	if opts.CenterX != 5 {
		t.Errorf("CenterX = %d, want 5", opts.CenterX)
	}
	if opts.Style != "outline" {
		t.Errorf("Style = %q, want outline", opts.Style)
	}
	if !slices.Equal(opts.Formats, []string{"svg", "png"}) {
		t.Errorf("Formats = %v, want [svg png]", opts.Formats)
	}
	if !opts.Weighted {
		t.Error("Weighted should be set")
	}
	if opts.Padding != want.Padding || opts.MaxFontSize != want.MaxFontSize || opts.Margin != want.Margin {
		t.Error("unset flags should keep configured values")
	}
}

func TestRenderFlagsRejectInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"-f", "pdf"}},
		{"bad style", []string{"--style", "handdrawn"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rf renderFlags
			cmd := &cobra.Command{Use: "test"}
			rf.register(cmd)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error: %v", err)
			}
			opts := pipeline.DefaultOptions()
			if err := rf.apply(cmd, &opts); err == nil {
				t.Error("apply() should fail")
			}
		})
	}
}
