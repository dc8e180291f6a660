package tags

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts []CountOption
		want []Tag
	}{
		{
			name: "frequencies",
			text: "go Go GO rust rust zig",
			want: []Tag{{"go", 3}, {"rust", 2}, {"zig", 1}},
		},
		{
			name: "punctuation trimmed",
			text: "\"Hello,\" world! (hello) world... hello?",
			want: []Tag{{"hello", 3}, {"world", 2}},
		},
		{
			name: "ties sorted by word",
			text: "beta alpha gamma",
			want: []Tag{{"alpha", 1}, {"beta", 1}, {"gamma", 1}},
		},
		{
			name: "min length",
			text: "a an the cloud",
			opts: []CountOption{WithMinLength(3)},
			want: []Tag{{"cloud", 1}, {"the", 1}},
		},
		{
			name: "stop words",
			text: "The cloud and the spiral",
			opts: []CountOption{WithStopWords("THE", "and")},
			want: []Tag{{"cloud", 1}, {"spiral", 1}},
		},
		{
			name: "limit",
			text: "a a a b b c",
			opts: []CountOption{WithLimit(2)},
			want: []Tag{{"a", 3}, {"b", 2}},
		},
		{
			name: "only punctuation",
			text: "-- ... !!",
			want: []Tag{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Count(strings.NewReader(tt.text), tt.opts...)
			if err != nil {
				t.Fatalf("Count() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Count() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseWeighted(t *testing.T) {
	input := `# weighted words
cloud 10
spiral 4

layout
cloud 2
`
	got, err := ParseWeighted(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseWeighted() error: %v", err)
	}
	want := []Tag{{"cloud", 12}, {"spiral", 4}, {"layout", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseWeighted() = %v, want %v", got, want)
	}
}

func TestParseWeightedErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine string
	}{
		{"too many fields", "cloud 1\nspiral 2 3\n", "line 2"},
		{"bad weight", "cloud x\n", "line 1"},
		{"negative weight", "ok 1\n\ncloud -3\n", "line 3"},
		{"word too long", strings.Repeat("w", errors.MaxWordLength+1) + " 1\n", "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWeighted(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("ParseWeighted() error = %v, want code %s", err, errors.ErrCodeInvalidInput)
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("ParseWeighted() error = %q, want mention of %q", err, tt.wantLine)
			}
		})
	}
}
