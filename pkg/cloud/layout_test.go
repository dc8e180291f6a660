package cloud

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

func testLayout(t *testing.T) Layout {
	t.Helper()
	l := New(geom.Point{})
	tags := []Tag{
		{Word: "cloud", Weight: 9, FontSize: 40},
		{Word: "spiral", Weight: 4, FontSize: 24},
		{Word: "tag", Weight: 1, FontSize: 12},
	}
	sizes := []geom.Size{geom.Sz(100, 40), geom.Sz(70, 24), geom.Sz(20, 12)}
	for _, s := range sizes {
		if _, err := l.PutNextRectangle(s); err != nil {
			t.Fatal(err)
		}
	}
	layout, err := NewLayout(l.Center(), l.Rectangles(), tags)
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}
	return layout
}

func TestNewLayout(t *testing.T) {
	l := testLayout(t)

	if len(l.Tags) != 3 {
		t.Fatalf("Tags count = %d, want 3", len(l.Tags))
	}
	if l.Tags[0].Rect.Location() != geom.Pt(-50, 20) {
		t.Errorf("first tag location = %v, want (-50, 20)", l.Tags[0].Rect.Location())
	}
	if l.Bounds != geom.Bounds(l.Rects()) {
		t.Errorf("Bounds = %v, want %v", l.Bounds, geom.Bounds(l.Rects()))
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestNewLayoutLengthMismatch(t *testing.T) {
	_, err := NewLayout(geom.Point{}, []geom.Rect{{}}, nil)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("NewLayout() error = %v, want %s", err, errors.ErrCodeInternal)
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		tags    []Tag
		wantErr bool
	}{
		{
			name: "disjoint",
			tags: []Tag{
				{Word: "a", Rect: geom.Rect{X: 0, Y: 2, Width: 2, Height: 2}},
				{Word: "b", Rect: geom.Rect{X: 2, Y: 2, Width: 2, Height: 2}},
			},
		},
		{
			name: "overlapping",
			tags: []Tag{
				{Word: "a", Rect: geom.Rect{X: 0, Y: 2, Width: 2, Height: 2}},
				{Word: "b", Rect: geom.Rect{X: 1, Y: 2, Width: 2, Height: 2}},
			},
			wantErr: true,
		},
		{
			name:    "negative size",
			tags:    []Tag{{Word: "a", Rect: geom.Rect{Width: -2, Height: 2}}},
			wantErr: true,
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Layout{Tags: tt.tags}.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	want := testLayout(t)
	want.ID = "abc"
	path := filepath.Join(t.TempDir(), "cloud.layout.json")

	if err := WriteLayoutFile(want, path); err != nil {
		t.Fatalf("WriteLayoutFile() error: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error: %v", err)
	}

	if got.ID != want.ID || got.Center != want.Center || got.Bounds != want.Bounds {
		t.Errorf("header = %+v, want %+v", got, want)
	}
	for i := range want.Tags {
		if got.Tags[i] != want.Tags[i] {
			t.Errorf("Tags[%d] = %+v, want %+v", i, got.Tags[i], want.Tags[i])
		}
	}
}

func TestReadLayoutFileMissing(t *testing.T) {
	_, err := ReadLayoutFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadLayoutFile() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestUnmarshalLayoutInvalid(t *testing.T) {
	if _, err := UnmarshalLayout([]byte("{not json")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("UnmarshalLayout() error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestUnmarshalLayoutFillsBounds(t *testing.T) {
	data := []byte(`{"center":{"x":0,"y":0},"tags":[{"word":"a","weight":1,"font_size":10,"rect":{"x":-1,"y":1,"width":2,"height":2}}]}`)
	l, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error: %v", err)
	}
	want := geom.Rect{X: -1, Y: 1, Width: 2, Height: 2}
	if l.Bounds != want {
		t.Errorf("Bounds = %v, want %v", l.Bounds, want)
	}
}
