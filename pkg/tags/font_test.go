package tags

import (
	"sync"
	"testing"
)

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer()
	if err != nil {
		t.Fatalf("NewFontMeasurer() error: %v", err)
	}
	defer m.Close()

	small, err := m.Measure("cloud", 12)
	if err != nil {
		t.Fatalf("Measure() error: %v", err)
	}
	large, err := m.Measure("cloud", 48)
	if err != nil {
		t.Fatalf("Measure() error: %v", err)
	}

	if small.Width <= 0 || small.Height <= 0 {
		t.Errorf("Measure(12pt) = %v, want positive size", small)
	}
	if large.Width <= small.Width || large.Height <= small.Height {
		t.Errorf("Measure(48pt) = %v, want larger than %v", large, small)
	}

	longer, _ := m.Measure("cloudcloud", 12)
	if longer.Width <= small.Width {
		t.Errorf("longer word width = %d, want > %d", longer.Width, small.Width)
	}

	empty, _ := m.Measure("", 12)
	if empty.Width != 0 {
		t.Errorf("Measure(\"\") width = %d, want 0", empty.Width)
	}
}

func TestFontMeasurerConcurrent(t *testing.T) {
	m, err := NewFontMeasurer()
	if err != nil {
		t.Fatalf("NewFontMeasurer() error: %v", err)
	}
	defer m.Close()

	want, _ := m.Measure("spiral", 20)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := m.Measure("spiral", 20)
			if err != nil || got != want {
				t.Errorf("Measure() = %v, %v, want %v", got, err, want)
			}
		}()
	}
	wg.Wait()
}

func TestNewFontMeasurerFromTTFInvalid(t *testing.T) {
	if _, err := NewFontMeasurerFromTTF([]byte("not a font")); err == nil {
		t.Error("NewFontMeasurerFromTTF() error = nil, want error")
	}
}
