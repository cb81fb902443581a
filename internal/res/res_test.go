package res

import (
	"path/filepath"
	"testing"
)

func TestDensitiesTable(t *testing.T) {
	want := []Density{
		{"mipmap-mdpi", 48},
		{"mipmap-hdpi", 72},
		{"mipmap-xhdpi", 96},
		{"mipmap-xxhdpi", 144},
		{"mipmap-xxxhdpi", 192},
	}

	got := Densities()
	if len(got) != len(want) {
		t.Fatalf("got %d densities, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d != want[i] {
			t.Errorf("density %d: got %+v, want %+v", i, d, want[i])
		}
	}
}

func TestDensitiesReturnsCopy(t *testing.T) {
	first := Densities()
	first[0].Size = 999

	if got := Densities()[0].Size; got != 48 {
		t.Errorf("table mutated through returned slice: mdpi size = %d", got)
	}
}

func TestIconPath(t *testing.T) {
	got := IconPath("root", "mipmap-hdpi", IconName)
	want := filepath.Join("root", "mipmap-hdpi", "ic_launcher.png")
	if got != want {
		t.Errorf("IconPath = %q, want %q", got, want)
	}
}
