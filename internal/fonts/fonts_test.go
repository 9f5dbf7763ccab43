package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf", "readme.txt")

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("ScanDir() = %v, want 3 font files", got)
	}

	missing, err := ScanDir(filepath.Join(dir, "nope"))
	if err != nil || len(missing) != 0 {
		t.Errorf("ScanDir(missing) = %v, %v", missing, err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Google_Sans_Code/GoogleSansCode.ttf")

	tests := []struct {
		name string
		want string
	}{
		{"Inter", "Inter/Inter-Regular.ttf"},
		{"inter bold", "Inter/Inter-Bold.ttf"},
		{"Google Sans", "Google_Sans_Code/GoogleSansCode.ttf"},
		{"assets/fonts/Inter-Bold.ttf", "Inter/Inter-Bold.ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(tt.name, dir)
			if err != nil {
				t.Fatalf("Find(%q) error = %v", tt.name, err)
			}
			if want := filepath.Join(dir, filepath.FromSlash(tt.want)); got != want {
				t.Errorf("Find(%q) = %q, want %q", tt.name, got, want)
			}
		})
	}

	direct := filepath.Join(dir, "Inter", "Inter-Bold.ttf")
	if got, err := Find(direct, t.TempDir()); err != nil || got != direct {
		t.Errorf("Find(existing path) = %q, %v", got, err)
	}
	for _, name := range []string{"", "Roboto"} {
		if _, err := Find(name, dir); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Find(%q) error = %v, want ErrNotExist", name, err)
		}
	}
}
