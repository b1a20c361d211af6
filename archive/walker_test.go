package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	fixzip "github.com/hidez8891/zip"
)

type entry struct {
	name    string
	content string
}

func makeZip(t *testing.T, entries ...entry) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "test.zip")

	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	w := zip.NewWriter(zipFile)
	for _, e := range entries {
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", e.name, err)
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	zipFile.Close()
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := makeZip(t,
		entry{"styles/main.css", "p { color: red }"},
		entry{"styles/print.CSS", "p { color: black }"},
		entry{"styles/readme.txt", "not a stylesheet"},
		entry{"theme/dark.css", "body { color: white }"},
	)

	tests := []struct {
		name   string
		prefix string
		match  func(string) bool
		want   []string
	}{
		{"everything", "", nil, []string{"styles/main.css", "styles/print.CSS", "styles/readme.txt", "theme/dark.css"}},
		{"stylesheets", "", IsStylesheet, []string{"styles/main.css", "styles/print.CSS", "theme/dark.css"}},
		{"prefix", "theme/", IsStylesheet, []string{"theme/dark.css"}},
		{"no match", "nonexistent/", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited []string
			err := Walk(zipPath, tt.prefix, tt.match, func(archive string, file *fixzip.File) error {
				if archive != zipPath {
					t.Errorf("archive = %s, want %s", archive, zipPath)
				}
				visited = append(visited, file.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if !slices.Equal(visited, tt.want) {
				t.Errorf("visited %v, want %v", visited, tt.want)
			}
		})
	}

	t.Run("natural order", func(t *testing.T) {
		numbered := makeZip(t,
			entry{"part10.css", ""},
			entry{"part2.css", ""},
			entry{"part1.css", ""},
		)
		var visited []string
		err := Walk(numbered, "", IsStylesheet, func(_ string, file *fixzip.File) error {
			visited = append(visited, file.Name)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}
		if want := []string{"part1.css", "part2.css", "part10.css"}; !slices.Equal(visited, want) {
			t.Errorf("visited %v, want %v", visited, want)
		}
	})

	t.Run("walkFn returns error", func(t *testing.T) {
		expectedErr := errors.New("test error")
		err := Walk(zipPath, "", nil, func(string, *fixzip.File) error {
			return expectedErr
		})
		if !errors.Is(err, expectedErr) {
			t.Errorf("Walk() error = %v, want %v", err, expectedErr)
		}
	})
}

func TestWalk_InvalidArchive(t *testing.T) {
	if err := Walk("/nonexistent/file.zip", "", nil, func(string, *fixzip.File) error { return nil }); err == nil {
		t.Error("Expected error for nonexistent file")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.zip")
	if err := os.WriteFile(invalid, []byte("not a zip file"), 0644); err != nil {
		t.Fatalf("Failed to create invalid zip: %v", err)
	}
	if err := Walk(invalid, "", nil, func(string, *fixzip.File) error { return nil }); err == nil {
		t.Error("Expected error for invalid zip file")
	}
}

func TestWalk_UnsafePath(t *testing.T) {
	zipPath := makeZip(t, entry{"../evil.css", "p { color: red }"})
	err := Walk(zipPath, "", nil, func(string, *fixzip.File) error {
		t.Error("walkFn must not be called for unsafe entries")
		return nil
	})
	if err == nil {
		t.Error("Expected error for path traversal entry")
	}
}

func TestReadFile(t *testing.T) {
	zipPath := makeZip(t, entry{"a.css", "p { color: red }"})
	err := Walk(zipPath, "", nil, func(_ string, f *fixzip.File) error {
		data, err := ReadFile(f)
		if err != nil {
			return err
		}
		if string(data) != "p { color: red }" {
			t.Errorf("ReadFile() = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
}

func TestIsArchive(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.css")
	if err := os.WriteFile(plain, []byte("p { color: red }"), 0644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.zip")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"zip", makeZip(t, entry{"a.css", "p { color: red }"}), true},
		{"css", plain, false},
		{"empty file", empty, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsArchive(tt.path)
			if err != nil {
				t.Fatalf("IsArchive() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsArchive() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := IsArchive(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a/b.css", true},
		{"a/..b/c.css", true},
		{"../a.css", false},
		{"a/../../b.css", false},
		{"/etc/passwd", false},
		{`\windows\file`, false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.want {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
