package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sampleDoc struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestFileStoreReadMissingLeavesDefault(t *testing.T) {
	st, err := OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer st.Close()

	doc := sampleDoc{Name: "default", Items: []string{"a"}}
	st.Read("absent", &doc)

	if doc.Name != "default" || len(doc.Items) != 1 {
		t.Errorf("Expected default to survive missing read, got %+v", doc)
	}
}

func TestFileStoreReadCorruptLeavesDefault(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenFile(dir)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer st.Close()

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to plant corrupt file: %v", err)
	}

	doc := sampleDoc{Name: "default"}
	st.Read("broken", &doc)

	if doc.Name != "default" {
		t.Errorf("Expected default to survive corrupt read, got %+v", doc)
	}
}

func TestFileStoreWriteReadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenFile(dir)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer st.Close()

	in := sampleDoc{Name: "quiz", Items: []string{"x", "y"}}
	if !st.Write("sample", in) {
		t.Fatal("Write reported failure")
	}

	var out sampleDoc
	st.Read("sample", &out)
	if out.Name != "quiz" || len(out.Items) != 2 {
		t.Errorf("Roundtrip mismatch: %+v", out)
	}

	// The on-disk document is pretty-printed JSON
	data, err := os.ReadFile(filepath.Join(dir, "sample.json"))
	if err != nil {
		t.Fatalf("Failed to read backing file: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Errorf("Expected indented JSON on disk, got: %s", data)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	st, err := OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer st.Close()

	if !st.Write("doc", sampleDoc{Name: "first"}) {
		t.Fatal("first write failed")
	}
	if !st.Write("doc", sampleDoc{Name: "second"}) {
		t.Fatal("second write failed")
	}

	var out sampleDoc
	st.Read("doc", &out)
	if out.Name != "second" {
		t.Errorf("Expected last write to win, got %q", out.Name)
	}
}
