package store

import (
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestSQLStoreRoundtrip(t *testing.T) {
	st, err := OpenSQL("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQL failed: %v", err)
	}
	defer st.Close()

	doc := sampleDoc{Name: "default"}
	st.Read("absent", &doc)
	if doc.Name != "default" {
		t.Errorf("Expected default on missing key, got %+v", doc)
	}

	if !st.Write("sample", sampleDoc{Name: "quiz", Items: []string{"x"}}) {
		t.Fatal("Write reported failure")
	}
	if !st.Write("sample", sampleDoc{Name: "quiz2", Items: []string{"x", "y"}}) {
		t.Fatal("Upsert write reported failure")
	}

	var out sampleDoc
	st.Read("sample", &out)
	if out.Name != "quiz2" || len(out.Items) != 2 {
		t.Errorf("Upsert roundtrip mismatch: %+v", out)
	}
}
