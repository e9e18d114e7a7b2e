package smcfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandFileArgs(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "files.txt")
	if err := os.WriteFile(list, []byte("a.smc\n\nb.smc\n"), 0644); err != nil {
		t.Fatalf("write list: %v", err)
	}

	got, err := ExpandFileArgs([]string{"@" + list, "c.smc", "a.smc"})
	if err != nil {
		t.Fatalf("ExpandFileArgs: %v", err)
	}
	if want := []string{"a.smc", "b.smc", "c.smc"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandFileArgs = %v, want %v", got, want)
	}
}

func TestExpandFileArgsMissingList(t *testing.T) {
	if _, err := ExpandFileArgs([]string{"@/does/not/exist"}); err == nil {
		t.Fatal("expected error for missing list file")
	}
}

func TestLoadAll(t *testing.T) {
	paths := []string{
		writeFile(t, "chr1.smc", plainFile),
		writeFile(t, "chr2.smc", plainFile),
		writeFile(t, "chr3.smc", plainFile),
	}
	results, err := LoadAll(paths, 2)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Fatalf("result %d out of order: %s", i, res.Path)
		}
		if res.Contig == nil || res.Contig.TotalSpan() != 3 {
			t.Fatalf("result %d contig = %+v", i, res.Contig)
		}
	}
}

func TestLoadAllPropagatesError(t *testing.T) {
	paths := []string{
		writeFile(t, "ok.smc", plainFile),
		filepath.Join(t.TempDir(), "missing.smc"),
	}
	if _, err := LoadAll(paths, 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}
