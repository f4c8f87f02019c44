package search

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o700); err != nil {
			t.Fatal(err)
		}
	}
}

func resultNames(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func TestSearchBlankQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t"} {
		if _, err := Search(t.TempDir(), q, 10, Options{}); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Search(query=%q) error = %v, want ErrEmptyQuery", q, err)
		}
	}
}

func TestSearchFindsDirectoriesNotFiles(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "workspace", "music")
	if err := os.WriteFile(filepath.Join(root, "worklog.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	results, err := Search(root, "work", 10, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got := resultNames(results); !reflect.DeepEqual(got, []string{"workspace"}) {
		t.Errorf("Search() = %v, want [workspace]", got)
	}
}

func TestSearchNoMatchIsEmptyNotError(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "alpha", "beta")

	results, err := Search(root, "zzzzqqq", 10, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Search() = %v, want empty", results)
	}
}

func TestSearchRankingDeterminism(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "app2", "app1", "wrapper")

	first, err := Search(root, "app", 10, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	second, err := Search(root, "app", 10, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("successive searches differ: %v vs %v", first, second)
	}

	// app1 and app2 score identically; the tie breaks on name.
	names := resultNames(first)
	if len(names) < 2 || names[0] != "app1" || names[1] != "app2" {
		t.Errorf("Search() order = %v, want [app1 app2 ...]", names)
	}
	for i := 1; i < len(first); i++ {
		if first[i].Score > first[i-1].Score {
			t.Errorf("results not sorted by score desc: %v", first)
		}
	}
}

func TestSearchLimitTruncates(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "box1", "box2", "box3", "box4")

	results, err := Search(root, "box", 2, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Search(limit=2) returned %d results, want 2", len(results))
	}
}

func TestSearchLimitFloorOne(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "box1", "box2")

	results, err := Search(root, "box", 0, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Search(limit=0) returned %d results, want 1", len(results))
	}
}

func TestSearchCandidateFactorBoundsWalk(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "pin_a", "pin_b", "pin_c", "pin_d")

	// factor 1 x limit 2: the walk stops after the first two scored
	// candidates in lexical order.
	results, err := Search(root, "pin", 2, Options{CandidateFactor: 1})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got := resultNames(results); !reflect.DeepEqual(got, []string{"pin_a", "pin_b"}) {
		t.Errorf("Search() = %v, want [pin_a pin_b]", got)
	}
}

func TestSearchDepthBound(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		filepath.Join("l1", "l2", "marker_shallow"),
		filepath.Join("l1", "l2", "l3", "l4", "l5", "marker_deep"),
	)

	results, err := Search(root, "marker", 10, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got := resultNames(results); !reflect.DeepEqual(got, []string{"marker_shallow"}) {
		t.Errorf("Search(depth 5) = %v, want only marker_shallow", got)
	}

	// Raising the depth bound brings the deep match in.
	results, err = Search(root, "marker", 10, Options{MaxDepth: 6})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Search(depth 6) = %v, want both markers", resultNames(results))
	}
}

func TestSearchSkipsHidden(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "visible_target", ".cache", filepath.Join(".stash", "hidden_target"))

	results, err := Search(root, "target", 10, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got := resultNames(results); !reflect.DeepEqual(got, []string{"visible_target"}) {
		t.Errorf("Search() = %v, want [visible_target]", got)
	}
}

func TestSearchRespectsGitignore(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, filepath.Join("vendor", "dep_target"), "src_target")
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("vendor/\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	results, err := Search(root, "target", 10, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got := resultNames(results); !reflect.DeepEqual(got, []string{"src_target"}) {
		t.Errorf("Search() = %v, want [src_target]", got)
	}
}

func TestSearchNestedGitignoreScope(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		filepath.Join("mod", "build", "gen_target"),
		filepath.Join("other", "build_target"),
	)
	// The ignore rule lives in mod/ and must not leak to siblings.
	if err := os.WriteFile(filepath.Join(root, "mod", ".gitignore"), []byte("build/\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	results, err := Search(root, "target", 10, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got := resultNames(results); !reflect.DeepEqual(got, []string{"build_target"}) {
		t.Errorf("Search() = %v, want [build_target]", got)
	}
}

func TestSearchMissingRootIsEmpty(t *testing.T) {
	results, err := Search(filepath.Join(t.TempDir(), "gone"), "anything", 10, Options{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Search(missing root) = %v, want empty", results)
	}
}
