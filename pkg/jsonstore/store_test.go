package jsonstore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"hr-chatbot-be/internal/pkg/apperrors"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := doc{Name: "phép năm", Count: 20}
	if err := s.Write("test.json", in); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var out doc
	if err := s.Read("test.json", &out); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestReadMissingDocument(t *testing.T) {
	s := newTestStore(t)

	var out doc
	err := s.Read("missing.json", &out)
	if !apperrors.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestReadCorruptDocument(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path("bad.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	var out doc
	if err := s.Read("bad.json", &out); err == nil {
		t.Error("expected decode error for corrupt document")
	}
}

func TestWriteLeavesNoTempFile(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write("test.json", doc{Name: "a"}); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(s.Path("test.json") + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after write")
	}
}

func TestUpdateMissingFileStartsEmpty(t *testing.T) {
	s := newTestStore(t)

	err := Update(s, "list.json", func(list []doc) ([]doc, error) {
		if list != nil {
			t.Errorf("missing file should decode as nil slice, got %v", list)
		}
		return append(list, doc{Name: "first"}), nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	var out []doc
	if err := s.Read("list.json", &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Name != "first" {
		t.Errorf("out = %v", out)
	}
}

func TestAppend(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := Append(s, "list.json", doc{Count: i}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	var out []doc
	if err := s.Read("list.json", &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for i, d := range out {
		if d.Count != i {
			t.Errorf("out[%d].Count = %d, want %d", i, d.Count, i)
		}
	}
}

func TestConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	s := newTestStore(t)

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			if err := Append(s, "list.json", doc{Count: n}); err != nil {
				t.Errorf("Append: %v", err)
			}
		}(i)
	}
	wg.Wait()

	var out []doc
	if err := s.Read("list.json", &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != writers {
		t.Errorf("len = %d, want %d (lost writes)", len(out), writers)
	}
}

func TestReadText(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path("policy.txt"), []byte("chính sách"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadText("policy.txt")
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "chính sách" {
		t.Errorf("got %q", got)
	}

	if _, err := s.ReadText("missing.txt"); !apperrors.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Path("a.json"); got != filepath.Join(dir, "a.json") {
		t.Errorf("Path = %q", got)
	}
}
