package gsd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Aiquinones/syntax-analysis-beto/conllu"
)

const sampleInput = "# sent_id = s1\n" +
	"# text = Hola mundo\n" +
	"1\tHola\t_\t_\t_\t_\t0\troot\t_\t_\n" +
	"2\tmundo\t_\t_\t_\t_\t1\tobj\t_\t_\n" +
	"\n" +
	"# sent_id = s2\n" +
	"# text = 你好\n" +
	"1\t你好\t_\t_\t_\t_\t0\troot\t_\t_\n"

func TestExtract(t *testing.T) {
	ex := New()

	sents, filtered, err := ex.Extract(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if filtered != 1 {
		t.Errorf("filtered = %d, want 1", filtered)
	}
	if len(sents) != 1 {
		t.Fatalf("got %d sentences, want 1", len(sents))
	}
	if sents[0].ID != "s1" {
		t.Errorf("ID = %q, want %q", sents[0].ID, "s1")
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteCorpus(path, sents); err != nil {
		t.Fatalf("WriteCorpus() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := `[{"id":"s1","words":["Hola","mundo"],"heads":[0,1],"relns":["root","obj"]}]`
	if got := strings.TrimSpace(string(data)); got != want {
		t.Errorf("corpus = %s, want %s", got, want)
	}
}

func TestExtractIdempotent(t *testing.T) {
	ex := New()
	dir := t.TempDir()

	var runs [][]byte
	for _, name := range []string{"first.json", "second.json"} {
		sents, _, err := ex.Extract(strings.NewReader(sampleInput))
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		path := filepath.Join(dir, name)
		if err := WriteCorpus(path, sents); err != nil {
			t.Fatalf("WriteCorpus() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		runs = append(runs, data)
	}

	if !bytes.Equal(runs[0], runs[1]) {
		t.Errorf("reruns differ:\n%s\n%s", runs[0], runs[1])
	}
}

func TestExtractAllFiltered(t *testing.T) {
	input := "# sent_id = s1\n" +
		"1\t北京\t_\t_\t_\t_\t0\troot\t_\t_\n" +
		"\n"

	ex := New()
	sents, filtered, err := ex.Extract(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if filtered != 1 {
		t.Errorf("filtered = %d, want 1", filtered)
	}
	if len(sents) != 0 {
		t.Errorf("got %d sentences, want 0", len(sents))
	}

	// An all-filtered partition still writes an empty array, not null.
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteCorpus(path, sents); err != nil {
		t.Fatalf("WriteCorpus() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != "[]" {
		t.Errorf("corpus = %s, want []", got)
	}
}

func TestExtractWithFilter(t *testing.T) {
	keepAll := func(*conllu.Sentence) bool { return false }

	ex := New(WithFilter(keepAll))
	sents, filtered, err := ex.Extract(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if filtered != 0 {
		t.Errorf("filtered = %d, want 0", filtered)
	}
	if len(sents) != 2 {
		t.Errorf("got %d sentences, want 2", len(sents))
	}
}

func TestExtractFileSample(t *testing.T) {
	ex := New()

	sents, filtered, err := ex.ExtractFile(filepath.Join("testdata", "es_gsd-ud-sample.conllu"))
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	if filtered != 1 {
		t.Errorf("filtered = %d, want 1", filtered)
	}
	if len(sents) != 3 {
		t.Fatalf("got %d sentences, want 3", len(sents))
	}

	wantIDs := []string{"es-dev-0001", "es-dev-0003", "es-dev-0004"}
	for i, id := range wantIDs {
		if sents[i].ID != id {
			t.Errorf("sents[%d].ID = %q, want %q", i, sents[i].ID, id)
		}
	}

	// The del and al contractions are spans; their components survive.
	first := sents[0]
	if len(first.Words) != 8 {
		t.Errorf("got %d words, want 8", len(first.Words))
	}
	if first.Words[2] != "de" || first.Words[3] != "el" {
		t.Errorf("compound components missing: %v", first.Words)
	}
}

func TestExtractFileMissing(t *testing.T) {
	ex := New()

	_, _, err := ex.ExtractFile(filepath.Join(t.TempDir(), "no_such.conllu"))
	if !errors.Is(err, ErrCorpusNotFound) {
		t.Errorf("ExtractFile() error = %v, want %v", err, ErrCorpusNotFound)
	}
}

func TestExtractFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.conllu")
	content := "# sent_id = s1\n" +
		"1\tHola\tbroken\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	ex := New()
	_, _, err := ex.ExtractFile(path)
	if !errors.Is(err, conllu.ErrFieldCount) {
		t.Fatalf("ExtractFile() error = %v, want %v", err, conllu.ErrFieldCount)
	}
	if !strings.Contains(err.Error(), "bad.conllu") {
		t.Errorf("error %q does not name the file", err)
	}
}
