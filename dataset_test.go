package gsd

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDatasetPaths(t *testing.T) {
	ds := Dataset{Dir: "data/ud-gsd", Lang: "es"}

	if got, want := ds.PartitionPath("dev"), filepath.Join("data/ud-gsd", "es_gsd-ud-dev.conllu"); got != want {
		t.Errorf("PartitionPath() = %q, want %q", got, want)
	}
	if got, want := ds.OutputPath("out", "train"), filepath.Join("out", "es_gsd-ud-train.json"); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestPartitions(t *testing.T) {
	tests := []struct {
		name    string
		sel     string
		want    []string
		wantErr bool
	}{
		{"all expands in order", "all", []string{"dev", "test", "train"}, false},
		{"dev", "dev", []string{"dev"}, false},
		{"test", "test", []string{"test"}, false},
		{"train", "train", []string{"train"}, false},
		{"unknown", "validation", nil, true},
		{"empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Partitions(tt.sel)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Partitions(%q) error = %v, wantErr %v", tt.sel, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPartition) {
					t.Errorf("Partitions(%q) error = %v, want %v", tt.sel, err, ErrUnknownPartition)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Partitions(%q) = %v, want %v", tt.sel, got, tt.want)
			}
		})
	}
}
