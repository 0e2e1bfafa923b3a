package importer

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    Columns
	}{
		{
			name:    "indonesian export",
			headers: []string{"Nama", "No. HP", "Gereja"},
			want:    Columns{Name: "Nama", Phone: "No. HP", Affiliation: "Gereja"},
		},
		{
			name:    "english export",
			headers: []string{"Full Name", "Phone", "Church"},
			want:    Columns{Name: "Full Name", Phone: "Phone", Affiliation: "Church"},
		},
		{
			name:    "substring containment",
			headers: []string{"Nama Peserta", "Nomor WhatsApp"},
			want:    Columns{Name: "Nama Peserta", Phone: "Nomor WhatsApp"},
		},
		{
			name:    "phone and affiliation optional",
			headers: []string{"Name"},
			want:    Columns{Name: "Name"},
		},
		{
			name:    "case and padding tolerated",
			headers: []string{"  NAMA  ", "TELEPON"},
			want:    Columns{Name: "  NAMA  ", Phone: "TELEPON"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveColumns(tt.headers)
			if err != nil {
				t.Fatalf("ResolveColumns(%v) error: %v", tt.headers, err)
			}
			if got != tt.want {
				t.Errorf("ResolveColumns(%v) = %+v, want %+v", tt.headers, got, tt.want)
			}
		})
	}
}

func TestResolveColumnsNoName(t *testing.T) {
	_, err := ResolveColumns([]string{"Email", "Alamat"})
	var nameErr *ErrNameColumn
	if !errors.As(err, &nameErr) {
		t.Fatalf("expected *ErrNameColumn, got %v", err)
	}
	// The error must echo the detected headers for diagnostics.
	if !strings.Contains(nameErr.Error(), "Alamat") {
		t.Errorf("error does not echo detected headers: %v", nameErr)
	}
}
