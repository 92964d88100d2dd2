package scanner

import (
	"errors"
	"testing"

	"github.com/akarpov/supplychain/pkg/domain/entities"
)

func TestFilenameDecoder(t *testing.T) {
	decoder := NewFilenameDecoder()

	testCases := []struct {
		name      string
		imagePath string
		wantID    int
		wantErr   bool
	}{
		{"simple id", "barcode_p1.gif", 1, false},
		{"multi digit", "scans/barcode_p42.png", 42, false},
		{"no extension", "p7", 7, false},
		{"no digits", "barcode.gif", 0, true},
		{"empty base", ".gif", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := decoder.Decode(tc.imagePath)
			if tc.wantErr {
				if !errors.Is(err, entities.ErrDecode) {
					t.Errorf("Expected ErrDecode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected decode to succeed: %v", err)
			}
			if id != tc.wantID {
				t.Errorf("Expected id %d, got %d", tc.wantID, id)
			}
		})
	}
}
