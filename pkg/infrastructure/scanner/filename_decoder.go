package scanner

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akarpov/supplychain/pkg/domain/entities"
)

// FilenameDecoder stands in for the external barcode decoder service.
// It reads the product id out of the image filename: the digits after
// the last non-digit run of the base name, e.g. "barcode_p1.gif" -> 1.
type FilenameDecoder struct{}

// NewFilenameDecoder creates a FilenameDecoder
func NewFilenameDecoder() *FilenameDecoder {
	return &FilenameDecoder{}
}

// Decode extracts a product id from the image path
func (d *FilenameDecoder) Decode(imagePath string) (int, error) {
	base := filepath.Base(imagePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	end := len(base)
	start := end
	for start > 0 && base[start-1] >= '0' && base[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, fmt.Errorf("%w: no product id in %q", entities.ErrDecode, imagePath)
	}

	id, err := strconv.Atoi(base[start:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", entities.ErrDecode, imagePath, err)
	}
	return id, nil
}
