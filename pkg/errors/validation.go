package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// Bounds for figure settings.
const (
	MaxLength = 100.0 // inches
	MinDPI    = 10.0
	MaxDPI    = 1200.0
)

// maxPathLength bounds output paths in bytes.
const maxPathLength = 500

// ValidateOutputPath accepts non-empty paths up to maxPathLength bytes that
// name a file and contain no control characters.
func ValidateOutputPath(path string) error {
	switch {
	case path == "":
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	case len(path) > maxPathLength:
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	case strings.ContainsFunc(path, unicode.IsControl):
		return New(ErrCodeInvalidPath, "path contains control characters")
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}
	if base := filepath.Base(path); base == "." || base == ".." {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}

	return nil
}

// ValidateLength validates a figure length in inches. Zero selects the
// default length and is valid.
func ValidateLength(length float64) error {
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return New(ErrCodeInvalidSize, "length must be a finite number")
	}
	if length < 0 || length > MaxLength {
		return New(ErrCodeInvalidSize, "length must be between 0 and %g inches, got %g", MaxLength, length)
	}
	return nil
}

// ValidateDPI validates an output resolution. Zero selects the default.
func ValidateDPI(dpi float64) error {
	if math.IsNaN(dpi) || math.IsInf(dpi, 0) {
		return New(ErrCodeInvalidSize, "dpi must be a finite number")
	}
	if dpi != 0 && (dpi < MinDPI || dpi > MaxDPI) {
		return New(ErrCodeInvalidSize, "dpi must be between %g and %g, got %g", MinDPI, MaxDPI, dpi)
	}
	return nil
}

// ValidateCanvas rejects figures whose pixel size would exceed maxPixels.
func ValidateCanvas(width, height, dpi float64, maxPixels float64) error {
	if px := width * dpi * height * dpi; px > maxPixels {
		return New(ErrCodeInvalidSize, "figure too large: %.0f pixels (max %.0f)", px, maxPixels)
	}
	return nil
}
