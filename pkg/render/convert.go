package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
)

const rsvgConvert = "rsvg-convert"

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG at the given scale (2.0 doubles the
// resolution). Non-positive scales render at 1x.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if !(scale > 0) {
		scale = 1
	}
	return convert(svg, "png", "-z", strconv.FormatFloat(scale, 'f', 2, 64))
}

func convert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	bin, err := exec.LookPath(rsvgConvert)
	if err != nil {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	cmd := exec.Command(bin, append([]string{"-f", format}, extraArgs...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "%s: %s", rsvgConvert, bytes.TrimSpace(stderr.Bytes()))
	}
	if out.Len() == 0 {
		return nil, apperr.New(apperr.ErrCodeInternal, "%s produced no %s output", rsvgConvert, format)
	}
	return out.Bytes(), nil
}

// Formats lists the output formats the render command accepts.
var Formats = []string{"svg", "png", "pdf", "dot"}

// FormatExt returns the file extension for format.
func FormatExt(format string) string { return fmt.Sprintf(".%s", format) }
