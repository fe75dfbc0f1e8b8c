package qr

import (
	"fmt"
	"image"
	_ "image/gif"  // logo formats
	_ "image/jpeg" // logo formats
	"image/png"
	"os"
	"path/filepath"

	"github.com/9ssi7/nanoid"
	"golang.org/x/image/draw"
)

// scaleExact resizes src to size x size with nearest neighbour so module edges stay sharp.
func scaleExact(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// loadLogo decodes the image at path and resizes it to size x size, keeping its alpha channel.
// Non-square logos are cropped to their centred square first so the aspect ratio is kept.
func loadLogo(path string, size int) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open logo: %w", err)
	}
	defer func() { _ = file.Close() }()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", path, err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, centerSquare(src.Bounds()), draw.Src, nil)
	return dst, nil
}

// centerSquare returns the largest square centred in r.
func centerSquare(r image.Rectangle) image.Rectangle {
	side := min(r.Dx(), r.Dy())
	minPt := r.Min.Add(image.Pt((r.Dx()-side)/2, (r.Dy()-side)/2))
	return image.Rectangle{Min: minPt, Max: minPt.Add(image.Pt(side, side))}
}

// overlayCentered draws logo over the middle of canvas.
// The offset on each axis is (canvas - logo) / 2.
func overlayCentered(canvas draw.Image, logo image.Image) {
	cb, lb := canvas.Bounds(), logo.Bounds()
	offset := image.Pt((cb.Dx()-lb.Dx())/2, (cb.Dy()-lb.Dy())/2).Add(cb.Min)
	target := image.Rectangle{Min: offset, Max: offset.Add(lb.Size())}
	draw.Draw(canvas, target, logo, lb.Min, draw.Over)
}

// writePNG encodes img into a temporary file beside path and renames it over path.
func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd // rwxr-xr-x
		return fmt.Errorf("create output directory: %w", err)
	}

	suffix, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("temp file name: %w", err)
	}
	tmp := path + "." + suffix + ".tmp"

	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:mnd // rw-r--r--
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode png: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
