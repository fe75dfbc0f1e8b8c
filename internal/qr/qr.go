package qr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

const (
	// moduleWidth is the rendered size of one module before scaling to Options.Size.
	moduleWidth uint8 = 10
	// quietZone is four modules wide, as the QR standard requires.
	quietZone = 4 * int(moduleWidth)
)

var (
	// ErrEmptyTarget - nothing to encode.
	ErrEmptyTarget = errors.New("empty QR target")
	// ErrInvalidOptions - sizes are not positive.
	ErrInvalidOptions = errors.New("invalid QR options")
	// ErrLogoTooLarge - the logo would hide more of the code than error correction can recover.
	ErrLogoTooLarge = errors.New("logo too large for QR code")
)

// Job - one generation request.
type Job struct {
	// Target: text to encode.
	Target string
	// LogoPath: logo image (PNG, JPEG or GIF).
	LogoPath string
	// OutputPath: destination PNG. Missing directories are created, an existing file is replaced.
	OutputPath string
}

// Options - rendering parameters shared by every job of a Generator.
type Options struct {
	// Size: width and height of the output image in pixels.
	Size int
	// LogoSize: width and height the logo is resized to.
	LogoSize int
	// Dark: module colour.
	Dark color.RGBA
	// Light: background colour.
	Light color.RGBA
}

// DefaultOptions returns 500x500 output with a 100x100 logo, dark teal on white.
func DefaultOptions() Options {
	return Options{
		Size:     500,
		LogoSize: 100,
		Dark:     color.RGBA{R: 0x08, G: 0x33, B: 0x44, A: 0xff},
		Light:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Validate checks the sizes. The logo side is capped at 2/5 of the code side (16% of the area),
// which stays under the ~30% the highest correction level can restore.
func (o Options) Validate() error {
	if o.Size <= 0 || o.LogoSize <= 0 {
		return fmt.Errorf("%w: size %d, logo size %d", ErrInvalidOptions, o.Size, o.LogoSize)
	}
	if o.LogoSize*5 > o.Size*2 {
		return fmt.Errorf("%w: %dpx logo on %dpx code", ErrLogoTooLarge, o.LogoSize, o.Size)
	}
	return nil
}

// Generator renders QR codes with a centred logo. It holds no mutable state.
type Generator struct {
	opts Options
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate renders job.Target, overlays the logo and writes the PNG to job.OutputPath.
func (g *Generator) Generate(job Job) error {
	if err := g.opts.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(job.Target) == "" {
		return ErrEmptyTarget
	}

	canvas, err := g.Render(job.Target)
	if err != nil {
		return err
	}

	logo, err := loadLogo(job.LogoPath, g.opts.LogoSize)
	if err != nil {
		return err
	}

	overlayCentered(canvas, logo)

	if err := writePNG(job.OutputPath, canvas); err != nil {
		return err
	}
	return nil
}

// Render encodes target and returns the code as an Options.Size square image without a logo.
func (g *Generator) Render(target string) (*image.NRGBA, error) {
	qrc, err := qrcode.NewWith(target, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest))
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", target, err)
	}

	var buf bytes.Buffer
	w := standard.NewWithWriter(nopCloser{&buf},
		standard.WithQRWidth(moduleWidth),
		standard.WithBorderWidth(quietZone),
		standard.WithBgColor(g.opts.Light),
		standard.WithFgColor(g.opts.Dark),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered code: %w", err)
	}

	return scaleExact(img, g.opts.Size), nil
}

type nopCloser struct {
	*bytes.Buffer
}

func (nopCloser) Close() error { return nil }
