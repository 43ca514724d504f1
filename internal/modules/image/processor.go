package image

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register webp with image.Decode
)

type ProcessorConfig struct {
	MaxWidth       int
	ThumbSize      int
	JPEGQuality    int
	PNGCompression int
	WebPQuality    int
}

// Derivatives holds the two re-encoded outputs of one ingestion. They are
// only ever persisted together.
type Derivatives struct {
	Image     []byte
	Thumbnail []byte
}

type Processor struct {
	cfg ProcessorConfig
}

func NewProcessor(cfg ProcessorConfig) *Processor {
	return &Processor{cfg: cfg}
}

// Generate decodes the canonical payload, caps the width at MaxWidth (never
// upscaling), re-encodes with format-specific parameters and derives a
// cover-fit square thumbnail from the re-encoded main output.
func (p *Processor) Generate(data []byte, mimeType string) (*Derivatives, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	if img.Bounds().Dx() > p.cfg.MaxWidth {
		img = imaging.Resize(img, p.cfg.MaxWidth, 0, imaging.Lanczos)
	}

	main, err := p.encode(img, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	// The thumbnail is cut from the re-encoded main image, not the source,
	// so both artifacts always agree on orientation and color handling.
	thumbSrc, err := imaging.Decode(bytes.NewReader(main))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessing, err)
	}
	thumb := imaging.Fill(thumbSrc, p.cfg.ThumbSize, p.cfg.ThumbSize, imaging.Center, imaging.Lanczos)

	thumbBytes, err := p.encode(thumb, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	return &Derivatives{Image: main, Thumbnail: thumbBytes}, nil
}

func (p *Processor) encode(img image.Image, mimeType string) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch mimeType {
	case "image/jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.cfg.JPEGQuality})
	case "image/png":
		enc := &png.Encoder{CompressionLevel: pngLevel(p.cfg.PNGCompression)}
		err = enc.Encode(&buf, img)
	case "image/webp":
		err = webp.Encode(&buf, img, &webp.Options{Quality: float32(p.cfg.WebPQuality)})
	default:
		// Unreachable past the format validator; plain re-encode.
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pngLevel maps the 0-9 scale of the PNG_COMPRESSION setting onto the four
// levels the stdlib encoder actually supports.
func pngLevel(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
