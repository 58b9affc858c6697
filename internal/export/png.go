package export

import (
	"image"
	"image/png"
	"io"
	"os"
)

// WritePNG encodes the canvas buffer unchanged, so a decoded file holds
// the same pixels the collision probe saw.
func WritePNG(w io.Writer, img *image.RGBA) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

func SavePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
