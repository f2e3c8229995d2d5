package imageutil

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// LoadImage loads an image from the specified path and decodes it into a
// PixelBuffer. Supports PNG, JPEG, GIF, TIFF, and WebP formats. Alpha and
// any other extra channels are stripped during conversion.
func LoadImage(path string) (*PixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	buf := FromImage(img)
	if buf.Width() == 0 || buf.Height() == 0 {
		return nil, fmt.Errorf("image %s has zero-sized bounds", path)
	}
	return buf, nil
}
