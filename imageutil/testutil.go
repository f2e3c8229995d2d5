package imageutil

// CreateSolidBuffer creates a buffer filled with a single color.
func CreateSolidBuffer(width, height int, c RGB) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, c)
		}
	}
	return buf
}

// CreateGradientBuffer creates a horizontal grayscale gradient test
// buffer running from black on the left to white on the right.
func CreateGradientBuffer(width, height int) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255)
			if width > 1 {
				v = uint8(255 * x / (width - 1))
			}
			buf.Set(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return buf
}

// CreateCheckerboardBuffer creates a black and white checkerboard
// pattern with the given square size.
func CreateCheckerboardBuffer(width, height, squareSize int) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				buf.Set(x, y, RGB{R: 255, G: 255, B: 255})
			} else {
				buf.Set(x, y, RGB{})
			}
		}
	}
	return buf
}
