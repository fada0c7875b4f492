package pixel

import (
	"image"
	"image/color"
)

// FromImage converts an image.Image into a Buf in the given format.
//
// Fast paths copy raw rows when the source layout already matches the
// target format (image.NRGBA for FormatRGBA8, image.RGBA for
// FormatRGBAPremul, image.Gray for FormatGray8). All other sources go
// through the color model, which is correct but slower.
func FromImage(img image.Image, format Format) (*Buf, error) {
	bounds := img.Bounds()
	b, err := NewBuf(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, err
	}

	switch src := img.(type) {
	case *image.NRGBA:
		if format == FormatRGBA8 {
			copyImageRows(b, src.Pix, src.Stride)
			return b, nil
		}
	case *image.RGBA:
		if format == FormatRGBAPremul {
			copyImageRows(b, src.Pix, src.Stride)
			return b, nil
		}
	case *image.Gray:
		if format == FormatGray8 {
			copyImageRows(b, src.Pix, src.Stride)
			return b, nil
		}
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			setFromColor(b, x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return b, nil
}

// copyImageRows copies packed rows from a stdlib image's Pix slice into b.
// The source byte layout must already match b's format.
func copyImageRows(b *Buf, pix []byte, stride int) {
	rowLen := b.format.RowBytes(b.width)
	for y := 0; y < b.height; y++ {
		copy(b.data[y*b.stride:y*b.stride+rowLen], pix[y*stride:y*stride+rowLen])
	}
}

// setFromColor writes c into pixel (x, y) of b according to b's format.
func setFromColor(b *Buf, x, y int, c color.Color) {
	offset := y*b.stride + x*b.format.BytesPerPixel()
	switch b.format {
	case FormatGray8:
		g := color.GrayModel.Convert(c).(color.Gray)
		b.data[offset] = g.Y
	case FormatRGB8:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		b.data[offset+0] = n.R
		b.data[offset+1] = n.G
		b.data[offset+2] = n.B
	case FormatRGBA8:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		b.data[offset+0] = n.R
		b.data[offset+1] = n.G
		b.data[offset+2] = n.B
		b.data[offset+3] = n.A
	case FormatRGBAPremul:
		p := color.RGBAModel.Convert(c).(color.RGBA)
		b.data[offset+0] = p.R
		b.data[offset+1] = p.G
		b.data[offset+2] = p.B
		b.data[offset+3] = p.A
	}
}

// Image converts the buffer into a standard library image.
//
// The returned image type depends on the format: image.Gray for
// FormatGray8, image.RGBA for FormatRGBAPremul, and image.NRGBA for
// FormatRGB8 (alpha forced opaque) and FormatRGBA8. The pixel data is
// copied; mutating the result does not affect the buffer.
func (b *Buf) Image() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatGray8:
		img := image.NewGray(rect)
		copy(img.Pix, b.data)
		return img
	case FormatRGBAPremul:
		img := image.NewRGBA(rect)
		copy(img.Pix, b.data)
		return img
	case FormatRGBA8:
		img := image.NewNRGBA(rect)
		copy(img.Pix, b.data)
		return img
	case FormatRGB8:
		img := image.NewNRGBA(rect)
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				srcOff := y*b.stride + x*3
				dstOff := y*img.Stride + x*4
				img.Pix[dstOff+0] = b.data[srcOff+0]
				img.Pix[dstOff+1] = b.data[srcOff+1]
				img.Pix[dstOff+2] = b.data[srcOff+2]
				img.Pix[dstOff+3] = 0xff
			}
		}
		return img
	default:
		return image.NewNRGBA(rect)
	}
}
