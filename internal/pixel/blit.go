package pixel

// Blit copies src into dst with the top-left corner of src at (x, y).
//
// Destination pixels under the source footprint are fully replaced; no
// blending is performed. The source is clipped against the destination
// bounds, so portions of src falling outside dst are silently dropped.
// Both buffers must share the same pixel format.
func Blit(dst, src *Buf, x, y int) error {
	if dst.format != src.format {
		return ErrFormatMismatch
	}

	// Clip the source rectangle against the destination bounds.
	srcX, srcY := 0, 0
	w, h := src.width, src.height
	if x < 0 {
		srcX = -x
		w += x
		x = 0
	}
	if y < 0 {
		srcY = -y
		h += y
		y = 0
	}
	if x+w > dst.width {
		w = dst.width - x
	}
	if y+h > dst.height {
		h = dst.height - y
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	bpp := src.format.BytesPerPixel()
	rowLen := w * bpp
	for row := 0; row < h; row++ {
		srcOff := (srcY+row)*src.stride + srcX*bpp
		dstOff := (y+row)*dst.stride + x*bpp
		copy(dst.data[dstOff:dstOff+rowLen], src.data[srcOff:srcOff+rowLen])
	}
	return nil
}
