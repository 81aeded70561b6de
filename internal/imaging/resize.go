package imaging

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

// ThumbnailHeight is the fixed height every listing thumbnail is scaled to.
const ThumbnailHeight = 400

// Thumbnail scales the source image down (or up) to ThumbnailHeight, keeping
// the aspect ratio, and re-encodes it as webp. Returns the encoded bytes and
// the derived content type.
func Thumbnail(data []byte) ([]byte, string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	bounds := src.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	dstH := ThumbnailHeight
	dstW := srcW * dstH / srcH
	if dstW < 1 {
		dstW = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 80}); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), "image/webp", nil
}
