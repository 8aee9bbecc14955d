// asset loads image files into textures on the renderer
package asset

import (
	"bytes"
	"image"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/tile-lesson/internal/renderer"
)

// ErrEmptyData is returned when an image file has no content
var ErrEmptyData = errors.New("image: empty data")

// Load reads the image at path, decodes it and uploads it to the driver.
func Load(driver renderer.Driver, path string) (renderer.Image, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	tex, err := driver.NewImageFromImage(img)
	if err != nil {
		return nil, errors.Wrapf(err, "upload %s", path)
	}
	return tex, nil
}

// Decode decodes an image from memory, auto-detecting the format.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	return img, nil
}
