// Package romimage loads the 12 KiB Apple II+ firmware image the Bus
// maps into $D000-$FFFF before the first CPU step.
package romimage

import (
	"os"

	"github.com/pkg/errors"
)

// Size is the required length of a ROM image in bytes.
const Size = 0x3000

// ErrBadROMSize is returned by Load when the file is not exactly Size
// bytes. Per spec.md section 7, a session cannot start without a
// correctly sized ROM image.
var ErrBadROMSize = errors.New("romimage: ROM image must be exactly 12288 bytes")

// Load reads the ROM image at path, returning ErrBadROMSize if it is
// not exactly Size bytes.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "romimage: read %s", path)
	}
	if len(data) != Size {
		return nil, errors.Wrapf(ErrBadROMSize, "romimage: %s is %d bytes", path, len(data))
	}
	return data, nil
}
