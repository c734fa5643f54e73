// Package pngdir writes frames as numbered PNG files into a directory.
package pngdir

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Driver writes frame n to Dir/Prefix%05d.png.
type Driver struct {
	Dir    string
	Prefix string

	enc png.Encoder
}

// New creates dir if needed.
func New(dir string) (*Driver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("pngdir: %w", err)
	}
	return &Driver{Dir: dir, Prefix: "frame_", enc: png.Encoder{CompressionLevel: png.BestSpeed}}, nil
}

// Path returns the file name used for frame.
func (d *Driver) Path(frame int) string {
	return filepath.Join(d.Dir, fmt.Sprintf("%s%05d.png", d.Prefix, frame))
}

func (d *Driver) Write(frame int, img *image.RGBA) error {
	f, err := os.Create(d.Path(frame))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := d.enc.Encode(w, img); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
