// Command edgemask writes a CrysAlisPRO mask macro which excludes the
// part of a detector frame outside the accessible (elliptical) area.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"seehuhn.de/go/edgemask"
)

func main() {
	width := flag.Int("width", 2048, "frame width in pixels")
	height := flag.Int("height", 2048, "frame height in pixels")
	radius := flag.Float64("radius", 0, "horizontal radius of the accessible area (0 = half the shorter frame side)")
	radiusY := flag.Float64("radius-y", 0, "vertical radius (0 = same as -radius)")
	offsetX := flag.Float64("offset-x", 0, "horizontal centre offset in pixels")
	offsetY := flag.Float64("offset-y", 0, "vertical centre offset in pixels")
	out := flag.String("out", edgemask.DefaultFilename, "output macro file (overwritten)")
	resolution := flag.Int("resolution", edgemask.DefaultResolution, "upper limit of rejectrect commands")
	preview := flag.String("png", "", "write a PNG preview of the masked frame to this path")
	flag.Parse()

	m := edgemask.New(*width, *height)
	if *radius != 0 {
		m.Rx = *radius
		m.Ry = *radius
	}
	if *radiusY != 0 {
		m.Ry = *radiusY
	}
	m.Center.X += *offsetX
	m.Center.Y += *offsetY

	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "edgemask: %v\n", err)
		os.Exit(1)
	}
	if *resolution > edgemask.DefaultResolution {
		fmt.Fprintf(os.Stderr,
			"edgemask: warning: CrysAlisPRO accepts only about %d rejectrect commands, budget is %d\n",
			edgemask.DefaultResolution, *resolution)
	}

	if err := m.Export(*out, *resolution); err != nil {
		fmt.Fprintf(os.Stderr, "edgemask: %v\n", err)
		os.Exit(1)
	}

	if *preview != "" {
		if err := writePreview(m, *resolution, *preview); err != nil {
			fmt.Fprintf(os.Stderr, "edgemask: %v\n", err)
			os.Exit(1)
		}
	}
}

func writePreview(m *edgemask.Mask, resolution int, path string) (err error) {
	rects, err := m.Rects(resolution)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, edgemask.MaskedImage(m, rects))
}
