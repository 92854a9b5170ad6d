package weave

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotRequest is one queued capture. A layer capture reads the
// offscreen backdrop instead of the composited window.
type screenshotRequest struct {
	label string
	layer bool
}

// Screenshot queues a capture of the composited window (background, backdrop
// at its opacity, overlays) taken at the end of the current Draw.
func (h *EbitenHost) Screenshot(label string) {
	h.screenshots = append(h.screenshots, screenshotRequest{label: label})
}

// ScreenshotLayer queues a capture of the backdrop layer alone, before it is
// composited: transparent where nothing was drawn, edges at their own alpha.
func (h *EbitenHost) ScreenshotLayer(label string) {
	h.screenshots = append(h.screenshots, screenshotRequest{label: label, layer: true})
}

// flushScreenshots writes every queued capture to ScreenshotDir. Each source
// image is read back at most once per frame.
func (h *EbitenHost) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshots) == 0 {
		return
	}
	defer func() { h.screenshots = h.screenshots[:0] }()

	if err := os.MkdirAll(h.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[weave] screenshot: %v\n", err)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	var window, layer *image.NRGBA
	for _, req := range h.screenshots {
		src, dst := screen, &window
		if req.layer {
			src, dst = h.surface.Image(), &layer
		}
		if src == nil {
			_, _ = fmt.Fprintf(os.Stderr, "[weave] screenshot %q: backdrop layer is empty\n", req.label)
			continue
		}
		if *dst == nil {
			*dst = readStraightAlpha(src)
		}
		path := screenshotPath(h.ScreenshotDir, stamp, req)
		if err := writePNG(path, *dst); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[weave] screenshot: %v\n", err)
			continue
		}
		h.debugf("screenshot %s", path)
	}
}

// screenshotPath names a capture "<stamp>_<label>.png", with a "_layer"
// suffix for backdrop-only captures.
func screenshotPath(dir, stamp string, req screenshotRequest) string {
	name := stamp + "_" + sanitizeLabel(req.label)
	if req.layer {
		name += "_layer"
	}
	return filepath.Join(dir, name+".png")
}

// readStraightAlpha reads img back from the GPU and undoes Ebitengine's
// premultiplied alpha so PNG viewers show the drawn colors.
func readStraightAlpha(img *ebiten.Image) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	img.ReadPixels(out.Pix)
	unpremultiply(out.Pix)
	return out
}

// unpremultiply converts RGBA quadruplets in place.
func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := i; c < i+3; c++ {
			pix[c] = uint8(min(int(pix[c])*255/a, 255))
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replaces every other rune
// with '_', and names blank labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
