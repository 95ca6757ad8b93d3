// Command blurdemo renders a YAML scene with frosted-glass blur views and
// writes the last frame to a PNG file.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/blurview"
)

func main() {
	var (
		scene   = flag.String("scene", "scene.yaml", "scene file")
		output  = flag.String("output", "blur.png", "output file")
		frames  = flag.Int("frames", 0, "number of frames to render (overrides the scene)")
		verbose = flag.Bool("v", false, "log compositor activity to stderr")
	)
	flag.Parse()

	if *verbose {
		blurview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	s, err := LoadScene(*scene)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *frames > 0 {
		s.Frames = *frames
	}

	if err := run(s, *output); err != nil {
		log.Fatal(err)
	}
}

func run(s *Scene, output string) error {
	b, err := s.Build()
	if err != nil {
		return err
	}
	defer b.destroy()

	for i := 0; i < s.Frames; i++ {
		if _, err := b.loop.Frame(); err != nil {
			return err
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, b.loop.Screen()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	r := b.loop.Screen().Rect
	log.Printf("Rendered %d frames with %d blur views to %s (%dx%d)\n", b.loop.Frames(), len(b.blurs), output, r.Dx(), r.Dy())
	return nil
}
