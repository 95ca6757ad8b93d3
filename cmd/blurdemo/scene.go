package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/blurview"
	"github.com/gogpu/blurview/blur"
	"github.com/gogpu/blurview/viewtree"
)

// Scene is a view tree described in YAML.
type Scene struct {
	Background string     `yaml:"background"`
	Frames     int        `yaml:"frames"`
	Root       NodeConfig `yaml:"root"`
}

// NodeConfig describes one node. Rect is [x0, y0, x1, y1] in the parent's
// coordinates.
type NodeConfig struct {
	Name     string       `yaml:"name"`
	Rect     [4]int       `yaml:"rect"`
	Fill     string       `yaml:"fill"`
	Checker  *Checker     `yaml:"checker"`
	Hidden   bool         `yaml:"hidden"`
	Blur     *BlurConfig  `yaml:"blur"`
	Children []NodeConfig `yaml:"children"`
}

// Checker paints a checkerboard of Fill and Color over the node.
type Checker struct {
	Cell  int    `yaml:"cell"`
	Color string `yaml:"color"`
}

// BlurConfig turns a node into a blur view.
type BlurConfig struct {
	Primitive   string        `yaml:"primitive"`
	Material    string        `yaml:"material"`
	DarkTheme   bool          `yaml:"dark_theme"`
	Radius      float64       `yaml:"radius"`
	ScaleFactor float64       `yaml:"scale"`
	Alignment   int           `yaml:"alignment"`
	Overlay     string        `yaml:"overlay"`
	MinInterval time.Duration `yaml:"min_interval"`
	MaxPixels   int           `yaml:"max_pixels"`
	FrameClear  string        `yaml:"frame_clear"`
}

var (
	errNoRoot           = errors.New("blurdemo: scene has no root node")
	errUnknownPrimitive = errors.New("blurdemo: unknown blur primitive")
)

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScene(data)
}

// ParseScene parses a YAML scene and fills in defaults.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("blurdemo: parse scene: %w", err)
	}
	if s.Root.Name == "" {
		return nil, errNoRoot
	}
	if s.Frames <= 0 {
		s.Frames = 1
	}
	if s.Background == "" {
		s.Background = "#000"
	}
	return &s, nil
}

// built is a scene turned into a view tree.
type built struct {
	root  *viewtree.Node
	loop  *viewtree.FrameLoop
	blurs []*blurview.Compositor
}

// Build creates the view tree and attaches every blur view to the frame
// loop, with the root as snapshot source.
func (s *Scene) Build() (*built, error) {
	bg, err := blurview.ParseHex(s.Background)
	if err != nil {
		return nil, fmt.Errorf("blurdemo: background: %w", err)
	}

	var pending []pendingBlur
	root, err := buildNode(s.Root, &pending)
	if err != nil {
		return nil, err
	}

	b := &built{root: root, loop: viewtree.NewFrameLoop(root)}
	b.loop.SetBackground(bg)

	// Blurs are attached once the whole tree exists so their screen
	// rectangles are final.
	for _, pb := range pending {
		c, err := pb.attach(root, b.loop)
		if err != nil {
			b.destroy()
			return nil, fmt.Errorf("blurdemo: blur %s: %w", pb.node.Name(), err)
		}
		b.blurs = append(b.blurs, c)
	}
	return b, nil
}

func (b *built) destroy() {
	for _, c := range b.blurs {
		c.Destroy()
	}
}

type pendingBlur struct {
	node *viewtree.Node
	cfg  BlurConfig
}

func buildNode(cfg NodeConfig, pending *[]pendingBlur) (*viewtree.Node, error) {
	fill := blurview.Transparent
	if cfg.Fill != "" {
		c, err := blurview.ParseHex(cfg.Fill)
		if err != nil {
			return nil, fmt.Errorf("blurdemo: node %s fill: %w", cfg.Name, err)
		}
		fill = c
	}

	r := cfg.Rect
	n := viewtree.New(cfg.Name, image.Rect(r[0], r[1], r[2], r[3]), fill)
	n.SetVisible(!cfg.Hidden)

	if cfg.Checker != nil {
		alt, err := blurview.ParseHex(cfg.Checker.Color)
		if err != nil {
			return nil, fmt.Errorf("blurdemo: node %s checker: %w", cfg.Name, err)
		}
		n.SetPainter(checker(cfg.Checker.Cell, alt))
	}

	for _, ch := range cfg.Children {
		child, err := buildNode(ch, pending)
		if err != nil {
			return nil, err
		}
		n.Add(child)
	}

	if cfg.Blur != nil {
		*pending = append(*pending, pendingBlur{node: n, cfg: *cfg.Blur})
	}
	return n, nil
}

func (pb pendingBlur) attach(root *viewtree.Node, loop *viewtree.FrameLoop) (*blurview.Compositor, error) {
	opts, err := pb.cfg.options()
	if err != nil {
		return nil, err
	}
	p, err := newPrimitive(pb.cfg.Primitive, pb.cfg.scaleFactor())
	if err != nil {
		return nil, err
	}
	c, err := pb.node.AttachBlur(root, p, loop, opts...)
	if err != nil {
		pb.node.DetachBlur()
		return nil, err
	}
	return c, nil
}

// scaleFactor returns the explicit scale, else the material's, else zero.
func (cfg BlurConfig) scaleFactor() float64 {
	if cfg.ScaleFactor > 0 || cfg.Material == "" {
		return cfg.ScaleFactor
	}
	m, err := blurview.ParseMaterial(cfg.Material)
	if err != nil {
		return 0
	}
	return m.ScaleFactor()
}

func (cfg BlurConfig) options() ([]blurview.Option, error) {
	var opts []blurview.Option
	if cfg.Material != "" {
		m, err := blurview.ParseMaterial(cfg.Material)
		if err != nil {
			return nil, err
		}
		opts = append(opts, blurview.WithMaterial(m, cfg.DarkTheme))
	}
	if cfg.ScaleFactor > 0 {
		opts = append(opts, blurview.WithScaleFactor(cfg.ScaleFactor))
	}
	if cfg.Radius > 0 {
		opts = append(opts, blurview.WithRadius(cfg.Radius))
	}
	if cfg.Alignment > 0 {
		opts = append(opts, blurview.WithAlignment(cfg.Alignment))
	}
	if cfg.MinInterval > 0 {
		opts = append(opts, blurview.WithMinRefreshInterval(cfg.MinInterval))
	}
	if cfg.MaxPixels > 0 {
		opts = append(opts, blurview.WithMaxBufferPixels(cfg.MaxPixels))
	}
	if cfg.Overlay != "" {
		c, err := blurview.ParseHex(cfg.Overlay)
		if err != nil {
			return nil, fmt.Errorf("overlay: %w", err)
		}
		opts = append(opts, blurview.WithOverlayColor(c))
	}
	if cfg.FrameClear != "" {
		c, err := blurview.ParseHex(cfg.FrameClear)
		if err != nil {
			return nil, fmt.Errorf("frame_clear: %w", err)
		}
		opts = append(opts, blurview.WithFrameClearColor(c))
	}
	return opts, nil
}

// newPrimitive returns the blur primitive named kind. A zero scale factor
// selects the primitive's default.
func newPrimitive(kind string, scale float64) (blurview.Primitive, error) {
	if scale <= 0 {
		scale = 8
	}
	switch kind {
	case "", "gaussian":
		return blur.NewGaussian(scale), nil
	case "box":
		return blur.NewBox(scale), nil
	case "deferred":
		return blur.NewDeferred(scale), nil
	case "none":
		return blur.Passthrough{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownPrimitive, kind)
	}
}

// checker returns a painter drawing cell-sized squares of c on every other
// cell.
func checker(cell int, c blurview.RGBA) viewtree.PaintFunc {
	if cell < 1 {
		cell = 8
	}
	return func(s *blurview.Surface, size image.Point) error {
		for y := 0; y < size.Y; y += cell {
			for x := (y / cell % 2) * cell; x < size.X; x += 2 * cell {
				s.FillRect(image.Rect(x, y, x+cell, y+cell).Intersect(image.Rectangle{Max: size}), c)
			}
		}
		return nil
	}
}
