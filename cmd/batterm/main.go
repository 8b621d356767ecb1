package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"

	"github.com/cellux/batterm"
	"github.com/cellux/batterm/glhost"
	"github.com/cellux/batterm/termhost"
)

// loadConfig returns the arguments stored in batterm/batterm.conf under
// the XDG config directories.
func loadConfig() ([]string, error) {
	path, err := xdg.SearchConfigFile(filepath.Join("batterm", "batterm.conf"))
	if err != nil {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return strings.Fields(string(b)), nil
}

type appOptions struct {
	Host     string `short:"H" enum:"gl,term" default:"gl" help:"Where to draw: gl (window) or term (terminal preview)."`
	Title    string `default:"batterm" help:"Window title."`
	LogLevel string `short:"l" enum:"debug,info,warn,error" default:"warn" help:"Log level."`

	MinCols int `default:"64" help:"Preferred minimum terminal width in cells."`
	MinRows int `default:"48" help:"Preferred minimum terminal height in cells."`
	MaxCols int `default:"256" help:"Preferred maximum terminal width in cells."`
	MaxRows int `default:"192" help:"Preferred maximum terminal height in cells."`
	FPS     int `default:"30" help:"Frames per second."`

	Font    string `type:"existingfile" help:"TrueType font to rasterize the glyph atlases from."`
	Palette string `type:"existingfile" help:"Palette file of 256 RGB triples."`

	Screenshot string `type:"path" help:"Render the welcome screen into this PNG file and exit."`
	Scale      int    `default:"2" help:"Upscale factor of the screenshot."`
}

func (o appOptions) aspectConfig() batterm.AspectConfig {
	cfg := batterm.DefaultAspectConfig
	cfg.PrefMinTermSize = batterm.Size{X: o.MinCols, Y: o.MinRows}
	cfg.PrefMaxTermSize = batterm.Size{X: o.MaxCols, Y: o.MaxRows}
	return cfg
}

func (o appOptions) swatch() (batterm.Swatch, error) {
	if o.Palette == "" {
		return batterm.DefaultSwatch(), nil
	}
	f, err := os.Open(o.Palette)
	if err != nil {
		return batterm.Swatch{}, err
	}
	defer f.Close()
	def := batterm.DefaultSwatch()
	s, err := batterm.LoadSwatch(f, def.DefaultBg, def.DefaultFg)
	if err != nil {
		return batterm.Swatch{}, fmt.Errorf("%s: %w", o.Palette, err)
	}
	return s, nil
}

func (o appOptions) atlases() (*batterm.Atlases, error) {
	if o.Font == "" {
		return batterm.DefaultAtlases(), nil
	}
	f, err := batterm.LoadFontFromFile(o.Font)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.Font, err)
	}
	return batterm.AtlasesFromFont(f)
}

func (o appOptions) host() batterm.Host {
	if o.Host == "term" {
		return termhost.New()
	}
	return glhost.New()
}

func main() {
	var opts appOptions
	parser := kong.Must(&opts,
		kong.Name("batterm"),
		kong.Description("Character cell rendering demo."),
		kong.UsageOnError())

	cfgArgs, err := loadConfig()
	parser.FatalIfErrorf(err)

	_, err = parser.Parse(append(cfgArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)

	parser.FatalIfErrorf(batterm.InitLogger(opts.LogLevel))

	swatch, err := opts.swatch()
	parser.FatalIfErrorf(err)
	atlases, err := opts.atlases()
	parser.FatalIfErrorf(err)

	a := newApp(swatch, atlases)

	if opts.Screenshot != "" {
		parser.FatalIfErrorf(a.screenshot(opts.Screenshot, opts.aspectConfig().PrefMinTermSize, opts.Scale))
		return
	}

	cfg := batterm.DefaultIOConfig()
	cfg.Title = opts.Title
	cfg.Aspect = opts.aspectConfig()
	cfg.Swatch = swatch
	cfg.Atlases = atlases
	cfg.FPS = opts.FPS

	a.io = batterm.NewIO(opts.host(), cfg)
	err = a.run()
	if cerr := a.io.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, batterm.ErrClosed) {
		err = nil
	}
	parser.FatalIfErrorf(err)
}
