package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polydecomp"
	"github.com/osuushi/polydecomp/internal"
	"github.com/osuushi/polydecomp/internal/dbg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of convex decomposition. Input on stdin should be newline separated
// points in the form "x y", with each polygon separated by an extra newline.
// Alternatively, --svg reads every <polygon> element of an SVG file.
//
// Polygons must be simple. Winding does not matter. Simplicity is not
// validated.

var (
	app        = kingpin.New("polydecomp", "Split simple polygons into convex pieces.")
	svgPath    = app.Flag("svg", "Read polygons from an SVG file instead of stdin.").ExistingFile()
	configPath = app.Flag("config", "YAML file with maxDepth, scale, padding, labels and colors.").ExistingFile()
	pngPath    = app.Flag("png", "Write a rendering of the decomposition to this PNG file.").String()
	showImage  = app.Flag("imgcat", "Print the rendering inline in the terminal (iTerm only).").Bool()
	dump       = app.Flag("dump", "Dump every decomposition in full.").Bool()
	verbose    = app.Flag("verbose", "Log every split.").Short('v').Bool()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()
	maxDepth   = app.Flag("max-depth", "Maximum recursion depth (0 for the default).").Int()
	scale      = app.Flag("scale", "Pixels per unit in the rendering. By default the image is fit to 2048 pixels.").Float64()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{DisableColors: *noColor, FullTimestamp: true}
	if *verbose {
		log.Level = logrus.DebugLevel
	}

	if err := run(os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Error("decomposition failed")
		os.Exit(1)
	}
}

func run(stdin io.Reader, out io.Writer, log *logrus.Logger) error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *maxDepth > 0 {
		cfg.MaxDepth = *maxDepth
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	style, err := cfg.renderStyle()
	if err != nil {
		return err
	}

	polygons, err := readInput(stdin)
	if err != nil {
		return err
	}
	log.WithField("count", len(polygons)).Info("read polygons")

	au := aurora.NewAurora(!*noColor)
	combined := &internal.Decomposition{}
	var failed int
	for i, poly := range polygons {
		result, err := polydecomp.Decompose(poly.Points,
			polydecomp.WithLogger(log.WithField("polygon", i)),
			polydecomp.WithMaxDepth(cfg.MaxDepth),
		)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s\n  %s\n", au.Red(fmt.Sprintf("polygon %d:", i)), err, poly.DbgString(au))
			continue
		}
		printSummary(out, au, i, result)
		if *dump {
			fmt.Fprintf(out, "%# v\n", pretty.Formatter(result))
		}

		combined.Polygons = append(combined.Polygons, result.Polygons...)
		combined.ReflexVertices = append(combined.ReflexVertices, result.ReflexVertices...)
		combined.SteinerPoints = append(combined.SteinerPoints, result.SteinerPoints...)
	}

	if *pngPath != "" || *showImage {
		if err := writeImage(combined, style, out); err != nil {
			return err
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d polygons could not be decomposed", failed, len(polygons))
	}
	return nil
}

func readInput(stdin io.Reader) (internal.PolygonList, error) {
	if *svgPath == "" {
		return internal.ReadPolygons(stdin)
	}
	f, err := os.Open(*svgPath)
	if err != nil {
		return nil, errors.Wrap(err, "open svg")
	}
	defer f.Close()
	return internal.ReadSVGPolygons(f)
}

func printSummary(out io.Writer, au aurora.Aurora, index int, result *polydecomp.Decomposition) {
	fmt.Fprintf(out, "%s %d convex pieces, %d reflex vertices, %d Steiner points\n",
		au.Bold(au.Green(fmt.Sprintf("polygon %d:", index))),
		len(result.Polygons),
		len(result.ReflexVertices),
		len(result.SteinerPoints),
	)
	for i, piece := range result.Polygons {
		fmt.Fprintf(out, "  %s %s\n", au.Cyan(dbg.Name(i)), piece.DbgString(au))
	}
	for _, p := range result.SteinerPoints {
		fmt.Fprintf(out, "  %s (%g, %g)\n", au.Yellow("steiner"), p.X, p.Y)
	}
}

func writeImage(d *internal.Decomposition, style internal.RenderStyle, out io.Writer) error {
	c := d.Render(style)
	path := *pngPath
	if path == "" {
		path = filepath.Join(os.TempDir(), "polydecomp.png")
	}
	if err := c.SavePNG(path); err != nil {
		return errors.Wrap(err, "save png")
	}
	if *showImage {
		if err := imgcat.CatFile(path, out); err != nil {
			return errors.Wrap(err, "imgcat")
		}
	}
	return nil
}
