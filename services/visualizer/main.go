package visualizer

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"os/exec"
	"path/filepath"

	"gohan/maf/models/constants"
	mc "gohan/maf/models/constants/maf-columns"
	"gohan/maf/models/maf"
	"gohan/maf/utils"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var ErrMissingColumns = errors.New("the dataset must have 'Variant_Classification' and 'Stage' columns")

const (
	ChartTitle  = "Mutation Frequency by Stage"
	ChartXLabel = "Stage"
	ChartYLabel = "Number of Mutations"
)

// CountByStage counts the rows of each distinct stage value.
func CountByStage(df dataframe.DataFrame, order []constants.Stage) ([]maf.StageCount, error) {
	if missing := utils.MissingStrings([]string{mc.VariantClassification, mc.Stage}, df.Names()); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %v", ErrMissingColumns, missing)
	}
	return maf.OrderStageCounts(df.Col(mc.Stage).Records(), order), nil
}

// RenderChart draws one marker per stage joined by a dashed line and saves
// it to path. The image format follows the file extension.
func RenderChart(counts []maf.StageCount, path string) error {
	p := plot.New()
	p.Title.Text = ChartTitle
	p.X.Label.Text = ChartXLabel
	p.Y.Label.Text = ChartYLabel
	p.Y.Min = 0

	names := make([]string, len(counts))
	points := make(plotter.XYs, len(counts))
	for i, c := range counts {
		names[i] = string(c.Stage)
		points[i].X = float64(i)
		points[i].Y = float64(c.Count)
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 200}
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	grid.Horizontal.Color = color.Gray{Y: 200}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(grid)

	if len(points) > 0 {
		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.LineStyle.Color = color.Black
		line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}

		p.Add(line, scatter)
	}

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// Displayer shows a rendered chart to a user. It is optional: headless
// runs use NoopDisplayer.
type Displayer interface {
	Display(path string) error
}

type NoopDisplayer struct{}

func (NoopDisplayer) Display(string) error { return nil }

// CommandDisplayer hands the chart to an external viewer such as xdg-open.
type CommandDisplayer struct {
	Command string
}

func (d CommandDisplayer) Display(path string) error {
	return exec.Command(d.Command, path).Start()
}

func NewDisplayer(command string) Displayer {
	if command == "" {
		return NoopDisplayer{}
	}
	return CommandDisplayer{Command: command}
}

type Visualizer struct {
	stages    []constants.Stage
	displayer Displayer
	logger    *zap.SugaredLogger
}

func NewVisualizer(stages []constants.Stage, displayer Displayer, logger *zap.SugaredLogger) *Visualizer {
	if displayer == nil {
		displayer = NoopDisplayer{}
	}
	return &Visualizer{
		stages:    stages,
		displayer: displayer,
		logger:    logger,
	}
}

// Visualize counts rows per stage, renders the chart to path and hands it
// to the displayer. A display failure is only logged.
func (v *Visualizer) Visualize(df dataframe.DataFrame, path string) ([]maf.StageCount, error) {
	counts, err := CountByStage(df, v.stages)
	if err != nil {
		return nil, err
	}

	if err := RenderChart(counts, path); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}
	v.logger.Infow("Saved chart", "path", path, "stages", len(counts))

	if err := v.displayer.Display(path); err != nil {
		v.logger.Warnw("Unable to display chart", "path", path, "error", err)
	}

	return counts, nil
}
