package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/credao/gardengrid/internal/adapters/render"
	"github.com/credao/gardengrid/internal/adapters/snapshot"
	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/core/usecases"
	"github.com/credao/gardengrid/internal/pkg/config"
	"github.com/credao/gardengrid/internal/pkg/metrics"
)

type app struct {
	cfg *config.Config
	out io.Writer
}

func (a *app) gridService(store *snapshot.Store) *usecases.GridService {
	return usecases.NewGridService(store, a.cfg.Grid.MaxDisplay, a.cfg.Grid.SelectorMaxDisplay)
}

func (a *app) mapRenderer(showCells bool) render.MapRenderer {
	return render.MapRenderer{
		Viewport: domain.Viewport{
			Width:   float64(a.cfg.Map.Width),
			Height:  float64(a.cfg.Map.Height),
			Padding: a.cfg.Map.Padding,
		},
		Epsilon:    a.cfg.Map.RangeEpsilon,
		GuideLines: a.cfg.Map.GuideLines,
		ShowCells:  showCells,
	}
}

func (a *app) gardens(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gardens <snapshot>")
	}
	store, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	gardens, err := a.gridService(store).Gardens(ctx)
	if err != nil {
		return err
	}
	for _, g := range gardens {
		fmt.Fprintf(a.out, "%-4d %-20s %-10s %d×%d\n", g.ID, g.Name, g.Kind, g.Width, g.Height)
	}
	return nil
}

func (a *app) grid(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	showMetrics := fs.Bool("metrics", false, "print metrics to stderr when done")
	if err := fs.Parse(args); err != nil {
		return err
	}
	store, id, err := openGarden(fs.Args(), 2)
	if err != nil {
		return err
	}
	defer dumpMetrics(*showMetrics)

	svc := a.gridService(store)
	g, err := store.GetGarden(ctx, id)
	if err != nil {
		return err
	}
	v, err := svc.View(ctx, id)
	if err != nil {
		return err
	}
	return render.WriteGrid(a.out, fmt.Sprintf("%s (%d×%d)", g.Name, g.Width, g.Height), v)
}

func (a *app) drawMap(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("map", flag.ContinueOnError)
	cells := fs.Bool("cells", false, "tint grid cells inside the boundary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	store, id, err := openGarden(fs.Args(), 3)
	if err != nil {
		return err
	}
	g, err := store.GetGarden(ctx, id)
	if err != nil {
		return err
	}

	f, err := os.Create(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("create %s: %w", fs.Arg(2), err)
	}
	if err := a.mapRenderer(*cells).WritePNG(f, *g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (a *app) plant(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("plant", flag.ContinueOnError)
	var drags dragList
	var clicks cellList
	fs.Var(&drags, "drag", "drag from x0,y0 to x1,y1 (repeatable), e.g. 0,0:2,1")
	fs.Var(&clicks, "click", "click cell x,y (repeatable)")
	name := fs.String("name", "", "crop name")
	species := fs.String("species", "", "crop species")
	stage := fs.String("stage", domain.StagePlanted, "growth stage")
	planted := fs.String("planted", time.Now().Format(time.DateOnly), "planting date (YYYY-MM-DD)")
	harvest := fs.String("harvest", "", "expected harvest date (YYYY-MM-DD)")
	sensor := fs.String("sensor", "", "sensor link")
	outPath := fs.String("out", "", "write the updated snapshot here")
	dryRun := fs.Bool("dry-run", false, "only show the selection")
	showMetrics := fs.Bool("metrics", false, "print metrics to stderr when done")
	if err := fs.Parse(args); err != nil {
		return err
	}
	store, id, err := openGarden(fs.Args(), 2)
	if err != nil {
		return err
	}
	defer dumpMetrics(*showMetrics)

	session, err := a.gridService(store).OpenSession(ctx, id)
	if err != nil {
		return err
	}
	for _, d := range drags {
		session.PointerDown(d[0])
		session.PointerEnter(d[1])
		session.PointerUp()
	}
	for _, p := range clicks {
		session.PointerDown(p)
		session.PointerUp()
	}

	g := session.Garden()
	if err := render.WriteGrid(a.out, fmt.Sprintf("%s (%d×%d)", g.Name, g.Width, g.Height), session.View()); err != nil {
		return err
	}
	if *dryRun {
		return nil
	}

	form := usecases.CropForm{Name: *name, Species: *species, Stage: *stage, SensorLink: *sensor}
	if form.PlantingDate, err = parseDate(*planted); err != nil {
		return err
	}
	if form.HarvestDate, err = parseDate(*harvest); err != nil {
		return err
	}
	cropID, err := usecases.NewPlantingService(store).Plant(ctx, session, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "planted crop %d\n", cropID)
	return writeSnapshot(store, *outPath)
}

func (a *app) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	var clicks pointList
	fs.Var(&clicks, "click", "click the drawing surface at pixel x,y (repeatable, map mode)")
	name := fs.String("name", "", "garden name")
	mode := fs.String("mode", string(domain.GardenKindGrid), "gridBased or mapBased")
	width := dimension(usecases.DefaultDraftWidth)
	height := dimension(usecases.DefaultDraftHeight)
	size := dimension(usecases.DefaultDraftMapSize)
	fs.Var(&width, "width", "grid width in metres (grid mode)")
	fs.Var(&height, "height", "grid height in metres (grid mode)")
	fs.Var(&size, "size", "grid size in metres (map mode)")
	draftPNG := fs.String("draft", "", "render the drawn boundary to this PNG")
	outPath := fs.String("out", "", "write the updated snapshot here")
	showMetrics := fs.Bool("metrics", false, "print metrics to stderr when done")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: create [flags] <snapshot>")
	}
	store, err := snapshot.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	defer dumpMetrics(*showMetrics)

	svc := usecases.NewGardenService(store, a.cfg.Surface(), a.cfg.Draw.DegreesPerMetre)
	draft := usecases.NewGardenDraft()
	draft.Name = *name
	draft.Kind = domain.GardenKind(*mode)
	draft.Width, draft.Height, draft.MapSize = uint32(width), uint32(height), uint32(size)
	for _, p := range clicks {
		svc.Click(draft, p.X, p.Y)
	}

	if draft.Kind == domain.GardenKindMap {
		if err := a.describeDraft(svc, draft, *draftPNG); err != nil {
			return err
		}
	}

	id, err := svc.Submit(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created garden %d\n", id)
	return writeSnapshot(store, *outPath)
}

func (a *app) describeDraft(svc *usecases.GardenService, d *usecases.GardenDraft, pngPath string) error {
	if stats, err := d.Boundary.Measure(); err == nil {
		fmt.Fprintf(a.out, "boundary: %d points, perimeter %.1f m, area %.1f m², centre %.6f,%.6f\n",
			stats.Points, stats.PerimeterM, stats.AreaM2, stats.Centroid.Lat, stats.Centroid.Lng)
	} else {
		fmt.Fprintf(a.out, "boundary: %d points (open)\n", d.Boundary.Len())
	}
	if pngPath == "" {
		return nil
	}
	f, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", pngPath, err)
	}
	if err := png.Encode(f, render.RenderDraft(svc.Surface(), d.Boundary)); err != nil {
		f.Close()
		return fmt.Errorf("encode draft: %w", err)
	}
	return f.Close()
}

func openGarden(args []string, want int) (*snapshot.Store, uint64, error) {
	if len(args) != want {
		return nil, 0, fmt.Errorf("expected %d arguments, got %d", want, len(args))
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("garden id %q: %w", args[1], err)
	}
	store, err := snapshot.Load(args[0])
	if err != nil {
		return nil, 0, err
	}
	return store, id, nil
}

func writeSnapshot(store *snapshot.Store, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := store.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func dumpMetrics(enabled bool) {
	if !enabled {
		return
	}
	if err := metrics.WriteText(os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "metrics: %v\n", err)
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, err)
	}
	return t, nil
}
