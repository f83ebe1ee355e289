// Command spritebench renders a generated sprite scene headlessly and
// reports batching statistics.
//
// Usage:
//
//	spritebench [-config scene.yaml] [-backend software] [-frames 120] [-out frame.png]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/backend"
	"github.com/gogpu/sprite/internal/scene"
	"github.com/schollz/progressbar/v3"
)

// frameStep is the simulated time between frames, in seconds.
const frameStep = 1.0 / 60

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "spritebench: %v\n", err)
		os.Exit(1)
	}
}

type summary struct {
	Frames    int
	Sprites   int
	Flushes   int
	Chunks    int
	DrawCalls int
	Elapsed   time.Duration
}

func (s summary) fps() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("spritebench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := scene.DefaultConfig()
	var (
		configPath  = fs.String("config", "", "YAML scene config (defaults are used when empty)")
		backendName = fs.String("backend", "", "render backend (default: highest priority available)")
		frames      = fs.Int("frames", 120, "number of frames to render")
		sprites     = fs.Int("sprites", -1, "override the configured sprite count")
		out         = fs.String("out", "", "write the last frame to this PNG file")
		verbose     = fs.Bool("v", false, "log batcher activity to stderr")
		progress    = fs.Bool("progress", false, "show a progress bar")
		list        = fs.Bool("list", false, "list available backends and exit")
	)
	sortMode := cfg.Sort
	fs.TextVar(&sortMode, "sort", cfg.Sort, "sort mode: deferred, texture, front-to-back or back-to-front")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, name := range backend.Available() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if *configPath != "" {
		loaded, err := scene.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "sort" {
			cfg.Sort = sortMode
		}
	})
	if *sprites >= 0 {
		cfg.Sprites = *sprites
	}
	if *frames <= 0 {
		return fmt.Errorf("invalid frame count %d", *frames)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if *verbose {
		sprite.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer sprite.SetLogger(nil)
	}

	sc, err := scene.New(cfg)
	if err != nil {
		return err
	}

	rb, err := backend.Open(*backendName)
	if err != nil {
		return err
	}
	defer rb.Close()

	r, err := rb.NewRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("create %s renderer: %w", rb.Name(), err)
	}

	images := sc.Images()
	textures := make([]sprite.TextureID, len(images))
	for i, img := range images {
		if textures[i], err = r.RegisterImage(img); err != nil {
			return fmt.Errorf("register texture %s: %w", cfg.Textures[i].Name, err)
		}
	}

	var bar *progressbar.ProgressBar
	if *progress {
		bar = progressbar.NewOptions(*frames,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("rendering"),
			progressbar.OptionShowCount(),
		)
		defer bar.Close()
	}

	sb := sprite.NewSpriteBatch(r, cfg.BatchOptions()...)
	state := r.NewRenderState()
	sum := summary{Frames: *frames, Sprites: cfg.Sprites}

	start := time.Now()
	for range *frames {
		r.Clear(cfg.BackgroundColor())
		if err := sb.Begin(cfg.Sort, state); err != nil {
			return err
		}
		if err := sc.Draw(sb, textures); err != nil {
			return err
		}
		if err := sb.End(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
		stats := sb.Batcher().Stats()
		sum.Flushes += stats.Flushes
		sum.Chunks += stats.Chunks
		sc.Step(frameStep)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	sum.Elapsed = time.Since(start)
	sum.DrawCalls = r.DrawCalls()

	logger.Info("benchmark complete",
		slog.String("backend", rb.Name()),
		slog.String("sort", cfg.Sort.String()),
		slog.Int("frames", sum.Frames),
		slog.Int("sprites", sum.Sprites),
		slog.Int("flushes", sum.Flushes),
		slog.Int("chunks", sum.Chunks),
		slog.Int("draw_calls", sum.DrawCalls),
		slog.Duration("elapsed", sum.Elapsed),
		slog.Float64("fps", sum.fps()),
	)
	fmt.Fprintf(stdout, "%d frames, %d sprites, %.1f flushes/frame, %.1f fps\n",
		sum.Frames, sum.Sprites, float64(sum.Flushes)/float64(sum.Frames), sum.fps())

	if *out != "" {
		if err := writePNG(*out, r); err != nil {
			return err
		}
		logger.Info("frame saved", slog.String("path", *out))
	}
	return nil
}

func writePNG(path string, r backend.Renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, r.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
