package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/projector"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"golang.org/x/sync/errgroup"
)

type job struct {
	name string
	rec  model.ResumeRecord
}

func main() {
	out := flag.String("out", ".", "output directory")
	fontsDir := flag.String("fonts", "fonts", "directory holding the Roboto font files")
	chrome := flag.String("chrome", "", "Chrome executable (default: found on PATH)")
	timeout := flag.Duration("timeout", 60*time.Second, "per-document render timeout")
	asHTML := flag.Bool("html", false, "write the composed HTML instead of a PDF")
	asBlocks := flag.Bool("blocks", false, "write the projected document as JSON instead of a PDF")
	demo := flag.Bool("demo", false, "also render the built-in demo record")
	parallel := flag.Int("parallel", 2, "documents rendered at once")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [record.json ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	jobs, err := loadJobs(flag.Args(), *demo)
	if err != nil {
		log.Fatal(err)
	}
	if len(jobs) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	var fonts usecase.FontFaces
	if !*asBlocks {
		fs, err := infra.LoadFontSet(*fontsDir)
		if err != nil {
			log.Fatalf("fonts: %v", err)
		}
		fonts = usecase.FontFaces(fs.URLs())
	}
	processor := usecase.NewProcessor(infra.NewChromedpRenderer(*chrome, *timeout), fonts, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*parallel, 1))
	for _, j := range jobs {
		g.Go(func() error {
			gen := domain.NewGeneration(j.name)
			var (
				data []byte
				ext  string
				err  error
			)
			switch {
			case *asBlocks:
				data, err = json.MarshalIndent(projector.NewDocument(j.rec), "", "  ")
				ext = ".json"
			case *asHTML:
				var html string
				html, err = processor.HTML(gen, j.rec)
				data, ext = []byte(html), ".html"
			default:
				data, err = processor.Render(ctx, gen, j.rec)
				ext = ".pdf"
			}
			if err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			path := filepath.Join(*out, j.name+ext)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			log.Printf("wrote %s (%d bytes)", path, len(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// loadJobs decodes every file with the same validation the server applies.
func loadJobs(paths []string, demo bool) ([]job, error) {
	var jobs []job
	if demo {
		jobs = append(jobs, job{name: "demo", rec: model.Demo()})
	}
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		rec, err := model.DecodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		jobs = append(jobs, job{name: strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)), rec: rec})
	}
	return jobs, nil
}
