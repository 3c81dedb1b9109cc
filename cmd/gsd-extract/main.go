package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	gsd "github.com/Aiquinones/syntax-analysis-beto"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "gsd-extract",
		Usage:   "convert UD GSD treebank partitions into JSON sentence records",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dataset-dir",
				Aliases:  []string{"d"},
				Usage:    "directory containing the .conllu partition files",
				Required: true,
				EnvVars:  []string{"GSD_DATASET_DIR"},
			},
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Value:   "es",
				Usage:   "language code used in partition filenames",
				EnvVars: []string{"GSD_LANGUAGE"},
			},
			&cli.StringFlag{
				Name:    "partition",
				Aliases: []string{"p"},
				Value:   "all",
				Usage:   "partition to process: dev, test, train or all",
				EnvVars: []string{"GSD_PARTITION"},
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "directory for the .json output files (default: the dataset directory)",
				EnvVars: []string{"GSD_OUTPUT_DIR"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every dropped sentence",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gsd-extract: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ds := gsd.Dataset{Dir: c.String("dataset-dir"), Lang: c.String("language")}
	outDir := c.String("output-dir")
	if outDir == "" {
		outDir = ds.Dir
	}

	parts, err := gsd.Partitions(c.String("partition"))
	if err != nil {
		return err
	}

	ex := gsd.New(gsd.WithLogger(logger))
	for _, part := range parts {
		if err := processPartition(ex, ds, outDir, part); err != nil {
			return err
		}
	}
	return nil
}

func processPartition(ex *gsd.Extractor, ds gsd.Dataset, outDir, part string) error {
	inPath := ds.PartitionPath(part)
	fmt.Printf("Processing %s...\n", part)

	f, err := os.Open(inPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", gsd.ErrCorpusNotFound, inPath)
		}
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", inPath, err)
	}

	progress := uiprogress.New()
	progress.Start()
	bar := progress.AddBar(int(info.Size()))
	bar.AppendCompleted()
	bar.PrependElapsed()

	sents, filtered, err := ex.Extract(&progressReader{r: f, bar: bar})
	progress.Stop()
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	if filtered > 0 {
		fmt.Printf("%d sentences were filtered for containing CJK ideographs\n", filtered)
	}

	outPath := ds.OutputPath(outDir, part)
	if err := gsd.WriteCorpus(outPath, sents); err != nil {
		return err
	}
	fmt.Printf("Wrote %d sentences to %s\n", len(sents), outPath)
	return nil
}

// progressReader advances the partition progress bar as the extractor
// consumes the underlying file.
type progressReader struct {
	r    io.Reader
	bar  *uiprogress.Bar
	read int
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += n
	_ = p.bar.Set(p.read)
	return n, err
}
