package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	gsd "github.com/Aiquinones/syntax-analysis-beto"
	"github.com/Aiquinones/syntax-analysis-beto/conllu"
	"github.com/Aiquinones/syntax-analysis-beto/internal/stats"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "gsd-stats",
		Usage:   "report corpus statistics for UD GSD treebank partitions",
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
				Usage:   "partition to report: dev, test, train or all",
				EnvVars: []string{"GSD_PARTITION"},
			},
			&cli.IntFlag{
				Name:  "top",
				Value: 10,
				Usage: "number of relation labels to list",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gsd-stats: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	ds := gsd.Dataset{Dir: c.String("dataset-dir"), Lang: c.String("language")}

	parts, err := gsd.Partitions(c.String("partition"))
	if err != nil {
		return err
	}

	for i, part := range parts {
		if i > 0 {
			fmt.Println()
		}

		sents, err := loadPartition(ds.PartitionPath(part))
		if err != nil {
			return err
		}
		report(part, stats.Collect(sents), c.Int("top"))
	}
	return nil
}

func loadPartition(path string) ([]*conllu.Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", gsd.ErrCorpusNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sents, err := conllu.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sents, nil
}

func report(part string, sum stats.Summary, top int) {
	fmt.Printf("%s: %d sentences, %d words (%.1f per sentence)\n",
		part, sum.Sentences, sum.Words, sum.MeanWords())
	if sum.Incompatible > 0 {
		fmt.Printf("%d sentences contain CJK ideographs and would be filtered\n", sum.Incompatible)
	}

	relations := sum.TopRelations(top)
	if len(relations) == 0 {
		return
	}

	fmt.Println(strings.Repeat("-", 24))
	fmt.Printf("%-16s %s\n", "Relation", "Count")
	for _, rc := range relations {
		fmt.Printf("%-16s %d\n", rc.Reln, rc.Count)
	}
}
