package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jkratochvil/stavex/internal/model"
	"github.com/jkratochvil/stavex/internal/pipeline"
	"github.com/jkratochvil/stavex/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Extract facts from every text file in a directory, in parallel",
	Long: `Batch processes a directory of document text files concurrently:
- Collect every .txt file under the directory
- Run the extraction pipeline with a configurable worker count
- Write one JSON report per document into the output directory

All workers share one pipeline, so the NLP engine is initialized once.

Example:
  stavex batch ./dokumenty
  stavex batch ./dokumenty --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./stavex-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().StringVar(&nlpProvider, "nlp-provider", "", "NLP engine (rules, openai)")
	batchCmd.Flags().StringVar(&nlpModel, "nlp-model", "", "hosted NLP model name")
}

// extractJob runs the pipeline over one file
type extractJob struct {
	path     string
	pipe     *pipeline.Pipeline
	renderer *pipeline.Renderer
	outDir   string
}

// extractResult reports the outcome of one file
type extractResult struct {
	path   string
	report *model.Report
	err    error
}

func (r *extractResult) Err() error { return r.err }

// Execute reads, extracts and renders one document
func (j *extractJob) Execute(ctx context.Context) worker.Result {
	raw, err := os.ReadFile(j.path)
	if err != nil {
		return &extractResult{path: j.path, err: fmt.Errorf("read input: %w", err)}
	}
	text := pipeline.NormalizeInput(raw)

	result, err := j.pipe.Extract(ctx, text)
	if err != nil {
		return &extractResult{path: j.path, err: fmt.Errorf("extract: %w", err)}
	}

	report := &model.Report{
		ID:          uuid.NewString(),
		SourcePath:  j.path,
		ExtractedAt: time.Now().UTC(),
		TextLength:  len(text),
		Result:      result,
	}

	base := strings.TrimSuffix(filepath.Base(j.path), filepath.Ext(j.path))
	outPath := filepath.Join(j.outDir, base+".json")
	if err := j.renderer.RenderJSON(report, outPath); err != nil {
		return &extractResult{path: j.path, report: report, err: err}
	}
	return &extractResult{path: j.path, report: report}
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	files, err := collectTextFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .txt files found under %s", dir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Batch: %d documents, %d workers, output %s\n",
		len(files), cfg.Concurrency.Workers, outputDir)

	pipe := pipeline.New(cfg, newLogger())
	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)

	jobs := make([]worker.Job, 0, len(files))
	for _, f := range files {
		jobs = append(jobs, &extractJob{path: f, pipe: pipe, renderer: renderer, outDir: outputDir})
	}

	results := worker.NewPool(cfg.Concurrency.Workers).Process(ctx, jobs)

	failed := 0
	for _, r := range results {
		res := r.(*extractResult)
		if res.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.path, res.err)
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s: %s\n", res.path, res.report.Result.Summary)
		}
	}

	fmt.Fprintf(os.Stderr, "Done: %d succeeded, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}

// collectTextFiles lists .txt files under dir, sorted for stable order
func collectTextFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".txt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
