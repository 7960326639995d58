package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jkratochvil/stavex/internal/model"
	"github.com/jkratochvil/stavex/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	nlpProvider string
	nlpModel    string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract structured facts from one document text file",
	Long: `Extract runs the full pipeline over one text file:
- Classify the document type
- Extract measurements, dates, milestones, prices and technical specs
- Recognize named entities and keywords
- Generate a summary digest

Example:
  stavex extract protokol.txt
  stavex extract rozpocet.txt --json report.json --md report.md
  stavex extract vykres.txt --nlp-provider openai --nlp-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	extractCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	extractCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "extraction timeout")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	extractCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	extractCmd.Flags().StringVar(&nlpProvider, "nlp-provider", "", "NLP engine (rules, openai)")
	extractCmd.Flags().StringVar(&nlpModel, "nlp-model", "", "hosted NLP model name")
}

// buildConfig merges defaults, the config file and command flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	applyViperConfig(cfg)

	if nlpProvider != "" {
		cfg.NLP.Provider = nlpProvider
	}
	if nlpModel != "" {
		cfg.NLP.Model = nlpModel
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if cfg.NLP.Provider == "openai" {
		cfg.NLP.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.NLP.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}
	return cfg, nil
}

// applyViperConfig overlays config-file and environment values
func applyViperConfig(cfg *model.Config) {
	if v := viper.GetString("nlp.provider"); v != "" {
		cfg.NLP.Provider = v
	}
	if v := viper.GetString("nlp.model"); v != "" {
		cfg.NLP.Model = v
	}
	if v := viper.GetString("nlp.base_url"); v != "" {
		cfg.NLP.BaseURL = v
	}
	if v := viper.GetFloat64("nlp.requests_per_second"); v > 0 {
		cfg.NLP.RequestsPerSecond = v
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if v := viper.GetInt("concurrency.workers"); v > 0 {
		cfg.Concurrency.Workers = v
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	text := pipeline.NormalizeInput(raw)

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracting: %s (%d chars, nlp=%s)\n",
			filepath.Base(path), len(text), cfg.NLP.Provider)
	}

	p := pipeline.New(cfg, newLogger())
	result, err := p.Extract(ctx, text)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	report := &model.Report{
		ID:          uuid.NewString(),
		SourcePath:  path,
		ExtractedAt: time.Now().UTC(),
		TextLength:  len(text),
		Result:      result,
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}
	renderer.RenderDigest(report)

	return nil
}
