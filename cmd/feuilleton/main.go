package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/app"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/chunker"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/dataset"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/embeddings"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/pipeline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath   string
		outputDir   string
		modelName   string
		prefix      string
		prefixLabel string
	)

	cmd := &cobra.Command{
		Use:   "feuilleton",
		Short: "Chunk article texts and embed them into a columnar dataset",
		Long: `Reads a tab-separated table with article_id and text columns, splits each
text into sentence-bounded chunks within the model's token budget, embeds
every chunk, and writes the result as one dataset directory per
(model, prefix) pair.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), inputPath, outputDir, modelName, prefix, prefixLabel)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "tab-separated file with article_id and text columns")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory the processed dataset is written under")
	cmd.Flags().StringVar(&modelName, "model", "", "embedding model name (overrides EMBEDDING_MODEL)")
	cmd.Flags().StringVar(&prefix, "prefix", "Query: ", "instruction prefix added to each chunk before encoding")
	cmd.Flags().StringVar(&prefixLabel, "prefix-description", "", "short label for the prefix, used in the output directory name instead of a hash")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output-dir")

	return cmd
}

func run(ctx context.Context, inputPath, outputDir, modelName, prefix, prefixLabel string) error {
	deps, err := app.Build(modelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build dependencies: %v\n", err)
		return err
	}
	defer deps.Cache.Close()

	log := deps.Log.With("run_id", uuid.NewString())
	model := deps.Config.EmbeddingModel

	counter, probeOK := embeddings.NewTokenCounter(model)
	if !probeOK {
		log.Error("tokenizer unavailable, falling back to word counts and the default budget", "model", model)
	}
	maxTokens := embeddings.ResolveMaxTokens(model, probeOK)
	log.Info("resolved token budget", "model", model, "max_tokens", maxTokens)

	// A missing or malformed input table is fatal; nothing has been
	// processed yet.
	articles, err := dataset.ReadTSV(inputPath)
	if err != nil {
		log.Error("failed to read input", "path", inputPath, "err", err)
		return err
	}
	log.Info("loaded input", "path", inputPath, "articles", len(articles))

	outputPath := dataset.OutputPath(outputDir, model, prefix, prefixLabel)
	store, err := app.BuildStore(deps.Config, log, outputPath)
	if err != nil {
		log.Error("failed to build store", "err", err)
		return err
	}

	p := pipeline.New(log, deps.Embedder, chunker.CounterFunc(counter), deps.Cache, pipeline.Options{
		Model:     model,
		Prefix:    prefix,
		MaxTokens: maxTokens,
	})
	processed := p.Run(ctx, articles)

	if err := store.SaveAll(ctx, processed); err != nil {
		log.Error("failed to save dataset", "err", err)
		return err
	}
	log.Info("saved processed dataset", "path", outputPath, "articles", len(processed))
	fmt.Printf("Saved processed dataset to %s\n", outputPath)
	return nil
}
