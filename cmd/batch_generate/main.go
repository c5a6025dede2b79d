package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quiz-scribe/internal/config"
	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/dto"
	"quiz-scribe/internal/logger"
	"quiz-scribe/internal/nlp"
	"quiz-scribe/internal/quizgen"
	"quiz-scribe/internal/service"
)

const quizFileSuffix = ".quiz.json"

type batchResult struct {
	Generated int32
	Skipped   int32
}

func main() {
	inDir := flag.String("in", "transcripts", "directory containing *.txt transcripts")
	outDir := flag.String("out", "quizzes", "directory to write <name>.quiz.json files to")
	concurrency := flag.Int("concurrency", 4, "number of transcripts processed at once")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	analyzer, err := nlp.NewProseAnalyzer()
	if err != nil {
		log.Fatal("Failed to load NLP model", zap.Error(err))
	}
	pipeline := quizgen.NewPipeline(analyzer, cfg.Generation, log)

	log.Info("Batch generation starting",
		zap.String("in", *inDir),
		zap.String("out", *outDir),
		zap.Int("concurrency", *concurrency))

	res, err := generateAll(context.Background(), pipeline, *inDir, *outDir, *concurrency, log)
	if err != nil {
		log.Fatal("Batch generation failed", zap.Error(err))
	}
	log.Info("Batch generation completed",
		zap.Int32("generated", res.Generated),
		zap.Int32("skipped", res.Skipped))
}

// generateAll writes one quiz file per transcript. Transcripts that are empty
// after normalization are skipped; I/O failures abort the batch.
func generateAll(ctx context.Context, pipeline service.QuizPipeline, inDir, outDir string, concurrency int, log *zap.Logger) (batchResult, error) {
	var res batchResult

	files, err := filepath.Glob(filepath.Join(inDir, "*.txt"))
	if err != nil {
		return res, fmt.Errorf("list transcripts: %w", err)
	}
	sort.Strings(files)
	if len(files) == 0 {
		log.Warn("No transcripts found", zap.String("dir", inDir))
		return res, nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}

	if concurrency < 1 {
		concurrency = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range files {
		g.Go(func() error {
			ok, err := generateOne(gctx, pipeline, path, outDir)
			if err != nil {
				return err
			}
			if ok {
				atomic.AddInt32(&res.Generated, 1)
			} else {
				atomic.AddInt32(&res.Skipped, 1)
				log.Warn("Skipped transcript with no content", zap.String("file", path))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, nil
}

func generateOne(ctx context.Context, pipeline service.QuizPipeline, path, outDir string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	quiz, err := pipeline.Run(ctx, quizgen.Input{Transcript: string(raw)})
	if err != nil {
		if domain.IsCode(err, domain.CodeEmptyTranscript) {
			return false, nil
		}
		return false, fmt.Errorf("generate %s: %w", path, err)
	}

	resp, err := dto.NewGenerateQuizResponse(quiz)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", path, err)
	}
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := os.WriteFile(filepath.Join(outDir, name+quizFileSuffix), out, 0o644); err != nil {
		return false, fmt.Errorf("write quiz for %s: %w", path, err)
	}
	return true, nil
}
