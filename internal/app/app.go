package app

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/sirupsen/logrus"

	"news_analyzer/internal/analyzer"
	"news_analyzer/internal/config"
	"news_analyzer/internal/logger"
	"news_analyzer/internal/models"
)

// AnalyzerApp drives batch analysis of the URLs given on the command line.
// Each URL is one independent unit of work, results are printed as JSON.
type AnalyzerApp struct {
	config   *config.AnalyzerConfig
	log      *logrus.Logger
	fetcher  *analyzer.Fetcher
	analyzer *analyzer.Analyzer
	mu       sync.Mutex // serializes writes to stdout
}

func NewAnalyzerApp(cfg *config.AnalyzerConfig) (*AnalyzerApp, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	fetcher := analyzer.NewFetcher(
		time.Duration(cfg.Logic.TimeoutSec)*time.Second,
		cfg.Logic.UserAgent,
	)

	return &AnalyzerApp{
		config:   cfg,
		log:      log,
		fetcher:  fetcher,
		analyzer: analyzer.New(fetcher),
	}, nil
}

func (a *AnalyzerApp) Run(urls []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log.Infof("🔍 Analyzing %d page(s)", len(urls))

	workers := a.config.Logic.MaxConcurrentWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(urls) {
		workers = len(urls)
	}

	jobs := make(chan string)
	go func() {
		defer close(jobs)
		for _, u := range urls {
			select {
			case jobs <- u:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.worker(ctx, jobs)
		}()
	}

	wg.Wait()
	return nil
}

func (a *AnalyzerApp) worker(ctx context.Context, jobs <-chan string) {
	for urlStr := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		time.Sleep(time.Duration(a.config.Logic.DelayMS) * time.Millisecond)

		result, err := a.analyzeOne(ctx, urlStr)
		if err != nil {
			a.log.Errorf("❌ %v", err)
			continue
		}

		a.log.Infof("✅ %s: score %d (%s)", urlStr, result.TrustScore, result.TrustLevel)

		if err := a.printResult(result); err != nil {
			a.log.Errorf("Encoding result for %s: %v", urlStr, err)
		}
	}
}

func (a *AnalyzerApp) analyzeOne(ctx context.Context, urlStr string) (*models.AnalysisResult, error) {
	rawHTML, err := a.fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return nil, &analyzer.AnalysisError{URL: urlStr, Err: err}
	}

	if a.config.Logic.Preview {
		a.logPreview(urlStr, rawHTML)
	}

	return a.analyzer.AnalyzeHTML(urlStr, rawHTML)
}

func (a *AnalyzerApp) printResult(result *models.AnalysisResult) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// logPreview shows the readable article view next to the score output.
func (a *AnalyzerApp) logPreview(urlStr, rawHTML string) {
	pageURL, err := url.Parse(urlStr)
	if err != nil {
		return
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		a.log.Debugf("Preview extraction failed for %s: %v", urlStr, err)
		return
	}

	a.log.Infof("📰 %s: %s", article.Title, article.Excerpt)
}
