package app

import (
	"context"
	"fmt"

	"bubble/internal/config"
	"bubble/internal/costtracker"
	"bubble/internal/inputprocessor"
	"bubble/internal/keywords"
	"bubble/internal/services"
	"bubble/internal/store"
	"bubble/internal/store/local"
	"bubble/internal/store/primary"
	"bubble/internal/taxonomy"
	"bubble/internal/worker"
	"bubble/pkg/augmenter"

	log "github.com/sirupsen/logrus"
)

// App holds every long-lived component. Store and JobClient are nil when
// history or background jobs are not configured.
type App struct {
	Config *config.Config

	Taxonomy       *taxonomy.Taxonomy
	Randomizer     *taxonomy.Randomizer
	Extractor      *keywords.Extractor
	InputProcessor inputprocessor.Processor

	Store       store.Store
	JobClient   store.JobClient
	CostTracker *costtracker.Tracker

	Completer augmenter.Completer
	Augmenter augmenter.Augmenter

	StudyComposer     *services.StudyComposer
	BriefComposer     *services.BriefComposer
	SuggestionService *services.SuggestionService
	CostService       *services.CostService
}

func NewApp(ctx context.Context, cfg *config.Config, inputProc inputprocessor.Processor) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := ConfigureLogging(cfg); err != nil {
		return nil, err
	}
	if inputProc == nil {
		inputProc = inputprocessor.New()
	}
	app := &App{Config: cfg, InputProcessor: inputProc}

	if err := app.initTaxonomy(); err != nil {
		return nil, err
	}
	if err := app.initExtractor(); err != nil {
		return nil, err
	}
	if err := app.initStore(ctx); err != nil {
		return nil, err
	}
	if err := app.initJobClient(); err != nil {
		app.Close()
		return nil, err
	}
	if err := app.initAugmenter(ctx); err != nil {
		app.Close()
		return nil, err
	}
	app.initServices()

	log.Debug("Application initialization complete.")
	return app, nil
}

// --- Private Helper Methods ---

func (a *App) initTaxonomy() error {
	tax, err := taxonomy.LoadFile(a.Config.Taxonomy.Path)
	if err != nil {
		return fmt.Errorf("init taxonomy: %w", err)
	}
	a.Taxonomy = tax
	a.Randomizer = taxonomy.NewRandomizer(tax)
	log.Debugf("Loaded taxonomy with %d categories in %d groups", tax.Len(), len(tax.Groups()))
	return nil
}

func (a *App) initExtractor() error {
	ex, err := keywords.NewExtractor(a.Config.Keywords.MaxKeywords, a.Config.Keywords.MaxNgram)
	if err != nil {
		return fmt.Errorf("init keyword extractor: %w", err)
	}
	a.Extractor = ex
	return nil
}

func (a *App) initStore(ctx context.Context) error {
	driver, target, err := config.ParseDSN(a.Config.Database.DSN)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	switch driver {
	case config.DriverPostgres:
		ps, err := primary.NewPrimaryStore(ctx, target)
		if err != nil {
			return fmt.Errorf("init primary store: %w", err)
		}
		a.Store = ps
	case config.DriverSQLite:
		ls, err := local.Open(ctx, target)
		if err != nil {
			return fmt.Errorf("init sqlite store: %w", err)
		}
		a.Store = ls
	default:
		log.Debug("No database configured; history and cost tracking are disabled.")
	}

	a.CostTracker = costtracker.New(a.Store, a.Config.Pricing)
	return nil
}

func (a *App) initJobClient() error {
	if a.Config.Redis.Address == "" {
		return nil
	}
	jc, err := store.NewAsynqJobClient(worker.RedisClientOpt(a.Config), store.DefaultRetention)
	if err != nil {
		return fmt.Errorf("init job client: %w", err)
	}
	a.JobClient = jc
	return nil
}

func (a *App) initAugmenter(ctx context.Context) error {
	cfg := a.Config.Augmenter
	switch cfg.Provider {
	case "openai":
		a.Completer = augmenter.NewOpenAICompleter(augmenter.OpenAIOptions{
			BaseURL:     cfg.BaseURL,
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
	case "gemini":
		gc, err := augmenter.NewGeminiCompleter(ctx, augmenter.GeminiOptions{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
		if err != nil {
			return fmt.Errorf("init gemini augmenter: %w", err)
		}
		a.Completer = gc
	default:
		a.Augmenter = augmenter.Noop{}
		log.Debug("Augmenter provider is none; composing heuristically.")
		return nil
	}

	template, err := config.LoadPromptContent(cfg.PromptTemplate)
	if err != nil {
		return fmt.Errorf("init augmenter prompt: %w", err)
	}
	a.Augmenter = augmenter.NewLLMAugmenter(a.Completer, template, a.CostTracker)
	return nil
}

func (a *App) initServices() {
	a.StudyComposer = services.NewStudyComposer(a.Taxonomy, a.Extractor, a.Augmenter)
	a.BriefComposer = services.NewBriefComposer(a.Taxonomy, a.Extractor, a.Augmenter)
	a.SuggestionService = services.NewSuggestionService(a.StudyComposer, a.BriefComposer, a.Store)
	a.CostService = services.NewCostService(a.Store)
}

// Close releases the store, job client and model client.
func (a *App) Close() {
	if a.JobClient != nil {
		if err := a.JobClient.Close(); err != nil {
			log.Warnf("Error closing job client: %v", err)
		}
	}
	if a.Store != nil {
		a.Store.Close()
	}
	if c, ok := a.Completer.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			log.Warnf("Error closing augmenter backend: %v", err)
		}
	}
}
