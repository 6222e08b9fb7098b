// Package pipeline sequences the four batch stages: extract, load, report,
// notify. The first unrecovered failure aborts the run with a stage-labeled
// error; prior stages are not rolled back.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"jobsweep/config"
	"jobsweep/errors"
	"jobsweep/logger"
	"jobsweep/notify"
	"jobsweep/report"
	"jobsweep/store"
	"jobsweep/usajobs"
)

// Pipeline wires the pipeline components for one run
type Pipeline struct {
	cfg     *config.Config
	client  *usajobs.Client
	store   *store.Store
	reports *report.Engine
	mailer  *notify.Mailer
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// New builds a pipeline from configuration
func New(cfg *config.Config) *Pipeline {
	st := store.New(cfg.Storage.Path)
	return &Pipeline{
		cfg:     cfg,
		client:  usajobs.NewClient(cfg.API),
		store:   st,
		reports: report.NewEngine(st, cfg.Reports.ExportsDir),
		mailer:  notify.NewMailer(cfg.SMTP),
		logger:  logger.ComponentLogger("pipeline"),
		now:     time.Now,
	}
}

// Run executes the full pipeline once. A successful load followed by a later
// failure leaves the store updated and produces no email; that is intended.
func (p *Pipeline) Run(ctx context.Context) error {
	positions, err := p.extract(ctx)
	if err != nil {
		return errors.Wrap(err, "extract stage")
	}

	if err := p.load(positions); err != nil {
		return errors.Wrap(err, "load stage")
	}

	runDir, err := p.report()
	if err != nil {
		return errors.Wrap(err, "report stage")
	}

	if err := p.notify(runDir); err != nil {
		return errors.Wrap(err, "notify stage")
	}

	p.logger.Infow("Pipeline complete")
	return nil
}

func (p *Pipeline) extract(ctx context.Context) ([]usajobs.Position, error) {
	p.logger.Infow("Extracting job data from API",
		"titles", p.cfg.Search.Titles,
		"keywords", p.cfg.Search.Keywords,
	)

	titlesDoc, err := p.client.SearchTitles(ctx, p.cfg.Search.Titles)
	if err != nil {
		return nil, err
	}
	keywordsDoc, err := p.client.SearchKeywords(ctx, p.cfg.Search.Keywords)
	if err != nil {
		return nil, err
	}

	titlePositions, titleMalformed, err := usajobs.Parse(titlesDoc)
	if err != nil {
		return nil, err
	}
	keywordPositions, keywordMalformed, err := usajobs.Parse(keywordsDoc)
	if err != nil {
		return nil, err
	}

	if malformed := titleMalformed + keywordMalformed; malformed > 0 {
		p.logger.Warnw("Skipped malformed records during extraction",
			"malformed_count", malformed,
		)
	}

	positions := usajobs.Merge(titlePositions, keywordPositions)
	p.logger.Infow("Extraction complete",
		"title_count", len(titlePositions),
		"keyword_count", len(keywordPositions),
		"merged_count", len(positions),
	)
	return positions, nil
}

func (p *Pipeline) load(positions []usajobs.Position) error {
	p.logger.Infow("Loading positions into database", "path", p.store.Path())

	if err := p.store.EnsureSchema(); err != nil {
		return err
	}
	if err := p.store.Upsert(positions); err != nil {
		return err
	}

	p.logger.Infow("Data load complete", "count", len(positions))
	return nil
}

func (p *Pipeline) report() (string, error) {
	p.logger.Infow("Running analysis reports")

	runDir, written, err := p.reports.Run(p.now())
	if err != nil {
		return "", err
	}

	p.logger.Infow("Analysis complete",
		"run_dir", runDir,
		"reports", len(written),
	)
	return runDir, nil
}

func (p *Pipeline) notify(runDir string) error {
	p.logger.Infow("Sending reports email", "run_dir", runDir)

	if err := p.mailer.Send(runDir, p.now()); err != nil {
		return err
	}

	p.logger.Infow("Reports email sent", "recipient", p.cfg.SMTP.Recipient)
	return nil
}
