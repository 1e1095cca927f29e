package tracker

import (
	"context"
	"log/slog"

	"electiontracker/lib/elections"
	"electiontracker/lib/scrapers/ballotpedia"
)

// Service ties the scraper and the record store together. One process is
// assumed to own the store at a time, the whole pipeline is sequential.
type Service struct {
	cfg      Config
	store    *elections.Store
	client   *ballotpedia.Client
	partisan PartisanSource
}

func NewService(cfg Config) *Service {
	return &Service{
		cfg:    cfg,
		store:  elections.NewStore(cfg.DataDir),
		client: ballotpedia.NewClient(cfg.Scrape.clientOptions()),
	}
}

func (s *Service) Store() *elections.Store {
	return s.store
}

type ScrapeReport struct {
	Records           []elections.Election
	PagesScraped      int
	PagesFailed       int
	DuplicatesRemoved int
}

// RunScrape drives the (year, state, office page) matrix sequentially,
// persists the accumulated batch and deduplicates the store. Page-level
// failures are logged and counted but never abort the remaining matrix,
// only persistence failures and context cancellation do.
func (s *Service) RunScrape(ctx context.Context, states []string, years []int) (ScrapeReport, error) {
	if len(states) == 0 {
		states = s.cfg.States
	}
	if len(years) == 0 {
		years = s.cfg.Years
	}

	slog.InfoContext(ctx, "starting scrape", "states", len(states), "years", len(years))

	report := ScrapeReport{}
	for _, year := range years {
		for _, state := range states {
			for _, page := range ballotpedia.OfficePages {
				if ctx.Err() != nil {
					return report, ctx.Err()
				}

				records, err := s.client.OfficeElections(ctx, state, page, year)
				report.PagesScraped++
				if err != nil {
					report.PagesFailed++
					slog.WarnContext(ctx, "page scrape failed",
						"state", state, "office", page.Office, "year", year, "err", err)
				} else {
					slog.DebugContext(ctx, "page scraped",
						"state", state, "office", page.Office, "year", year, "records", len(records))
					report.Records = append(report.Records, records...)
				}

				err = s.client.Sleep(ctx)
				if err != nil {
					return report, err
				}
			}
		}
	}

	report.Records = s.EnrichPartisanLean(ctx, report.Records)

	if len(report.Records) > 0 {
		err := s.store.AddBatch(ctx, report.Records)
		if err != nil {
			return report, err
		}
		removed, err := s.store.RemoveDuplicates(ctx)
		if err != nil {
			return report, err
		}
		report.DuplicatesRemoved = removed
	}

	slog.InfoContext(ctx, "scrape finished",
		"records", len(report.Records),
		"pages_failed", report.PagesFailed,
		"duplicates_removed", report.DuplicatesRemoved)
	return report, nil
}

func (s *Service) LoadAll() ([]elections.Election, error) {
	return s.store.Load()
}

func (s *Service) Query(f elections.Filters) ([]elections.Election, error) {
	records, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return elections.Query(records, f), nil
}

func (s *Service) Statistics() (elections.Statistics, error) {
	records, err := s.store.Load()
	if err != nil {
		return elections.Statistics{}, err
	}
	return elections.ComputeStatistics(records), nil
}

func (s *Service) StateBreakdown() ([]elections.StateSummary, error) {
	records, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return elections.StateBreakdown(records), nil
}

func (s *Service) AddBatch(ctx context.Context, records []elections.Election) error {
	return s.store.AddBatch(ctx, records)
}

func (s *Service) RemoveDuplicates(ctx context.Context) (int, error) {
	return s.store.RemoveDuplicates(ctx)
}
