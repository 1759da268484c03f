package dataset

// loader.go fetches and parses dataset CSV files.
//
// Each dataset has an ordered list of candidate locations. Candidates are
// tried in sequence; a network error, non-2xx status, parse failure, or an
// empty result moves on to the next candidate. The first candidate yielding
// at least one row wins. A dataset load fails only when every candidate
// fails, and that failure aborts startup entirely.

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jaeyk/wop-organizations-map/internal/logging"
	"github.com/jaeyk/wop-organizations-map/internal/metrics"
)

// Loader fetches dataset CSV files over HTTP and normalizes their rows.
type Loader struct {
	client  *http.Client
	baseURL string
}

// NewLoader creates a Loader. Relative candidate paths are resolved against
// baseURL; absolute candidates are fetched as-is.
func NewLoader(client *http.Client, baseURL string) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// LoadAll loads every configured dataset in parallel and joins the results.
// The join is all-or-nothing: if any dataset exhausts its candidates, the
// whole load fails.
func (l *Loader) LoadAll(ctx context.Context, cfgs []Config) (map[string][]Record, error) {
	results := make([][]Record, len(cfgs))

	g, ctx := errgroup.WithContext(ctx)
	for i, cfg := range cfgs {
		i, cfg := i, cfg
		g.Go(func() error {
			rows, err := l.Load(ctx, cfg)
			if err != nil {
				return fmt.Errorf("dataset %s: %w", cfg.Key, err)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byKey := make(map[string][]Record, len(cfgs))
	for i, cfg := range cfgs {
		byKey[cfg.Key] = results[i]
	}
	return byKey, nil
}

// Load tries each candidate in order and returns the normalized rows from
// the first candidate that succeeds with at least one row.
func (l *Loader) Load(ctx context.Context, cfg Config) ([]Record, error) {
	logger := logging.WithFields(ctx, "dataset", cfg.Key)

	var candidateErrs []error
	for _, candidate := range cfg.Candidates {
		rows, err := l.loadCandidate(ctx, cfg, candidate)
		if err != nil {
			logger.Warn("candidate failed", "candidate", candidate, "error", err)
			metrics.CandidateFailures.WithLabelValues(cfg.Key).Inc()
			candidateErrs = append(candidateErrs, fmt.Errorf("%s: %w", candidate, err))
			continue
		}

		logger.Info("dataset loaded", "candidate", candidate, "rows", len(rows))
		metrics.DatasetRows.WithLabelValues(cfg.Key).Set(float64(len(rows)))
		return rows, nil
	}

	return nil, fmt.Errorf("all %d candidates failed: %w", len(cfg.Candidates), errors.Join(candidateErrs...))
}

// loadCandidate fetches, parses, and normalizes a single candidate.
// An empty result (header only, or no parseable rows) is an error so the
// caller moves on to the next candidate.
func (l *Loader) loadCandidate(ctx context.Context, cfg Config, candidate string) ([]Record, error) {
	body, err := l.fetch(ctx, candidate)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	raws, err := ParseCSV(body)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(raws) == 0 {
		return nil, errors.New("no data rows")
	}

	rows := make([]Record, len(raws))
	for i, raw := range raws {
		rows[i] = Normalize(cfg, raw)
	}
	return rows, nil
}

// fetch performs a single HTTP GET for a candidate path.
func (l *Loader) fetch(ctx context.Context, candidate string) (io.ReadCloser, error) {
	url := candidate
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		url = l.baseURL + "/" + strings.TrimPrefix(candidate, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// ParseCSV reads header-keyed CSV rows from r. Header names are lowercased
// for case-insensitive column matching, ragged rows are tolerated, and fully
// empty rows are skipped.
func ParseCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.ToLower(clean(h))
	}

	var raws []RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		empty := true
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		raw := make(RawRecord, len(keys))
		for i, key := range keys {
			if key == "" || i >= len(row) {
				continue
			}
			raw[key] = row[i]
		}
		raws = append(raws, raw)
	}

	return raws, nil
}
