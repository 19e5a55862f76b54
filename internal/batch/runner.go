package batch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/phone-discovery/internal/model"
)

// DefaultDelay is the pause between successive service calls.
const DefaultDelay = 2 * time.Second

// Row is one line of batch output.
type Row struct {
	Name       string
	District   string
	Email      string
	Phone      string
	Confidence float64
	Source     string
	Status     model.Status
	Err        string
}

// Summary counts rows by status.
type Summary struct {
	Total    int
	Found    int
	NotFound int
	Errors   int
}

func (s *Summary) add(st model.Status) {
	s.Total++
	switch st {
	case model.StatusFound:
		s.Found++
	case model.StatusNotFound:
		s.NotFound++
	default:
		s.Errors++
	}
}

// Runner drives records through a Discoverer one at a time.
type Runner struct {
	discoverer Discoverer
	delay      time.Duration
	log        *zap.Logger
}

// NewRunner waits delay after each completed call before starting the next.
// A zero delay disables pacing.
func NewRunner(d Discoverer, delay time.Duration) *Runner {
	return &Runner{
		discoverer: d,
		delay:      delay,
		log:        zap.L().With(zap.String("component", "batch")),
	}
}

// pause blocks for the configured delay or until ctx is done.
func (r *Runner) pause(ctx context.Context) error {
	if r.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(r.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Run processes records in order and returns one row per record. A failed
// service call yields a row with status error. Run stops early only when
// ctx is cancelled, returning the rows completed so far.
func (r *Runner) Run(ctx context.Context, records []Record) ([]Row, Summary, error) {
	rows := make([]Row, 0, len(records))
	var sum Summary

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return rows, sum, err
		}
		if i > 0 {
			if err := r.pause(ctx); err != nil {
				return rows, sum, err
			}
		}

		r.log.Info("searching",
			zap.Int("index", i+1),
			zap.Int("total", len(records)),
			zap.String("ngo_name", rec.Name),
			zap.String("district", rec.District),
		)

		row := Row{Name: rec.Name, District: rec.District, Email: rec.Email}
		res, err := r.discoverer.Discover(ctx, rec)
		if err != nil {
			if ctx.Err() != nil {
				return rows, sum, ctx.Err()
			}
			r.log.Warn("discovery call failed", zap.String("ngo_name", rec.Name), zap.Error(err))
			row.Status = model.StatusError
			row.Err = err.Error()
		} else {
			row.Phone = res.PhoneValue()
			row.Confidence = res.Confidence
			row.Source = res.SourceValue()
			row.Status = res.Status
		}

		rows = append(rows, row)
		sum.add(row.Status)
	}

	r.log.Info("batch complete",
		zap.Int("total", sum.Total),
		zap.Int("found", sum.Found),
		zap.Int("not_found", sum.NotFound),
		zap.Int("errors", sum.Errors),
	)
	return rows, sum, nil
}
