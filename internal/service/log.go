package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/metrics"
	"github.com/Egor213/LogiDash/internal/repo"
	"github.com/Egor213/LogiDash/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type LogService struct {
	logRepo  repo.Log
	counters *metrics.Counters
	now      func() time.Time
}

func NewLogService(lr repo.Log, cnt *metrics.Counters, now func() time.Time) *LogService {
	if now == nil {
		now = time.Now
	}
	return &LogService{
		logRepo:  lr,
		counters: cnt,
		now:      now,
	}
}

func (s *LogService) Ingest(ctx context.Context, appID uuid.UUID, in domain.LogInput) (domain.Log, error) {
	if strings.TrimSpace(in.Message) == "" {
		return domain.Log{}, fmt.Errorf("%w: message is required", ErrValidation)
	}

	level := strings.ToLower(in.Level)
	if level == "" {
		level = domain.LogLevelInfo
	}
	if !slices.Contains(domain.LogLevels, level) {
		return domain.Log{}, fmt.Errorf("%w: level must be one of %s", ErrValidation, strings.Join(domain.LogLevels, ", "))
	}

	entry := domain.Log{
		AppID:     appID,
		Source:    in.Source,
		Level:     level,
		Message:   in.Message,
		Timestamp: s.now().UTC(),
	}
	if in.Timestamp != nil {
		entry.Timestamp = in.Timestamp.UTC()
	}

	if err := s.logRepo.CreateLog(ctx, &entry); err != nil {
		return domain.Log{}, fmt.Errorf("%w: %w", ErrCannotCreateLog, err)
	}

	s.counters.LogsIngested.Inc(entry.Level)
	return entry, nil
}

func (s *LogService) List(ctx context.Context, userID uuid.UUID, q domain.LogQuery) (domain.Page[domain.Log], error) {
	page, limit, err := normalizePaging(q.Page, q.Limit)
	if err != nil {
		return domain.Page[domain.Log]{}, err
	}

	filter := repotypes.LogFilter{
		UserID: userID,
		AppID:  q.AppID,
		Source: q.Source,
		Level:  strings.ToLower(q.Level),
		Limit:  limit,
		Offset: domain.Offset(page, limit),
	}

	var (
		logs  []domain.Log
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.logRepo.GetLogs(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.logRepo.CountLogs(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Page[domain.Log]{}, errorsUtils.WrapPathErr(err)
	}

	if logs == nil {
		logs = []domain.Log{}
	}
	return domain.Page[domain.Log]{
		Data:       logs,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}
