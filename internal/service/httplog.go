package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Egor213/LogiDash/internal/broker"
	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/metrics"
	"github.com/Egor213/LogiDash/internal/repo"
	"github.com/Egor213/LogiDash/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	HourBucketCount = 24
	DefaultLimit    = 10
	MaxLimit        = 100
)

type HttpLogServiceDeps struct {
	Repo     repo.HttpLog
	Owner    *ownership
	Counters *metrics.Counters
	Producer broker.Producer
	Location *time.Location
	Now      func() time.Time
}

type HttpLogService struct {
	httpLogRepo    repo.HttpLog
	owner          *ownership
	counters       *metrics.Counters
	brokerProducer broker.Producer
	location       *time.Location
	now            func() time.Time
}

func NewHttpLogService(deps HttpLogServiceDeps) *HttpLogService {
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Producer == nil {
		deps.Producer = broker.NoopProducer{}
	}
	return &HttpLogService{
		httpLogRepo:    deps.Repo,
		owner:          deps.Owner,
		counters:       deps.Counters,
		brokerProducer: deps.Producer,
		location:       deps.Location,
		now:            deps.Now,
	}
}

// Ingest stores one event for appID. Any app id carried by the client is not
// part of in and never reaches storage.
func (s *HttpLogService) Ingest(ctx context.Context, appID uuid.UUID, in domain.HttpLogInput) (domain.HttpLog, error) {
	response, cut, err := TruncateResponse(in.Response)
	if err != nil {
		return domain.HttpLog{}, fmt.Errorf("%w: %v", ErrCannotParseResponse, err)
	}
	if cut {
		s.counters.ResponsesTruncated.Inc(responseKind(in.Response))
	}

	entry := domain.HttpLog{
		AppID:      appID,
		Source:     in.Source,
		Method:     in.Method,
		URL:        in.URL,
		StatusCode: in.StatusCode,
		Response:   response,
		IP:         in.IP,
		UserAgent:  in.UserAgent,
		Timestamp:  s.now().UTC(),
	}
	if in.Timestamp != nil {
		entry.Timestamp = in.Timestamp.UTC()
	}

	for _, f := range []struct {
		dst *string
		raw []byte
	}{
		{&entry.Headers, in.Headers},
		{&entry.Params, in.Params},
		{&entry.Query, in.Query},
		{&entry.Body, in.Body},
	} {
		v, err := NormalizeJSON(f.raw)
		if err != nil {
			return domain.HttpLog{}, fmt.Errorf("%w: %v", ErrCannotParseResponse, err)
		}
		if v != nil {
			*f.dst = *v
		}
	}

	if err := s.httpLogRepo.CreateHttpLog(ctx, &entry); err != nil {
		return domain.HttpLog{}, fmt.Errorf("%w: %w", ErrCannotCreateHttpLog, err)
	}

	s.counters.HttpLogsIngested.Inc(entry.Method, metrics.StatusClass(entry.StatusCode))
	s.publish(ctx, entry)

	return entry, nil
}

// publish is best effort: the row is already stored.
func (s *HttpLogService) publish(ctx context.Context, entry domain.HttpLog) {
	payload, err := json.Marshal(entry)
	if err != nil {
		log.WithField("http_log_id", entry.ID).Errorf("Failed to encode http log: %v", err)
		s.counters.BrokerMessages.Inc("failed")
		return
	}

	if err := s.brokerProducer.SendMessage(ctx, []byte(entry.AppID.String()), payload); err != nil {
		log.WithFields(log.Fields{
			"http_log_id": entry.ID,
			"app_id":      entry.AppID,
		}).Warnf("Failed to publish http log: %v", err)
		s.counters.BrokerMessages.Inc("failed")
		return
	}
	s.counters.BrokerMessages.Inc("sent")
}

// List returns one page of the user's logs. The page and the count run concurrently.
func (s *HttpLogService) List(ctx context.Context, userID uuid.UUID, q domain.HttpLogQuery) (domain.Page[domain.HttpLog], error) {
	page, limit, err := normalizePaging(q.Page, q.Limit)
	if err != nil {
		return domain.Page[domain.HttpLog]{}, err
	}

	filter := repotypes.HttpLogFilter{
		UserID:     userID,
		AppID:      q.AppID,
		Source:     q.Source,
		Method:     q.Method,
		URL:        q.URL,
		StatusCode: q.StatusCode,
		From:       q.StartDate,
		To:         q.EndDate,
		Limit:      limit,
		Offset:     domain.Offset(page, limit),
	}

	var (
		logs  []domain.HttpLog
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.httpLogRepo.GetHttpLogs(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.httpLogRepo.CountHttpLogs(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Page[domain.HttpLog]{}, errorsUtils.WrapPathErr(err)
	}

	if logs == nil {
		logs = []domain.HttpLog{}
	}
	return domain.Page[domain.HttpLog]{
		Data:       logs,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

// DeleteAll wipes every http log regardless of owner. Admin only.
func (s *HttpLogService) DeleteAll(ctx context.Context, user domain.User) (int64, error) {
	if !user.IsAdmin() {
		return 0, ErrForbidden
	}

	n, err := s.httpLogRepo.DeleteAllHttpLogs(ctx)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	log.WithFields(log.Fields{"user_id": user.ID, "deleted": n}).Warn("All http logs deleted")
	return n, nil
}

// HourlyStats returns 24 hour buckets ending at the current hour, oldest first.
// Zero from/to default to [now-24h, now).
func (s *HttpLogService) HourlyStats(ctx context.Context, userID, appID uuid.UUID, from, to time.Time) ([]domain.HourBucket, error) {
	if _, err := s.owner.ownedApp(ctx, userID, appID); err != nil {
		return nil, err
	}

	now := s.now()
	if to.IsZero() {
		to = now
	}
	if from.IsZero() {
		from = now.Add(-HourBucketCount * time.Hour)
	}
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: from must be before to", ErrValidation)
	}

	window := repotypes.HourWindow{
		AppID:    appID,
		From:     from,
		To:       to,
		Location: s.location.String(),
	}
	errWindow := window
	errWindow.ErrorsOnly = true

	var totals, errs []domain.HourCount
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.httpLogRepo.CountByHour(gctx, window)
		return err
	})
	g.Go(func() error {
		var err error
		errs, err = s.httpLogRepo.CountByHour(gctx, errWindow)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return FillHourBuckets(now.In(s.location), totals, errs), nil
}

// FillHourBuckets builds the 24 buckets ending at the hour of now, oldest first.
// Counts are keyed by wall clock; rows outside the buckets are dropped.
func FillHourBuckets(now time.Time, totals, errs []domain.HourCount) []domain.HourBucket {
	buckets := make([]domain.HourBucket, HourBucketCount)
	index := make(map[string]int, HourBucketCount)
	for i := 0; i < HourBucketCount; i++ {
		key := now.Add(-time.Duration(HourBucketCount-1-i) * time.Hour).Format(domain.HourBucketLayout)
		buckets[i] = domain.HourBucket{Hour: key}
		index[key] = i
	}

	for _, c := range totals {
		if i, ok := index[c.Hour.Format(domain.HourBucketLayout)]; ok {
			buckets[i].Total += c.Count
		}
	}
	for _, c := range errs {
		if i, ok := index[c.Hour.Format(domain.HourBucketLayout)]; ok {
			buckets[i].Errors += c.Count
		}
	}
	return buckets
}

// TimeframeStats counts success and failure over the last hour, day and
// calendar month. The three queries run concurrently.
func (s *HttpLogService) TimeframeStats(ctx context.Context, userID, appID uuid.UUID) (domain.TimeframeStats, error) {
	if _, err := s.owner.ownedApp(ctx, userID, appID); err != nil {
		return domain.TimeframeStats{}, err
	}

	now := s.now()
	var stats domain.TimeframeStats
	frames := []struct {
		since time.Time
		dst   *domain.TimeframeStat
	}{
		{now.Add(-time.Hour), &stats.Hour},
		{now.Add(-24 * time.Hour), &stats.Day},
		{now.AddDate(0, -1, 0), &stats.Month},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range frames {
		f := f
		g.Go(func() error {
			counts, err := s.httpLogRepo.CountByStatusCode(gctx, appID, f.since)
			if err != nil {
				return err
			}
			*f.dst = SummarizeStatuses(counts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.TimeframeStats{}, errorsUtils.WrapPathErr(err)
	}
	return stats, nil
}

// SummarizeStatuses folds status counts: success is 200..399, everything else failed.
func SummarizeStatuses(counts []domain.StatusCount) domain.TimeframeStat {
	var st domain.TimeframeStat
	for _, c := range counts {
		st.Total += c.Count
		if domain.IsSuccessStatus(c.StatusCode) {
			st.Success += c.Count
		}
	}
	st.Failed = st.Total - st.Success
	return st
}

func normalizePaging(page, limit int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be at least 1", ErrValidation)
	}
	if limit < 1 {
		return 0, 0, fmt.Errorf("%w: limit must be at least 1", ErrValidation)
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit, nil
}

func responseKind(raw []byte) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "unknown"
	}
	switch v.(type) {
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return "other"
	}
}
