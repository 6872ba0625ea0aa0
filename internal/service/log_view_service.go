package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"masalog-backend/config"
	"masalog-backend/internal/dto"
	"masalog-backend/internal/filter"
	"masalog-backend/internal/model"
	"masalog-backend/internal/query"
	"masalog-backend/internal/store"
)

// LogViewService renders the current view of the result set: active filters,
// then the time bound, then sort, then one page. Filtering, sorting and
// pagination are pure passes over a snapshot; only the view state in the
// store mutates.
type LogViewService interface {
	// View renders the given 1-based page (clamped) and remembers it as
	// the current page. page <= 0 renders the remembered page.
	View(page int) dto.LogPageResponse
	SetSortOrder(order query.SortOrder)
	SetTimeFilter(tf filter.TimeFilter)
	// FilteredRecords is the full filtered+sorted sequence, as exported.
	FilteredRecords() []model.LogRecord
}

type logViewService struct {
	store    *store.ResultStore
	loc      *time.Location
	pageSize int
}

func NewLogViewService(cfg *config.Config, resultStore *store.ResultStore, loc *time.Location) LogViewService {
	pageSize := cfg.Viewer.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &logViewService{
		store:    resultStore,
		loc:      loc,
		pageSize: pageSize,
	}
}

func (s *logViewService) FilteredRecords() []model.LogRecord {
	records := filter.Apply(s.store.Snapshot(), s.store.ActiveConditions())
	records = filter.ApplyTime(records, s.store.TimeFilter(), s.loc)
	return query.Sort(records, s.store.SortOrder())
}

func (s *logViewService) View(page int) dto.LogPageResponse {
	active := s.store.ActiveConditions()
	filtered := s.FilteredRecords()

	if page <= 0 {
		page = s.store.Page()
	}
	page = query.ClampPage(page, len(filtered), s.pageSize)
	s.store.SetPage(page)

	pageRecords := query.Paginate(filtered, s.pageSize, page)
	views := make([]dto.RecordView, 0, len(pageRecords))
	for _, rec := range pageRecords {
		views = append(views, renderRecord(rec, active))
	}

	log.Debug().
		Int("total", len(filtered)).
		Int("page", page).
		Int("page_size", s.pageSize).
		Msg("Rendered log view page")

	return dto.LogPageResponse{
		Records:    views,
		TotalCount: len(filtered),
		Page:       page,
		TotalPages: query.TotalPages(len(filtered), s.pageSize),
		PageSize:   s.pageSize,
		SortOrder:  string(s.store.SortOrder()),
	}
}

func (s *logViewService) SetSortOrder(order query.SortOrder) {
	s.store.SetSortOrder(order)
}

func (s *logViewService) SetTimeFilter(tf filter.TimeFilter) {
	s.store.SetTimeFilter(tf)
}

// renderRecord attaches per-field highlight info. The highlight compares
// against the display value (raw otd wins), recomputed with the same
// matcher the engine uses.
func renderRecord(rec model.LogRecord, active []filter.Condition) dto.RecordView {
	fields := make([]dto.FieldView, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		display := rec.FieldValue(f.Key)
		view := dto.FieldView{Key: f.Key, Value: display}
		if cond, ok := filter.MatchingCondition(active, f.Key, display); ok {
			view.Matched = true
			view.Fuzzy = cond.Fuzzy
			view.Include = cond.Include
			id := cond.ID
			view.ConditionID = &id
		}
		fields = append(fields, view)
	}
	return dto.RecordView{
		Timestamp: rec.Timestamp,
		Fields:    fields,
		UserAgent: rec.UserAgent,
		IPAddress: rec.IPAddress,
	}
}
