package service

import (
	"errors"
	"fmt"
	"time"

	"moim/cmd/internal/domain/entity"
	"moim/cmd/internal/recurrence"
	"moim/cmd/internal/utils"
	"moim/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// Edit and delete scopes. Single-occurrence edits secede the occurrence from
// its series for good; series and thisAndFuture require one.
const (
	ScopeSingle        = "single"
	ScopeSeries        = "series"
	ScopeThisAndFuture = "thisAndFuture"
)

// errRollback aborts a transaction once the apierr to report has been set.
var errRollback = errors.New("rollback")

// errBadRule marks an expansion failure inside a series create.
var errBadRule = errors.New("unparseable recurrence rule")

type EventRepository interface {
	FindOwned(tx *gorm.DB, id, userID int) (*entity.Event, error)
	FindByUserID(tx *gorm.DB, userID int) ([]*entity.Event, error)
	FindBySeriesID(tx *gorm.DB, seriesID int) ([]*entity.Event, error)
	Save(tx *gorm.DB, event *entity.Event) error
	UpdateVersioned(tx *gorm.DB, id, userID, version int, changes map[string]any) (int64, error)
	UpdateSiblings(tx *gorm.DB, seriesID, userID, exceptID int, changes map[string]any) error
	SoftDelete(tx *gorm.DB, event *entity.Event) error
	SoftDeleteBySeriesID(tx *gorm.DB, seriesID, userID int) error
	SoftDeleteBySeriesFrom(tx *gorm.DB, seriesID, userID int, from time.Time) error
}

type RecurringEventRepository interface {
	FindOwned(tx *gorm.DB, id, userID int) (*entity.RecurringEvent, error)
	Save(tx *gorm.DB, series *entity.RecurringEvent) error
	UpdateVersioned(tx *gorm.DB, id, userID, version int, changes map[string]any) (int64, error)
	SoftDelete(tx *gorm.DB, series *entity.RecurringEvent) error
}

type LocationResolver interface {
	CreateLocationIfNeeded(tx *gorm.DB, req *LocationRequest) (*int, error)
}

type RecurringRuleRequest struct {
	Rule      string  `json:"rule" validate:"required,rrule"`
	StartDate string  `json:"start_date" validate:"required,dateonly"`
	EndDate   *string `json:"end_date" validate:"omitempty,dateonly"`
}

type CreateEventRequest struct {
	Title       string                `json:"title" validate:"required,max=128"`
	Description *string               `json:"description" validate:"omitempty,max=1000"`
	StartTime   string                `json:"start_time" validate:"required,wallclock"`
	EndTime     string                `json:"end_time" validate:"required,wallclock"`
	IsAllDay    bool                  `json:"is_all_day"`
	ColorCode   string                `json:"color_code" validate:"required,hexcolor"`
	Location    *LocationRequest      `json:"location"`
	Recurring   *RecurringRuleRequest `json:"recurring"`
}

type UpdateEventRequest struct {
	Scope           string                `json:"scope" validate:"required,oneof=single series thisAndFuture"`
	ExpectedVersion int                   `json:"expected_version" validate:"required,min=1"`
	Title           string                `json:"title" validate:"required,max=128"`
	Description     *string               `json:"description" validate:"omitempty,max=1000"`
	StartTime       string                `json:"start_time" validate:"required,wallclock"`
	EndTime         string                `json:"end_time" validate:"required,wallclock"`
	IsAllDay        bool                  `json:"is_all_day"`
	ColorCode       string                `json:"color_code" validate:"required,hexcolor"`
	Location        *LocationRequest      `json:"location"`
	Recurring       *RecurringRuleRequest `json:"recurring"`
	// DropRecurring removes the repetition rule on a series-scoped edit,
	// which dissolves the whole series rather than leaving a rule-less one.
	DropRecurring bool `json:"drop_recurring"`
}

type RecurringSummary struct {
	ID        int    `json:"id"`
	Rule      string `json:"rule,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Version   int    `json:"version,omitempty"`
}

type EventResponse struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	StartTime   string            `json:"start_time"`
	EndTime     string            `json:"end_time"`
	IsAllDay    bool              `json:"is_all_day"`
	ColorCode   string            `json:"color_code"`
	Version     int               `json:"version"`
	UserID      int               `json:"user_id"`
	Location    *LocationResponse `json:"location,omitempty"`
	Recurring   *RecurringSummary `json:"recurring,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

type UpdateEventResponse struct {
	Events []*EventResponse `json:"events"`
}

// eventTemplate is the validated, parsed form of a request's shared fields.
type eventTemplate struct {
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	IsAllDay    bool
	ColorCode   string
}

type DefaultEventService struct {
	DB         *gorm.DB
	EventRepo  EventRepository
	SeriesRepo RecurringEventRepository
	Locations  LocationResolver
	Validate   *validator.Validate
	Windows    recurrence.WindowPolicy
}

func NewEventService(db *gorm.DB, eventRepo EventRepository, seriesRepo RecurringEventRepository,
	locations LocationResolver, validate *validator.Validate, windows recurrence.WindowPolicy) *DefaultEventService {
	return &DefaultEventService{
		DB:         db,
		EventRepo:  eventRepo,
		SeriesRepo: seriesRepo,
		Locations:  locations,
		Validate:   validate,
		Windows:    windows,
	}
}

// ===== READS =====

func (s *DefaultEventService) GetEvents(userID int) ([]*EventResponse, apierror.ErrorResponse) {
	events, err := s.EventRepo.FindByUserID(s.DB, userID)
	if err != nil {
		log.Errorf("failed to fetch events for user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*EventResponse, len(events))
	for i, ev := range events {
		resp[i] = toEventResponse(ev)
	}
	return resp, nil
}

// ===== CREATE =====

// CreateSingleEvent inserts one standalone event with no series binding.
func (s *DefaultEventService) CreateSingleEvent(userID int, req *CreateEventRequest) (*EventResponse, apierror.ErrorResponse) {
	tmpl, apierr := s.validateCreate(req)
	if apierr != nil {
		return nil, apierr
	}

	var created *entity.Event
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		locationID, err := s.Locations.CreateLocationIfNeeded(tx, req.Location)
		if err != nil {
			return err
		}

		created = &entity.Event{
			Title:       tmpl.Title,
			Description: tmpl.Description,
			StartTime:   tmpl.StartTime,
			EndTime:     tmpl.EndTime,
			IsAllDay:    tmpl.IsAllDay,
			ColorCode:   tmpl.ColorCode,
			Version:     1,
			UserID:      userID,
			LocationID:  locationID,
		}
		return s.EventRepo.Save(tx, created)
	})
	if err != nil {
		log.Errorf("failed to create event for user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}
	return toEventResponse(created), nil
}

// CreateEvents creates a series and its full batch of occurrences in one
// transaction. Either the series row and every occurrence exist afterwards,
// or none of them do.
func (s *DefaultEventService) CreateEvents(userID int, req *CreateEventRequest) ([]*EventResponse, apierror.ErrorResponse) {
	tmpl, apierr := s.validateCreate(req)
	if apierr != nil {
		return nil, apierr
	}
	if req.Recurring == nil {
		return nil, apierror.NewMissingParamError("recurring")
	}

	startDate, err := utils.ParseDateOnly(req.Recurring.StartDate)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}
	var clientEnd *time.Time
	if req.Recurring.EndDate != nil {
		end, err := utils.ParseDateOnly(*req.Recurring.EndDate)
		if err != nil {
			return nil, apierror.MalformedBodyError
		}
		if end.Before(startDate) {
			return nil, apierror.EndBeforeStartError
		}
		clientEnd = &end
	}

	endDate := recurrence.ResolveDefaultEnd(req.Recurring.Rule, startDate, clientEnd, s.Windows)

	var created []*entity.Event
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		locationID, err := s.Locations.CreateLocationIfNeeded(tx, req.Location)
		if err != nil {
			return err
		}

		created, err = s.createSeriesTx(tx, userID, tmpl, req.Recurring.Rule, startDate, endDate, locationID)
		return err
	})
	if err != nil {
		if errors.Is(err, errBadRule) {
			return nil, apierror.InvalidRecurrenceRuleError
		}
		log.Errorf("failed to create recurring events for user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*EventResponse, len(created))
	for i, ev := range created {
		resp[i] = toEventResponse(ev)
	}
	return resp, nil
}

// createSeriesTx inserts the series row, expands the rule over the resolved
// window, and inserts one occurrence per date with the template's time of
// day transplanted onto it. Runs entirely on the caller's transaction.
func (s *DefaultEventService) createSeriesTx(tx *gorm.DB, userID int, tmpl eventTemplate,
	rule string, startDate, endDate time.Time, locationID *int) ([]*entity.Event, error) {
	series := &entity.RecurringEvent{
		Rule:        rule,
		StartDate:   startDate,
		EndDate:     endDate,
		Title:       tmpl.Title,
		Description: tmpl.Description,
		ColorCode:   tmpl.ColorCode,
		Version:     1,
		UserID:      userID,
		LocationID:  locationID,
	}
	if err := s.SeriesRepo.Save(tx, series); err != nil {
		return nil, err
	}

	dates, err := recurrence.Expand(rule, startDate, endDate)
	if err != nil {
		log.Errorf("failed to expand recurrence rule %q for user %d: %v", rule, userID, err)
		return nil, fmt.Errorf("%w: %q", errBadRule, rule)
	}

	events := make([]*entity.Event, 0, len(dates))
	for _, date := range dates {
		start, end := transplantClock(date, tmpl.StartTime, tmpl.EndTime)
		ev := &entity.Event{
			Title:            tmpl.Title,
			Description:      tmpl.Description,
			StartTime:        start,
			EndTime:          end,
			IsAllDay:         tmpl.IsAllDay,
			ColorCode:        tmpl.ColorCode,
			Version:          1,
			UserID:           userID,
			LocationID:       locationID,
			RecurringEventID: &series.ID,
		}
		if err := s.EventRepo.Save(tx, ev); err != nil {
			return nil, err
		}
		ev.RecurringEvent = series
		events = append(events, ev)
	}
	return events, nil
}

// ===== UPDATE =====

func (s *DefaultEventService) UpdateEvent(userID, eventID int, req *UpdateEventRequest) (*UpdateEventResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	tmpl, apierr := parseTemplate(req.Title, req.Description, req.StartTime, req.EndTime, req.IsAllDay, req.ColorCode)
	if apierr != nil {
		return nil, apierr
	}
	if apierr := checkLocationNames(req.Location); apierr != nil {
		return nil, apierr
	}

	switch req.Scope {
	case ScopeSingle:
		return s.updateSingle(userID, eventID, req, tmpl)
	case ScopeSeries:
		return s.updateSeries(userID, eventID, req, tmpl)
	case ScopeThisAndFuture:
		return s.updateThisAndFuture(userID, eventID, req, tmpl)
	default:
		return nil, apierror.UnknownScopeError
	}
}

// updateSingle rewrites one occurrence under its version guard. If the
// occurrence belonged to a series it is detached for good, so later
// series-wide edits can never touch it again.
func (s *DefaultEventService) updateSingle(userID, eventID int, req *UpdateEventRequest, tmpl eventTemplate) (*UpdateEventResponse, apierror.ErrorResponse) {
	var updated *entity.Event
	var apierr apierror.ErrorResponse

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ev, err := s.EventRepo.FindOwned(tx, eventID, userID)
		if err != nil {
			return err
		}
		if ev == nil {
			apierr = apierror.NotFoundError
			return errRollback
		}

		locationID := ev.LocationID
		if req.Location != nil {
			locationID, err = s.Locations.CreateLocationIfNeeded(tx, req.Location)
			if err != nil {
				return err
			}
		}

		rows, err := s.EventRepo.UpdateVersioned(tx, eventID, userID, req.ExpectedVersion, map[string]any{
			"title":              tmpl.Title,
			"description":        tmpl.Description,
			"start_time":         tmpl.StartTime,
			"end_time":           tmpl.EndTime,
			"is_all_day":         tmpl.IsAllDay,
			"color_code":         tmpl.ColorCode,
			"location_id":        locationID,
			"recurring_event_id": nil,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			apierr = apierror.VersionConflictError
			return errRollback
		}

		updated, err = s.EventRepo.FindOwned(tx, eventID, userID)
		return err
	})
	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to update event %d for user %d: %v", eventID, userID, err)
		return nil, apierror.InternalServerError
	}
	return &UpdateEventResponse{Events: []*EventResponse{toEventResponse(updated)}}, nil
}

// updateSeries propagates the shared template fields to every occurrence of
// the series and the series row itself, in one transaction. Occurrence
// start/end instants are per-occurrence state and stay untouched. Dropping
// the rule dissolves the series instead of leaving it rule-less.
func (s *DefaultEventService) updateSeries(userID, eventID int, req *UpdateEventRequest, tmpl eventTemplate) (*UpdateEventResponse, apierror.ErrorResponse) {
	var updated []*entity.Event
	var apierr apierror.ErrorResponse

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ev, err := s.EventRepo.FindOwned(tx, eventID, userID)
		if err != nil {
			return err
		}
		if ev == nil {
			apierr = apierror.NotFoundError
			return errRollback
		}
		if ev.RecurringEventID == nil {
			apierr = apierror.ScopeRequiresSeriesError
			return errRollback
		}

		series, err := s.SeriesRepo.FindOwned(tx, *ev.RecurringEventID, userID)
		if err != nil {
			return err
		}
		if series == nil {
			apierr = apierror.NotFoundError
			return errRollback
		}

		if req.DropRecurring {
			if err := s.EventRepo.SoftDeleteBySeriesID(tx, series.ID, userID); err != nil {
				return err
			}
			return s.SeriesRepo.SoftDelete(tx, series)
		}

		locationID := series.LocationID
		if req.Location != nil {
			locationID, err = s.Locations.CreateLocationIfNeeded(tx, req.Location)
			if err != nil {
				return err
			}
		}

		// The edited occurrence anchors the concurrency guard.
		rows, err := s.EventRepo.UpdateVersioned(tx, eventID, userID, req.ExpectedVersion, map[string]any{
			"title":       tmpl.Title,
			"description": tmpl.Description,
			"color_code":  tmpl.ColorCode,
			"location_id": locationID,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			apierr = apierror.VersionConflictError
			return errRollback
		}

		err = s.EventRepo.UpdateSiblings(tx, series.ID, userID, eventID, map[string]any{
			"title":       tmpl.Title,
			"description": tmpl.Description,
			"color_code":  tmpl.ColorCode,
			"location_id": locationID,
		})
		if err != nil {
			return err
		}

		seriesChanges := map[string]any{
			"title":       tmpl.Title,
			"description": tmpl.Description,
			"color_code":  tmpl.ColorCode,
			"location_id": locationID,
		}
		if req.Recurring != nil {
			seriesChanges["rule"] = req.Recurring.Rule
		}
		rows, err = s.SeriesRepo.UpdateVersioned(tx, series.ID, userID, series.Version, seriesChanges)
		if err != nil {
			return err
		}
		if rows == 0 {
			apierr = apierror.VersionConflictError
			return errRollback
		}

		updated, err = s.EventRepo.FindBySeriesID(tx, series.ID)
		return err
	})
	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to update series of event %d for user %d: %v", eventID, userID, err)
		return nil, apierror.InternalServerError
	}

	resp := &UpdateEventResponse{Events: make([]*EventResponse, len(updated))}
	for i, ev := range updated {
		resp.Events[i] = toEventResponse(ev)
	}
	return resp, nil
}

// updateThisAndFuture splits the series at the edited occurrence: the tail
// is tombstoned, the old series' rule gets an UNTIL bound the day before the
// split, and a successor series carrying the edited template is expanded
// from the split date forward. The two halves share no rule afterwards.
func (s *DefaultEventService) updateThisAndFuture(userID, eventID int, req *UpdateEventRequest, tmpl eventTemplate) (*UpdateEventResponse, apierror.ErrorResponse) {
	var created []*entity.Event
	var apierr apierror.ErrorResponse

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ev, series, err := s.loadSeriesTarget(tx, userID, eventID, &apierr)
		if err != nil {
			return err
		}

		// Guard-and-bump on the edited occurrence before the tail
		// (including the occurrence itself) is tombstoned.
		rows, err := s.EventRepo.UpdateVersioned(tx, eventID, userID, req.ExpectedVersion, map[string]any{})
		if err != nil {
			return err
		}
		if rows == 0 {
			apierr = apierror.VersionConflictError
			return errRollback
		}

		successorEnd := series.EndDate
		if err := s.truncateSeriesTx(tx, userID, ev, series); err != nil {
			if errors.Is(err, errBadRule) {
				apierr = apierror.InvalidRecurrenceRuleError
			}
			return err
		}

		rule := series.Rule
		startDate := utils.DateOf(ev.StartTime)
		if req.Recurring != nil {
			rule = req.Recurring.Rule
			if req.Recurring.EndDate != nil {
				end, perr := utils.ParseDateOnly(*req.Recurring.EndDate)
				if perr != nil {
					apierr = apierror.MalformedBodyError
					return errRollback
				}
				successorEnd = end
			}
		}
		if successorEnd.Before(startDate) {
			apierr = apierror.EndBeforeStartError
			return errRollback
		}

		locationID := ev.LocationID
		if req.Location != nil {
			locationID, err = s.Locations.CreateLocationIfNeeded(tx, req.Location)
			if err != nil {
				return err
			}
		}

		created, err = s.createSeriesTx(tx, userID, tmpl, rule, startDate, successorEnd, locationID)
		if errors.Is(err, errBadRule) {
			apierr = apierror.InvalidRecurrenceRuleError
		}
		return err
	})
	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to split series of event %d for user %d: %v", eventID, userID, err)
		return nil, apierror.InternalServerError
	}

	resp := &UpdateEventResponse{Events: make([]*EventResponse, len(created))}
	for i, ev := range created {
		resp.Events[i] = toEventResponse(ev)
	}
	return resp, nil
}

// ===== DELETE =====

func (s *DefaultEventService) DeleteEvent(userID, eventID int, scope string) apierror.ErrorResponse {
	switch scope {
	case "", ScopeSingle:
		return s.deleteSingle(userID, eventID)
	case ScopeSeries:
		return s.deleteSeries(userID, eventID)
	case ScopeThisAndFuture:
		return s.deleteThisAndFuture(userID, eventID)
	default:
		return apierror.UnknownScopeError
	}
}

func (s *DefaultEventService) deleteSingle(userID, eventID int) apierror.ErrorResponse {
	ev, err := s.EventRepo.FindOwned(s.DB, eventID, userID)
	if err != nil {
		log.Errorf("failed to fetch event %d for user %d: %v", eventID, userID, err)
		return apierror.InternalServerError
	}
	if ev == nil {
		return apierror.NotFoundError
	}

	if err := s.EventRepo.SoftDelete(s.DB, ev); err != nil {
		log.Errorf("failed to delete event %d for user %d: %v", eventID, userID, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultEventService) deleteSeries(userID, eventID int) apierror.ErrorResponse {
	var apierr apierror.ErrorResponse

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		_, series, err := s.loadSeriesTarget(tx, userID, eventID, &apierr)
		if err != nil {
			return err
		}

		if err := s.EventRepo.SoftDeleteBySeriesID(tx, series.ID, userID); err != nil {
			return err
		}
		return s.SeriesRepo.SoftDelete(tx, series)
	})
	if apierr != nil {
		return apierr
	}
	if err != nil {
		log.Errorf("failed to delete series of event %d for user %d: %v", eventID, userID, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultEventService) deleteThisAndFuture(userID, eventID int) apierror.ErrorResponse {
	var apierr apierror.ErrorResponse

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ev, series, err := s.loadSeriesTarget(tx, userID, eventID, &apierr)
		if err != nil {
			return err
		}

		if err := s.truncateSeriesTx(tx, userID, ev, series); err != nil {
			if errors.Is(err, errBadRule) {
				apierr = apierror.InvalidRecurrenceRuleError
			}
			return err
		}
		return nil
	})
	if apierr != nil {
		return apierr
	}
	if err != nil {
		log.Errorf("failed to truncate series of event %d for user %d: %v", eventID, userID, err)
		return apierror.InternalServerError
	}
	return nil
}

// ===== Sub Functions =====

// loadSeriesTarget fetches an owned occurrence and its series, filling
// apierr (not-found or scope-mismatch) when either is missing.
func (s *DefaultEventService) loadSeriesTarget(tx *gorm.DB, userID, eventID int, apierr *apierror.ErrorResponse) (*entity.Event, *entity.RecurringEvent, error) {
	ev, err := s.EventRepo.FindOwned(tx, eventID, userID)
	if err != nil {
		return nil, nil, err
	}
	if ev == nil {
		*apierr = apierror.NotFoundError
		return nil, nil, errRollback
	}
	if ev.RecurringEventID == nil {
		*apierr = apierror.ScopeRequiresSeriesError
		return nil, nil, errRollback
	}

	series, err := s.SeriesRepo.FindOwned(tx, *ev.RecurringEventID, userID)
	if err != nil {
		return nil, nil, err
	}
	if series == nil {
		*apierr = apierror.NotFoundError
		return nil, nil, errRollback
	}
	return ev, series, nil
}

// truncateSeriesTx tombstones every occurrence from the reference forward
// and rewrites the series so it stops generating dates the day before the
// reference occurrence.
func (s *DefaultEventService) truncateSeriesTx(tx *gorm.DB, userID int, ref *entity.Event, series *entity.RecurringEvent) error {
	until := utils.DateOf(ref.StartTime).AddDate(0, 0, -1)

	newRule, err := recurrence.RewriteUntil(series.Rule, until)
	if err != nil {
		log.Errorf("failed to rewrite recurrence rule %q for series %d: %v", series.Rule, series.ID, err)
		return fmt.Errorf("%w: %q", errBadRule, series.Rule)
	}

	if err := s.EventRepo.SoftDeleteBySeriesFrom(tx, series.ID, userID, ref.StartTime); err != nil {
		return err
	}

	_, err = s.SeriesRepo.UpdateVersioned(tx, series.ID, userID, series.Version, map[string]any{
		"rule":     newRule,
		"end_date": until,
	})
	return err
}

func (s *DefaultEventService) validateCreate(req *CreateEventRequest) (eventTemplate, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return eventTemplate{}, apierror.FromValidationError(err)
	}
	if apierr := checkLocationNames(req.Location); apierr != nil {
		return eventTemplate{}, apierr
	}
	return parseTemplate(req.Title, req.Description, req.StartTime, req.EndTime, req.IsAllDay, req.ColorCode)
}

func parseTemplate(title string, description *string, startTime, endTime string, isAllDay bool, colorCode string) (eventTemplate, apierror.ErrorResponse) {
	start, err := utils.ParseWallClock(startTime)
	if err != nil {
		return eventTemplate{}, apierror.MalformedBodyError
	}
	end, err := utils.ParseWallClock(endTime)
	if err != nil {
		return eventTemplate{}, apierror.MalformedBodyError
	}
	if end.Before(start) {
		return eventTemplate{}, apierror.EndBeforeStartError
	}

	return eventTemplate{
		Title:       title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
		IsAllDay:    isAllDay,
		ColorCode:   colorCode,
	}, nil
}

func checkLocationNames(req *LocationRequest) apierror.ErrorResponse {
	if req != nil && req.NameEn == nil && req.NameKo == nil {
		return apierror.MissingLocationNameError
	}
	return nil
}

// transplantClock moves the template's time of day onto a new calendar date,
// preserving the template's duration. The date changes; the clock does not.
func transplantClock(date, tmplStart, tmplEnd time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(),
		tmplStart.Hour(), tmplStart.Minute(), tmplStart.Second(), 0, time.UTC)
	return start, start.Add(tmplEnd.Sub(tmplStart))
}

func toEventResponse(ev *entity.Event) *EventResponse {
	resp := &EventResponse{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		StartTime:   utils.FormatWallClock(ev.StartTime),
		EndTime:     utils.FormatWallClock(ev.EndTime),
		IsAllDay:    ev.IsAllDay,
		ColorCode:   ev.ColorCode,
		Version:     ev.Version,
		UserID:      ev.UserID,
		CreatedAt:   utils.FormatWallClock(ev.CreatedAt),
		UpdatedAt:   utils.FormatWallClock(ev.UpdatedAt),
	}

	if ev.Location != nil {
		resp.Location = toLocationResponse(ev.Location)
	}

	if ev.RecurringEvent != nil {
		resp.Recurring = &RecurringSummary{
			ID:        ev.RecurringEvent.ID,
			Rule:      ev.RecurringEvent.Rule,
			StartDate: utils.FormatDateOnly(ev.RecurringEvent.StartDate),
			EndDate:   utils.FormatDateOnly(ev.RecurringEvent.EndDate),
			Version:   ev.RecurringEvent.Version,
		}
	} else if ev.RecurringEventID != nil {
		resp.Recurring = &RecurringSummary{ID: *ev.RecurringEventID}
	}
	return resp
}
