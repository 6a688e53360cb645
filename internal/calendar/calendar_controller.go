package calendar

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nextstarsoccer/nss-backend/config"
	"github.com/nextstarsoccer/nss-backend/pkg/responses"

	"github.com/gin-gonic/gin"
)

// CalendarController serves the public calendar: month grids and today's
// events. Source failures never surface as HTTP errors here; the page gets
// an empty month instead.
type CalendarController struct {
	service    *Service
	classifier *TypeClassifier
	config     *config.Config
}

func NewCalendarController(service *Service, classifier *TypeClassifier, cfg *config.Config) *CalendarController {
	return &CalendarController{
		service:    service,
		classifier: classifier,
		config:     cfg,
	}
}

// eventView decorates an event with its derived category, color and
// cancellation flag so clients don't reimplement the heuristics.
type eventView struct {
	Event
	Category  string `json:"category"`
	Color     string `json:"color"`
	Cancelled bool   `json:"cancelled"`
}

type monthResponse struct {
	Year          int            `json:"year"`
	Month         int            `json:"month"`
	Grid          []dayCellView  `json:"grid"`
	Events        []eventView    `json:"events"`
	FilterOptions []FilterOption `json:"filter_options"`
}

type dayCellView struct {
	Day    int         `json:"day"`
	Date   string      `json:"date,omitempty"`
	Today  bool        `json:"today"`
	Events []eventView `json:"events"`
}

// GetMonth godoc
// @Summary Month calendar grid
// @Description Returns the Sunday-first day grid for a month with events bucketed per day.
// @Tags Calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param filters query string false "Comma-separated selected category ids; omit for all"
// @Param type query string false "Calendar type" Enums(public, private) default(public)
// @Success 200 {object} responses.SuccessResponse{data=monthResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid year or month"
// @Router /calendar/{year}/{month} [get]
func (cc *CalendarController) GetMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 || year > 2200 {
		responses.SendError(c, http.StatusBadRequest, "Invalid year")
		return
	}
	monthNum, err := strconv.Atoi(c.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		responses.SendError(c, http.StatusBadRequest, "Invalid month, expected 1-12")
		return
	}
	month := time.Month(monthNum)

	options := optionsFromParam(c.Query("filters"))
	calendarType := c.DefaultQuery("type", "public")

	grid, events := cc.service.MonthGrid(c.Request.Context(), year, month, options, calendarType)

	responses.SendSuccess(c, http.StatusOK, "", monthResponse{
		Year:          year,
		Month:         monthNum,
		Grid:          cc.decorateGrid(grid, options),
		Events:        cc.decorateEvents(events, options),
		FilterOptions: options,
	})
}

// GetToday godoc
// @Summary Today's events
// @Description Returns all events starting today, regardless of category filters.
// @Tags Calendar
// @Produce json
// @Param type query string false "Calendar type" Enums(public, private) default(public)
// @Success 200 {object} responses.SuccessResponse{data=[]eventView}
// @Router /calendar/today [get]
func (cc *CalendarController) GetToday(c *gin.Context) {
	calendarType := c.DefaultQuery("type", "public")
	events := cc.service.TodaysEvents(c.Request.Context(), calendarType)
	responses.SendSuccess(c, http.StatusOK, "", cc.decorateEvents(events, DefaultFilterOptions()))
}

func (cc *CalendarController) decorateEvents(events []Event, options []FilterOption) []eventView {
	views := make([]eventView, 0, len(events))
	for _, event := range events {
		views = append(views, eventView{
			Event:     event,
			Category:  cc.classifier.Classify(event.Title),
			Color:     cc.classifier.Color(event.Title, options),
			Cancelled: IsCancelled(event.Description),
		})
	}
	return views
}

func (cc *CalendarController) decorateGrid(grid []DayCell, options []FilterOption) []dayCellView {
	views := make([]dayCellView, 0, len(grid))
	for _, cell := range grid {
		views = append(views, dayCellView{
			Day:    cell.Day,
			Date:   cell.Date,
			Today:  cell.Today,
			Events: cc.decorateEvents(cell.Events, options),
		})
	}
	return views
}

// optionsFromParam applies a comma-separated list of selected category ids
// to the default option set. An empty parameter selects everything.
func optionsFromParam(param string) []FilterOption {
	options := DefaultFilterOptions()
	if strings.TrimSpace(param) == "" {
		return options
	}

	selected := map[string]bool{}
	for _, part := range strings.Split(param, ",") {
		selected[strings.TrimSpace(part)] = true
	}
	for i := range options {
		options[i].Selected = selected[options[i].ID]
	}
	return options
}
