package events

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nextstarsoccer/nss-backend/config"
	"github.com/nextstarsoccer/nss-backend/internal/middleware"
	"github.com/nextstarsoccer/nss-backend/pkg/responses"
	"github.com/nextstarsoccer/nss-backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	repo   EventRepository
	config *config.Config
}

func NewEventController(repo EventRepository, cfg *config.Config) *EventController {
	return &EventController{repo: repo, config: cfg}
}

// ListEvents godoc
// @Summary List portal training events
// @Description Lists upcoming (default) or past events with enrollment counts and the caller's signup state.
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param tab query string false "upcoming or past" Enums(upcoming, past) default(upcoming)
// @Success 200 {object} responses.SuccessResponse{data=[]EventView}
// @Router /events [get]
func (ec *EventController) ListEvents(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	var list []Event
	if c.DefaultQuery("tab", "upcoming") == "past" {
		list, err = ec.repo.GetPastEvents(time.Now(), 50)
	} else {
		list, err = ec.repo.GetUpcomingEvents(time.Now())
	}
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to list events")
		return
	}

	mySignups, err := ec.repo.GetSignupsForUser(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load signups")
		return
	}
	myStatus := make(map[uint]string, len(mySignups))
	for _, s := range mySignups {
		myStatus[s.EventID] = s.Status
	}

	views := make([]EventView, 0, len(list))
	for _, event := range list {
		enrolled, err := ec.repo.CountConfirmedSignups(event.ID)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to count signups")
			return
		}
		status := myStatus[event.ID]
		views = append(views, EventView{
			Event:    event,
			Enrolled: int(enrolled),
			SignedUp: status == SignupConfirmed || status == SignupWaitlist,
			MyStatus: status,
		})
	}
	responses.SendSuccess(c, http.StatusOK, "", views)
}

// CreateEvent godoc
// @Summary Create a training event
// @Description Coaches and admins only.
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event details"
// @Success 201 {object} responses.SuccessResponse{data=Event}
// @Failure 400 {object} responses.ValidationErrorResponse
// @Router /events [post]
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	event := Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    req.Capacity,
		CoachID:     &userID,
		Status:      StatusScheduled,
	}
	if err := ec.repo.CreateEvent(&event); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create event")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Event created", event)
}

// SignUp godoc
// @Summary Sign up for an event
// @Description Confirms the signup, or waitlists it when the event is full. Re-signing a cancelled signup reactivates it.
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse{data=Signup}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Already signed up"
// @Router /events/{event_id}/signup [post]
func (ec *EventController) SignUp(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	event, err := ec.repo.GetEventByID(uint(eventID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load event")
		return
	}
	if event == nil || event.Status == StatusCancelled {
		responses.NotFound(c, "Event")
		return
	}

	existing, err := ec.repo.GetSignup(event.ID, userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check signup")
		return
	}
	if existing != nil && existing.Status != SignupCancelled {
		responses.SendError(c, http.StatusConflict, "Already signed up for this event")
		return
	}

	signup := existing
	if signup == nil {
		signup = &Signup{EventID: event.ID, UserID: userID}
	}

	if err := ec.repo.ConfirmOrWaitlistSignup(event, signup); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to sign up")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Signed up", signup)
}

// CancelSignup godoc
// @Summary Cancel an event signup
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /events/{event_id}/signup [delete]
func (ec *EventController) CancelSignup(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	signup, err := ec.repo.GetSignup(uint(eventID), userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check signup")
		return
	}
	if signup == nil || signup.Status == SignupCancelled {
		responses.NotFound(c, "Signup")
		return
	}

	signup.Status = SignupCancelled
	if err := ec.repo.SaveSignup(signup); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to cancel signup")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Signup cancelled", nil)
}
