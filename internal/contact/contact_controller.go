package contact

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nextstarsoccer/nss-backend/pkg/metrics"
	"github.com/nextstarsoccer/nss-backend/pkg/responses"
	"github.com/nextstarsoccer/nss-backend/pkg/validator"
)

type ContactController struct {
	repo   ContactRepository
	mailer Mailer
}

func NewContactController(repo ContactRepository, mailer Mailer) *ContactController {
	return &ContactController{repo: repo, mailer: mailer}
}

// SubmitMessage godoc
// @Summary Submit a contact message
// @Description Stores the message and forwards it to the club inbox. The message is kept even when email delivery fails.
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body SubmitMessageRequest true "Contact message"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ValidationErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /contact [post]
func (cc *ContactController) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, http.StatusBadRequest, "Invalid contact message", validator.ParseError(err))
		return
	}

	msg := &Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Body,
	}

	// Persist first. Mail is best effort; a provider outage must not lose
	// the submission or surface as an error to the visitor.
	if err := cc.repo.SaveMessage(msg); err != nil {
		log.Printf("contact: save message from %s: %v", req.Email, err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	if err := cc.mailer.SendContactNotification(c.Request.Context(), msg); err != nil {
		log.Printf("contact: notify inbox for message %d: %v", msg.ID, err)
		metrics.RecordEmailFailed()
		msg.Pending = true
		if err := cc.repo.UpdateMessage(msg); err != nil {
			log.Printf("contact: mark message %d pending: %v", msg.ID, err)
		}
	} else {
		metrics.RecordEmailSent()
	}

	responses.SendSuccess(c, http.StatusCreated, "Message submitted successfully", gin.H{"id": msg.ID})
}
