package content

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nextstarsoccer/nss-backend/pkg/responses"
)

type ContentController struct {
	service *Service
}

func NewContentController(service *Service) *ContentController {
	return &ContentController{service: service}
}

// ListPages godoc
// @Summary List site pages
// @Description Returns the slugs of all published markdown pages
// @Tags Content
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]string}
// @Failure 500 {object} responses.ErrorResponse
// @Router /content [get]
func (cc *ContentController) ListPages(c *gin.Context) {
	slugs, err := cc.service.ListPages()
	if err != nil {
		log.Printf("content: list pages: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to list pages")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Pages retrieved successfully", slugs)
}

// GetPage godoc
// @Summary Get a site page
// @Description Returns one markdown page rendered to HTML
// @Tags Content
// @Produce json
// @Param page path string true "Page slug" example(about)
// @Success 200 {object} responses.SuccessResponse{data=Page}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /content/{page} [get]
func (cc *ContentController) GetPage(c *gin.Context) {
	slug := c.Param("page")

	page, err := cc.service.GetPage(slug)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			responses.NotFound(c, "Page")
			return
		}
		log.Printf("content: render page %q: %v", slug, err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to render page")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Page retrieved successfully", page)
}
