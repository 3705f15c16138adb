package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/errors"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
)

const emailsSentMessage = "Emails sent successfully"

// ContactSubmitter runs the contact pipeline for one request.
type ContactSubmitter interface {
	Submit(ctx context.Context, req types.ContactRequest) (*types.ContactSubmission, error)
}

// ContactHandler handles contact-form submission endpoints.
type ContactHandler struct {
	contactService ContactSubmitter
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService ContactSubmitter) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SubmitContact godoc
// @Summary      Submit the contact form
// @Description  Stores the submission when possible, emails the site owner and sends the submitter a confirmation
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      types.ContactRequest  true  "Contact form fields"
// @Success      200   {object}  types.ContactResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      429   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /v1/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req types.ContactRequest
	// An unreadable body is reported like any other failure after
	// validation, with the decoder's message.
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.TransportFailed(err, "parse"))
		return
	}

	if _, err := h.contactService.Submit(c.Request.Context(), req); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.ContactResponse{
		Success: true,
		Message: emailsSentMessage,
	})
}
