package api

import (
	"net/http"

	"mc-creative-backend/internal/domain"
	"mc-creative-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// contactResponse mirrors the receipt into the public response shape. Sink
// statuses are null when skipped; a storage failure surfaces only as a null
// id while ok stays true.
type contactResponse struct {
	OK          bool    `json:"ok"`
	ID          *string `json:"id"`
	EmailStatus *string `json:"email_status"`
	APIStatus   *string `json:"api_status"`
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Accept a contact submission, persist it and fan out notifications. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  contactResponse
// @Failure      400      {object}  response.Response
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	receipt, err := h.contactUC.Submit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	resp := contactResponse{
		OK:          true,
		EmailStatus: sinkStatus(receipt.Email, "sent"),
		APIStatus:   sinkStatus(receipt.API, "created"),
	}
	if receipt.Storage.Succeeded() {
		resp.ID = &receipt.Storage.ID
	}
	c.JSON(http.StatusOK, resp)
}

// sinkStatus renders a sink outcome: nil when skipped, the success word when
// succeeded, "error: <reason>" when failed.
func sinkStatus(r domain.SinkResult, success string) *string {
	switch r.Status {
	case domain.SinkSucceeded:
		return &success
	case domain.SinkFailed:
		s := "error: " + r.Reason
		return &s
	default:
		return nil
	}
}
