package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/collabhub/partner-directory/internal/core/ports"
)

// InquiryDispatcher is the interface the handler uses to enqueue inquiries.
type InquiryDispatcher interface {
	Enqueue(inquiry ports.InquiryInput)
}

// InquiryHandler accepts partnership inquiries for asynchronous delivery.
type InquiryHandler struct {
	dispatcher InquiryDispatcher
}

func NewInquiryHandler(dispatcher InquiryDispatcher) *InquiryHandler {
	return &InquiryHandler{dispatcher: dispatcher}
}

// Submit handles POST /v1/businesses/:id/inquiries. It validates the form,
// enqueues the inquiry, and returns 202.
//
// @Summary      Send a partnership inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "Target business identifier"
// @Param        body  body  inquiryRequest  true  "Inquiry form"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/businesses/{id}/inquiries [post]
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(ports.InquiryInput{
		BusinessID:  c.Param("id"),
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Subject:     req.Subject,
		Message:     req.Message,
		ReceivedAt:  time.Now().UTC(),
	})

	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "inquiry accepted"})
}
