package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"college-portal-client/internal/model"
	"college-portal-client/internal/portal"
)

// PostRequest handles POST /api/requests/:service, binding the body into the
// service's typed payload and running it through the submission pipeline.
func (h *Handler) PostRequest(c *gin.Context) {
	kind, ok := model.ParseKind(c.Param("service"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unknown service"})
		return
	}

	payload := emptyPayload(kind)
	if err := c.ShouldBindJSON(payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.pipeline.Submit(c.Request.Context(), payload)
	if err != nil {
		status, message := statusFor(err)
		c.AbortWithStatusJSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      kind.DisplayName() + " submitted successfully",
		kind.ItemKey(): created,
	})
}

func emptyPayload(kind model.ServiceKind) model.Payload {
	switch kind {
	case model.KindOuting:
		return &model.OutingPayload{}
	case model.KindXerox:
		return &model.XeroxPayload{}
	case model.KindMess:
		return &model.MessPayload{}
	case model.KindFivestar:
		return &model.FivestarPayload{}
	case model.KindCCD:
		return &model.CCDPayload{}
	default:
		return &model.StationaryPayload{}
	}
}

// statusFor maps the error taxonomy onto HTTP statuses, preserving backend
// messages verbatim.
func statusFor(err error) (int, string) {
	var validationErr *portal.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}
	var authErr *portal.AuthError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized, authErr.Message
	}
	var serverErr *portal.ServerError
	if errors.As(err, &serverErr) {
		return http.StatusBadGateway, serverErr.Message
	}
	var netErr *portal.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusServiceUnavailable, netErr.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}
