package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/crf-go/services"
)

type AttachmentHandler struct {
	service *services.AttachmentService
}

func NewAttachmentHandler(service *services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

// Download streams an attachment to an actor allowed by the download policy
// (submitter, HOU approver or assignee of the parent CRF).
func (h *AttachmentHandler) Download(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	attachment, reader, err := h.service.Download(c.Request.Context(), id, uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.Filename))
	c.DataFromReader(http.StatusOK, attachment.Size, attachment.Mime, reader, nil)
}
