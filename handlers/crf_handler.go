package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/crf-go/dto"
	"github.com/linskybing/crf-go/middleware"
	"github.com/linskybing/crf-go/response"
	"github.com/linskybing/crf-go/services"
)

type CrfHandler struct {
	workflow *services.WorkflowService
}

func NewCrfHandler(workflow *services.WorkflowService) *CrfHandler {
	return &CrfHandler{workflow: workflow}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

func actorID(c *gin.Context) (uint, bool) {
	uid, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}
	return uid, true
}

// CreateCrf accepts a multipart form: the CRF fields plus zero or more
// supporting_file parts.
func (h *CrfHandler) CreateCrf(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}

	var input dto.CreateCrfDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var uploads []services.AttachmentUpload
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, fileHeader := range form.File["supporting_file"] {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Failed to read upload: " + err.Error()})
				return
			}
			defer file.Close()
			uploads = append(uploads, services.AttachmentUpload{
				Filename: fileHeader.Filename,
				Mime:     fileHeader.Header.Get("Content-Type"),
				Size:     fileHeader.Size,
				Reader:   file,
			})
		}
	}

	crf, err := h.workflow.Create(c.Request.Context(), uid, input, uploads)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: crf})
}

func (h *CrfHandler) GetCrf(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	crf, timeline, err := h.workflow.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	crf.Timeline = timeline
	c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
}

func (h *CrfHandler) CheckStatus(c *gin.Context) {
	var input dto.CheckStatusDTO
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	crfs, err := h.workflow.Search(input.Search)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: crfs})
}

// transition wraps the simple (id, actor) transitions.
func (h *CrfHandler) transition(c *gin.Context, op func(crfID, uid uint) error) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}
	if err := op(id, uid); err != nil {
		writeServiceError(c, err)
	}
}

func (h *CrfHandler) Approve(c *gin.Context) {
	h.transition(c, func(id, uid uint) error {
		crf, err := h.workflow.Approve(id, uid)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
		return nil
	})
}

func (h *CrfHandler) ApproveByTP(c *gin.Context) {
	h.transition(c, func(id, uid uint) error {
		crf, err := h.workflow.ApproveByTP(id, uid)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
		return nil
	})
}

func (h *CrfHandler) Acknowledge(c *gin.Context) {
	h.transition(c, func(id, uid uint) error {
		crf, err := h.workflow.Acknowledge(id, uid)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
		return nil
	})
}

func (h *CrfHandler) assignLike(c *gin.Context, op func(crfID, uid, targetID uint) error) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	var input dto.AssignCrfDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := op(id, uid, input.AssignedTo); err != nil {
		writeServiceError(c, err)
	}
}

func (h *CrfHandler) AssignToITD(c *gin.Context) {
	h.assignLike(c, func(id, uid, target uint) error {
		crf, err := h.workflow.AssignToITD(id, uid, target)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
		return nil
	})
}

func (h *CrfHandler) AssignToVendor(c *gin.Context) {
	h.assignLike(c, func(id, uid, target uint) error {
		crf, err := h.workflow.AssignToVendor(id, uid, target)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
		return nil
	})
}

func (h *CrfHandler) ReassignToITD(c *gin.Context) {
	h.assignLike(c, func(id, uid, target uint) error {
		crf, err := h.workflow.ReassignToITD(id, uid, target)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
		return nil
	})
}

func (h *CrfHandler) ReassignToVendor(c *gin.Context) {
	h.assignLike(c, func(id, uid, target uint) error {
		crf, err := h.workflow.ReassignToVendor(id, uid, target)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
		return nil
	})
}

func (h *CrfHandler) MarkInProgress(c *gin.Context) {
	h.transition(c, func(id, uid uint) error {
		crf, err := h.workflow.MarkInProgress(id, uid)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
		return nil
	})
}

func (h *CrfHandler) MarkCompleted(c *gin.Context) {
	h.transition(c, func(id, uid uint) error {
		crf, err := h.workflow.MarkCompleted(id, uid)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
		return nil
	})
}

func (h *CrfHandler) UpdateRemark(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	var input dto.UpdateRemarkDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	crf, err := h.workflow.UpdateRemark(id, uid, input.ITRemark)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
}

func (h *CrfHandler) UpdateFactor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	var input dto.UpdateFactorDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	crf, err := h.workflow.UpdateFactor(id, uid, input.FactorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: crf})
}

func (h *CrfHandler) DeleteCrf(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.workflow.Delete(c.Request.Context(), id, uid); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "CRF deleted successfully"})
}
