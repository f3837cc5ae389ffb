package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/crf-go/repositories"
	"github.com/linskybing/crf-go/response"
	"github.com/linskybing/crf-go/services"
)

// LookupHandler serves the reference data used to populate CRF forms.
type LookupHandler struct {
	repo       repositories.LookupRepo
	assignment *services.AssignmentService
}

func NewLookupHandler(repo repositories.LookupRepo, assignment *services.AssignmentService) *LookupHandler {
	return &LookupHandler{repo: repo, assignment: assignment}
}

func (h *LookupHandler) ListDepartments(c *gin.Context) {
	departments, err := h.repo.ListDepartments()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: departments})
}

func (h *LookupHandler) ListCategories(c *gin.Context) {
	categories, err := h.repo.ListCategories()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: categories})
}

func (h *LookupHandler) ListFactors(c *gin.Context) {
	factors, err := h.repo.ListFactors()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: factors})
}

func (h *LookupHandler) ListPICs(c *gin.Context) {
	pics, err := h.assignment.ListPICs()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: pics})
}
