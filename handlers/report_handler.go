package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/crf-go/dto"
	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/response"
	"github.com/linskybing/crf-go/services"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) ListCrfReport(c *gin.Context) {
	var input dto.ReportQueryDTO
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	crfs, err := h.service.BuildDataset(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: crfs})
}

// ExportCrfReport writes the same dataset as CSV for spreadsheet use.
func (h *ReportHandler) ExportCrfReport(c *gin.Context) {
	var input dto.ReportQueryDTO
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	crfs, err := h.service.BuildDataset(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("CRF_Report_%s_to_%s.csv", input.StartDate, input.EndDate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{
		"ID", "Name", "NRIC", "Department", "Designation", "Ext & HP No",
		"Category", "Factor", "Issue", "Reason", "Status",
		"Assigned To", "Approved By", "Created At", "Updated At",
	})
	for _, crf := range crfs {
		writer.Write(reportRow(&crf))
	}
}

func reportRow(crf *models.Crf) []string {
	orDash := func(s *string) string {
		if s == nil || *s == "" {
			return "-"
		}
		return *s
	}
	nameOf := func(u *models.User) string {
		if u == nil {
			return "-"
		}
		return u.Name
	}
	department := "N/A"
	if crf.Department != nil {
		department = crf.Department.DName
	}
	category := "N/A"
	if crf.Category != nil {
		category = crf.Category.CName
	}
	factor := "N/A"
	if crf.Factor != nil {
		factor = crf.Factor.Name
	}

	return []string{
		fmt.Sprintf("%d", crf.ID),
		crf.FName,
		crf.NRIC,
		department,
		crf.Designation,
		crf.ExtNo,
		category,
		factor,
		crf.Issue,
		orDash(crf.Reason),
		crf.ApplicationStatusID.Label(),
		nameOf(crf.AssignedUser),
		nameOf(crf.Approver),
		crf.CreatedAt.Format("2006-01-02 15:04:05"),
		crf.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(nil)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: stats})
}

func (h *ReportHandler) MyStats(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	stats, err := h.service.Stats(&uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: stats})
}
