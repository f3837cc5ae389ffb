package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/crf-go/dto"
	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/repositories"
)

// statusBuckets maps a report type to the status codes it covers. An empty
// slice means no status filter ("all").
var statusBuckets = map[string][]models.StatusCode{
	"all":     {},
	"pending": {models.StatusCreated},
	"in_progress": {
		models.StatusAssignedITD, models.StatusAssignedVendor,
		models.StatusReassignedITD, models.StatusReassignedVendor,
		models.StatusInProgress,
	},
	"completed": {models.StatusClosed},
}

type ReportService struct {
	Repos *repositories.Repos
}

func NewReportService(repos *repositories.Repos) *ReportService {
	return &ReportService{Repos: repos}
}

// BuildDataset assembles the filtered report rows, newest first. Rendering
// happens entirely outside this service.
func (s *ReportService) BuildDataset(input dto.ReportQueryDTO) ([]models.Crf, error) {
	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return nil, validationf("invalid start_date %q", input.StartDate)
	}
	end, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return nil, validationf("invalid end_date %q", input.EndDate)
	}
	if end.Before(start) {
		return nil, validationf("end_date must not be before start_date")
	}
	// Inclusive whole days.
	end = end.Add(24*time.Hour - time.Nanosecond)

	reportType := input.ReportType
	if reportType == "" {
		reportType = "all"
	}
	statuses, ok := statusBuckets[reportType]
	if !ok {
		return nil, validationf("unknown report_type %q", reportType)
	}

	var categoryIDs []uint
	if input.Categories != "" {
		for _, raw := range strings.Split(input.Categories, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
			if err != nil {
				return nil, validationf("invalid category id %q", raw)
			}
			categoryIDs = append(categoryIDs, uint(id))
		}
	}

	return s.Repos.Crf.Report(repositories.ReportFilter{
		Start:       start,
		End:         end,
		ActionBy:    input.ActionBy,
		CategoryIDs: categoryIDs,
		Statuses:    statuses,
	})
}

type DashboardStats struct {
	Pending    int64                        `json:"pending"`
	InProgress int64                        `json:"in_progress"`
	Completed  int64                        `json:"completed"`
	Total      int64                        `json:"total"`
	ByCategory []repositories.CategoryCount `json:"by_category"`
}

// Stats counts CRFs per bucket; userID narrows to a submitter's own CRFs.
func (s *ReportService) Stats(userID *uint) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.Pending, err = s.Repos.Crf.CountByStatuses(statusBuckets["pending"], userID); err != nil {
		return nil, err
	}
	if stats.InProgress, err = s.Repos.Crf.CountByStatuses(statusBuckets["in_progress"], userID); err != nil {
		return nil, err
	}
	if stats.Completed, err = s.Repos.Crf.CountByStatuses(statusBuckets["completed"], userID); err != nil {
		return nil, err
	}
	if stats.Total, err = s.Repos.Crf.CountByStatuses(nil, userID); err != nil {
		return nil, err
	}
	if userID == nil {
		if stats.ByCategory, err = s.Repos.Crf.CountByCategory(); err != nil {
			return nil, err
		}
	}
	return stats, nil
}
