package controller

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/features/reports/dto"
	"polstat_backend/internals/features/reports/service"
	helper "polstat_backend/internals/helpers"
)

type ReportsController struct {
	Aggregator *service.AggregatorService
	validate   *validator.Validate
}

func NewReportsController(db *gorm.DB) *ReportsController {
	return &ReportsController{
		Aggregator: service.NewAggregatorService(db),
		validate:   validator.New(),
	}
}

func (ctrl *ReportsController) parseRequest(c *fiber.Ctx) (dto.ReportRequest, error) {
	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}

// Generate answers POST /api/reports/generate with the chart matrix.
func (ctrl *ReportsController) Generate(c *fiber.Ctx) error {
	req, err := ctrl.parseRequest(c)
	if err != nil {
		return renderRequestError(c, err)
	}

	matrix, err := ctrl.Aggregator.BuildReport(c.UserContext(), req)
	if err != nil {
		return renderAggregateError(c, err)
	}
	return helper.JsonOK(c, "Report generated", matrix)
}

// ReportValues serves POST /api/performance-statistics/report-values (same
// matrix, mounted under the statistics prefix for the dashboard).
func (ctrl *ReportsController) ReportValues(c *fiber.Ctx) error {
	return ctrl.Generate(c)
}

// FilterLabels answers POST /labels/filter: months that actually carry data
// for the filter.
func (ctrl *ReportsController) FilterLabels(c *fiber.Ctx) error {
	req, err := ctrl.parseRequest(c)
	if err != nil {
		return renderRequestError(c, err)
	}

	labels, err := ctrl.Aggregator.AvailableLabels(c.UserContext(), req)
	if err != nil {
		return renderAggregateError(c, err)
	}
	return helper.JsonOK(c, "Available labels", labels)
}

// ExportCSV streams the matrix as CSV. Spreadsheet styling is out of scope;
// the dashboard consumes this raw.
func (ctrl *ReportsController) ExportCSV(c *fiber.Ctx) error {
	req, err := ctrl.parseRequest(c)
	if err != nil {
		return renderRequestError(c, err)
	}
	return ctrl.streamCSV(c, req)
}

// DistrictExportCSV is ExportCSV with the scope pinned to DISTRICT.
func (ctrl *ReportsController) DistrictExportCSV(c *fiber.Ctx) error {
	req, err := ctrl.parseRequest(c)
	if err != nil {
		return renderRequestError(c, err)
	}
	req.Scope = "DISTRICT"
	return ctrl.streamCSV(c, req)
}

func (ctrl *ReportsController) streamCSV(c *fiber.Ctx, req dto.ReportRequest) error {
	matrix, err := ctrl.Aggregator.BuildReport(c.UserContext(), req)
	if err != nil {
		return renderAggregateError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{"Entity"}, matrix.Labels...)
	header = append(header, "Total")
	if err := w.Write(header); err != nil {
		return helper.JsonInternal(c, err)
	}
	for _, ds := range matrix.Datasets {
		record := make([]string, 0, len(ds.Data)+2)
		record = append(record, ds.Name)
		total := 0.0
		for _, v := range ds.Data {
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
			total += v
		}
		record = append(record, strconv.FormatFloat(total, 'f', -1, 64))
		if err := w.Write(record); err != nil {
			return helper.JsonInternal(c, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonInternal(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="report.csv"`)
	return c.Send(buf.Bytes())
}

func renderRequestError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonValidationError(c, err)
}

func renderAggregateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrEmptyMonthWindow) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonInternal(c, err)
}
