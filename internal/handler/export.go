package handler

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/repository"
	"github.com/yashkabra143/TimeTrakr/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler writes the full entry snapshot table as CSV or XLSX.
type ExportHandler struct {
	Store *repository.Store
}

func NewExportHandler(store *repository.Store) *ExportHandler {
	return &ExportHandler{Store: store}
}

var exportHeaders = []string{
	"Date", "Project", "Minutes", "Hours", "Input Format", "Raw Input",
	"Gross (USD)", "Service Fee", "TDS", "GST", "Transfer Fee",
	"Total Deductions", "Net (USD)", "Net (INR)", "Exchange Rate",
	"Description",
}

func (h *ExportHandler) loadRows(c *gin.Context) ([][]string, bool) {
	ctx := c.Request.Context()

	entries, _, err := h.Store.Entries.List(ctx, repository.EntryFilter{})
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	projects, err := h.Store.Projects.List(ctx)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	names := make(map[uint]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}

	rows := make([][]string, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		name := names[e.ProjectID]
		if name == "" {
			name = fmt.Sprintf("#%d", e.ProjectID)
		}
		rows = append(rows, []string{
			e.Date.Format("2006-01-02"),
			name,
			strconv.Itoa(e.Minutes),
			strconv.FormatFloat(float64(e.Minutes)/60, 'f', 2, 64),
			e.InputFormat,
			e.RawInput,
			util.Money(e.GrossUSD),
			util.Money(e.DeductionService),
			util.Money(e.DeductionTDS),
			util.Money(e.DeductionGST),
			util.Money(e.DeductionTransfer),
			util.Money(e.DeductionTotal),
			util.Money(e.NetUSD),
			util.Money(e.NetINR),
			strconv.FormatFloat(e.ExchangeRate, 'f', 2, 64),
			e.Description,
		})
	}
	return rows, true
}

// CSV streams the entries as a CSV attachment.
func (h *ExportHandler) CSV(c *gin.Context) {
	rows, ok := h.loadRows(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"entries_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel opens the file correctly
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, row := range rows {
		writer.Write(row)
	}
}

// XLSX streams the entries as a spreadsheet.
func (h *ExportHandler) XLSX(c *gin.Context) {
	rows, ok := h.loadRows(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Entries"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		respondError(c, err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	for r, row := range rows {
		for i, value := range row {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "F", 10)
	f.SetColWidth(sheetName, "G", "O", 14)
	f.SetColWidth(sheetName, "P", "P", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"entries_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		respondError(c, err)
	}
}
