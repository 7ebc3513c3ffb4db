package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/models"
	"github.com/yashkabra143/TimeTrakr/internal/repository"
	"github.com/yashkabra143/TimeTrakr/internal/service"
	"github.com/yashkabra143/TimeTrakr/internal/util"

	"github.com/gin-gonic/gin"
)

// EntryHandler owns time-entry endpoints. Creation goes through the
// earnings pipeline; entries are immutable afterwards (delete only).
type EntryHandler struct {
	Svc   *service.Ledger
	Store *repository.Store
}

func NewEntryHandler(svc *service.Ledger, store *repository.Store) *EntryHandler {
	return &EntryHandler{Svc: svc, Store: store}
}

type createEntryReq struct {
	ProjectID uint `json:"project_id" binding:"required"`
	// Time is the user-typed value for hourly projects, string or
	// number; kept verbatim in the stored row.
	Time   rawValue `json:"time"`
	Format string   `json:"format" binding:"omitempty,oneof=hm fractional"`
	// Amount is the manual gross for fixed-project milestones.
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description" binding:"max=255"`
}

type entryResp struct {
	ID                uint      `json:"id"`
	ProjectID         uint      `json:"project_id"`
	Minutes           int       `json:"minutes"`
	InputFormat       string    `json:"input_format,omitempty"`
	RawInput          string    `json:"raw_input,omitempty"`
	Date              time.Time `json:"date"`
	Description       string    `json:"description"`
	GrossUSD          string    `json:"gross_usd"`
	DeductionService  string    `json:"deduction_service"`
	DeductionTDS      string    `json:"deduction_tds"`
	DeductionGST      string    `json:"deduction_gst"`
	DeductionTransfer string    `json:"deduction_transfer"`
	DeductionTotal    string    `json:"deduction_total"`
	NetUSD            string    `json:"net_usd"`
	NetINR            string    `json:"net_inr"`
	ExchangeRate      float64   `json:"exchange_rate"`
	CreatedAt         time.Time `json:"created_at"`
}

func toEntryResp(e *models.TimeEntry) entryResp {
	return entryResp{
		ID:                e.ID,
		ProjectID:         e.ProjectID,
		Minutes:           e.Minutes,
		InputFormat:       e.InputFormat,
		RawInput:          e.RawInput,
		Date:              e.Date,
		Description:       e.Description,
		GrossUSD:          util.Money(e.GrossUSD),
		DeductionService:  util.Money(e.DeductionService),
		DeductionTDS:      util.Money(e.DeductionTDS),
		DeductionGST:      util.Money(e.DeductionGST),
		DeductionTransfer: util.Money(e.DeductionTransfer),
		DeductionTotal:    util.Money(e.DeductionTotal),
		NetUSD:            util.Money(e.NetUSD),
		NetINR:            util.Money(e.NetINR),
		ExchangeRate:      e.ExchangeRate,
		CreatedAt:         e.CreatedAt,
	}
}

func (h *EntryHandler) Create(c *gin.Context) {
	var req createEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	entry, err := h.Svc.CreateTimeEntry(c.Request.Context(), service.CreateEntryInput{
		ProjectID:   req.ProjectID,
		RawTime:     string(req.Time),
		Format:      req.Format,
		AmountUSD:   req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{"entry": toEntryResp(entry)})
}

// List returns entries with pagination, optional project and date
// range filters, plus totals computed over the same filter.
func (h *EntryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}

	filter := repository.EntryFilter{
		Limit:  size,
		Offset: (page - 1) * size,
	}

	if pidStr := c.Query("project_id"); pidStr != "" {
		pid, err := strconv.Atoi(pidStr)
		if err != nil || pid <= 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid project_id")
			return
		}
		filter.ProjectID = uint(pid)
	}

	if startStr := c.Query("start"); startStr != "" {
		start, err := util.ValidateDate(startStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "start date must be YYYY-MM-DD")
			return
		}
		filter.From = &start
	}
	if endStr := c.Query("end"); endStr != "" {
		end, err := util.ValidateDate(endStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "end date must be YYYY-MM-DD")
			return
		}
		// end date is inclusive: filter below the next day
		end = end.Add(24 * time.Hour)
		filter.To = &end
	}

	ctx := c.Request.Context()
	entries, total, err := h.Store.Entries.List(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]entryResp, 0, len(entries))
	for i := range entries {
		items = append(items, toEntryResp(&entries[i]))
	}

	// Totals over the same filter, not just the current page.
	unpaged := filter
	unpaged.Limit = 0
	unpaged.Offset = 0
	all, _, err := h.Store.Entries.List(ctx, unpaged)
	if err != nil {
		respondError(c, err)
		return
	}
	var minutes int
	var gross, deductions, netUSD, netINR float64
	for i := range all {
		minutes += all[i].Minutes
		gross += all[i].GrossUSD
		deductions += all[i].DeductionTotal
		netUSD += all[i].NetUSD
		netINR += all[i].NetINR
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
		"summary": gin.H{
			"minutes":          minutes,
			"gross_usd":        util.Money(gross),
			"deductions_total": util.Money(deductions),
			"net_usd":          util.Money(netUSD),
			"net_inr":          util.Money(netINR),
		},
	})
}

func (h *EntryHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	entry, err := h.Store.Entries.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{"entry": toEntryResp(entry)})
}

func (h *EntryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Store.Entries.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{"message": "deleted"})
}
