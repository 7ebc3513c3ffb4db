package handler

import (
	"strconv"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/service"
	"github.com/yashkabra143/TimeTrakr/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate views the dashboard charts are
// drawn from.
type DashboardHandler struct {
	Svc *service.Ledger
}

func NewDashboardHandler(svc *service.Ledger) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	s, err := h.Svc.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	projects := make([]gin.H, 0, len(s.Projects))
	for _, p := range s.Projects {
		item := gin.H{
			"project_id":  p.ProjectID,
			"name":        p.Name,
			"type":        p.Type,
			"color":       p.Color,
			"entry_count": p.EntryCount,
			"minutes":     p.Minutes,
			"gross_usd":   util.Money(p.GrossUSD),
			"net_usd":     util.Money(p.NetUSD),
		}
		if p.RemainingBudgetUSD != nil {
			item["remaining_budget"] = util.Money(*p.RemainingBudgetUSD)
		}
		projects = append(projects, item)
	}

	util.Success(c, util.Response{
		"total_minutes":     s.TotalMinutes,
		"total_gross_usd":   util.Money(s.TotalGrossUSD),
		"total_deductions":  util.Money(s.TotalDeductionsUSD),
		"total_net_usd":     util.Money(s.TotalNetUSD),
		"total_net_inr":     util.Money(s.TotalNetINR),
		"total_withdrawn":   util.Money(s.TotalWithdrawnUSD),
		"available_balance": util.Money(s.AvailableBalanceUSD),
		"projects":          projects,
	})
}

func (h *DashboardHandler) Weekly(c *gin.Context) {
	weeks, _ := strconv.Atoi(c.DefaultQuery("weeks", "12"))
	if weeks <= 0 || weeks > 104 {
		weeks = 12
	}

	buckets, err := h.Svc.Weekly(c.Request.Context(), weeks, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(buckets))
	for _, b := range buckets {
		items = append(items, gin.H{
			"week_start": b.WeekStart.Format("2006-01-02"),
			"minutes":    b.Minutes,
			"gross_usd":  util.Money(b.GrossUSD),
			"net_usd":    util.Money(b.NetUSD),
			"net_inr":    util.Money(b.NetINR),
		})
	}

	util.Success(c, util.Response{"weeks": items})
}
