package handler

import (
	"net/http"

	"github.com/yashkabra143/TimeTrakr/internal/models"
	"github.com/yashkabra143/TimeTrakr/internal/repository"
	"github.com/yashkabra143/TimeTrakr/internal/util"

	"github.com/gin-gonic/gin"
)

// SettingsHandler manages the two singleton config rows. Updates
// affect future entries only; stored snapshots never move.
type SettingsHandler struct {
	Store *repository.Store
}

func NewSettingsHandler(store *repository.Store) *SettingsHandler {
	return &SettingsHandler{Store: store}
}

type deductionsReq struct {
	ServiceFeePercent float64 `json:"service_fee_percent"`
	TDSPercent        float64 `json:"tds_percent"`
	GSTPercent        float64 `json:"gst_percent"`
	TransferFeeUSD    float64 `json:"transfer_fee_usd"`
}

func (h *SettingsHandler) GetDeductions(c *gin.Context) {
	cfg, err := h.Store.Settings.GetDeductions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{
		"service_fee_percent": cfg.ServiceFeePercent,
		"tds_percent":         cfg.TDSPercent,
		"gst_percent":         cfg.GSTPercent,
		"transfer_fee_usd":    cfg.TransferFeeUSD,
		"updated_at":          cfg.UpdatedAt,
	})
}

func (h *SettingsHandler) UpdateDeductions(c *gin.Context) {
	var req deductionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if req.ServiceFeePercent < 0 || req.TDSPercent < 0 || req.GSTPercent < 0 ||
		req.ServiceFeePercent > 100 || req.TDSPercent > 100 || req.GSTPercent > 100 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "percentages must be between 0 and 100")
		return
	}
	if req.TransferFeeUSD < 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "transfer fee cannot be negative")
		return
	}

	cfg := models.DeductionConfig{
		ServiceFeePercent: req.ServiceFeePercent,
		TDSPercent:        req.TDSPercent,
		GSTPercent:        req.GSTPercent,
		TransferFeeUSD:    req.TransferFeeUSD,
	}
	if err := h.Store.Settings.UpdateDeductions(c.Request.Context(), &cfg); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "saved"})
}

type currencyReq struct {
	USDToINR float64 `json:"usd_to_inr" binding:"required"`
}

func (h *SettingsHandler) GetCurrency(c *gin.Context) {
	cfg, err := h.Store.Settings.GetCurrency(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{
		"usd_to_inr":   cfg.USDToINR,
		"last_updated": cfg.LastUpdated,
	})
}

func (h *SettingsHandler) UpdateCurrency(c *gin.Context) {
	var req currencyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if req.USDToINR <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "exchange rate must be positive")
		return
	}

	cfg, err := h.Store.Settings.UpdateCurrency(c.Request.Context(), req.USDToINR)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{
		"usd_to_inr":   cfg.USDToINR,
		"last_updated": cfg.LastUpdated,
	})
}
