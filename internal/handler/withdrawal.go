package handler

import (
	"net/http"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/models"
	"github.com/yashkabra143/TimeTrakr/internal/repository"
	"github.com/yashkabra143/TimeTrakr/internal/service"
	"github.com/yashkabra143/TimeTrakr/internal/util"

	"github.com/gin-gonic/gin"
)

// WithdrawalHandler owns withdrawal endpoints.
type WithdrawalHandler struct {
	Svc   *service.Ledger
	Store *repository.Store
}

func NewWithdrawalHandler(svc *service.Ledger, store *repository.Store) *WithdrawalHandler {
	return &WithdrawalHandler{Svc: svc, Store: store}
}

type createWithdrawalReq struct {
	NetEarnings    float64 `json:"net_earnings" binding:"required"`
	TransactionFee float64 `json:"transaction_fee"`
	Date           string  `json:"date"`
	Notes          string  `json:"notes" binding:"max=255"`
}

type withdrawalResp struct {
	ID               uint      `json:"id"`
	NetEarnings      string    `json:"net_earnings"`
	TransactionFee   string    `json:"transaction_fee"`
	WithdrawalAmount string    `json:"withdrawal_amount"`
	WithdrawalDate   time.Time `json:"withdrawal_date"`
	PaymentStatus    string    `json:"payment_status"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

func toWithdrawalResp(w *models.Withdrawal) withdrawalResp {
	return withdrawalResp{
		ID:               w.ID,
		NetEarnings:      util.Money(w.NetEarnings),
		TransactionFee:   util.Money(w.TransactionFee),
		WithdrawalAmount: util.Money(w.WithdrawalAmount),
		WithdrawalDate:   w.WithdrawalDate,
		PaymentStatus:    w.PaymentStatus,
		Notes:            w.Notes,
		CreatedAt:        w.CreatedAt,
	}
}

func (h *WithdrawalHandler) Create(c *gin.Context) {
	var req createWithdrawalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if req.NetEarnings <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "net earnings must be positive")
		return
	}
	if req.TransactionFee < 0 || req.TransactionFee > req.NetEarnings {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid transaction fee")
		return
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	w, err := h.Svc.CreateWithdrawal(c.Request.Context(), service.CreateWithdrawalInput{
		NetEarnings:    req.NetEarnings,
		TransactionFee: req.TransactionFee,
		Date:           date,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{"withdrawal": toWithdrawalResp(w)})
}

func (h *WithdrawalHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	withdrawals, err := h.Store.Withdrawals.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	balance, err := h.Svc.AvailableBalance(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]withdrawalResp, 0, len(withdrawals))
	var withdrawn float64
	for i := range withdrawals {
		items = append(items, toWithdrawalResp(&withdrawals[i]))
		withdrawn += withdrawals[i].NetEarnings
	}

	util.Success(c, util.Response{
		"items":             items,
		"total_withdrawn":   util.Money(withdrawn),
		"available_balance": util.Money(balance),
	})
}

type statusReq struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pending received"`
}

func (h *WithdrawalHandler) SetStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "payment_status must be pending or received")
		return
	}

	if err := h.Svc.SetWithdrawalStatus(c.Request.Context(), id, req.PaymentStatus); err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{"message": "updated"})
}

func (h *WithdrawalHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Store.Withdrawals.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{"message": "deleted"})
}
