package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/earnings"
	"github.com/yashkabra143/TimeTrakr/internal/repository"
	"github.com/yashkabra143/TimeTrakr/internal/service"
	"github.com/yashkabra143/TimeTrakr/internal/timeparse"
	"github.com/yashkabra143/TimeTrakr/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps the core error taxonomy onto the response
// envelope. Rejections carry their computed figure so the UI can show
// "only $X left" instead of a bare failure.
func respondError(c *gin.Context, err error) {
	var invalid *timeparse.InvalidInputError
	var exceeded *earnings.BudgetExceededError
	var insufficient *earnings.InsufficientFundsError

	switch {
	case errors.As(err, &invalid):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, invalid.Error())
	case errors.Is(err, service.ErrInvalidAmount):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	case errors.As(err, &exceeded):
		util.ErrorData(c, http.StatusBadRequest, util.CodeBudget, exceeded.Error(), util.Response{
			"requested": util.Money(exceeded.RequestedUSD),
			"remaining": util.Money(exceeded.RemainingUSD),
		})
	case errors.As(err, &insufficient):
		util.ErrorData(c, http.StatusBadRequest, util.CodeBalance, insufficient.Error(), util.Response{
			"requested": util.Money(insufficient.RequestedUSD),
			"available": util.Money(insufficient.AvailableUSD),
		})
	case errors.Is(err, earnings.ErrMissingConfiguration), errors.Is(err, repository.ErrNotConfigured):
		util.Error(c, http.StatusBadRequest, util.CodeNotConfigured, "deduction and currency settings must be configured first")
	case errors.Is(err, repository.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}

// idParam reads and checks the :id path parameter.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// parseEntryDate accepts the formats historical clients have sent.
// Defaults to today; dates in the future are rejected.
func parseEntryDate(raw string) (time.Time, error) {
	t := time.Now()
	if raw != "" {
		layouts := []string{
			time.RFC3339,          // 2025-12-03T00:00:00+05:30
			"2006-01-02T15:04:05", // 2025-12-03T00:00:00
			"2006-01-02",          // 2025-12-03
		}
		parsed := false
		for _, layout := range layouts {
			if v, err := time.Parse(layout, raw); err == nil {
				t = v
				parsed = true
				break
			}
		}
		if !parsed {
			return time.Time{}, errors.New("date must be YYYY-MM-DD")
		}
	}
	if t.Format("2006-01-02") > time.Now().Format("2006-01-02") {
		return time.Time{}, errors.New("date cannot be in the future")
	}
	return t, nil
}

// rawValue decodes a JSON field that may arrive as a string or a bare
// number, keeping the characters exactly as the client sent them. The
// original spelling matters: "1.50" and 1.5 parse to the same float
// but are different time inputs.
type rawValue string

func (v *rawValue) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = rawValue(s)
		return nil
	}
	*v = rawValue(b)
	return nil
}
