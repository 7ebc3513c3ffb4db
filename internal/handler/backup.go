package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/models"
	"github.com/yashkabra143/TimeTrakr/internal/repository"
	"github.com/yashkabra143/TimeTrakr/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BackupHandler writes JSON snapshots of the whole ledger to the
// backup directory and tracks them in the backups table.
type BackupHandler struct {
	Store     *repository.Store
	BackupDir string
}

func NewBackupHandler(store *repository.Store, backupDir string) *BackupHandler {
	return &BackupHandler{Store: store, BackupDir: backupDir}
}

// backupData is the file layout: all five collections plus the moment
// the snapshot was taken.
type backupData struct {
	Created     time.Time               `json:"created"`
	Projects    []models.Project        `json:"projects"`
	Deductions  *models.DeductionConfig `json:"deductions,omitempty"`
	Currency    *models.CurrencyConfig  `json:"currency,omitempty"`
	Entries     []models.TimeEntry      `json:"entries"`
	Withdrawals []models.Withdrawal     `json:"withdrawals"`
}

func (h *BackupHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	data := backupData{Created: time.Now()}

	var err error
	if data.Projects, err = h.Store.Projects.List(ctx); err != nil {
		respondError(c, err)
		return
	}
	if data.Entries, _, err = h.Store.Entries.List(ctx, repository.EntryFilter{}); err != nil {
		respondError(c, err)
		return
	}
	if data.Withdrawals, err = h.Store.Withdrawals.List(ctx); err != nil {
		respondError(c, err)
		return
	}
	// absent config rows are simply omitted from the snapshot
	data.Deductions, _ = h.Store.Settings.GetDeductions(ctx)
	data.Currency, _ = h.Store.Settings.GetCurrency(ctx)

	raw, err := json.MarshalIndent(&data, "", "  ")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "serialize backup failed")
		return
	}

	if err := os.MkdirAll(h.BackupDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create backup dir failed")
		return
	}

	fileName := fmt.Sprintf("backup-%s.json", uuid.New().String())
	filePath := filepath.Join(h.BackupDir, fileName)

	if err := os.WriteFile(filePath, raw, 0o600); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write backup file failed")
		return
	}

	backup := models.Backup{
		FileName: fileName,
		FilePath: filePath,
		Size:     int64(len(raw)),
	}
	if err := h.Store.Backups.Create(ctx, &backup); err != nil {
		_ = os.Remove(filePath)
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"backup": gin.H{
			"id":         backup.ID,
			"file_name":  backup.FileName,
			"size":       backup.Size,
			"created_at": backup.CreatedAt,
		},
	})
}

func (h *BackupHandler) List(c *gin.Context) {
	backups, err := h.Store.Backups.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(backups))
	for _, b := range backups {
		items = append(items, gin.H{
			"id":         b.ID,
			"file_name":  b.FileName,
			"size":       b.Size,
			"created_at": b.CreatedAt,
		})
	}
	util.Success(c, util.Response{"items": items})
}

func (h *BackupHandler) Download(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	backup, err := h.Store.Backups.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := os.Stat(backup.FilePath); err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup file missing on disk")
		return
	}

	c.FileAttachment(backup.FilePath, backup.FileName)
}

func (h *BackupHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	backup, err := h.Store.Backups.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Store.Backups.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	_ = os.Remove(backup.FilePath)

	util.Success(c, util.Response{"message": "deleted"})
}
