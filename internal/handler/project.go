package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/models"
	"github.com/yashkabra143/TimeTrakr/internal/repository"
	"github.com/yashkabra143/TimeTrakr/internal/util"

	"github.com/gin-gonic/gin"
)

// ProjectHandler owns project CRUD.
type ProjectHandler struct {
	Store *repository.Store
}

func NewProjectHandler(store *repository.Store) *ProjectHandler {
	return &ProjectHandler{Store: store}
}

type projectReq struct {
	Name  string  `json:"name" binding:"required,max=128"`
	Type  string  `json:"type" binding:"required"`
	Rate  float64 `json:"rate" binding:"required"`
	Color string  `json:"color" binding:"max=16"`
}

type projectResp struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Rate      float64   `json:"rate"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func toProjectResp(p *models.Project) projectResp {
	return projectResp{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Rate:      p.Rate,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
	}
}

func (h *ProjectHandler) validate(c *gin.Context, req *projectReq) bool {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "project name is required")
		return false
	}
	if err := util.ValidateProjectType(req.Type); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return false
	}
	if err := util.ValidateRate(req.Rate); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return false
	}
	if err := util.ValidateColor(req.Color); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return false
	}
	return true
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Store.Projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]projectResp, 0, len(projects))
	for i := range projects {
		items = append(items, toProjectResp(&projects[i]))
	}
	util.Success(c, util.Response{"items": items})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if !h.validate(c, &req) {
		return
	}

	project := models.Project{
		Name:  req.Name,
		Type:  req.Type,
		Rate:  req.Rate,
		Color: req.Color,
	}
	if err := h.Store.Projects.Create(c.Request.Context(), &project); err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{"project": toProjectResp(&project)})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if !h.validate(c, &req) {
		return
	}

	project := models.Project{
		ID:    id,
		Name:  req.Name,
		Type:  req.Type,
		Rate:  req.Rate,
		Color: req.Color,
	}
	if err := h.Store.Projects.Update(c.Request.Context(), &project); err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{"project": toProjectResp(&project)})
}

// Delete removes the project and, with it, every entry logged against
// it. The UI warns before calling this; there is no undo.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Store.Projects.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{"message": "deleted"})
}
