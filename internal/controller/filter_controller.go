package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"masalog-backend/internal/dto"
	"masalog-backend/internal/filter"
	"masalog-backend/internal/model"
	"masalog-backend/internal/service"
	"masalog-backend/internal/store"
)

type FilterController struct {
	store       *store.ResultStore
	viewService service.LogViewService
}

func NewFilterController(resultStore *store.ResultStore, viewService service.LogViewService) *FilterController {
	return &FilterController{
		store:       resultStore,
		viewService: viewService,
	}
}

func RegisterFilterRoutes(router *gin.Engine, controller *FilterController) {
	v1 := router.Group("/api/v1/filters")
	{
		v1.GET("", controller.ListConditions)
		v1.POST("", controller.AddCondition)
		v1.PUT("/:id", controller.UpdateCondition)
		v1.DELETE("/:id", controller.RemoveCondition)
		v1.POST("/apply", controller.ApplyConditions)
		v1.POST("/clear", controller.ClearConditions)
	}
}

// ListConditions godoc
// @Summary      List pending filter conditions
// @Tags         filters
// @Produce      json
// @Success      200  {object}  model.Response{data=[]filter.Condition} "Pending conditions"
// @Router       /api/v1/filters [get]
func (c *FilterController) ListConditions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, model.NewResponse("ok", c.store.PendingConditions()))
}

// AddCondition godoc
// @Summary      Add a filter condition
// @Description  Adds a pending row. Rows with an empty key or value are kept but ignored until filled in. The row takes effect on apply.
// @Tags         filters
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConditionRequest  true  "Condition (include defaults to true)"
// @Success      200  {object}  model.Response{data=filter.Condition} "Created condition with its ID"
// @Failure      400  {object}  model.Response "Invalid request body"
// @Router       /api/v1/filters [post]
func (c *FilterController) AddCondition(ctx *gin.Context) {
	var req dto.ConditionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}
	cond := c.store.AddCondition(req.Key, req.Value, req.IncludeOrDefault(), req.Fuzzy)
	ctx.JSON(http.StatusOK, model.NewResponse("Condition added", cond))
}

// UpdateCondition godoc
// @Summary      Edit a pending filter condition
// @Tags         filters
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "Condition ID"
// @Param        body  body  dto.ConditionRequest  true  "New condition values"
// @Success      200  {object}  model.Response{data=filter.Condition} "Updated condition"
// @Failure      400  {object}  model.Response "Invalid ID or body"
// @Failure      404  {object}  model.Response "Unknown condition ID"
// @Router       /api/v1/filters/{id} [put]
func (c *FilterController) UpdateCondition(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid condition ID", nil))
		return
	}
	var req dto.ConditionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}
	cond, err := c.store.UpdateCondition(id, req.Key, req.Value, req.IncludeOrDefault(), req.Fuzzy)
	if err != nil {
		if errors.Is(err, filter.ErrConditionNotFound) {
			ctx.JSON(http.StatusNotFound, model.NewResponse(err.Error(), nil))
			return
		}
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Failed to update condition", nil))
		return
	}
	ctx.JSON(http.StatusOK, model.NewResponse("Condition updated", cond))
}

// RemoveCondition godoc
// @Summary      Remove a filter condition
// @Description  Removes the row from both the pending and active sets and re-renders from page 1.
// @Tags         filters
// @Produce      json
// @Param        id  path  int  true  "Condition ID"
// @Success      200  {object}  model.Response{data=dto.LogPageResponse} "Re-rendered first page"
// @Failure      404  {object}  model.Response "Unknown condition ID"
// @Router       /api/v1/filters/{id} [delete]
func (c *FilterController) RemoveCondition(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid condition ID", nil))
		return
	}
	if err := c.store.RemoveCondition(id); err != nil {
		ctx.JSON(http.StatusNotFound, model.NewResponse(err.Error(), nil))
		return
	}
	ctx.JSON(http.StatusOK, model.NewResponse("Condition removed", c.viewService.View(0)))
}

// ApplyConditions godoc
// @Summary      Apply the pending conditions
// @Description  Freezes the pending rows (minus inert ones) into the active filter set and re-renders from page 1.
// @Tags         filters
// @Produce      json
// @Success      200  {object}  model.Response{data=dto.LogPageResponse} "Re-rendered first page"
// @Router       /api/v1/filters/apply [post]
func (c *FilterController) ApplyConditions(ctx *gin.Context) {
	c.store.ApplyConditions()
	ctx.JSON(http.StatusOK, model.NewResponse("Filters applied", c.viewService.View(0)))
}

// ClearConditions godoc
// @Summary      Clear all filter conditions
// @Description  Drops every row, resets the ID counter and re-renders from page 1.
// @Tags         filters
// @Produce      json
// @Success      200  {object}  model.Response{data=dto.LogPageResponse} "Re-rendered first page"
// @Router       /api/v1/filters/clear [post]
func (c *FilterController) ClearConditions(ctx *gin.Context) {
	c.store.ClearConditions()
	ctx.JSON(http.StatusOK, model.NewResponse("Filters cleared", c.viewService.View(0)))
}
