package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"masalog-backend/internal/dto"
	"masalog-backend/internal/filter"
	"masalog-backend/internal/model"
	"masalog-backend/internal/query"
	"masalog-backend/internal/service"
	"masalog-backend/internal/util"
)

type LogController struct {
	fetchService service.FetchService
	viewService  service.LogViewService
	loc          *time.Location
}

func NewLogController(fetchService service.FetchService, viewService service.LogViewService, loc *time.Location) *LogController {
	return &LogController{
		fetchService: fetchService,
		viewService:  viewService,
		loc:          loc,
	}
}

func RegisterLogRoutes(router *gin.Engine, controller *LogController) {
	v1 := router.Group("/api/v1/logs")
	{
		v1.POST("/:name/fetch", controller.FetchLog)
		v1.GET("", controller.GetLogs)
	}
	view := router.Group("/api/v1/view")
	{
		view.PUT("/sort", controller.SetSortOrder)
		view.PUT("/time", controller.SetTimeFilter)
	}
}

// FetchLog godoc
// @Summary      Fetch a remote log
// @Description  One-shot pull of the named log from the upstream endpoint. Extracted records fully replace the current result set. Returns 409 while another fetch is running.
// @Tags         logs
// @Produce      json
// @Param        name  path   string  true   "Log name"
// @Param        env   query  string  false  "Target environment (prod or test, default prod)" Enums(prod, test)
// @Success      200  {object}  model.Response{data=dto.FetchResponse} "Fetch finished"
// @Failure      400  {object}  model.Response "Missing log name"
// @Failure      409  {object}  model.Response "A fetch is already in progress"
// @Failure      502  {object}  model.Response "Upstream request failed"
// @Router       /api/v1/logs/{name}/fetch [post]
func (c *LogController) FetchLog(ctx *gin.Context) {
	logName := ctx.Param("name")
	env := ctx.DefaultQuery("env", "prod")
	testEnv := env == "test"

	count, err := c.fetchService.Fetch(ctx.Request.Context(), logName, testEnv)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyLogName):
			ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
		case errors.Is(err, service.ErrFetchInProgress):
			ctx.JSON(http.StatusConflict, model.NewResponse(err.Error(), nil))
		default:
			log.Error().Err(err).Str("log_name", logName).Msg("Log fetch failed")
			ctx.JSON(http.StatusBadGateway, model.NewResponse("Failed to fetch log from upstream", nil))
		}
		return
	}

	ctx.JSON(http.StatusOK, model.NewResponse("Fetch finished", dto.FetchResponse{
		LogName:     logName,
		Environment: env,
		RecordCount: count,
	}))
}

// GetLogs godoc
// @Summary      Get the current page of records
// @Description  Renders the active view (filters, time bound, sort order) of the latest fetch. The requested page becomes the current page, clamped to the available range.
// @Tags         logs
// @Produce      json
// @Param        page  query  int  false  "Page number (default: current page)" minimum(1)
// @Success      200  {object}  model.Response{data=dto.LogPageResponse} "Current page"
// @Router       /api/v1/logs [get]
func (c *LogController) GetLogs(ctx *gin.Context) {
	page := 0
	if pageStr := ctx.Query("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid page number", nil))
			return
		}
		page = parsed
	}

	ctx.JSON(http.StatusOK, model.NewResponse("ok", c.viewService.View(page)))
}

// SetSortOrder godoc
// @Summary      Set the sort order
// @Description  Orders records by timestamp, newest or oldest first. Resets the view to page 1.
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SortRequest  true  "Sort order (newest_first or oldest_first)"
// @Success      200  {object}  model.Response{data=dto.LogPageResponse} "Re-rendered first page"
// @Failure      400  {object}  model.Response "Unknown sort order"
// @Router       /api/v1/view/sort [put]
func (c *LogController) SetSortOrder(ctx *gin.Context) {
	var req dto.SortRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}
	order := query.SortOrder(req.Order)
	if !query.ValidSortOrder(order) {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Unknown sort order", nil))
		return
	}

	c.viewService.SetSortOrder(order)
	ctx.JSON(http.StatusOK, model.NewResponse("Sort order updated", c.viewService.View(0)))
}

// SetTimeFilter godoc
// @Summary      Set the time filter
// @Description  Bounds records by timestamp: all, before, after, or an inclusive range. Boundary times are RFC3339, epoch milliseconds, or "YYYY-MM-DD HH:MM:SS" in the viewer timezone. Resets the view to page 1.
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TimeFilterRequest  true  "Time filter"
// @Success      200  {object}  model.Response{data=dto.LogPageResponse} "Re-rendered first page"
// @Failure      400  {object}  model.Response "Unknown mode or unparseable boundary"
// @Router       /api/v1/view/time [put]
func (c *LogController) SetTimeFilter(ctx *gin.Context) {
	var req dto.TimeFilterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}

	tf, err := c.buildTimeFilter(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
		return
	}

	c.viewService.SetTimeFilter(tf)
	ctx.JSON(http.StatusOK, model.NewResponse("Time filter updated", c.viewService.View(0)))
}

func (c *LogController) buildTimeFilter(req dto.TimeFilterRequest) (filter.TimeFilter, error) {
	mode := filter.TimeFilterMode(req.Mode)
	if !filter.ValidMode(mode) {
		return filter.TimeFilter{}, errors.New("unknown time filter mode")
	}
	tf := filter.TimeFilter{Mode: mode}

	var err error
	switch mode {
	case filter.TimeFilterBefore:
		tf.Before, err = util.ParseTimeFlexible(req.Before, c.loc)
	case filter.TimeFilterAfter:
		tf.After, err = util.ParseTimeFlexible(req.After, c.loc)
	case filter.TimeFilterRange:
		tf.Start, err = util.ParseTimeFlexible(req.Start, c.loc)
		if err == nil {
			tf.End, err = util.ParseTimeFlexible(req.End, c.loc)
		}
		if err == nil && tf.End.Before(tf.Start) {
			err = errors.New("range end is before range start")
		}
	}
	if err != nil {
		return filter.TimeFilter{}, err
	}
	return tf, nil
}
