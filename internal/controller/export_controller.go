package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"masalog-backend/internal/dto"
	"masalog-backend/internal/model"
	"masalog-backend/internal/service"
)

type ExportController struct {
	exportService service.ExportService
}

func NewExportController(exportService service.ExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

func RegisterExportRoutes(router *gin.Engine, controller *ExportController) {
	v1 := router.Group("/api/v1/export")
	{
		v1.POST("", controller.Export)
	}
}

// Export godoc
// @Summary      Export the filtered records to Excel
// @Description  Writes the current filtered+sorted sequence as an xlsx file under the export directory. The file appears atomically; a failed export leaves nothing behind. Returns 409 while a previous export is still running.
// @Tags         export
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExportRequest  true  "Destination filename (.xlsx appended if missing)"
// @Success      200  {object}  model.Response{data=dto.ExportResponse} "Export finished"
// @Failure      400  {object}  model.Response "Invalid filename or nothing to export"
// @Failure      409  {object}  model.Response "An export is already in progress"
// @Failure      500  {object}  model.Response "Write failed"
// @Router       /api/v1/export [post]
func (c *ExportController) Export(ctx *gin.Context) {
	var req dto.ExportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}

	result, err := c.exportService.Export(req.Filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportInProgress):
			ctx.JSON(http.StatusConflict, model.NewResponse(err.Error(), nil))
		case errors.Is(err, service.ErrNoRecords):
			ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
		default:
			log.Error().Err(err).Str("filename", req.Filename).Msg("Export failed")
			ctx.JSON(http.StatusInternalServerError, model.NewResponse("Export failed", nil))
		}
		return
	}

	ctx.JSON(http.StatusOK, model.NewResponse("Export finished", result))
}
