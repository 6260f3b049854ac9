package stages

import (
	"gohan/maf/contexts"
	"gohan/maf/models/constants/stage"
	"gohan/maf/models/dtos"
	"net/http"

	"github.com/labstack/echo"
)

func GetStages(c echo.Context) error {
	cfg := c.(*contexts.MafContext).Config

	return c.JSON(http.StatusOK, dtos.StagesResponseDTO{
		Stages:          stage.FromStrings(cfg.Input.Stages),
		SamplesPerStage: cfg.Input.SamplesPerStage,
		CodingVariants:  cfg.Input.CodingVariants,
		FileExtension:   cfg.Input.FileExtension,
	})
}
