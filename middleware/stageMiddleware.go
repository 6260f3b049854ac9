package middleware

import (
	"gohan/maf/contexts"
	"gohan/maf/models/constants/stage"
	errorDtos "gohan/maf/models/dtos/errors"
	"net/http"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure that an optionally provided `stage` HTTP query parameter is one of the configured stages
*/
func ValidateOptionalStageAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.MafContext)

		stageQP := c.QueryParam("stage")
		if len(stageQP) > 0 {
			known := stage.FromStrings(gc.Config.Input.Stages)
			if !stage.IsKnownStage(stageQP, known) {
				return c.JSON(http.StatusBadRequest, errorDtos.CreateSimpleBadRequest("Unknown stage '"+stageQP+"'!"))
			}
			gc.Stage = stage.CastToStage(stageQP, known)
		}

		return next(gc)
	}
}
