package middleware

import (
	"gohan/maf/contexts"
	errorDtos "gohan/maf/models/dtos/errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo"
)

/*
Echo middleware to ensure the `:id` path parameter names a known run
*/
func MandateRunIdParam(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.MafContext)

		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, errorDtos.CreateSimpleBadRequest("Malformed run id '"+id+"'!"))
		}

		runRequest, ok := gc.RunService.Get(id)
		if !ok {
			return c.JSON(http.StatusNotFound, errorDtos.CreateSimpleNotFound("No run with id '"+id+"'!"))
		}
		gc.Run = runRequest

		return next(gc)
	}
}
