package middleware

import (
	"gohan/maf/contexts"
	errorDtos "gohan/maf/models/dtos/errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo"
)

/*
Echo middleware to prepare the context for an optionally provided `seed` HTTP query parameter.
The configured seed is used when absent.
*/
func CalibrateOptionalSeedAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.MafContext)

		gc.Seed = gc.Config.Input.Seed
		if seedQP := c.QueryParam("seed"); len(seedQP) > 0 {
			seed, err := strconv.ParseInt(seedQP, 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errorDtos.CreateSimpleBadRequest("Invalid seed '"+seedQP+"', expected an integer!"))
			}
			gc.Seed = seed
		}

		return next(gc)
	}
}
