package contexts

import (
	"gohan/maf/models"
	"gohan/maf/models/constants"
	"gohan/maf/models/run"
	"gohan/maf/services"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type (
	// "Helper" Context to pass into routes that need
	//  the run service and other variables
	MafContext struct {
		echo.Context
		Config     *models.Config
		RunService *services.RunService
		Log        *zap.SugaredLogger

		// calibrated by middleware
		Stage constants.Stage
		Seed  int64
		Run   run.RunRequest
	}
)
