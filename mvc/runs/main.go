package runs

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"gohan/maf/contexts"
	"gohan/maf/models/dtos"
	errorDtos "gohan/maf/models/dtos/errors"
	"gohan/maf/models/maf"
	"gohan/maf/models/run"
	"gohan/maf/services"

	"github.com/labstack/echo"
)

func RunsRun(c echo.Context) error {
	gc := c.(*contexts.MafContext)
	gc.Log.Infof("RunsRun hit! (seed %d)", gc.Seed)

	request, err := gc.RunService.Submit(gc.Seed)
	if errors.Is(err, services.ErrRunAlreadyActive) {
		return c.JSON(http.StatusConflict, errorDtos.CreateSimpleConflict(err.Error()))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorDtos.CreateSimpleInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusAccepted, run.RunResponseDTO{
		Id:      request.Id,
		State:   request.State,
		Seed:    request.Seed,
		Message: request.Message,
	})
}

func GetAllRunRequests(c echo.Context) error {
	gc := c.(*contexts.MafContext)
	return c.JSON(http.StatusOK, gc.RunService.List())
}

func GetRunRequest(c echo.Context) error {
	return c.JSON(http.StatusOK, c.(*contexts.MafContext).Run)
}

func GetRunCounts(c echo.Context) error {
	gc := c.(*contexts.MafContext)

	summary, ok := finishedSummary(gc)
	if !ok {
		return notFinished(gc)
	}

	results := make([]maf.StageCount, 0, len(summary.Counts))
	total := 0
	for _, sc := range summary.Counts {
		if gc.Stage != "" && sc.Stage != gc.Stage {
			continue
		}
		results = append(results, sc)
		total += sc.Count
	}

	return c.JSON(http.StatusOK, dtos.CountsResponseDTO{
		RunId:   gc.Run.Id.String(),
		Total:   total,
		Results: results,
	})
}

func GetRunSummary(c echo.Context) error {
	gc := c.(*contexts.MafContext)

	summary, ok := finishedSummary(gc)
	if !ok {
		return notFinished(gc)
	}
	if summary.SummaryPath == "" {
		return c.JSON(http.StatusOK, summary)
	}

	container, err := services.ReadSummary(summary.SummaryPath)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorDtos.CreateSimpleInternalServerError(err.Error()))
	}
	return c.JSON(http.StatusOK, container.Data())
}

func ServeRunSpreadsheet(c echo.Context) error {
	gc := c.(*contexts.MafContext)

	summary, ok := finishedSummary(gc)
	if !ok {
		return notFinished(gc)
	}
	return serveOutput(c, summary.SpreadsheetPath)
}

func ServeRunChart(c echo.Context) error {
	gc := c.(*contexts.MafContext)

	summary, ok := finishedSummary(gc)
	if !ok {
		return notFinished(gc)
	}
	return serveOutput(c, summary.ChartPath)
}

func finishedSummary(gc *contexts.MafContext) (*maf.RunSummary, bool) {
	if gc.Run.State != run.Done || gc.Run.Summary == nil {
		return nil, false
	}
	return gc.Run.Summary, true
}

func notFinished(gc *contexts.MafContext) error {
	msg := fmt.Sprintf("Run %s is %s", gc.Run.Id, gc.Run.State)
	return gc.JSON(http.StatusNotFound, errorDtos.CreateSimpleNotFound(msg))
}

func serveOutput(c echo.Context, path string) error {
	if path == "" {
		return c.JSON(http.StatusNotFound, errorDtos.CreateSimpleNotFound("This run produced no output."))
	}
	if _, err := os.Stat(path); err != nil {
		return c.JSON(http.StatusNotFound, errorDtos.CreateSimpleNotFound(fmt.Sprintf("Output %s is no longer available.", path)))
	}
	return c.Attachment(path, filepath.Base(path))
}
