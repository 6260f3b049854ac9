package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"gohan/maf/contexts"
	gam "gohan/maf/middleware"
	"gohan/maf/models"
	serviceInfo "gohan/maf/models/constants/service-info"
	runsMvc "gohan/maf/mvc/runs"
	serviceInfoMvc "gohan/maf/mvc/service-info"
	stagesMvc "gohan/maf/mvc/stages"
	"gohan/maf/services"
	"gohan/maf/services/visualizer"
	"gohan/maf/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables (and the optional config file)
	cfg, err := models.LoadConfig(os.Getenv("MAF_CONFIG_FILE"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	defer logger.Sync()

	logger.Infof("Using : \n"+
		"\tDebug : %t \n"+
		"\tMode : %s \n\n"+

		"\tBase Folder : %s \n"+
		"\tStages : %s \n"+
		"\tSamples Per Stage : %d \n"+
		"\tCoding Variants : %s \n"+
		"\tFile Extension : %s \n"+
		"\tSeed : %d \n\n"+

		"\tOutput Directory : %s \n"+
		"\tSpreadsheet : %s \n"+
		"\tChart : %s \n\n"+

		"\tElasticsearch Url : %s \n"+
		"\tElasticsearch Username : %s \n",

		cfg.Debug, cfg.Mode,
		cfg.Input.BaseFolder,
		strings.Join(cfg.Input.Stages, ","),
		cfg.Input.SamplesPerStage,
		strings.Join(cfg.Input.CodingVariants, ","),
		cfg.Input.FileExtension,
		cfg.Input.Seed,
		cfg.Output.Directory, cfg.Output.Spreadsheet, cfg.Output.Chart,
		cfg.Elasticsearch.Url, cfg.Elasticsearch.Username)
	// --

	// Service Connections:
	// -- Elasticsearch (optional)
	var indexer *services.IndexingService
	if cfg.Elasticsearch.Url != "" {
		es, err := utils.CreateEsConnection(cfg)
		if err != nil {
			logger.Fatal(err)
		}
		indexer = services.NewIndexingService(es, cfg.Elasticsearch.IndexPrefix, logger)
	}

	pipeline := services.NewPipelineService(cfg, indexer, visualizer.NewDisplayer(cfg.Output.DisplayCommand), logger)

	if cfg.Mode == models.ModeRun {
		summary, err := pipeline.Run(context.Background(), uuid.New(), cfg.Input.Seed, cfg.Output.Directory)
		if err != nil {
			logger.Fatalw("Run failed", "error", err)
		}
		if !summary.NoData {
			logger.Infow("Outputs written", "spreadsheet", summary.SpreadsheetPath, "chart", summary.ChartPath, "seed", summary.Seed)
		}
		return
	}

	// Service Singletons
	rs := services.NewRunService(pipeline, cfg, logger)
	if cfg.Api.Schedule != "" {
		if err := rs.Schedule(cfg.Api.Schedule); err != nil {
			logger.Fatalw("Invalid schedule", "schedule", cfg.Api.Schedule, "error", err)
		}
		defer rs.Stop()
	}

	e := NewServer(cfg, rs)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}

// NewServer configures the echo instance and its routes.
func NewServer(cfg *models.Config, rs *services.RunService) *echo.Echo {
	e := echo.New()

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))

	// -- Override handlers with "custom" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.MafContext{
				Context:    c,
				Config:     cfg,
				RunService: rs,
				Log:        rs.Logger,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		rs.Logger.Infof("Root hit!")
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Stages
	e.GET("/stages", stagesMvc.GetStages)

	// -- Runs
	e.GET("/runs/run", runsMvc.RunsRun,
		// middleware
		gam.CalibrateOptionalSeedAttribute)
	e.GET("/runs/requests", runsMvc.GetAllRunRequests)
	e.GET("/runs/:id", runsMvc.GetRunRequest,
		// middleware
		gam.MandateRunIdParam)
	e.GET("/runs/:id/counts", runsMvc.GetRunCounts,
		// middleware
		gam.MandateRunIdParam,
		gam.ValidateOptionalStageAttribute)
	e.GET("/runs/:id/summary", runsMvc.GetRunSummary,
		// middleware
		gam.MandateRunIdParam)
	e.GET("/runs/:id/spreadsheet", runsMvc.ServeRunSpreadsheet,
		// middleware
		gam.MandateRunIdParam)
	e.GET("/runs/:id/chart", runsMvc.ServeRunChart,
		// middleware
		gam.MandateRunIdParam)

	return e
}
