package services

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gohan/maf/models"
	"gohan/maf/models/run"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrRunAlreadyActive = errors.New("a run is already queued or running")

// fixed width so that timestamps sort lexicographically
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func timestamp() string {
	return time.Now().UTC().Format(timestampLayout)
}

type (
	RunService struct {
		Initialized      bool
		RunRequestChan   chan run.RunRequest
		RunRequestMap    map[string]*run.RunRequest
		RunRequestMapMux sync.RWMutex
		Pipeline         *PipelineService
		Config           *models.Config
		Logger           *zap.SugaredLogger

		submitMux sync.Mutex
		scheduler *gocron.Scheduler
	}
)

func NewRunService(pipeline *PipelineService, cfg *models.Config, logger *zap.SugaredLogger) *RunService {
	rs := &RunService{
		Initialized:    false,
		RunRequestChan: make(chan run.RunRequest),
		RunRequestMap:  map[string]*run.RunRequest{},
		Pipeline:       pipeline,
		Config:         cfg,
		Logger:         logger,
	}

	rs.Init()

	return rs
}

func (rs *RunService) Init() {
	// safeguard to prevent multiple initilizations
	if !rs.Initialized {
		// spin up a go routine acting as the single writer
		// of run request updates
		go func() {
			for runRequest := range rs.RunRequestChan {
				if runRequest.State == run.Queued {
					rs.Logger.Infof("Queueing a new run request %s", runRequest.Id)
				}

				stored := runRequest
				stored.UpdatedAt = timestamp()
				rs.RunRequestMapMux.Lock()
				rs.RunRequestMap[stored.Id.String()] = &stored
				rs.RunRequestMapMux.Unlock()
			}
		}()

		rs.Initialized = true
	}
}

// Submit queues a pipeline run and executes it in the background. Only one
// run may be active at a time.
func (rs *RunService) Submit(seed int64) (run.RunRequest, error) {
	rs.submitMux.Lock()
	defer rs.submitMux.Unlock()

	if rs.AlreadyRunning() {
		return run.RunRequest{}, ErrRunAlreadyActive
	}

	id := uuid.New()
	now := timestamp()
	request := run.RunRequest{
		Id:              id,
		State:           run.Queued,
		Seed:            seed,
		Message:         "Run queued.",
		OutputDirectory: filepath.Join(rs.Config.Output.Directory, id.String()),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	rs.RunRequestChan <- request
	rs.waitForState(id, run.Queued)

	go rs.execute(request)

	return request, nil
}

func (rs *RunService) execute(request run.RunRequest) {
	request.State = run.Running
	request.Message = "Run in progress."
	rs.RunRequestChan <- request

	summary, err := rs.Pipeline.Run(context.Background(), request.Id, request.Seed, request.OutputDirectory)
	if summary != nil {
		request.Seed = summary.Seed
		request.Summary = summary
	}

	switch {
	case err != nil:
		rs.Logger.Errorw("Run failed", "id", request.Id, "error", err)
		request.State = run.Error
		request.Message = err.Error()
	case summary.NoData:
		request.State = run.Done
		request.Message = NoDataMessage
	default:
		request.State = run.Done
		request.Message = "Run complete."
	}
	rs.RunRequestChan <- request
}

// waitForState blocks until the listener has stored the given state, so a
// submitted run is immediately visible to readers.
func (rs *RunService) waitForState(id uuid.UUID, state run.State) {
	for {
		if r, ok := rs.Get(id.String()); ok && r.State == state {
			return
		}
		time.Sleep(time.Millisecond)
	}
}

func (rs *RunService) Get(id string) (run.RunRequest, bool) {
	rs.RunRequestMapMux.RLock()
	defer rs.RunRequestMapMux.RUnlock()

	r, ok := rs.RunRequestMap[id]
	if !ok {
		return run.RunRequest{}, false
	}
	return *r, true
}

// List returns every run request, oldest first.
func (rs *RunService) List() []run.RunRequest {
	rs.RunRequestMapMux.RLock()
	defer rs.RunRequestMapMux.RUnlock()

	requests := make([]run.RunRequest, 0, len(rs.RunRequestMap))
	for _, r := range rs.RunRequestMap {
		requests = append(requests, *r)
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt < requests[j].CreatedAt
	})
	return requests
}

func (rs *RunService) AlreadyRunning() bool {
	rs.RunRequestMapMux.RLock()
	defer rs.RunRequestMapMux.RUnlock()

	for _, r := range rs.RunRequestMap {
		if r.IsActive() {
			return true
		}
	}
	return false
}

// Schedule registers a daily run at the given UTC time of day ("04:00:00").
func (rs *RunService) Schedule(at string) error {
	s := gocron.NewScheduler(time.UTC)

	_, err := s.Every(1).Days().At(at).Do(func() {
		rs.Logger.Infof("[%s] - Running scheduled aggregation..", time.Now())
		if _, err := rs.Submit(rs.Config.Input.Seed); err != nil {
			rs.Logger.Warnw("Scheduled run not started", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.StartAsync()
	rs.scheduler = s
	return nil
}

func (rs *RunService) Stop() {
	if rs.scheduler != nil {
		rs.scheduler.Stop()
	}
}
