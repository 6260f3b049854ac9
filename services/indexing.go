package services

import (
	"bytes"
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"gohan/maf/models/constants"
	esRepo "gohan/maf/repositories/elasticsearch"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esutil"
	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

type (
	IndexingService struct {
		ElasticsearchClient *elasticsearch.Client
		IndexPrefix         string
		NumWorkers          int
		Logger              *zap.SugaredLogger
	}
)

func NewIndexingService(es *elasticsearch.Client, indexPrefix string, logger *zap.SugaredLogger) *IndexingService {
	return &IndexingService{
		ElasticsearchClient: es,
		IndexPrefix:         indexPrefix,
		NumWorkers:          2,
		Logger:              logger,
	}
}

// IndexStats counts the outcome of indexing one combined table.
type IndexStats struct {
	Indexed uint64
	Failed  uint64
}

// IndexTable bulk-indexes every row of the combined table into its stage
// index. Rows that cannot be decoded or are rejected by the cluster are
// logged and counted as failed. An error is only returned when the bulk
// indexer cannot be created or the cluster cannot be reached.
func (is *IndexingService) IndexTable(ctx context.Context, runId string, df dataframe.DataFrame) (IndexStats, error) {
	var countFailed uint64

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:     is.ElasticsearchClient,
		NumWorkers: is.NumWorkers,
		OnError: func(ctx context.Context, err error) {
			is.Logger.Errorw("Bulk indexer error", "error", err)
		},
	})
	if err != nil {
		return IndexStats{}, err
	}

	createdTime := time.Now()
	ensured := map[constants.Stage]bool{}

	for i, row := range df.Maps() {
		doc, err := esRepo.BuildMutationDocument(row, runId, createdTime)
		if err != nil {
			atomic.AddUint64(&countFailed, 1)
			is.Logger.Warnw("Skipping row", "row", i, "error", err)
			continue
		}

		stage := constants.Stage(doc.Stage)
		index := esRepo.IndexName(is.IndexPrefix, stage)
		if !ensured[stage] {
			if err := esRepo.EnsureMutationIndex(ctx, is.ElasticsearchClient, index); err != nil {
				bi.Close(ctx)
				return IndexStats{}, err
			}
			ensured[stage] = true
		}

		// Prepare the data payload: encode mutation to JSON
		data, err := json.Marshal(doc)
		if err != nil {
			atomic.AddUint64(&countFailed, 1)
			is.Logger.Warnw("Skipping row", "row", i, "error", err)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action: "index",
			Index:  index,
			Body:   bytes.NewReader(data),

			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				if err != nil {
					is.Logger.Errorw("Indexing failure", "index", item.Index, "error", err)
				} else {
					is.Logger.Errorw("Indexing failure", "index", item.Index, "type", res.Error.Type, "reason", res.Error.Reason)
				}
			},
		})
		if err != nil {
			bi.Close(ctx)
			return IndexStats{}, err
		}
	}

	if err := bi.Close(ctx); err != nil {
		return IndexStats{}, err
	}

	biStats := bi.Stats()
	stats := IndexStats{
		Indexed: biStats.NumIndexed,
		Failed:  biStats.NumFailed + atomic.LoadUint64(&countFailed),
	}

	if stats.Failed > 0 {
		is.Logger.Warnf("%d of %d rows failed to index", stats.Failed, df.Nrow())
	}
	is.Logger.Infow("Indexed mutations", "run", runId, "indexed", stats.Indexed, "failed", stats.Failed)

	return stats, nil
}
