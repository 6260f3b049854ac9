package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gohan/maf/models/constants"
	"gohan/maf/models/indexes"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/mitchellh/mapstructure"
)

// IndexName is the per-stage mutation index, i.e. "mutations-stageii".
func IndexName(prefix string, stage constants.Stage) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToLower(string(stage)))
}

// BuildMutationDocument decodes one table row into a mutation document.
// Numeric columns are converted from their textual form.
func BuildMutationDocument(row map[string]interface{}, runId string, createdTime time.Time) (*indexes.Mutation, error) {
	doc := &indexes.Mutation{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           doc,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(row); err != nil {
		return nil, fmt.Errorf("decoding mutation row: %w", err)
	}

	// drop NA cells kept by the remain field
	for k, v := range doc.Other {
		if v == nil {
			delete(doc.Other, k)
		}
	}

	doc.RunId = runId
	doc.CreatedTime = createdTime
	return doc, nil
}

// EnsureMutationIndex creates the index with the mutation mappings when it
// does not exist yet.
func EnsureMutationIndex(ctx context.Context, es *es7.Client, index string) error {
	existsRes, err := esapi.IndicesExistsRequest{Index: []string{index}}.Do(ctx, es)
	if err != nil {
		return err
	}
	existsRes.Body.Close()
	if existsRes.StatusCode == 200 {
		return nil
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(indexes.MUTATION_MAPPINGS); err != nil {
		return err
	}

	res, err := esapi.IndicesCreateRequest{Index: index, Body: &buf}.Do(ctx, es)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	// a concurrent creation is not an error
	if res.IsError() && !strings.Contains(res.String(), "resource_already_exists_exception") {
		return fmt.Errorf("creating index %s: %s", index, res.String())
	}
	return nil
}
