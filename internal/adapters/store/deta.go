package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/pkg/logger"
	"github.com/okian/pulse/pkg/metrics"
)

// DetaStore talks to a Deta Base style document API over HTTP. The legacy
// deployment keeps readings in such a base, so the wire field names and the
// query/insert endpoints follow its v1 protocol.
type DetaStore struct {
	client  *resty.Client
	project string
	base    string
	log     logger.Logger
}

// queryRequest is the paged query payload. An empty query matches all items.
type queryRequest struct {
	Limit int    `json:"limit,omitempty"`
	Last  string `json:"last,omitempty"`
}

// queryResponse mirrors the base's paged query envelope. Items are decoded
// loosely and validated into model.Reading at this boundary.
type queryResponse struct {
	Paging struct {
		Size int    `json:"size"`
		Last string `json:"last"`
	} `json:"paging"`
	Items []map[string]any `json:"items"`
}

type insertRequest struct {
	Item model.Reading `json:"item"`
}

type insertResponse struct {
	Key string `json:"key"`
}

// NewDetaStore creates a gateway to the named base using the project key
// for authentication.
func NewDetaStore(projectKey, baseName string, opts ...DetaOption) *DetaStore {
	s := &DetaStore{
		project: projectID(projectKey),
		base:    baseName,
	}

	s.client = resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(defaultTimeout).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetHeader("X-API-Key", projectKey).
		SetHeader("Content-Type", "application/json")

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get().Named("deta")
	}

	return s
}

// projectID extracts the project id prefix from a project key of the form
// "{id}_{secret}". The query and insert URLs are scoped by it.
func projectID(projectKey string) string {
	for i := 0; i < len(projectKey); i++ {
		if projectKey[i] == '_' {
			return projectKey[:i]
		}
	}
	return projectKey
}

// FetchAll pages through the base until the paging cursor is exhausted.
func (s *DetaStore) FetchAll(ctx context.Context) ([]model.Reading, error) {
	const op = "store.fetch_all"

	var (
		readings []model.Reading
		last     string
	)
	for {
		var out queryResponse
		resp, err := s.client.R().
			SetContext(ctx).
			SetBody(queryRequest{Limit: queryPageSize, Last: last}).
			SetResult(&out).
			Post(s.path("query"))
		if err != nil {
			metrics.RecordStoreError("fetch")
			return nil, fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
		}
		if resp.IsError() {
			metrics.RecordStoreError("fetch")
			return nil, fmt.Errorf("%s: %w: status %d", op, ErrStoreUnavailable, resp.StatusCode())
		}

		for _, item := range out.Items {
			r, ok := s.decodeItem(ctx, item)
			if !ok {
				continue
			}
			readings = append(readings, r)
		}

		if out.Paging.Last == "" {
			break
		}
		last = out.Paging.Last
	}

	metrics.RecordStoreFetch()
	return readings, nil
}

// Insert persists one reading and returns the key the base assigned.
func (s *DetaStore) Insert(ctx context.Context, r model.Reading) (string, error) {
	const op = "store.insert"

	r.Key = "" // assigned by the base
	var out insertResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(insertRequest{Item: r}).
		SetResult(&out).
		Post(s.path("items"))
	if err != nil {
		metrics.RecordStoreError("insert")
		return "", fmt.Errorf("%s: %w: %w", op, ErrStoreWrite, err)
	}
	if resp.IsError() {
		metrics.RecordStoreError("insert")
		return "", fmt.Errorf("%s: %w: status %d", op, ErrStoreWrite, resp.StatusCode())
	}
	if out.Key == "" {
		metrics.RecordStoreError("insert")
		return "", fmt.Errorf("%s: %w: no key in response", op, ErrStoreWrite)
	}
	return out.Key, nil
}

func (s *DetaStore) path(suffix string) string {
	return fmt.Sprintf("/v1/%s/%s/%s", s.project, s.base, suffix)
}

// decodeItem shapes one loosely-typed base item into a Reading. Items
// missing required fields are logged and skipped rather than propagated
// half-formed into the series builder.
func (s *DetaStore) decodeItem(ctx context.Context, item map[string]any) (model.Reading, bool) {
	name, nameOK := asString(item["Name"])
	ts, tsOK := asString(item["Date"])
	systolic, sysOK := asInt(item["Systolic"])
	diastolic, diaOK := asInt(item["Diastolic"])
	key, _ := asString(item["key"])

	if !nameOK || !tsOK || !sysOK || !diaOK || name == "" || ts == "" {
		s.log.Warn(ctx, "skipping malformed record",
			logger.String("key", key),
			logger.Any("item", item),
		)
		return model.Reading{}, false
	}

	return model.Reading{
		Name:      name,
		Timestamp: ts,
		Systolic:  systolic,
		Diastolic: diastolic,
		Key:       key,
	}, true
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asInt accepts the numeric shapes a JSON decode can produce. Historical
// records occasionally carry numbers as strings.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
