package model

import (
	"time"

	"github.com/m-mizutani/devmemory/pkg/domain/types"
)

// SortOrder controls ordering of decisions by creation date.
type SortOrder int

const (
	SortNewestFirst SortOrder = iota
	SortOldestFirst
)

// DecisionFilter selects decisions from the store. Zero values mean "no constraint".
type DecisionFilter struct {
	Type  types.DecisionType
	Since time.Time
	Until time.Time
	Query string
	Limit int
	Order SortOrder
}

// GroupCount is one row of an aggregation by type or author.
type GroupCount struct {
	Key   string `json:"key" yaml:"key"`
	Count int64  `json:"count" yaml:"count"`
}

// Statistics aggregates the whole store.
type Statistics struct {
	Total    int64        `json:"total"`
	ByType   []GroupCount `json:"by_type"`
	ByAuthor []GroupCount `json:"by_author"`
}

// Summary is the overview shown by the summary command.
type Summary struct {
	Total      int64        `json:"total"`
	First      *time.Time   `json:"first,omitempty"`
	Last       *time.Time   `json:"last,omitempty"`
	ByType     []GroupCount `json:"by_type"`
	TopAuthors []GroupCount `json:"top_authors"`
	Recent     []*Decision  `json:"recent"`
}
