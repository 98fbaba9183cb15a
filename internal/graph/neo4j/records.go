package neo4j

import (
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

func getString(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

func getInt(record *neo4j.Record, key string) int {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0
	}
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// getSortedStrings reads a list column and sorts it ascending.
func getSortedStrings(record *neo4j.Record, key string) []string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return []string{}
	}
	var out []string
	switch v := val.(type) {
	case []any:
		out = make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append([]string(nil), v...)
	default:
		return []string{}
	}
	sort.Strings(out)
	return out
}

// column collects one string column over all records.
func column(res *neo4j.EagerResult, key string) []string {
	out := make([]string, 0, len(res.Records))
	for _, rec := range res.Records {
		if s := getString(rec, key); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// firstInt reads key from the first record, or 0 when there is none.
func firstInt(res *neo4j.EagerResult, key string) int {
	if len(res.Records) == 0 {
		return 0
	}
	return getInt(res.Records[0], key)
}
