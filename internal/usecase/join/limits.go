package join

import "github.com/kailas-cloud/bonfire/internal/domain"

// Result-size caps.
const (
	DefaultRecommendationLimit = 10
	DefaultLimit               = 5
	MaxLimit                   = 100
)

// normalizeLimit applies the default for 0 and clamps to ceiling.
func normalizeLimit(limit, def, ceiling int) (int, error) {
	switch {
	case limit < 0:
		return 0, domain.InvalidArgument("limit must not be negative, got %d", limit)
	case limit == 0:
		return def, nil
	case limit > ceiling:
		return ceiling, nil
	}
	return limit, nil
}
