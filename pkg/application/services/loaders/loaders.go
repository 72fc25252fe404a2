package loaders

import (
	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/shopspring/decimal"
)

func zero() decimal.Decimal {
	return decimal.Zero
}

// locationFilter converts a run's configured location set into the filter
// the storage adapter expects. An empty set or {"All"} disables filtering.
func locationFilter(config entities.Config) repositories.LocationFilter {
	if config.LocationsAll() {
		return nil
	}
	filter := make(repositories.LocationFilter, len(config.Locations))
	for loc, on := range config.Locations {
		if on {
			filter[loc] = true
		}
	}
	return filter
}
