package service

import (
	"context"
	"math"
	"sort"

	"github.com/salesavor/salesavor/internal/geo"
	"github.com/salesavor/salesavor/internal/store/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const DefaultRadiusKm = 25

type Params struct {
	fx.In

	Log       *zap.Logger
	Directory domain.Directory
}

type Service struct {
	log       *zap.Logger
	directory domain.Directory
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("store.service"),
		directory: p.Directory,
	}
}

// FindNearby returns directory stores within the radius, closest first.
// Distances are rounded to one decimal before filtering callers see them;
// ties keep directory order.
func (s *Service) FindNearby(ctx context.Context, req domain.FindNearbyRequest) ([]domain.StoreLocation, error) {
	if !validCoordinate(req.Location.Latitude, req.Location.Longitude) {
		return nil, domain.ErrInvalidLocation
	}

	radius := req.RadiusKm
	if radius <= 0 {
		radius = DefaultRadiusKm
	}

	nearby := make([]domain.StoreLocation, 0, 8)
	for _, store := range s.directory.All() {
		distance := geo.Distance(req.Location.Latitude, req.Location.Longitude, store.Latitude, store.Longitude)
		if distance > radius {
			continue
		}
		store.DistanceKm = math.Round(distance*10) / 10
		nearby = append(nearby, store)
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}

func validCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return false
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return true
}
