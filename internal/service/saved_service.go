package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"camtourvisor/internal/model"

	"github.com/google/uuid"
)

// SavedDestinationService - избранные направления пользователя и маршрут по ним.
type SavedDestinationService struct {
	saved        SavedStore
	destinations DestinationLookup
	now          func() time.Time
}

func NewSavedDestinationService(saved SavedStore, destinations DestinationLookup) *SavedDestinationService {
	return &SavedDestinationService{saved: saved, destinations: destinations, now: time.Now}
}

// Save добавляет направление в избранное. Повторное сохранение - ErrConflict.
func (s *SavedDestinationService) Save(ctx context.Context, userID, slug, notes string) (*model.SavedDestination, error) {
	d, err := s.destinations.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	saved := &model.SavedDestination{
		ID:                  uuid.NewString(),
		UserID:              userID,
		DestinationID:       d.Slug,
		DestinationName:     d.Name,
		DestinationImage:    d.ImageURL,
		DestinationLocation: d.Location,
		DestinationCategory: d.Category,
		Notes:               strings.TrimSpace(notes),
		CreatedAt:           s.now().UTC(),
	}
	if err := s.saved.Save(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *SavedDestinationService) Unsave(ctx context.Context, userID, slug string) error {
	return s.saved.Unsave(ctx, userID, slug)
}

// List возвращает избранное, последние сохраненные первыми.
func (s *SavedDestinationService) List(ctx context.Context, userID string) ([]model.SavedDestination, error) {
	return nonNil(s.saved.ListByUser(ctx, userID))
}

func (s *SavedDestinationService) IsSaved(ctx context.Context, userID, slug string) (bool, error) {
	return s.saved.Exists(ctx, userID, slug)
}

// Route упорядочивает избранное жадно по ближайшему соседу, начиная с самого
// раннего сохраненного. Направления без координат идут в конце в порядке сохранения.
func (s *SavedDestinationService) Route(ctx context.Context, userID string) ([]model.RouteStop, error) {
	list, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var located, rest []model.RouteStop
	// список приходит от новых к старым
	for i := len(list) - 1; i >= 0; i-- {
		item := list[i]
		stop := model.RouteStop{DestinationID: item.DestinationID, Name: item.DestinationName}
		d, err := s.destinations.GetBySlug(ctx, item.DestinationID)
		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			return nil, err
		default:
			stop.Coordinates = d.Coordinates()
		}
		if stop.Coordinates == nil {
			rest = append(rest, stop)
		} else {
			located = append(located, stop)
		}
	}

	route := make([]model.RouteStop, 0, len(list))
	route = append(route, nearestNeighbour(located)...)
	route = append(route, rest...)
	for i := range route {
		route[i].Order = i + 1
	}
	return route, nil
}

func nearestNeighbour(stops []model.RouteStop) []model.RouteStop {
	if len(stops) < 2 {
		return stops
	}
	ordered := make([]model.RouteStop, 0, len(stops))
	used := make([]bool, len(stops))
	ordered = append(ordered, stops[0])
	used[0] = true
	for i := 1; i < len(stops); i++ {
		last := ordered[len(ordered)-1]
		minDist := math.MaxFloat64
		minIndex := -1
		for j, stop := range stops {
			if used[j] {
				continue
			}
			if dist := haversineKm(*last.Coordinates, *stop.Coordinates); dist < minDist {
				minDist = dist
				minIndex = j
			}
		}
		used[minIndex] = true
		next := stops[minIndex]
		next.DistanceKm = math.Round(minDist*10) / 10
		ordered = append(ordered, next)
	}
	return ordered
}

const earthRadiusKm = 6371.0

// haversineKm - расстояние по дуге большого круга.
func haversineKm(a, b model.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
