package memstore

import (
	"context"
	"sync"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
)

// MealLog is a thread-safe in-memory log of committed meals keyed by day
type MealLog struct {
	byDate map[string][]*domain.Meal
	mutex  sync.RWMutex
}

// NewMealLog creates an empty meal log
func NewMealLog() *MealLog {
	return &MealLog{
		byDate: make(map[string][]*domain.Meal),
	}
}

// Save appends a committed meal to its day
func (l *MealLog) Save(ctx context.Context, meal *domain.Meal) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.byDate[meal.Date] = append(l.byDate[meal.Date], meal)
	return nil
}

// GetByDate returns the meals committed for one day in save order. The
// returned slice is a copy; callers may append or reorder freely.
func (l *MealLog) GetByDate(ctx context.Context, date string) ([]*domain.Meal, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	meals := make([]*domain.Meal, len(l.byDate[date]))
	copy(meals, l.byDate[date])
	return meals, nil
}

// Delete removes one committed meal by ID. Deleting a missing ID is a no-op.
func (l *MealLog) Delete(ctx context.Context, id string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	for date, meals := range l.byDate {
		for i, meal := range meals {
			if meal.ID == id {
				l.byDate[date] = append(meals[:i], meals[i+1:]...)
				return nil
			}
		}
	}

	return nil
}
