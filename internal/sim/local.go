// Package sim реализует локальную проверку пересечений для размещения
// объектов: широкая фаза на пространственной сетке, узкая фаза —
// пересечение мировых AABB.
package sim

import (
	"log"
	"sync"

	"github.com/markkua/kubric/internal/placement"
	"github.com/markkua/kubric/internal/scene"
)

// DefaultCellSize — размер ячейки сетки по умолчанию
const DefaultCellSize = 2.0

// Local — встроенный симулятор пересечений. Реализует placement.Simulator.
type Local struct {
	grid   *spatialGrid
	mu     sync.RWMutex
	logger *log.Logger
}

// NewLocal создает новый локальный симулятор с заданным размером ячейки
func NewLocal(cellSize float64, logger *log.Logger) *Local {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Local{
		grid:   newSpatialGrid(cellSize),
		logger: logger,
	}
}

// Add регистрирует объект в симуляторе по его текущему мировому AABB
func (l *Local) Add(obj *scene.Object) {
	bounds := placement.WorldBounds(obj)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.grid.insert(obj.ID, bounds)

	if l.logger != nil {
		l.logger.Printf("[Sim] Объект %s зарегистрирован в (%.2f, %.2f, %.2f)",
			obj.ID, obj.Position.X(), obj.Position.Y(), obj.Position.Z())
	}
}

// Remove удаляет объект из симулятора
func (l *Local) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.grid.remove(id)
}

// Update пересчитывает мировой AABB объекта после изменения его
// позиции или ориентации
func (l *Local) Update(obj *scene.Object) {
	l.Add(obj)
}

// CheckOverlap сообщает, пересекается ли объект в его текущем положении
// с каким-либо другим зарегистрированным объектом. Сам объект
// (по совпадению ID) не учитывается.
func (l *Local) CheckOverlap(obj *scene.Object) bool {
	bounds := placement.WorldBounds(obj)

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, entry := range l.grid.nearby(bounds) {
		if entry.ID == obj.ID {
			continue
		}
		if bounds.Overlaps(entry.Bounds) {
			return true
		}
	}
	return false
}

// ObjectCount возвращает количество зарегистрированных объектов
func (l *Local) ObjectCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.grid.count()
}
