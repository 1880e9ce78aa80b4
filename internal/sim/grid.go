package sim

import (
	"fmt"
	"math"

	"github.com/markkua/kubric/internal/scene"
)

// gridEntry — объект, зарегистрированный в пространственной сетке,
// с его текущим мировым AABB
type gridEntry struct {
	ID     string
	Bounds scene.AABB
}

// spatialGrid — пространственная сетка для ускорения поиска кандидатов
// на пересечение. Объект хранится во всех ячейках, которые покрывает
// его AABB.
type spatialGrid struct {
	cellSize float64
	cells    map[string][]*gridEntry
	entries  map[string]*gridEntry
}

func newSpatialGrid(cellSize float64) *spatialGrid {
	return &spatialGrid{
		cellSize: cellSize,
		cells:    make(map[string][]*gridEntry),
		entries:  make(map[string]*gridEntry),
	}
}

// cellKey возвращает ключ ячейки по ее координатам
func (sg *spatialGrid) cellKey(x, y, z int) string {
	return fmt.Sprintf("%d_%d_%d", x, y, z)
}

// cellRange возвращает диапазон координат ячеек, покрываемых AABB
func (sg *spatialGrid) cellRange(bounds scene.AABB) (lo, hi [3]int) {
	for i := 0; i < 3; i++ {
		lo[i] = int(math.Floor(bounds.Min[i] / sg.cellSize))
		hi[i] = int(math.Floor(bounds.Max[i] / sg.cellSize))
	}
	return lo, hi
}

// insert добавляет объект в сетку, предварительно удалив его старую запись
func (sg *spatialGrid) insert(id string, bounds scene.AABB) {
	sg.remove(id)

	entry := &gridEntry{ID: id, Bounds: bounds}
	lo, hi := sg.cellRange(bounds)
	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				key := sg.cellKey(x, y, z)
				sg.cells[key] = append(sg.cells[key], entry)
			}
		}
	}
	sg.entries[id] = entry
}

// remove удаляет объект из всех ячеек сетки
func (sg *spatialGrid) remove(id string) {
	entry, exists := sg.entries[id]
	if !exists {
		return
	}

	lo, hi := sg.cellRange(entry.Bounds)
	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				key := sg.cellKey(x, y, z)
				cell, exists := sg.cells[key]
				if !exists {
					continue
				}
				for i, cellEntry := range cell {
					if cellEntry.ID == id {
						sg.cells[key] = append(cell[:i], cell[i+1:]...)
						break
					}
				}
				if len(sg.cells[key]) == 0 {
					delete(sg.cells, key)
				}
			}
		}
	}
	delete(sg.entries, id)
}

// nearby возвращает объекты, чьи ячейки пересекаются с ячейками bounds.
// Map используется для исключения дубликатов.
func (sg *spatialGrid) nearby(bounds scene.AABB) []*gridEntry {
	found := make(map[string]*gridEntry)

	lo, hi := sg.cellRange(bounds)
	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				for _, entry := range sg.cells[sg.cellKey(x, y, z)] {
					found[entry.ID] = entry
				}
			}
		}
	}

	result := make([]*gridEntry, 0, len(found))
	for _, entry := range found {
		result = append(result, entry)
	}
	return result
}

func (sg *spatialGrid) count() int {
	return len(sg.entries)
}
