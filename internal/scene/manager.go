package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Manager хранит объекты сцены по идентификатору
type Manager struct {
	objects map[string]*Object
	mu      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		objects: make(map[string]*Object),
	}
}

// AddObject добавляет объект в менеджер
func (m *Manager) AddObject(obj *Object) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[obj.ID] = obj
}

// GetObject возвращает объект по идентификатору
func (m *Manager) GetObject(id string) (*Object, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, exists := m.objects[id]
	return obj, exists
}

// RemoveObject удаляет объект из менеджера
func (m *Manager) RemoveObject(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, id)
}

// GetAllObjects возвращает все объекты из менеджера
func (m *Manager) GetAllObjects() []*Object {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Object, 0, len(m.objects))
	for _, obj := range m.objects {
		result = append(result, obj)
	}
	return result
}

// UpdateObjectState обновляет позицию и вращение объекта
func (m *Manager) UpdateObjectState(id string, position mgl64.Vec3, rotation mgl64.Quat) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if obj, exists := m.objects[id]; exists {
		obj.Position = position
		obj.Rotation = rotation
	}
}

// Count возвращает количество объектов в менеджере
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
