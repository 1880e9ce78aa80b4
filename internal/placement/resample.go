// Package placement реализует случайное размещение объектов сцены:
// сэмплеры поворота и позиции и цикл отбраковки с ограниченным
// числом попыток.
package placement

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/markkua/kubric/internal/scene"
)

// DefaultMaxTrials — число попыток размещения по умолчанию
const DefaultMaxTrials = 100

// DefaultSpawnRegion возвращает область спавна по умолчанию
func DefaultSpawnRegion() scene.AABB {
	return scene.AABB{
		Min: mgl64.Vec3{-1, -1, -1},
		Max: mgl64.Vec3{1, 1, 1},
	}
}

// Condition — предикат отбраковки размещения. Истина означает,
// что текущее размещение невалидно и нужна новая попытка.
type Condition func(obj *scene.Object) bool

// Simulator — внешний коллаборатор, проверяющий пересечения объекта
// с остальным содержимым сцены
type Simulator interface {
	CheckOverlap(obj *scene.Object) bool
}

// ResampleWhile до maxTrials раз применяет к объекту все сэмплеры по
// порядку и проверяет условие. Первое размещение, для которого условие
// ложно, принимается. Если условие истинно после всех попыток,
// возвращается *PlacementError с идентификатором объекта.
// Объект мутируется на каждой попытке, включая последнюю.
func ResampleWhile(obj *scene.Object, samplers []Sampler, condition Condition, maxTrials int, rng *rand.Rand) error {
	for trial := 0; trial < maxTrials; trial++ {
		for _, sampler := range samplers {
			sampler.Sample(obj, rng)
		}
		if !condition(obj) {
			return nil
		}
	}
	return &PlacementError{AssetID: obj.ID, Trials: maxTrials}
}

// MoveUntilNoOverlap перемещает объект в случайную позицию с случайной
// ориентацией внутри region, пока симулятор не перестанет сообщать о
// пересечении, либо возвращает ошибку после maxTrials попыток.
func MoveUntilNoOverlap(obj *scene.Object, sim Simulator, region scene.AABB, maxTrials int, rng *rand.Rand) error {
	samplers := []Sampler{
		RotationSampler{},
		PositionSampler{Region: region},
	}
	return ResampleWhile(obj, samplers, sim.CheckOverlap, maxTrials, rng)
}
