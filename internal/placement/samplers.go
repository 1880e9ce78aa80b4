package placement

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/markkua/kubric/internal/scene"
)

// Sampler мутирует позицию или ориентацию объекта по заданному
// источнику случайности. Сэмплеры не имеют собственного состояния,
// поэтому их список можно компоновать и воспроизводить детерминированно.
type Sampler interface {
	Sample(obj *scene.Object, rng *rand.Rand)
}

// RotationSampler задает объекту случайную ориентацию.
// При Axis == nil ориентация равномерна по всем направлениям,
// иначе — случайный угол вокруг фиксированной оси.
type RotationSampler struct {
	Axis *mgl64.Vec3
}

// NewRotationSamplerForAxis строит сэмплер поворота вокруг именованной оси
func NewRotationSamplerForAxis(name string) (RotationSampler, error) {
	axis, err := ParseAxis(name)
	if err != nil {
		return RotationSampler{}, err
	}
	return RotationSampler{Axis: &axis}, nil
}

func (s RotationSampler) Sample(obj *scene.Object, rng *rand.Rand) {
	obj.Rotation = RandomRotation(s.Axis, rng)
}

// PositionSampler задает объекту случайную позицию так, чтобы его
// повернутый ограничивающий параллелепипед целиком оставался внутри Region.
// Должен применяться после сэмплера поворота: эффективная область
// зависит от текущей ориентации объекта.
type PositionSampler struct {
	Region scene.AABB
}

func (s PositionSampler) Sample(obj *scene.Object, rng *rand.Rand) {
	rotated := RotatedBounds(obj)

	// Эффективная область — множество позиций начала координат объекта,
	// при которых весь повернутый AABB остается внутри Region
	var pos mgl64.Vec3
	for i := 0; i < 3; i++ {
		low := s.Region.Min[i] - rotated.Min[i]
		high := s.Region.Max[i] - rotated.Max[i]
		pos[i] = low + rng.Float64()*(high-low)
	}
	obj.Position = pos
}

// RotatedBounds возвращает AABB объекта в мировых осях относительно его
// начала координат: покомпонентный min/max всех 8 повернутых углов
// локального ограничивающего параллелепипеда.
func RotatedBounds(obj *scene.Object) scene.AABB {
	bounds := obj.Bounds()
	xs := [2]float64{bounds.Min.X(), bounds.Max.X()}
	ys := [2]float64{bounds.Min.Y(), bounds.Max.Y()}
	zs := [2]float64{bounds.Min.Z(), bounds.Max.Z()}

	first := true
	var min, max mgl64.Vec3
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				p := obj.Rotation.Rotate(mgl64.Vec3{x, y, z})
				if first {
					min, max = p, p
					first = false
					continue
				}
				for i := 0; i < 3; i++ {
					if p[i] < min[i] {
						min[i] = p[i]
					}
					if p[i] > max[i] {
						max[i] = p[i]
					}
				}
			}
		}
	}

	return scene.AABB{Min: min, Max: max}
}

// WorldBounds возвращает AABB объекта в мировых координатах
// с учетом его текущей позиции
func WorldBounds(obj *scene.Object) scene.AABB {
	return RotatedBounds(obj).Translate(obj.Position)
}
