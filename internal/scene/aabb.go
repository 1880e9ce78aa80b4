package scene

import "github.com/go-gl/mathgl/mgl64"

// AABB представляет выровненный по осям ограничивающий параллелепипед
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Contains проверяет, находится ли точка внутри AABB (границы включительно)
func (a AABB) Contains(p mgl64.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// Overlaps проверяет пересечение двух AABB.
// Пересечение есть тогда и только тогда, когда оно есть по всем трем осям.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Center возвращает центр AABB
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size возвращает размеры AABB по осям
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Translate возвращает AABB, сдвинутый на вектор v
func (a AABB) Translate(v mgl64.Vec3) AABB {
	return AABB{
		Min: a.Min.Add(v),
		Max: a.Max.Add(v),
	}
}
