package placement

import (
	"math"
	"math/rand"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ParseAxis преобразует имя оси ("X", "Y", "Z", без учета регистра)
// в единичный базисный вектор
func ParseAxis(name string) (mgl64.Vec3, error) {
	switch strings.ToUpper(name) {
	case "X":
		return mgl64.Vec3{1, 0, 0}, nil
	case "Y":
		return mgl64.Vec3{0, 1, 0}, nil
	case "Z":
		return mgl64.Vec3{0, 0, 1}, nil
	default:
		return mgl64.Vec3{}, &InvalidAxisError{Axis: name}
	}
}

// RandomRotation вычисляет случайный поворот в виде кватерниона.
// При axis == nil поворот распределен равномерно по всем возможным
// ориентациям (метод Шумейка-Марсальи: два отбора точек внутри
// единичного круга, компоненты (x, y, s*u, s*v), s = sqrt((1-z)/w)).
// Иначе — поворот на равномерный угол [0, 2π) вокруг заданной оси.
// Результат всегда имеет единичную норму.
func RandomRotation(axis *mgl64.Vec3, rng *rand.Rand) mgl64.Quat {
	if axis == nil {
		var x, y, z float64
		z = 2
		for z > 1 {
			x = 2*rng.Float64() - 1
			y = 2*rng.Float64() - 1
			z = x*x + y*y
		}

		var u, v, w float64
		w = 2
		for w > 1 {
			u = 2*rng.Float64() - 1
			v = 2*rng.Float64() - 1
			w = u*u + v*v
		}

		s := math.Sqrt((1 - z) / w)
		// порядок компонент: (x, y, z, w) = (x, y, s*u, s*v)
		return mgl64.Quat{
			W: s * v,
			V: mgl64.Vec3{x, y, s * u},
		}
	}

	angle := rng.Float64() * 2 * math.Pi
	return mgl64.QuatRotate(angle, axis.Normalize())
}
