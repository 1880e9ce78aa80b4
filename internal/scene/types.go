package scene

import "github.com/go-gl/mathgl/mgl64"

// Object представляет объект сцены.
// Position и Rotation мутируются сэмплерами размещения напрямую.
type Object struct {
	ID       string
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Shape    *ShapeDescriptor
	Color    string
}

type ShapeDescriptor struct {
	Type   ShapeType
	Sphere *SphereData
	Box    *BoxData
}

type ShapeType int

const (
	SPHERE ShapeType = iota
	BOX
)

type SphereData struct {
	Radius float64
	Mass   float64
}

type BoxData struct {
	Width  float64
	Height float64
	Depth  float64
	Mass   float64
}

// Bounds возвращает локальный AABB объекта (в его собственных координатах,
// без учета поворота и позиции). Форма центрирована относительно начала координат.
func (o *Object) Bounds() AABB {
	switch o.Shape.Type {
	case SPHERE:
		r := o.Shape.Sphere.Radius
		return AABB{
			Min: mgl64.Vec3{-r, -r, -r},
			Max: mgl64.Vec3{r, r, r},
		}
	case BOX:
		hw := o.Shape.Box.Width / 2
		hh := o.Shape.Box.Height / 2
		hd := o.Shape.Box.Depth / 2
		return AABB{
			Min: mgl64.Vec3{-hw, -hh, -hd},
			Max: mgl64.Vec3{hw, hh, hd},
		}
	default:
		return AABB{}
	}
}
