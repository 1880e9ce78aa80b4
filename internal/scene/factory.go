package scene

import "github.com/go-gl/mathgl/mgl64"

// NewSphere создает новый сферический объект с единичным поворотом
func NewSphere(id string, position mgl64.Vec3, radius, mass float64, color string) *Object {
	return &Object{
		ID:       id,
		Position: position,
		Rotation: mgl64.QuatIdent(),
		Shape: &ShapeDescriptor{
			Type: SPHERE,
			Sphere: &SphereData{
				Radius: radius,
				Mass:   mass,
			},
		},
		Color: color,
	}
}

// NewBox создает новый коробчатый объект с единичным поворотом
func NewBox(id string, position mgl64.Vec3, width, height, depth, mass float64, color string) *Object {
	return &Object{
		ID:       id,
		Position: position,
		Rotation: mgl64.QuatIdent(),
		Shape: &ShapeDescriptor{
			Type: BOX,
			Box: &BoxData{
				Width:  width,
				Height: height,
				Depth:  depth,
				Mass:   mass,
			},
		},
		Color: color,
	}
}
