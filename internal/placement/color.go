package placement

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RandomHueColor возвращает цвет со случайным тоном, равномерным в [0, 1),
// и заданными насыщенностью и яркостью (HSV)
func RandomHueColor(saturation, value float64, rng *rand.Rand) colorful.Color {
	return colorful.Hsv(rng.Float64()*360, saturation, value)
}
