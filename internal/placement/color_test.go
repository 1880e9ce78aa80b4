package placement

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomHueColorRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(30))

	for i := 0; i < 1000; i++ {
		c := RandomHueColor(1.0, 1.0, rng)
		_, s, v := c.Hsv()

		if math.Abs(s-1) > 1e-6 {
			t.Fatalf("насыщенность = %v, ожидали 1", s)
		}
		if math.Abs(v-1) > 1e-6 {
			t.Fatalf("яркость = %v, ожидали 1", v)
		}
	}
}

func TestRandomHueColorUniformHue(t *testing.T) {
	rng := rand.New(rand.NewSource(31))

	// 10 корзин по 36°; при равномерном тоне каждая получает около n/10
	const n = 10000
	var buckets [10]int
	for i := 0; i < n; i++ {
		c := RandomHueColor(1.0, 1.0, rng)
		h, _, _ := c.Hsv()
		idx := int(h / 36)
		if idx > 9 {
			idx = 9
		}
		buckets[idx]++
	}

	for i, count := range buckets {
		if count < 800 || count > 1200 {
			t.Errorf("корзина %d: %d попаданий из %d, ожидали около 1000", i, count, n)
		}
	}
}

func TestRandomHueColorCustomSaturationValue(t *testing.T) {
	rng := rand.New(rand.NewSource(32))

	c := RandomHueColor(0.5, 0.75, rng)
	_, s, v := c.Hsv()

	if math.Abs(s-0.5) > 1e-6 {
		t.Errorf("насыщенность = %v, ожидали 0.5", s)
	}
	if math.Abs(v-0.75) > 1e-6 {
		t.Errorf("яркость = %v, ожидали 0.75", v)
	}
}
