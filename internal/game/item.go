package game

import (
	"math"

	"golang.org/x/exp/rand"
)

// ItemEffect is what collecting a power-up does to the ball.
type ItemEffect func(b *Ball)

// NoEffect is the default: items are collected and recycled, nothing else.
func NoEffect(*Ball) {}

// FlyPowerEffect grants the ball ticks of flat climbing.
func FlyPowerEffect(ticks int) ItemEffect {
	return func(b *Ball) {
		if ticks > 0 {
			b.FlyPower += ticks
		}
	}
}

func NewItem(x, y float64) Item {
	return Item{
		X:      x,
		Y:      y,
		Dy:     ItemDy,
		Radius: ItemRadius,
	}
}

func (it *Item) touches(b *Ball) bool {
	dx := it.X - float64(b.X)
	dy := it.Y - float64(b.Y)
	return math.Hypot(dx, dy) < float64(it.Radius+b.Radius)
}

// park puts a collected item below anything the ball can reach. The respawn
// check picks it up from there.
func (it *Item) park(height int) {
	it.X = 0
	it.Y = float64(height + ItemRespawnGap)
}

func (it *Item) respawn(rng *rand.Rand, width, height int) {
	it.Y = float64(-height - ItemRespawnGap - rng.Intn(ItemRespawnSpan))

	span := width - 2*it.Radius
	if span <= 0 {
		it.X = float64(rng.Intn(width))
		return
	}
	it.X = float64(it.Radius + rng.Intn(span))
}
