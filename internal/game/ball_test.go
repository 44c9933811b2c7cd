package game

import "testing"

const (
	testWidth  = 800
	testHeight = 800
)

func TestBallMovesLinearlyInsideWalls(t *testing.T) {
	b := NewBall(100, 100)
	b.Dx = 5

	b.Update(testWidth, testHeight, TimeStep)

	if b.X != 105 {
		t.Fatalf("x: got=%d want=%d", b.X, 105)
	}
	if b.Dx != 5 {
		t.Fatalf("dx changed inside walls: got=%f want=%f", b.Dx, 5.0)
	}
}

func TestBallBouncesOffRightWall(t *testing.T) {
	b := NewBall(775, 100)
	b.Dx = 8

	b.Update(testWidth, testHeight, TimeStep)

	want := testWidth - b.Radius - 1
	if b.X != want {
		t.Fatalf("x: got=%d want=%d", b.X, want)
	}
	if b.Dx != -8 {
		t.Fatalf("dx: got=%f want=%f", b.Dx, -8.0)
	}
}

func TestBallBouncesOffLeftWall(t *testing.T) {
	b := NewBall(22, 100)
	b.Dx = -5

	b.Update(testWidth, testHeight, TimeStep)

	if b.X != b.Radius {
		t.Fatalf("x: got=%d want=%d", b.X, b.Radius)
	}
	if b.Dx != 5 {
		t.Fatalf("dx: got=%f want=%f", b.Dx, 5.0)
	}
}

func TestBallFloorFriction(t *testing.T) {
	b := NewBall(400, 0)
	b.Y = b.Floor(testHeight)
	b.Dx = 5

	b.Update(testWidth, testHeight, TimeStep)

	if b.Dx != 5*XFriction {
		t.Fatalf("dx after friction: got=%f want=%f", b.Dx, 5*XFriction)
	}
}

func TestBallFloorFrictionSnapsToZero(t *testing.T) {
	b := NewBall(400, 0)
	b.Y = b.Floor(testHeight)
	b.Dx = 0.85

	b.Update(testWidth, testHeight, TimeStep)

	if b.Dx != 0 {
		t.Fatalf("expected dx to snap to 0 below cutoff, got=%f", b.Dx)
	}
}

func TestBallNoFrictionInAir(t *testing.T) {
	b := NewBall(400, 300)
	b.Dx = 0.5

	b.Update(testWidth, testHeight, TimeStep)

	if b.Dx != 0.5 {
		t.Fatalf("dx in the air: got=%f want=%f", b.Dx, 0.5)
	}
}

func TestBallClampsToFloorAndReflects(t *testing.T) {
	b := NewBall(400, 790)
	b.Dy = 4

	b.Update(testWidth, testHeight, TimeStep)

	if b.Y != b.Floor(testHeight) {
		t.Fatalf("y: got=%d want=%d", b.Y, b.Floor(testHeight))
	}
	if b.Dy != -4*EnergyLoss {
		t.Fatalf("dy: got=%f want=%f", b.Dy, -4*EnergyLoss)
	}
}

func TestBallIntegratesGravity(t *testing.T) {
	b := NewBall(400, 100)
	b.Dy = 10

	b.Update(testWidth, testHeight, TimeStep)

	// dy = 10 + 15*0.2 = 13; y = 100 + 13*0.2 + 0.5*15*0.04 = 102.9
	if b.Dy != 13 {
		t.Fatalf("dy: got=%f want=%f", b.Dy, 13.0)
	}
	if b.Y != 102 {
		t.Fatalf("y: got=%d want=%d", b.Y, 102)
	}
}

func TestBallNeverBelowFloor(t *testing.T) {
	b := NewBall(400, 770)
	b.Dy = 60

	b.Update(testWidth, testHeight, TimeStep)

	if b.Y > b.Floor(testHeight) {
		t.Fatalf("ball below floor: y=%d floor=%d", b.Y, b.Floor(testHeight))
	}
}

func TestBallAgilityRespectsMaxSpeed(t *testing.T) {
	b := NewBall(400, 100)

	for i := 0; i < 10; i++ {
		b.MoveRight()
	}
	if b.Dx != 9 {
		t.Fatalf("dx after repeated MoveRight: got=%f want=%f", b.Dx, 9.0)
	}

	for i := 0; i < 20; i++ {
		b.MoveLeft()
	}
	if b.Dx != -9 {
		t.Fatalf("dx after repeated MoveLeft: got=%f want=%f", b.Dx, -9.0)
	}
}

func TestBallFlyPowerSuppressesGravity(t *testing.T) {
	b := NewBall(400, 300)
	b.Dy = 7
	b.FlyPower = 2

	b.Update(testWidth, testHeight, TimeStep)

	if b.Y != 300 || b.Dy != 0 {
		t.Fatalf("expected ball to hover while flying, got y=%d dy=%f", b.Y, b.Dy)
	}
}

func TestBallPermissionRearmsWhenFalling(t *testing.T) {
	b := NewBall(400, 300)
	b.Permission = false
	b.Dy = -1

	b.Update(testWidth, testHeight, TimeStep)
	if !b.Permission {
		t.Fatalf("expected permission to re-arm once dy > 0 (dy=%f)", b.Dy)
	}
}

func TestBallRestingOnFloorStaysThere(t *testing.T) {
	b := NewBall(400, 0)
	b.Y = b.Floor(testHeight)
	b.Dy = 150

	b.Update(testWidth, testHeight, TimeStep)
	if b.Y != b.Floor(testHeight) || b.Dy != -150*EnergyLoss {
		t.Fatalf("first tick: y=%d dy=%f want y=%d dy=%f", b.Y, b.Dy, b.Floor(testHeight), -150*EnergyLoss)
	}

	b.Update(testWidth, testHeight, TimeStep)
	if b.Y != b.Floor(testHeight) || b.Dy != 150*EnergyLoss*EnergyLoss {
		t.Fatalf("second tick: y=%d dy=%f want y=%d dy=%f", b.Y, b.Dy, b.Floor(testHeight), 150*EnergyLoss*EnergyLoss)
	}
}
