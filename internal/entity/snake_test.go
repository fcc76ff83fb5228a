package entity

import (
	"testing"

	"github.com/samdwyer/termsnake/internal/world"
	"github.com/samdwyer/termsnake/internal/world/worldtest"
)

// newTestSnake creates the standard starting snake on an 80x26 grid.
func newTestSnake() (*Snake, *worldtest.Recorder) {
	rec := worldtest.NewRecorder()
	s := NewSnake(world.GridWidth/2, world.GridHeight/2, InitialLength, SnakeGlyph, rec)
	return s, rec
}

func columns(s *Snake) []int {
	cols := make([]int, 0, s.Len())
	for _, c := range s.Body() {
		cols = append(cols, c.X)
	}
	return cols
}

func TestNewSnake(t *testing.T) {
	s, rec := newTestSnake()

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	want := []int{37, 38, 39}
	for i, x := range columns(s) {
		if x != want[i] {
			t.Errorf("body[%d].X = %d, want %d", i, x, want[i])
		}
	}
	for _, c := range s.Body() {
		if c.Y != 13 {
			t.Errorf("segment row = %d, want 13", c.Y)
		}
		if g, ok := rec.At(c.X, c.Y); !ok || g != SnakeGlyph {
			t.Errorf("segment (%d,%d) not drawn", c.X, c.Y)
		}
	}

	head := s.Head()
	if head.X != 39 || head.Y != 13 {
		t.Errorf("Head() = (%d,%d), want (39,13)", head.X, head.Y)
	}
	if s.Heading() != world.Right {
		t.Errorf("Heading() = %v, want right", s.Heading())
	}
	if !s.CanRotate() {
		t.Error("new snake should accept a heading change")
	}
}

func TestSnakeMoveShiftsBody(t *testing.T) {
	s, rec := newTestSnake()

	s.Move()

	if s.Len() != 3 {
		t.Fatalf("Len() after Move = %d, want 3", s.Len())
	}
	want := []int{38, 39, 40}
	for i, x := range columns(s) {
		if x != want[i] {
			t.Errorf("body[%d].X = %d, want %d", i, x, want[i])
		}
	}
	if head := s.Head(); head.X != 40 || head.Y != 13 {
		t.Errorf("Head() = (%d,%d), want (40,13)", head.X, head.Y)
	}

	if _, ok := rec.At(37, 13); ok {
		t.Error("old tail at (37,13) should be cleared")
	}
	if g, ok := rec.At(40, 13); !ok || g != SnakeGlyph {
		t.Error("new head at (40,13) should be drawn")
	}
}

func TestSnakeNextPointIsPure(t *testing.T) {
	s, _ := newTestSnake()

	before := s.Body()
	p1 := s.NextPoint()
	p2 := s.NextPoint()

	if !p1.Equal(p2) {
		t.Errorf("NextPoint() not stable: %v then %v", p1, p2)
	}
	if p1.X != 40 || p1.Y != 13 {
		t.Errorf("NextPoint() = (%d,%d), want (40,13)", p1.X, p1.Y)
	}
	after := s.Body()
	for i := range before {
		if !before[i].Equal(after[i]) {
			t.Fatalf("NextPoint() mutated body at %d", i)
		}
	}
}

func TestSnakeNextPointPerHeading(t *testing.T) {
	tests := []struct {
		dir  world.Direction
		x, y int
	}{
		{world.Up, 39, 12},
		{world.Down, 39, 14},
		{world.Right, 40, 13},
	}

	for _, tt := range tests {
		s, _ := newTestSnake()
		s.Rotation(tt.dir)
		got := s.NextPoint()
		if got.X != tt.x || got.Y != tt.y {
			t.Errorf("heading %v: NextPoint() = (%d,%d), want (%d,%d)", tt.dir, got.X, got.Y, tt.x, tt.y)
		}
	}
}

func TestSnakeRotationRejectsOpposite(t *testing.T) {
	for _, dir := range []world.Direction{world.Left, world.Right, world.Up, world.Down} {
		s, _ := newTestSnake()

		// Turn to dir first, unless dir is the one direction a new snake cannot take.
		if dir != world.Left {
			s.Rotation(dir)
			s.Move()
		} else {
			s.Rotation(world.Up)
			s.Move()
			s.Rotation(world.Left)
			s.Move()
		}
		if s.Heading() != dir {
			t.Fatalf("setup: Heading() = %v, want %v", s.Heading(), dir)
		}

		s.Rotation(dir.Opposite())
		if s.Heading() != dir {
			t.Errorf("Rotation(%v) while heading %v changed heading to %v", dir.Opposite(), dir, s.Heading())
		}
	}
}

func TestSnakeRotationOncePerTick(t *testing.T) {
	s, _ := newTestSnake()

	s.Rotation(world.Up)
	s.Rotation(world.Down)
	s.Rotation(world.Left)

	if s.Heading() != world.Up {
		t.Errorf("Heading() = %v, want up (first request wins)", s.Heading())
	}
	if s.CanRotate() {
		t.Error("CanRotate() = true after an accepted rotation")
	}

	s.Move()
	if !s.CanRotate() {
		t.Error("Move should re-arm rotation")
	}

	s.Rotation(world.Left)
	if s.Heading() != world.Left {
		t.Errorf("Heading() after next tick = %v, want left", s.Heading())
	}
}

func TestSnakeRejectedRotationStillConsumesTick(t *testing.T) {
	s, _ := newTestSnake()

	s.Rotation(world.Left) // opposite of right, dropped
	s.Rotation(world.Up)

	if s.Heading() != world.Right {
		t.Errorf("Heading() = %v, want right", s.Heading())
	}
}

func TestSnakeEatGrows(t *testing.T) {
	s, rec := newTestSnake()

	s.Rotation(world.Up) // request lands before the eat, heading changes
	next := s.NextPoint()
	food := world.NewCell(next.X, next.Y, FoodGlyph)

	if !s.Eat(food) {
		t.Fatal("Eat() = false, want true when food is at the next point")
	}
	if s.Len() != 4 {
		t.Errorf("Len() after Eat = %d, want 4", s.Len())
	}
	if !s.Head().Equal(food) {
		t.Errorf("Head() = %v, want %v", s.Head(), food)
	}
	if s.Head().Glyph != SnakeGlyph {
		t.Errorf("head glyph = %q, want %q", s.Head().Glyph, SnakeGlyph)
	}
	if rec.Clears(37, 13) != 0 {
		t.Error("Eat should not clear the tail")
	}
	if !s.CanRotate() {
		t.Error("Eat should re-arm rotation")
	}
}

func TestSnakeEatMissDoesNothing(t *testing.T) {
	s, rec := newTestSnake()
	s.Rotation(world.Up)

	before := s.Body()
	if s.Eat(world.NewCell(10, 10, FoodGlyph)) {
		t.Fatal("Eat() = true, want false for food elsewhere")
	}

	after := s.Body()
	if len(after) != len(before) {
		t.Fatalf("Len() changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if !before[i].Equal(after[i]) {
			t.Errorf("body[%d] changed from %v to %v", i, before[i], after[i])
		}
	}
	if s.CanRotate() {
		t.Error("a missed Eat should not re-arm rotation")
	}
	if rec.Draws(39, 12) != 0 {
		t.Error("a missed Eat should not draw")
	}
}

func TestSnakeIsHitFresh(t *testing.T) {
	s, _ := newTestSnake()

	tests := []struct {
		cell world.Cell
		want bool
	}{
		{world.NewCell(38, 13, ' '), true},  // middle segment
		{world.NewCell(37, 13, ' '), false}, // stored tail is excluded
		{world.NewCell(39, 13, ' '), false}, // stored head is excluded
		{world.NewCell(40, 13, ' '), false},
		{world.NewCell(38, 12, ' '), false},
		{world.NewCell(1, 1, ' '), false},
	}

	for _, tt := range tests {
		if got := s.IsHit(tt.cell); got != tt.want {
			t.Errorf("IsHit(%d,%d) = %v, want %v", tt.cell.X, tt.cell.Y, got, tt.want)
		}
	}
}

func TestSnakeIsHitExcludesExtremes(t *testing.T) {
	rec := worldtest.NewRecorder()
	s := NewSnake(20, 10, 6, SnakeGlyph, rec) // columns 14..19

	for x := 14; x <= 19; x++ {
		want := x > 14 && x < 19
		if got := s.IsHit(world.NewCell(x, 10, ' ')); got != want {
			t.Errorf("IsHit(%d,10) = %v, want %v", x, got, want)
		}
	}
}

func TestSnakeIsHitLengthTwo(t *testing.T) {
	s := NewSnake(5, 5, 2, SnakeGlyph, worldtest.NewRecorder())

	for _, c := range s.Body() {
		if s.IsHit(c) {
			t.Errorf("IsHit(%v) = true, a two-segment snake has no checked segments", c)
		}
	}
}

func TestSnakeSelfCollisionLoop(t *testing.T) {
	// A six-segment snake turning in a tight square runs into itself.
	s := NewSnake(20, 10, 6, SnakeGlyph, worldtest.NewRecorder())

	turns := []world.Direction{world.Up, world.Left, world.Down}
	for _, dir := range turns {
		s.Rotation(dir)
		s.Move()
	}

	if !s.IsHit(s.Head()) {
		t.Errorf("IsHit(Head()) = false after looping back, body %v", s.Body())
	}
}
