package game

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/termsnake/internal/entity"
	"github.com/samdwyer/termsnake/internal/world"
)

// Collision causes reported when a round ends.
const (
	causeWall = "wall"
	causeSelf = "self"
)

// start builds a fresh board and puts the game in the running state.
func (g *Game) start(ctx context.Context) {
	g.session = uuid.New().String()
	g.ticks = 0
	g.score = 0

	_, span := g.tracer.Start(ctx, "game.start")
	defer span.End()

	g.renderer.Clear()

	g.boundary = world.NewBoundary(world.GridWidth, world.GridHeight, world.WallGlyph, g.renderer)
	g.snake = entity.NewSnake(world.GridWidth/2, world.GridHeight/2, entity.InitialLength, entity.SnakeGlyph, g.renderer)
	g.food = entity.NewFoodSpawner(world.GridWidth, world.GridHeight, entity.FoodGlyph, g.rng, g.renderer)
	food := g.food.CreateFood()

	g.state = StateRunning
	g.renderer.Show()

	span.SetAttributes(
		attribute.String("session", g.session),
		attribute.Int("snake.length", g.snake.Len()),
		attribute.Int("food.x", food.X),
		attribute.Int("food.y", food.Y),
	)

	if !g.screen.Fits(world.GridWidth+1, world.GridHeight+1) {
		w, h := g.screen.Size()
		g.logger().WithFields(log.Fields{
			"term_width":  w,
			"term_height": h,
		}).Warn("terminal smaller than the playfield")
	}
	g.logger().Info("game started")
}

// step runs one tick: the current head is checked for collisions first, then
// the snake either eats the food in front of it or moves.
func (g *Game) step(ctx context.Context) State {
	if g.state != StateRunning {
		return g.state
	}
	g.ticks++

	head := g.snake.Head()
	switch {
	case g.boundary.IsHit(head):
		g.end(ctx, causeWall)
		return g.state
	case g.snake.IsHit(head):
		g.end(ctx, causeSelf)
		return g.state
	}

	if g.snake.Eat(g.food.Food()) {
		g.eat(ctx)
	} else {
		g.snake.Move()
	}

	g.renderer.Show()
	return g.state
}

// eat records a meal and places the next piece of food.
func (g *Game) eat(ctx context.Context) {
	g.score++
	food := g.food.CreateFood()

	_, span := g.tracer.Start(ctx, "game.food")
	span.SetAttributes(
		attribute.String("session", g.session),
		attribute.Int("score", g.score),
		attribute.Int("snake.length", g.snake.Len()),
		attribute.Int("food.x", food.X),
		attribute.Int("food.y", food.Y),
	)
	span.End()

	g.logger().WithField("length", g.snake.Len()).Debug("food eaten")
}

// end stops the simulation. The frame is left as it was.
func (g *Game) end(ctx context.Context, cause string) {
	g.state = StateEnded

	head := g.snake.Head()
	_, span := g.tracer.Start(ctx, "game.over")
	span.SetAttributes(
		attribute.String("session", g.session),
		attribute.String("cause", cause),
		attribute.Int("ticks", g.ticks),
		attribute.Int("score", g.score),
		attribute.Int("snake.length", g.snake.Len()),
		attribute.Int("head.x", head.X),
		attribute.Int("head.y", head.Y),
	)
	span.End()

	g.logger().WithFields(log.Fields{
		"cause":  cause,
		"length": g.snake.Len(),
	}).Info("game over")
}

// restart leaves the ended state with a brand new board.
func (g *Game) restart(ctx context.Context) {
	if g.state != StateEnded {
		return
	}

	_, span := g.tracer.Start(ctx, "game.restart")
	span.SetAttributes(
		attribute.String("previous_session", g.session),
		attribute.Int("previous_score", g.score),
	)
	span.End()

	g.start(ctx)
}
