package sim

import "time"

// CollisionOutcome reports what a collision did.
type CollisionOutcome struct {
	Applied  bool          // The penalty was applied
	GameOver bool          // This collision ended the game
	Brick    Brick         // The brick involved, marked as hit
	EffectAt time.Duration // When the host should drop the collision effect
}

// CollisionResolver applies the penalty for a reported car/brick overlap.
type CollisionResolver struct {
	params     Params
	session    *Session
	bricks     *BrickManager
	collisions int
}

// NewCollisionResolver creates a resolver bound to session and bricks.
func NewCollisionResolver(params Params, session *Session, bricks *BrickManager) *CollisionResolver {
	return &CollisionResolver{params: params, session: session, bricks: bricks}
}

// Resolve handles an overlap with brick id at now. The collision that ends
// the game also destroys every active brick. Overlaps after game over,
// with unknown bricks, or with bricks already hit change nothing.
func (r *CollisionResolver) Resolve(id BrickID, now time.Duration) CollisionOutcome {
	if r.session.Over() {
		return CollisionOutcome{}
	}
	if !r.bricks.MarkHit(id) {
		return CollisionOutcome{}
	}
	brick, _ := r.bricks.Get(id)
	r.collisions++

	gameOver := r.session.ApplyCollisionPenalty()
	if gameOver {
		r.bricks.Clear()
	}
	return CollisionOutcome{
		Applied:  true,
		Brick:    brick,
		EffectAt: now + r.params.EffectTTL,
		GameOver: gameOver,
	}
}

// Collisions returns the number of penalties applied since the last reset.
func (r *CollisionResolver) Collisions() int {
	return r.collisions
}

// Reset clears the collision counter.
func (r *CollisionResolver) Reset() {
	r.collisions = 0
}
