package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Effect is a component that runs to completion and is then removed from the
// tree automatically by the Game at the end of the tick.
type Effect interface {
	Component
	// Done reports whether the effect has finished.
	Done() bool
}

// pruneEffects removes finished effects anywhere in the subtree.
// Called after the update cycle's deferred mutations have been applied.
func pruneEffects(b *BaseComponent) {
	for i := 0; i < len(b.children); i++ {
		child := b.children[i]
		if e, ok := child.(Effect); ok && e.Done() {
			b.RemoveChild(child)
			i--
			continue
		}
		pruneEffects(child.base())
	}
}

// --- MoveEffect ---

// MoveEffect tweens a component's position to a destination. The start
// position is sampled on the effect's first tick, so effects queued in a
// [SequenceEffect] pick up wherever the previous one left the target.
type MoveEffect struct {
	BaseComponent

	// OnComplete, if set, fires once when the tween finishes.
	OnComplete func()

	target         *BaseComponent
	toX, toY       float64
	duration       float32
	easeFn         ease.TweenFunc
	tweenX, tweenY *gween.Tween
	doneX, doneY   bool
}

// NewMoveEffect creates an effect that moves target to (toX, toY) over
// duration seconds. Add it anywhere in the tree to start it.
func NewMoveEffect(target *BaseComponent, toX, toY float64, duration float32, easeFn ease.TweenFunc) *MoveEffect {
	return &MoveEffect{
		target:   target,
		toX:      toX,
		toY:      toY,
		duration: duration,
		easeFn:   easeFn,
	}
}

func (e *MoveEffect) Update(dt float64) {
	if e.tweenX == nil {
		e.tweenX = gween.New(float32(e.target.X), float32(e.toX), e.duration, e.easeFn)
		e.tweenY = gween.New(float32(e.target.Y), float32(e.toY), e.duration, e.easeFn)
	}
	if !e.doneX {
		val, done := e.tweenX.Update(float32(dt))
		e.target.X = float64(val)
		e.doneX = done
	}
	if !e.doneY {
		val, done := e.tweenY.Update(float32(dt))
		e.target.Y = float64(val)
		e.doneY = done
	}
	if e.Done() && e.OnComplete != nil {
		e.OnComplete()
		e.OnComplete = nil
	}
}

func (e *MoveEffect) Done() bool {
	return e.doneX && e.doneY
}

// --- ScaleEffect ---

// ScaleEffect tweens a sprite's scale factors to a destination.
type ScaleEffect struct {
	BaseComponent

	OnComplete func()

	target         *Sprite
	toX, toY       float64
	duration       float32
	easeFn         ease.TweenFunc
	tweenX, tweenY *gween.Tween
	doneX, doneY   bool
}

// NewScaleEffect creates an effect that scales target to (toX, toY) over
// duration seconds.
func NewScaleEffect(target *Sprite, toX, toY float64, duration float32, easeFn ease.TweenFunc) *ScaleEffect {
	return &ScaleEffect{
		target:   target,
		toX:      toX,
		toY:      toY,
		duration: duration,
		easeFn:   easeFn,
	}
}

func (e *ScaleEffect) Update(dt float64) {
	if e.tweenX == nil {
		e.tweenX = gween.New(float32(e.target.ScaleX), float32(e.toX), e.duration, e.easeFn)
		e.tweenY = gween.New(float32(e.target.ScaleY), float32(e.toY), e.duration, e.easeFn)
	}
	if !e.doneX {
		val, done := e.tweenX.Update(float32(dt))
		e.target.ScaleX = float64(val)
		e.doneX = done
	}
	if !e.doneY {
		val, done := e.tweenY.Update(float32(dt))
		e.target.ScaleY = float64(val)
		e.doneY = done
	}
	if e.Done() && e.OnComplete != nil {
		e.OnComplete()
		e.OnComplete = nil
	}
}

func (e *ScaleEffect) Done() bool {
	return e.doneX && e.doneY
}

// --- RotateEffect ---

// RotateEffect tweens a sprite's rotation to a destination angle in radians.
type RotateEffect struct {
	BaseComponent

	OnComplete func()

	target   *Sprite
	to       float64
	duration float32
	easeFn   ease.TweenFunc
	tween    *gween.Tween
	done     bool
}

// NewRotateEffect creates an effect that rotates target to the given angle
// over duration seconds.
func NewRotateEffect(target *Sprite, to float64, duration float32, easeFn ease.TweenFunc) *RotateEffect {
	return &RotateEffect{
		target:   target,
		to:       to,
		duration: duration,
		easeFn:   easeFn,
	}
}

func (e *RotateEffect) Update(dt float64) {
	if e.tween == nil {
		e.tween = gween.New(float32(e.target.Rotation), float32(e.to), e.duration, e.easeFn)
	}
	if !e.done {
		val, done := e.tween.Update(float32(dt))
		e.target.Rotation = float64(val)
		e.done = done
	}
	if e.done && e.OnComplete != nil {
		e.OnComplete()
		e.OnComplete = nil
	}
}

func (e *RotateEffect) Done() bool {
	return e.done
}

// --- SequenceEffect ---

// SequenceEffect runs a list of effects one after another. The child effects
// are driven directly by the sequence and must not be added to the tree
// themselves.
type SequenceEffect struct {
	BaseComponent

	OnComplete func()

	effects []Effect
	cursor  int
}

// NewSequenceEffect creates an effect that runs the given effects in order.
func NewSequenceEffect(effects ...Effect) *SequenceEffect {
	return &SequenceEffect{effects: effects}
}

func (e *SequenceEffect) Update(dt float64) {
	for e.cursor < len(e.effects) {
		cur := e.effects[e.cursor]
		cur.Update(dt)
		if !cur.Done() {
			return
		}
		e.cursor++
		// Leftover dt is not carried into the next effect; one tick of
		// overlap at each boundary is below perception at game tick rates.
		return
	}
	if e.OnComplete != nil {
		e.OnComplete()
		e.OnComplete = nil
	}
}

func (e *SequenceEffect) Done() bool {
	return e.cursor >= len(e.effects)
}
