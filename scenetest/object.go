package scenetest

import (
	"fmt"

	"github.com/phanxgames/reflex"
)

// Object is an in-memory scene object with a name, an enabled flag, a child
// list, and a local transform. It implements reflex.Object,
// reflex.Container, and reflex.Transformer.
//
// World transforms compose through the parent chain without rotation
// coupling: world position is the parent's world position plus the local
// position scaled by the parent's world scale, world rotation adds per
// component, world scale multiplies per component. Keeping the graph
// axis-aligned keeps world-space expectations computable by hand.
type Object struct {
	name     string
	enabled  bool
	parent   *Object
	children []*Object

	pos   reflex.Vec3
	rot   reflex.Vec3
	scale reflex.Vec3

	disposed bool
}

// NewObject creates an enabled object at the origin with unit scale.
func NewObject(name string) *Object {
	return &Object{name: name, enabled: true, scale: reflex.Vec3{X: 1, Y: 1, Z: 1}}
}

// Dispose marks the object destroyed. Every later access through the reflex
// interfaces panics, which is how tests simulate a target torn down while
// responses or tweens still reference it.
func (o *Object) Dispose() {
	o.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (o *Object) IsDisposed() bool {
	return o.disposed
}

func (o *Object) check() {
	if o.disposed {
		panic(fmt.Sprintf("scenetest: use of disposed object %q", o.name))
	}
}

// Name returns the name given to NewObject. Safe on disposed objects so
// error paths can still identify them.
func (o *Object) Name() string {
	return o.name
}

// Enabled reports the enabled flag.
func (o *Object) Enabled() bool {
	o.check()
	return o.enabled
}

// SetEnabled writes the enabled flag.
func (o *Object) SetEnabled(enabled bool) {
	o.check()
	o.enabled = enabled
}

// --- hierarchy ---

// AddChild appends child to this object's children.
// Panics if child is nil.
func (o *Object) AddChild(child *Object) {
	if child == nil {
		panic("scenetest: cannot add nil child")
	}
	child.parent = o
	o.children = append(o.children, child)
}

// NumChildren returns the number of children.
func (o *Object) NumChildren() int {
	o.check()
	return len(o.children)
}

// ChildAt returns the child at the given index.
func (o *Object) ChildAt(i int) reflex.Object {
	o.check()
	return o.children[i]
}

// Child returns the child at the given index as a *Object, for test
// assertions that need the concrete type.
func (o *Object) Child(i int) *Object {
	o.check()
	return o.children[i]
}

// Parent returns the object's parent, or nil at the root.
func (o *Object) Parent() *Object {
	return o.parent
}

// --- transform ---

// Position returns the object's position in the given space.
func (o *Object) Position(space reflex.Space) reflex.Vec3 {
	o.check()
	if space == reflex.SpaceWorld {
		return o.worldPosition()
	}
	return o.pos
}

// SetPosition writes the object's position in the given space. Writing a
// world position requires non-zero parent world scale.
func (o *Object) SetPosition(space reflex.Space, v reflex.Vec3) {
	o.check()
	if space == reflex.SpaceWorld && o.parent != nil {
		pw := o.parent.worldPosition()
		ps := o.parent.worldScale()
		o.pos = reflex.Vec3{
			X: (v.X - pw.X) / ps.X,
			Y: (v.Y - pw.Y) / ps.Y,
			Z: (v.Z - pw.Z) / ps.Z,
		}
		return
	}
	o.pos = v
}

// Rotation returns the object's Euler rotation in the given space.
func (o *Object) Rotation(space reflex.Space) reflex.Vec3 {
	o.check()
	if space == reflex.SpaceWorld {
		return o.worldRotation()
	}
	return o.rot
}

// SetRotation writes the object's Euler rotation in the given space.
func (o *Object) SetRotation(space reflex.Space, v reflex.Vec3) {
	o.check()
	if space == reflex.SpaceWorld && o.parent != nil {
		pr := o.parent.worldRotation()
		o.rot = reflex.Vec3{X: v.X - pr.X, Y: v.Y - pr.Y, Z: v.Z - pr.Z}
		return
	}
	o.rot = v
}

// Scale returns the object's scale in the given space.
func (o *Object) Scale(space reflex.Space) reflex.Vec3 {
	o.check()
	if space == reflex.SpaceWorld {
		return o.worldScale()
	}
	return o.scale
}

// SetScale writes the object's scale in the given space. Writing a world
// scale requires non-zero parent world scale.
func (o *Object) SetScale(space reflex.Space, v reflex.Vec3) {
	o.check()
	if space == reflex.SpaceWorld && o.parent != nil {
		ps := o.parent.worldScale()
		o.scale = reflex.Vec3{X: v.X / ps.X, Y: v.Y / ps.Y, Z: v.Z / ps.Z}
		return
	}
	o.scale = v
}

func (o *Object) worldPosition() reflex.Vec3 {
	if o.parent == nil {
		return o.pos
	}
	pw := o.parent.worldPosition()
	ps := o.parent.worldScale()
	return reflex.Vec3{
		X: pw.X + o.pos.X*ps.X,
		Y: pw.Y + o.pos.Y*ps.Y,
		Z: pw.Z + o.pos.Z*ps.Z,
	}
}

func (o *Object) worldRotation() reflex.Vec3 {
	if o.parent == nil {
		return o.rot
	}
	pr := o.parent.worldRotation()
	return reflex.Vec3{X: pr.X + o.rot.X, Y: pr.Y + o.rot.Y, Z: pr.Z + o.rot.Z}
}

func (o *Object) worldScale() reflex.Vec3 {
	if o.parent == nil {
		return o.scale
	}
	ps := o.parent.worldScale()
	return reflex.Vec3{X: ps.X * o.scale.X, Y: ps.Y * o.scale.Y, Z: ps.Z * o.scale.Z}
}
