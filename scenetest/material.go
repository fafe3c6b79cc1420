package scenetest

import "github.com/phanxgames/reflex"

// Material is a map-backed reflex.Material. A parameter exists once any Set
// method has written it or a seed method has declared it.
type Material struct {
	floats map[string]float64
	vecs   map[string]reflex.Vec3
	colors map[string]reflex.Color
}

// NewMaterial creates an empty material.
func NewMaterial() *Material {
	return &Material{
		floats: make(map[string]float64),
		vecs:   make(map[string]reflex.Vec3),
		colors: make(map[string]reflex.Color),
	}
}

// Clone returns an independent deep copy.
func (m *Material) Clone() reflex.Material {
	c := NewMaterial()
	for k, v := range m.floats {
		c.floats[k] = v
	}
	for k, v := range m.vecs {
		c.vecs[k] = v
	}
	for k, v := range m.colors {
		c.colors[k] = v
	}
	return c
}

// Has reports whether the named parameter exists, in any kind.
func (m *Material) Has(name string) bool {
	if _, ok := m.floats[name]; ok {
		return true
	}
	if _, ok := m.vecs[name]; ok {
		return true
	}
	_, ok := m.colors[name]
	return ok
}

// Float returns the named float parameter, or 0 if absent.
func (m *Material) Float(name string) float64 {
	return m.floats[name]
}

// SetFloat writes the named float parameter, creating it if absent.
func (m *Material) SetFloat(name string, v float64) {
	m.floats[name] = v
}

// Vec3 returns the named vector parameter, or the zero vector if absent.
func (m *Material) Vec3(name string) reflex.Vec3 {
	return m.vecs[name]
}

// SetVec3 writes the named vector parameter, creating it if absent.
func (m *Material) SetVec3(name string, v reflex.Vec3) {
	m.vecs[name] = v
}

// Color returns the named color parameter, or the zero color if absent.
func (m *Material) Color(name string) reflex.Color {
	return m.colors[name]
}

// SetColor writes the named color parameter, creating it if absent.
func (m *Material) SetColor(name string, v reflex.Color) {
	m.colors[name] = v
}

// Visual is an Object drawn with a material and a base color. It implements
// reflex.Renderable and reflex.Colorable.
type Visual struct {
	*Object
	mat   reflex.Material
	color reflex.Color
}

// NewVisual creates a visual with no material and a white base color.
func NewVisual(name string) *Visual {
	return &Visual{Object: NewObject(name), color: reflex.Color{R: 1, G: 1, B: 1, A: 1}}
}

// Material returns the visual's material, nil if none was set.
func (v *Visual) Material() reflex.Material {
	v.check()
	return v.mat
}

// SetMaterial installs a material on the visual.
func (v *Visual) SetMaterial(m reflex.Material) {
	v.check()
	v.mat = m
}

// BaseColor returns the visual's base color.
func (v *Visual) BaseColor() reflex.Color {
	v.check()
	return v.color
}

// SetBaseColor writes the visual's base color.
func (v *Visual) SetBaseColor(c reflex.Color) {
	v.check()
	v.color = c
}

// Mesh is an Object with named blend-shape weights. It implements
// reflex.BlendShaped.
type Mesh struct {
	*Object
	names   []string
	weights map[string]float64
}

// NewMesh creates a mesh exposing the given blend shapes, all at weight 0.
func NewMesh(name string, shapes ...string) *Mesh {
	m := &Mesh{
		Object:  NewObject(name),
		names:   append([]string(nil), shapes...),
		weights: make(map[string]float64, len(shapes)),
	}
	for _, s := range shapes {
		m.weights[s] = 0
	}
	return m
}

// BlendShapeNames returns the shape names in declaration order.
func (m *Mesh) BlendShapeNames() []string {
	m.check()
	return append([]string(nil), m.names...)
}

// HasBlendShape reports whether the mesh declares the named shape.
func (m *Mesh) HasBlendShape(name string) bool {
	m.check()
	_, ok := m.weights[name]
	return ok
}

// BlendShapeWeight returns the named shape's weight, or 0 if undeclared.
func (m *Mesh) BlendShapeWeight(name string) float64 {
	m.check()
	return m.weights[name]
}

// SetBlendShapeWeight writes the named shape's weight. Writes to undeclared
// shapes are dropped.
func (m *Mesh) SetBlendShapeWeight(name string, w float64) {
	m.check()
	if _, ok := m.weights[name]; ok {
		m.weights[name] = w
	}
}
