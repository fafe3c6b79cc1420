package reflex

import "github.com/tanema/gween/ease"

// Easing selects the interpolation curve of an animating response. Selector 0
// is the identity curve (unshaped linear progress). Selectors 1-33 cover
// eleven curve families, three directions each, in a fixed numeric order:
// linear, quadratic, cubic, quartic, quintic, exponential, circular, elastic,
// back, bounce, sinusoidal; within a family the order is in, out, in-out.
// A selector outside the table resolves to the identity curve, so stale
// configuration degrades to a linear animation instead of failing.
type Easing uint8

const (
	EaseIdentity Easing = iota // unshaped linear progress

	EaseInLinear    // linear; identical to EaseIdentity
	EaseOutLinear   // linear; identical to EaseIdentity
	EaseInOutLinear // linear; identical to EaseIdentity

	EaseInQuad
	EaseOutQuad
	EaseInOutQuad

	EaseInCubic
	EaseOutCubic
	EaseInOutCubic

	EaseInQuart
	EaseOutQuart
	EaseInOutQuart

	EaseInQuint
	EaseOutQuint
	EaseInOutQuint

	EaseInExpo
	EaseOutExpo
	EaseInOutExpo

	EaseInCirc
	EaseOutCirc
	EaseInOutCirc

	EaseInElastic
	EaseOutElastic
	EaseInOutElastic

	EaseInBack
	EaseOutBack
	EaseInOutBack

	EaseInBounce
	EaseOutBounce
	EaseInOutBounce

	EaseInSine
	EaseOutSine
	EaseInOutSine
)

// easingCount is the size of the selector table.
const easingCount = 34

var easingFuncs = [easingCount]ease.TweenFunc{
	EaseIdentity: ease.Linear,

	EaseInLinear:    ease.Linear,
	EaseOutLinear:   ease.Linear,
	EaseInOutLinear: ease.Linear,

	EaseInQuad:    ease.InQuad,
	EaseOutQuad:   ease.OutQuad,
	EaseInOutQuad: ease.InOutQuad,

	EaseInCubic:    ease.InCubic,
	EaseOutCubic:   ease.OutCubic,
	EaseInOutCubic: ease.InOutCubic,

	EaseInQuart:    ease.InQuart,
	EaseOutQuart:   ease.OutQuart,
	EaseInOutQuart: ease.InOutQuart,

	EaseInQuint:    ease.InQuint,
	EaseOutQuint:   ease.OutQuint,
	EaseInOutQuint: ease.InOutQuint,

	EaseInExpo:    ease.InExpo,
	EaseOutExpo:   ease.OutExpo,
	EaseInOutExpo: ease.InOutExpo,

	EaseInCirc:    ease.InCirc,
	EaseOutCirc:   ease.OutCirc,
	EaseInOutCirc: ease.InOutCirc,

	EaseInElastic:    ease.InElastic,
	EaseOutElastic:   ease.OutElastic,
	EaseInOutElastic: ease.InOutElastic,

	EaseInBack:    ease.InBack,
	EaseOutBack:   ease.OutBack,
	EaseInOutBack: ease.InOutBack,

	EaseInBounce:    ease.InBounce,
	EaseOutBounce:   ease.OutBounce,
	EaseInOutBounce: ease.InOutBounce,

	EaseInSine:    ease.InSine,
	EaseOutSine:   ease.OutSine,
	EaseInOutSine: ease.InOutSine,
}

var easingNames = [easingCount]string{
	EaseIdentity: "identity",

	EaseInLinear:    "in-linear",
	EaseOutLinear:   "out-linear",
	EaseInOutLinear: "in-out-linear",

	EaseInQuad:    "in-quad",
	EaseOutQuad:   "out-quad",
	EaseInOutQuad: "in-out-quad",

	EaseInCubic:    "in-cubic",
	EaseOutCubic:   "out-cubic",
	EaseInOutCubic: "in-out-cubic",

	EaseInQuart:    "in-quart",
	EaseOutQuart:   "out-quart",
	EaseInOutQuart: "in-out-quart",

	EaseInQuint:    "in-quint",
	EaseOutQuint:   "out-quint",
	EaseInOutQuint: "in-out-quint",

	EaseInExpo:    "in-expo",
	EaseOutExpo:   "out-expo",
	EaseInOutExpo: "in-out-expo",

	EaseInCirc:    "in-circ",
	EaseOutCirc:   "out-circ",
	EaseInOutCirc: "in-out-circ",

	EaseInElastic:    "in-elastic",
	EaseOutElastic:   "out-elastic",
	EaseInOutElastic: "in-out-elastic",

	EaseInBack:    "in-back",
	EaseOutBack:   "out-back",
	EaseInOutBack: "in-out-back",

	EaseInBounce:    "in-bounce",
	EaseOutBounce:   "out-bounce",
	EaseInOutBounce: "in-out-bounce",

	EaseInSine:    "in-sine",
	EaseOutSine:   "out-sine",
	EaseInOutSine: "in-out-sine",
}

// Func returns the gween curve for this selector. An out-of-range selector
// returns the identity curve.
func (e Easing) Func() ease.TweenFunc {
	if !e.Valid() {
		return ease.Linear
	}
	return easingFuncs[e]
}

// Valid reports whether e lies inside the selector table.
func (e Easing) Valid() bool {
	return int(e) < easingCount
}

// String returns the selector's curve name, or "identity" for out-of-range
// selectors, matching what Func resolves them to.
func (e Easing) String() string {
	if !e.Valid() {
		return "identity"
	}
	return easingNames[e]
}
