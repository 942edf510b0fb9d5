package tips

import "math/rand"

// tips is the fixed list of energy-saving suggestions
var tips = []string{
	"Unplug chargers and small appliances when not in use; standby draw adds up.",
	"Run the washing machine and dishwasher only with full loads.",
	"Swap incandescent bulbs for LEDs to cut lighting usage by up to 80%.",
	"Set the fridge to 3-4°C; every degree colder costs extra energy.",
	"Air-dry clothes when you can; the dryer is one of the hungriest appliances.",
	"Lower the water heater thermostat to 60°C.",
	"Use a fan before reaching for the air conditioner.",
	"Defrost the freezer regularly; ice buildup makes it work harder.",
	"Keep the oven door closed while cooking; each peek drops the temperature.",
	"Enable power-saving mode on televisions and computers.",
}

// Pick returns one tip chosen by the provided random source. Injecting the
// source keeps selection deterministic under test.
func Pick(r *rand.Rand) string {
	return tips[r.Intn(len(tips))]
}

// All returns every tip in fixed order
func All() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
