package style

// Resolve computes the effective style record for a breakpoint.
//
// For Desktop, the base record is returned unchanged. For any other breakpoint,
// a copy of base is overlayed with the override records of the cascade chain
// (see Chain), in chain order. Later links win key-by-key.
func Resolve(base Set, ov Overrides, bp Breakpoint) Set {
	if bp.IsBase() {
		return base
	}
	effective := base.Clone()
	for _, link := range Chain(bp) {
		for k, v := range ov.At(link) {
			effective[normKey(k)] = v
		}
	}
	tracer().P("breakpoint", bp).Debugf("resolved %d properties", len(effective))
	return effective
}

// IsOverriddenAt is a predicate wether a property is overridden exactly at
// breakpoint bp, i.e. bp's own override record defines key.
func IsOverriddenAt(ov Overrides, bp Breakpoint, key string) bool {
	return ov.At(bp).Has(key)
}

// IsInherited is a predicate wether a property value at breakpoint bp stems
// from a higher breakpoint: it is not overridden at bp itself, but is defined
// either in the base record or in an earlier link of the cascade chain.
//
// At Desktop nothing is inherited.
func IsInherited(base Set, ov Overrides, bp Breakpoint, key string) bool {
	if bp.IsBase() || IsOverriddenAt(ov, bp, key) {
		return false
	}
	if base.Has(key) {
		return true
	}
	for _, link := range Chain(bp - 1) {
		if ov.At(link).Has(key) {
			return true
		}
	}
	return false
}

// ResolvedFrom returns the breakpoint which supplies the effective value of a
// property at breakpoint bp. If the property is not set anywhere along the
// chain, found is false.
func ResolvedFrom(base Set, ov Overrides, bp Breakpoint, key string) (from Breakpoint, found bool) {
	chain := Chain(bp)
	for i := len(chain) - 1; i >= 0; i-- {
		if ov.At(chain[i]).Has(key) {
			return chain[i], true
		}
	}
	return Desktop, base.Has(key)
}
