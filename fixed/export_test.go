package fixed

// OptionsSnapshot exposes the resolved Options to the external test package.
type OptionsSnapshot struct {
	MaxIterations int
	Strict        bool
}

// GatherOptionsSnapshot resolves opts the same way Sqrt and PowRatio do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{MaxIterations: o.maxIterations, Strict: o.strict}
}
