package functions

// registerBuiltinFunctions registers every built-in transform on r.
// The implementations are split by shape into functions_*.go.
func registerBuiltinFunctions(r *FunctionRegistry) {
	// Elementwise
	_ = r.Register(NewGeHalfFunction())
	_ = r.Register(NewNzeroFunction())
	_ = r.Register(NewDiv144Function())
	_ = r.Register(NewDivFunction())
	_ = r.Register(NewMapExprFunction())

	// Cross-row aggregates
	_ = r.Register(NewCountUpFunction())
	_ = r.Register(NewIfBreakFunction())
	_ = r.Register(NewAvgSessionFunction())

	// Grouped shift
	_ = r.Register(NewLeadFunction())
	_ = r.Register(NewStartStopFunction())

	// Windowing
	_ = r.Register(NewTimeBucket10mFunction())
	_ = r.Register(NewTimeBucketDayTenFunction())
	_ = r.Register(NewTimeBucketFunction())

	// Reshape
	_ = r.Register(NewTranspositionByTruckFunction())
	_ = r.Register(NewTranspositionFunction())

	// Aggregate over groups
	_ = r.Register(NewDivLoadCapFunction())

	// Filter
	_ = r.Register(NewFilterFunction())
}
