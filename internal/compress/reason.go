package compress

// Reason explains why a parameter was or was not inlined.
type Reason uint8

const (
	ReasonInlined Reason = iota
	ReasonDisabled
	ReasonDynamicScope
	ReasonArguments
	ReasonCallee
	ReasonFnExprValue
	ReasonPattern
	ReasonNoVerdict
	ReasonInconsistent
	ReasonUntrackable
	ReasonPartialCoverage
	ReasonReassigned
	ReasonUsedInParams
	ReasonArgPositions
	ReasonEnclosingDynamic
)

var reasonNames = [...]string{
	ReasonInlined:          "inlined",
	ReasonDisabled:         "unused bindings pass disabled",
	ReasonDynamicScope:     "function uses eval or with",
	ReasonArguments:        "function reads arguments",
	ReasonCallee:           "function binding is rebound or escapes",
	ReasonFnExprValue:      "function expression is reachable through its value",
	ReasonPattern:          "parameter is not a plain identifier",
	ReasonNoVerdict:        "no tracked calls",
	ReasonInconsistent:     "calls pass different values",
	ReasonUntrackable:      "value is not a small constant",
	ReasonPartialCoverage:  "not every call was tracked",
	ReasonReassigned:       "parameter is reassigned",
	ReasonUsedInParams:     "parameter is read by another default",
	ReasonArgPositions:     "a later parameter stays",
	ReasonEnclosingDynamic: "declaring scope uses eval or with",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}
