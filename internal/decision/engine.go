package decision

// Engine finds the best loan a validated request qualifies for.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Decide derives the credit segment and searches for the largest approvable
// amount, widening the period only when the requested one cannot reach the
// minimum amount.
func (e *Engine) Decide(req Request) (Decision, error) {
	seg, err := SegmentOf(req.PersonalCode)
	if err != nil {
		return Decision{}, err
	}
	modifier, ok := e.policy.Modifier(seg)
	if !ok {
		return Decision{}, ErrDebtor
	}

	period := req.LoanPeriod
	adjusted := false
	if highestAmount(modifier, period) < e.policy.MinLoanAmount {
		period = e.policy.MinLoanAmount / modifier
		adjusted = true
	}
	if period > e.policy.MaxLoanPeriod {
		return Decision{}, ErrNoLoanWithinPeriod
	}

	return Decision{
		LoanAmount:     min(e.policy.MaxLoanAmount, highestAmount(modifier, period)),
		LoanPeriod:     period,
		Segment:        seg,
		PeriodAdjusted: adjusted,
	}, nil
}

func highestAmount(modifier, period int) int {
	return modifier * period
}
