package loadout

// attemptCollector records which sources a terminal lookup consulted so the
// missing-value error can name every one of them in declared order.
type attemptCollector struct {
	attempts []Attempt
}

func newAttemptCollector() *attemptCollector {
	return &attemptCollector{}
}

func (c *attemptCollector) miss(source Source, keys []string) {
	c.attempts = append(c.attempts, Attempt{
		Source: source,
		Keys:   append([]string(nil), keys...),
	})
}

func (c *attemptCollector) missing() error {
	return &MissingValueError{attempts: c.attempts}
}
