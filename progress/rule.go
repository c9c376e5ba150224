// Package progress evaluates the scripted rule that turns collected pickups
// into unlocked roster slots.
package progress

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Rule is a compiled unlock script. The script reads the globals collected and
// roster_size and assigns unlocked.
type Rule struct {
	compiled *tengo.Compiled
}

var ruleGlobals = []string{"collected", "roster_size", "unlocked"}

func NewRule(src []byte) (*Rule, error) {
	script := tengo.NewScript(src)
	for _, name := range ruleGlobals {
		if err := script.Add(name, 0); err != nil {
			return nil, fmt.Errorf("progress: add %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("progress: compile unlock rule: %w", err)
	}
	return &Rule{compiled: compiled}, nil
}

// Unlocked runs the rule. The result is clamped to [1, rosterSize].
func (r *Rule) Unlocked(collected, rosterSize int) (int, error) {
	if r == nil || r.compiled == nil {
		return 1, nil
	}
	if err := r.compiled.Set("collected", collected); err != nil {
		return 0, fmt.Errorf("progress: set collected: %w", err)
	}
	if err := r.compiled.Set("roster_size", rosterSize); err != nil {
		return 0, fmt.Errorf("progress: set roster_size: %w", err)
	}
	if err := r.compiled.Run(); err != nil {
		return 0, fmt.Errorf("progress: run unlock rule: %w", err)
	}

	n := r.compiled.Get("unlocked").Int()
	if n > rosterSize {
		n = rosterSize
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}
