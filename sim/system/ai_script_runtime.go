package system

import (
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/duel/common"
)

// Decision names passed to a tuning script.
const (
	DecisionPerilous        = "perilous"
	DecisionThrust          = "thrust"
	DecisionSweep           = "sweep"
	DecisionDodge           = "dodge"
	DecisionBlockRead       = "block_read"
	DecisionEscape          = "escape"
	DecisionShuriken        = "shuriken"
	DecisionProjectileBlock = "projectile_block"
	DecisionJump            = "jump"
)

const tuningDispatchScript = `
__result = adjust(__decision, __ctx, __base)
`

// ScriptTuner runs a tengo script's adjust(decision, ctx, base) to reshape
// boss decision probabilities.
type ScriptTuner struct {
	name     string
	compiled *tengo.Compiled
	errOnce  sync.Once
}

func NewScriptTuner(name string, src []byte) (*ScriptTuner, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + tuningDispatchScript))
	_ = script.Add("__decision", "")
	_ = script.Add("__ctx", map[string]any{})
	_ = script.Add("__base", 0.0)
	_ = script.Add("__result", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("boss: compile tuning script %s: %w", name, err)
	}
	return &ScriptTuner{name: name, compiled: compiled}, nil
}

// Adjust returns the script's probability for the decision. Script errors fall
// back to base and are logged once.
func (t *ScriptTuner) Adjust(decision string, ctx map[string]any, base float64) float64 {
	if t == nil || t.compiled == nil {
		return base
	}
	out, err := t.run(decision, ctx, base)
	if err != nil {
		t.errOnce.Do(func() {
			log.Printf("boss: tuning script %s: %s: %v", t.name, decision, err)
		})
		return base
	}
	return common.Clamp01(out)
}

func (t *ScriptTuner) run(decision string, ctx map[string]any, base float64) (float64, error) {
	values := make(map[string]tengo.Object, len(ctx))
	for k, v := range ctx {
		obj, err := tengo.FromInterface(v)
		if err != nil {
			return base, fmt.Errorf("ctx %s: %w", k, err)
		}
		values[k] = obj
	}

	if err := t.compiled.Set("__decision", decision); err != nil {
		return base, err
	}
	if err := t.compiled.Set("__ctx", &tengo.ImmutableMap{Value: values}); err != nil {
		return base, err
	}
	if err := t.compiled.Set("__base", base); err != nil {
		return base, err
	}
	if err := t.compiled.Run(); err != nil {
		return base, err
	}

	result := t.compiled.Get("__result")
	switch result.ValueType() {
	case "float", "int":
		return result.Float(), nil
	default:
		return base, fmt.Errorf("adjust returned %s", result.ValueType())
	}
}
