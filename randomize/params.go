package randomize

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/pamsum/splotch"
	"github.com/katalvlaran/pamsum/swap"
)

// Params holds the parameters of a run. Values decoded from JSON arrive as
// float64; integer parameters accept any integral numeric type.
type Params map[string]any

// Parameter keys understood by Compute.
const (
	ParamIterations          = "iterations"
	ParamTargetSwaps         = "targetSwaps"
	ParamMaxTriesWithoutSwap = "maxTriesWithoutSwap"
	ParamSeed                = "seed"
	ParamWorkers             = "workers"
	ParamCellSides           = splotch.ParamCellSides
)

// Clone returns a shallow copy; nil stays nil.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Int returns the integer parameter key. ok is false when key is absent.
// Returns ErrInvalidParam for non-integral values.
func (p Params) Int(key string) (v int64, ok bool, err error) {
	raw, present := p[key]
	if !present {
		return 0, false, nil
	}
	switch x := raw.(type) {
	case int:
		return int64(x), true, nil
	case int32:
		return int64(x), true, nil
	case int64:
		return x, true, nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || x >= math.MaxInt64 || x < math.MinInt64 {
			break
		}
		return int64(x), true, nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, true, nil
		}
	}
	return 0, true, fmt.Errorf("param %q = %v: %w", key, raw, ErrInvalidParam)
}

func (p Params) swapOptions() ([]swap.Option, error) {
	var opts []swap.Option
	for _, kv := range []struct {
		key string
		opt func(int64) swap.Option
	}{
		{ParamIterations, func(v int64) swap.Option { return swap.WithIterations(int(v)) }},
		{ParamTargetSwaps, func(v int64) swap.Option { return swap.WithTargetSwaps(int(v)) }},
		{ParamMaxTriesWithoutSwap, func(v int64) swap.Option { return swap.WithMaxTriesWithoutSwap(int(v)) }},
		{ParamSeed, swap.WithSeed},
	} {
		v, ok, err := p.Int(kv.key)
		if err != nil {
			return nil, err
		}
		if ok {
			opts = append(opts, kv.opt(v))
		}
	}
	return opts, nil
}

func (p Params) splotchOptions(defaultSides int) ([]splotch.Option, error) {
	var opts []splotch.Option
	if defaultSides > 0 {
		opts = append(opts, splotch.WithCellSides(defaultSides))
	}
	for _, kv := range []struct {
		key string
		opt func(int64) splotch.Option
	}{
		{ParamCellSides, func(v int64) splotch.Option { return splotch.WithCellSides(int(v)) }},
		{ParamWorkers, func(v int64) splotch.Option { return splotch.WithWorkers(int(v)) }},
		{ParamSeed, splotch.WithSeed},
	} {
		v, ok, err := p.Int(kv.key)
		if err != nil {
			return nil, err
		}
		if ok {
			opts = append(opts, kv.opt(v))
		}
	}
	return opts, nil
}
