package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/milk9111/duel/duel"
	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

type result struct {
	Outcome      string  `json:"outcome"`
	Frames       int     `json:"frames"`
	PlayerHealth float64 `json:"player_health"`
	BossHealth   float64 `json:"boss_health"`
	Parries      int     `json:"parries"`
	Deathblows   int     `json:"deathblows"`
}

type summary struct {
	Runs          int      `json:"runs"`
	Level         int      `json:"level"`
	Victories     int      `json:"victories"`
	Defeats       int      `json:"defeats"`
	Timeouts      int      `json:"timeouts"`
	WinRate       float64  `json:"win_rate"`
	AvgFrames     float64  `json:"avg_frames"`
	AvgParries    float64  `json:"avg_parries"`
	AvgDeathblows float64  `json:"avg_deathblows"`
	Results       []result `json:"results,omitempty"`
}

func main() {
	var (
		n, level, maxFrames, workers int
		seed                         int64
		skill                        float64
		useScript                    bool
		out                          string
	)
	flag.IntVar(&n, "n", 1, "number of matches")
	flag.IntVar(&level, "level", 1, "boss level")
	flag.Int64Var(&seed, "seed", 1, "base seed")
	flag.BoolVar(&useScript, "script", true, "apply the boss tuning script")
	flag.StringVar(&out, "json", "", "write the summary as JSON to this file")
	flag.Float64Var(&skill, "skill", 0.5, "bot parry skill in [0,1]")
	flag.IntVar(&maxFrames, "max-frames", 60*60*5, "frames before a match counts as a timeout")
	flag.IntVar(&workers, "workers", 8, "parallel matches")
	flag.Parse()

	if n < 1 {
		n = 1
	}
	// Fail fast on bad prefabs before spinning up workers.
	if _, err := duel.LoadConfig(level, useScript); err != nil {
		log.Fatalf("duelsim: %v", err)
	}

	results := make([]result, n)
	jobs := make(chan int, n)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for w := 0; w < max(1, workers); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := runMatch(level, useScript, seed+int64(i)*7919, skill, maxFrames)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				results[i] = res
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	if firstErr != nil {
		log.Fatalf("duelsim: %v", firstErr)
	}

	sum := summarize(level, results)
	if n == 1 {
		sum.Results = results
	}
	fmt.Printf("level %d: %d runs, %d victories, %d defeats, %d timeouts (win rate %.1f%%, avg %.0f frames)\n",
		level, sum.Runs, sum.Victories, sum.Defeats, sum.Timeouts, sum.WinRate*100, sum.AvgFrames)

	if out == "" {
		return
	}
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		log.Fatalf("duelsim: encode summary: %v", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Fatalf("duelsim: write %s: %v", out, err)
	}
}

// runMatch plays one bot-vs-boss match to completion or timeout. Every match
// gets its own config so script tuners are never shared between goroutines.
func runMatch(level int, useScript bool, seed int64, skill float64, maxFrames int) (result, error) {
	cfg, err := duel.LoadConfig(level, useScript)
	if err != nil {
		return result{}, err
	}
	var res result
	cfg.Rand = duel.NewRand(seed)
	cfg.Hooks.Cue = func(c component.Cue) {
		switch c.Kind {
		case component.CueParry:
			res.Parries++
		case component.CueDeathblow:
			res.Deathblows++
		}
	}

	m, err := duel.NewMatch(cfg)
	if err != nil {
		return result{}, err
	}
	bot := NewBot(seed, skill)
	for steps := 0; !m.Over() && m.Frame() < maxFrames && steps < maxFrames*4; steps++ {
		m.Step(bot.Intent(m.State()))
	}

	st := m.State()
	res.Outcome = m.Outcome().String()
	if !m.Over() {
		res.Outcome = "timeout"
	}
	res.Frames = m.Frame()
	res.PlayerHealth = st.Player.Health
	res.BossHealth = st.Boss.Health
	return res, nil
}

func summarize(level int, results []result) summary {
	s := summary{Runs: len(results), Level: level}
	if len(results) == 0 {
		return s
	}
	var frames, parries, deathblows int
	for _, r := range results {
		switch r.Outcome {
		case sim.OutcomeVictory.String():
			s.Victories++
		case sim.OutcomeDefeat.String():
			s.Defeats++
		default:
			s.Timeouts++
		}
		frames += r.Frames
		parries += r.Parries
		deathblows += r.Deathblows
	}
	runs := float64(len(results))
	s.WinRate = float64(s.Victories) / runs
	s.AvgFrames = float64(frames) / runs
	s.AvgParries = float64(parries) / runs
	s.AvgDeathblows = float64(deathblows) / runs
	return s
}
