package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

func botState() *sim.State {
	return sim.NewState(component.DefaultTuning(),
		component.PlayerStats{AttackPower: 10, MaxHealth: 200, MaxPosture: 100},
		component.BossStats{MaxHealth: 340, MaxPosture: 155, Level: 1})
}

func TestBotAnswersTelegraphs(t *testing.T) {
	t.Run("jumps a sweep", func(t *testing.T) {
		st := botState()
		st.Boss.Pos.X = 180
		st.Boss.Attack = component.AttackSweep
		st.Boss.Enter(component.BossAttack, 10)
		require.True(t, NewBot(1, 1).Intent(st).Jump)
	})

	t.Run("dashes away from peril", func(t *testing.T) {
		st := botState()
		st.Boss.Pos.X = 180
		st.Boss.Attack = component.AttackHeavy
		st.Boss.Perilous = true
		st.Boss.Enter(component.BossAttack, 10)
		require.Equal(t, -1, NewBot(1, 1).Intent(st).Dash)
	})

	t.Run("parries once per swing", func(t *testing.T) {
		st := botState()
		st.Boss.Pos.X = 180
		st.Boss.Attack = component.AttackLight
		st.Boss.Enter(component.BossAttack, 10)
		bot := NewBot(1, 1)

		first := bot.Intent(st)
		require.True(t, first.Block)
		require.True(t, first.BlockPressed)

		second := bot.Intent(st)
		require.True(t, second.Block)
		require.False(t, second.BlockPressed)
	})

	t.Run("closes distance", func(t *testing.T) {
		st := botState()
		in := NewBot(1, 1).Intent(st)
		require.True(t, in.MoveRight)
		require.False(t, in.MoveLeft)
	})
}

func TestBotChargeHoldsUntilRelease(t *testing.T) {
	st := botState()
	st.Boss.Pos.X = 180
	bot := NewBot(1, 1)
	bot.charging = 3

	require.True(t, bot.Intent(st).ThrustHold)
	require.True(t, bot.Intent(st).ThrustHold)
	require.False(t, bot.Intent(st).ThrustHold)
}

func TestSummarize(t *testing.T) {
	s := summarize(3, []result{
		{Outcome: "victory", Frames: 100, Parries: 4, Deathblows: 2},
		{Outcome: "defeat", Frames: 300},
		{Outcome: "timeout", Frames: 200, Parries: 2},
		{Outcome: "victory", Frames: 400, Deathblows: 2},
	})
	require.Equal(t, 4, s.Runs)
	require.Equal(t, 3, s.Level)
	require.Equal(t, 2, s.Victories)
	require.Equal(t, 1, s.Defeats)
	require.Equal(t, 1, s.Timeouts)
	require.InDelta(t, 0.5, s.WinRate, 1e-9)
	require.InDelta(t, 250, s.AvgFrames, 1e-9)
	require.InDelta(t, 1.5, s.AvgParries, 1e-9)
	require.InDelta(t, 1, s.AvgDeathblows, 1e-9)

	require.Zero(t, summarize(1, nil).Runs)
}
