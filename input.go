package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/duel/duel"
	"github.com/milk9111/duel/sim/component"
)

// Input polls keyboard, mouse and the first gamepad into one intent per tick.
type Input struct {
	// Pause and Restart are menu edges, kept out of the match intent.
	Pause   bool
	Restart bool

	dash  *duel.DashDetector
	frame int

	prevStickLeft  bool
	prevStickRight bool
}

func NewInput() *Input {
	return &Input{dash: duel.NewDashDetector(0)}
}

func (i *Input) Update() component.Intent {
	const stickDeadzone = 0.3
	i.frame++

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	leftPressed := inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft)
	rightPressed := inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight)

	in := component.Intent{
		Jump:         inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW),
		Block:        ebiten.IsKeyPressed(ebiten.KeyK) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		BlockPressed: inpututil.IsKeyJustPressed(ebiten.KeyK) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Attack:       inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Heal:         inpututil.IsKeyJustPressed(ebiten.KeyR),
		Throw:        inpututil.IsKeyJustPressed(ebiten.KeyE),
		Special:      inpututil.IsKeyJustPressed(ebiten.KeyF),
		ThrustHold:   ebiten.IsKeyPressed(ebiten.KeyL),
	}
	dashPressed := inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)
	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.Restart = inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		stickLeft := leftX < -stickDeadzone
		stickRight := leftX > stickDeadzone
		if math.Abs(leftX) > stickDeadzone {
			left = left || stickLeft
			right = right || stickRight
		}
		leftPressed = leftPressed || (stickLeft && !i.prevStickLeft)
		rightPressed = rightPressed || (stickRight && !i.prevStickRight)
		i.prevStickLeft, i.prevStickRight = stickLeft, stickRight

		in.Jump = in.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Attack = in.Attack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.Block = in.Block || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
		in.BlockPressed = in.BlockPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
		in.ThrustHold = in.ThrustHold || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.Heal = in.Heal || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		in.Throw = in.Throw || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		in.Special = in.Special || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopLeft)
		dashPressed = dashPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
		i.Pause = i.Pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		i.Restart = i.Restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
	}

	in.MoveLeft = left && !right
	in.MoveRight = right && !left
	in.Dash = i.dash.Observe(i.frame, leftPressed, rightPressed)
	if dashPressed && in.Dash == 0 {
		switch {
		case in.MoveLeft:
			in.Dash = -1
		case in.MoveRight:
			in.Dash = 1
		}
	}
	return in
}
