//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"terrain-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the terrain view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	info         []string
	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// infoKeys are shown read-only above the controls.
var infoKeys = []string{"seed", "passes", "order"}

var (
	colorPanel    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	colorTitle    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	colorText     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	colorDim      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	colorButton   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	colorDisabled = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 30
	infoHeight     = 16
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
)

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes the cached snapshot and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refresh()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(colorPanel)
	h.drawContents()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refresh() {
	h.info = h.info[:0]
	for _, key := range infoKeys {
		if p, ok := h.snapshot.Lookup(key); ok {
			h.info = append(h.info, p.Label+": "+p.Value)
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			if parsed, err := strconv.Atoi(param.Value); err == nil {
				state.intValue = parsed
				state.value = strconv.Itoa(parsed)
				state.hasValue = true
			}
		case core.ParamTypeFloat:
			if parsed, err := strconv.ParseFloat(param.Value, 64); err == nil {
				state.floatValue = parsed
				state.value = formatFloat(state.control, parsed)
				state.hasValue = true
			}
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case image.Pt(px, my).In(state.minusRect):
			h.apply(state, -1)
			return
		case image.Pt(px, my).In(state.plusRect):
			h.apply(state, 1)
			return
		}
	}
}

func (h *HUD) apply(state *hudControlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		if target, ok := stepInt(state.control, state.intValue, direction); ok {
			h.intSetter.SetIntParameter(state.control.Key, target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		if target, ok := stepFloat(state.control, state.floatValue, direction); ok {
			h.floatSetter.SetFloatParameter(state.control.Key, target)
		}
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		_, ok := stepInt(state.control, state.intValue, direction)
		return ok && h.intSetter != nil
	case core.ParamTypeFloat:
		_, ok := stepFloat(state.control, state.floatValue, direction)
		return ok && h.floatSetter != nil
	}
	return false
}

func (h *HUD) controlsTop() int {
	return panelPadding + headerBaseline + 10 + len(infoKeys)*infoHeight
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	top0 := h.controlsTop()
	for i := range h.controls {
		top := top0 + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.sim.Name()+" controls", face, panelPadding, y, colorTitle)
	y += 10
	for _, line := range h.info {
		y += infoHeight
		text.Draw(h.panel, line, face, panelPadding, y, colorDim)
	}
	for i := range h.controls {
		state := &h.controls[i]
		baseline := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, colorText)

		valueColor := colorText
		if !state.hasValue {
			valueColor = colorDim
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-valueWidth, baseline, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := colorButton, colorText
	if !enabled {
		bg, fg = colorDisabled, colorDim
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
