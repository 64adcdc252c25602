package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"checkers-local/config"
	"checkers-local/logging"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedDark  int
	selectedLight int
	editingLight  bool // true = editing light squares, false = editing dark squares
}

type paletteEntry struct {
	code int
	name string
}

// Dark square colors (deep tones the pieces stand out on)
var darkColors = []paletteEntry{
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Brown"},
	{88, "Dark Red"},
	{52, "Dark Maroon"},
	{22, "Dark Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{236, "Dark Gray"},
	{240, "Gray"},
}

// Light square colors (warm wood-like tones)
var lightColors = []paletteEntry{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{228, "Light Gold"},
	{222, "Gold"},
	{180, "Tan"},
	{179, "Light Brown"},
	{252, "Light Gray"},
	{250, "Gray"},
	{188, "Light Beige"},
	{181, "Dusty Rose"},
	{223, "Peach"},
	{216, "Salmon"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		onDone:        onDone,
		selectedDark:  cfg.Theme.Colors.DarkSquare,
		selectedLight: cfg.Theme.Colors.LightSquare,
	}

	// Create the color list
	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.SetBorderColor(MenuColors.BorderFocus)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetSelectedBackgroundColor(MenuColors.Selected)

	// Populate with dark square colors initially
	cc.populateColorList()

	// Handle selection change (preview)
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		entries := cc.entries()
		if index < 0 || index >= len(entries) {
			return
		}
		if cc.editingLight {
			cc.selectedLight = entries[index].code
		} else {
			cc.selectedDark = entries[index].code
		}
	})

	// Handle selection confirm (apply)
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.entries()) {
			return
		}
		if !cc.editingLight {
			cc.cfg.Theme.Colors.DarkSquare = cc.selectedDark
			cc.save()
			// Continue with the light squares
			cc.editingLight = true
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.LightSquare = cc.selectedLight
		cc.save()
		cc.editingLight = false
		cc.populateColorList()
		onDone()
	})

	// Create preview box
	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) save() {
	if err := cc.cfg.Save(); err != nil {
		logging.L().Warn("could not save config", zap.Error(err))
	}
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingLight {
		return lightColors
	}
	return darkColors
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedDark
	cc.colorList.SetTitle(" Dark Squares (Tab: light squares) ")
	if cc.editingLight {
		current = cc.selectedLight
		cc.colorList.SetTitle(" Light Squares (Tab: dark squares) ")
	}

	entries := cc.entries()
	for i, c := range entries {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	// Set current selection
	for i, c := range entries {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	// Draw a mini checkerboard with the selected colors
	dark := tcell.PaletteColor(cc.selectedDark)
	light := tcell.PaletteColor(cc.selectedLight)
	p1 := tcell.PaletteColor(cc.cfg.Theme.Colors.Player1Piece)
	p2 := tcell.PaletteColor(cc.cfg.Theme.Colors.Player2Piece)

	startX := x + 2
	startY := y + 1
	size := 6

	if width < 4+size*cellWidth || height < size+4 {
		return x, y, width, height
	}

	// Sample piece positions for preview, keyed by {col, row} from the top
	pieces := map[[2]int]tcell.Color{
		{1, 0}: p2,
		{3, 0}: p2,
		{4, 1}: p2,
		{1, 4}: p1,
		{0, 5}: p1,
		{2, 5}: p1,
	}
	kings := map[[2]int]bool{{4, 1}: true}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := light
			if (row+col)%2 == 1 {
				bg = dark
			}
			style := tcell.StyleDefault.Background(bg)
			symbol := ' '
			if fg, ok := pieces[[2]int{col, row}]; ok {
				style = style.Foreground(fg)
				symbol = cc.cfg.Theme.Symbols.Man
				if kings[[2]int{col, row}] {
					symbol = cc.cfg.Theme.Symbols.King
				}
			}
			screenX := startX + col*cellWidth
			screenY := startY + row
			screen.SetContent(screenX, screenY, ' ', nil, style)
			screen.SetContent(screenX+1, screenY, symbol, nil, style)
			screen.SetContent(screenX+2, screenY, ' ', nil, style)
		}
	}

	// Draw color info
	infoStyle := tcell.StyleDefault
	info := fmt.Sprintf("Dark: %d  Light: %d", cc.selectedDark, cc.selectedLight)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, infoStyle)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between dark and light square editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLight = !cc.editingLight
	cc.populateColorList()
}
