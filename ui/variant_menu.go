package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/platproto/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// VariantEntry is one row of the menu.
type VariantEntry struct {
	Name    string
	Title   string
	Details string
}

type VariantMenuUI struct {
	UI *ebitenui.UI

	OnSelect func(name string)

	entries     []VariantEntry
	selected    int
	buttons     []*widget.Button
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewVariantMenuUI builds a menu listing entries. The entry named
// highlight, if any, starts selected.
func NewVariantMenuUI(entries []VariantEntry, highlight string, onSelect func(name string)) *VariantMenuUI {
	ui := &VariantMenuUI{
		OnSelect: onSelect,
		entries:  entries,
	}
	for i, e := range entries {
		if e.Name == highlight {
			ui.selected = i
		}
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *VariantMenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.Menu.FontSize * 1.5}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.Menu.FontSize}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: cfg.Menu.FontSize * 0.7}
}

func (ui *VariantMenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i, entry := range ui.entries {
		contentContainer.AddChild(ui.buildEntry(i, entry))
	}

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("Up/Down to choose, Enter to start", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
	ui.refreshSelection()
}

func (ui *VariantMenuUI) buildEntry(index int, entry VariantEntry) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 30)),
		widget.ButtonOpts.Image(ui.buttonImage(false)),
		widget.ButtonOpts.Text(entry.Title, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColorNormal,
			Hover:   cfg.Menu.TextColorSelected,
			Pressed: cfg.Menu.TextColorSelected,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.selected = index
			ui.Confirm()
		}),
	)
	ui.buttons = append(ui.buttons, button)
	row.AddChild(button)

	details := widget.NewLabel(
		widget.LabelOpts.Text(entry.Details, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{170, 180, 200, 255},
		}),
	)
	row.AddChild(details)

	return row
}

func (ui *VariantMenuUI) buttonImage(selected bool) *widget.ButtonImage {
	idle := cfg.Menu.ButtonIdle
	if selected {
		idle = cfg.Menu.ButtonHover
	}
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(idle),
		Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.Menu.ButtonPressed),
	}
}

func (ui *VariantMenuUI) refreshSelection() {
	for i, b := range ui.buttons {
		b.SetImage(ui.buttonImage(i == ui.selected))
	}
}

// Move shifts the keyboard selection by delta, wrapping around.
func (ui *VariantMenuUI) Move(delta int) {
	n := len(ui.entries)
	if n == 0 {
		return
	}
	ui.selected = ((ui.selected+delta)%n + n) % n
	ui.refreshSelection()
}

// Selected returns the name of the highlighted entry.
func (ui *VariantMenuUI) Selected() string {
	if len(ui.entries) == 0 {
		return ""
	}
	return ui.entries[ui.selected].Name
}

// Confirm starts the highlighted entry.
func (ui *VariantMenuUI) Confirm() {
	if name := ui.Selected(); name != "" && ui.OnSelect != nil {
		ui.OnSelect(name)
	}
}

func (ui *VariantMenuUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *VariantMenuUI) Update() {
	ui.UI.Update()
}
