package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-simon/game"
	"go-simon/midi"
	"go-simon/panel"
	"go-simon/theme"
	"go-simon/widgets"
)

// screenWidth matches the pad row: five cells plus four gaps.
const screenWidth = 22

type Model struct {
	Panel      *panel.Panel
	DeviceMgr  *midi.DeviceManager
	Theme      *theme.Theme
	quitting   bool
	controller midi.Controller // current controller (may be nil)
}

type UpdateMsg struct{}

type DeviceEventMsg midi.DeviceEvent

func NewModel(pnl *panel.Panel, deviceMgr *midi.DeviceManager, th *theme.Theme) Model {
	return Model{
		Panel:     pnl,
		DeviceMgr: deviceMgr,
		Theme:     th,
	}
}

func ListenForUpdates(pnl *panel.Panel) tea.Cmd {
	return func() tea.Msg {
		<-pnl.UpdateChan
		return UpdateMsg{}
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	if deviceMgr == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForUpdates(m.Panel),
		ListenForDevices(m.DeviceMgr),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "1", "2", "3", "4", "5":
			m.Panel.Press(game.Symbol(msg.String()[0] - '1'))
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Panel)

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		switch event.Type {
		case midi.DeviceConnected:
			m.controller = event.Controller
			m.Panel.AttachController(event.Controller)

			// feed grid presses into the game
			go func(ctrl midi.Controller, pnl *panel.Panel) {
				for pad := range ctrl.PadEvents() {
					if sym, ok := midi.SymbolForPad(pad.Row, pad.Col); ok {
						pnl.Press(sym)
					}
				}
			}(event.Controller, m.Panel)

		case midi.DeviceDisconnected:
			if m.controller != nil && m.controller.ID() == event.ID {
				m.controller = nil
			}
			m.Panel.DetachController(event.ID)
		}
		return m, ListenForDevices(m.DeviceMgr)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	screenStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())

	header := headerStyle.Render("go-simon")
	if m.controller != nil {
		okStyle := lipgloss.NewStyle().Foreground(m.Theme.Success())
		header += okStyle.Render("  LP:X")
	}

	screen := widgets.RenderScreen(m.Panel.Screen(), screenWidth, screenStyle)

	lit := m.Panel.Lit()
	colors := make([]lipgloss.Color, game.NumSymbols)
	labels := make([]string, game.NumSymbols)
	for i := range colors {
		sym := game.Symbol(i)
		colors[i] = m.Theme.PadColor(sym, lit[i])
		labels[i] = sym.Digit()
	}
	padRow := widgets.RenderPadRow(colors, labels)

	var legend strings.Builder
	for i := 0; i < game.NumSymbols; i++ {
		sym := game.Symbol(i)
		legend.WriteString(widgets.RenderLegendItem(
			m.Theme.PadColor(sym, true), sym.String(), "press "+sym.Digit()))
		legend.WriteString("\n")
	}

	help := dimStyle.Render("1-5:pads  q:quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(screen)
	out.WriteString("\n\n")
	out.WriteString(padRow)
	out.WriteString("\n\n")
	out.WriteString(legend.String())
	out.WriteString("\n")
	out.WriteString(help)

	return out.String()
}
