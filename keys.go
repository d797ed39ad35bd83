package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit          key.Binding
	SwitchScreen  key.Binding
	OpenHelp      key.Binding
	NextColor     key.Binding
	PrevColor     key.Binding
	NextSub       key.Binding
	PrevSub       key.Binding
	LassoMode     key.Binding
	ClearLasso    key.Binding
	NextCity      key.Binding
	PrevCity      key.Binding
	TapCity       key.Binding
	SliderDown    key.Binding
	SliderUp      key.Binding
	PlayPause     key.Binding
	JumpYear      key.Binding
	FindCity      key.Binding
	SetThreshold  key.Binding
	ExportToFile  key.Binding
	SaveSession   key.Binding
	CopySelection key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	SwitchScreen: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch explorer/map"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	NextColor: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "next color feature"),
	),
	PrevColor: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "previous color feature"),
	),
	NextSub: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "next subplot feature"),
	),
	PrevSub: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "previous subplot feature"),
	),
	LassoMode: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "lasso select points"),
	),
	ClearLasso: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear selection"),
	),
	NextCity: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next city"),
	),
	PrevCity: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous city"),
	),
	TapCity: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "tap city (drill down)"),
	),
	SliderDown: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/←", "lower cap bound down"),
	),
	SliderUp: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("l/→", "lower cap bound up"),
	),
	PlayPause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause years"),
	),
	JumpYear: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to year"),
	),
	FindCity: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find city"),
	),
	SetThreshold: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "type cap lower bound"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export current table"),
	),
	SaveSession: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "write session snapshot"),
	),
	CopySelection: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "copy selected symbols"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.SwitchScreen,
		k.NextColor,
		k.NextSub,
		k.LassoMode,
		k.ClearLasso,
		k.NextCity,
		k.TapCity,
		k.SliderUp,
		k.PlayPause,
		k.JumpYear,
		k.FindCity,
		k.SetThreshold,
		k.ExportToFile,
		k.SaveSession,
		k.CopySelection,
	}
}
