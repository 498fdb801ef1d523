// Package timerview renders the main timer window and forwards user actions
// to the TimeKeeper.
package timerview

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/tasks"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/log"
)

var phaseColors = map[timekeeper.Phase]color.NRGBA{
	timekeeper.PhaseWork:       {R: 30, G: 58, B: 138, A: 255},
	timekeeper.PhaseShortBreak: {R: 20, G: 83, B: 45, A: 255},
	timekeeper.PhaseLongBreak:  {R: 88, G: 28, B: 135, A: 255},
}

var phaseOrder = []timekeeper.Phase{
	timekeeper.PhaseWork,
	timekeeper.PhaseShortBreak,
	timekeeper.PhaseLongBreak,
}

// Config defines the optional collaborators of the window.
type Config struct {
	Title string
	// Confirmer gates reset. Defaults to a fyne confirmation dialog.
	Confirmer timekeeper.Confirmer
	Logger    log.Logger
}

// Window manages the main timer UI.
type Window struct {
	window    fyne.Window
	keeper    *timekeeper.TimeKeeper
	tasks     *tasks.List
	confirmer timekeeper.Confirmer
	logger    log.Logger

	background  *canvas.Rectangle
	phaseLabel  *canvas.Text
	clockLabel  *canvas.Text
	studyLabel  *widget.Label
	cycleLabel  *widget.Label
	toggle      *widget.Button
	reset       *widget.Button
	tabs        map[timekeeper.Phase]*widget.Button
	taskName    *widget.Entry
	taskCount   *widget.Entry
	addTask     *widget.Button
	taskRows    *fyne.Container
	emptyTasks  *widget.Label
}

// New creates the timer window. It does not subscribe to the keeper; pass
// Handle to TimeKeeper.Subscribe.
func New(app fyne.App, keeper *timekeeper.TimeKeeper, list *tasks.List, config Config) *Window {
	if config.Title == "" {
		config.Title = "Pomodoro"
	}
	if config.Logger == nil {
		config.Logger = log.Noop
	}

	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	view := &Window{
		window: window,
		keeper: keeper,
		tasks:  list,
		logger: config.Logger.WithValues(log.Kv{"svc": "timerview.Window"}),
		tabs:   make(map[timekeeper.Phase]*widget.Button, len(phaseOrder)),
	}
	view.confirmer = config.Confirmer
	if view.confirmer == nil {
		view.confirmer = dialogConfirmer{parent: window}
	}

	window.SetContent(view.build())
	window.Resize(fyne.NewSize(520, 640))
	view.Render()

	return view
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Handle is a timekeeper.Listener that re-renders on every change.
func (view *Window) Handle(event timekeeper.Event) {
	view.renderTimer(event.Snapshot)
}

// RequestReset asks for confirmation, then resets the timer.
func (view *Window) RequestReset() {
	view.keeper.RequestReset(view.confirmer)
}

// Render refreshes every widget from the keeper and the task list.
func (view *Window) Render() {
	view.renderTimer(view.keeper.Snapshot())
	view.renderTasks()
}

func (view *Window) build() fyne.CanvasObject {
	view.background = canvas.NewRectangle(phaseColors[timekeeper.PhaseWork])

	tabRow := container.NewGridWithColumns(len(phaseOrder))
	for _, phase := range phaseOrder {
		button := widget.NewButton(phase.Title(), func() {
			view.keeper.SwitchPhase(phase)
		})
		view.tabs[phase] = button
		tabRow.Add(button)
	}

	view.phaseLabel = canvas.NewText("", color.White)
	view.phaseLabel.Alignment = fyne.TextAlignCenter
	view.phaseLabel.TextStyle = fyne.TextStyle{Monospace: true}
	view.phaseLabel.TextSize = 28

	view.clockLabel = canvas.NewText("--:--", color.White)
	view.clockLabel.Alignment = fyne.TextAlignCenter
	view.clockLabel.TextStyle = fyne.TextStyle{Monospace: true}
	view.clockLabel.TextSize = 96

	view.toggle = widget.NewButton("Start", view.keeper.ToggleRunning)
	view.toggle.Importance = widget.SuccessImportance
	view.reset = widget.NewButton("Reset", view.RequestReset)
	view.reset.Importance = widget.DangerImportance

	view.studyLabel = widget.NewLabel("")
	view.studyLabel.Alignment = fyne.TextAlignCenter
	view.cycleLabel = widget.NewLabel("")
	view.cycleLabel.Alignment = fyne.TextAlignCenter

	timerPanel := container.NewVBox(
		layout.NewSpacer(),
		view.phaseLabel,
		view.clockLabel,
		container.NewCenter(container.NewHBox(view.toggle, view.reset)),
		view.studyLabel,
		view.cycleLabel,
		layout.NewSpacer(),
	)

	view.taskName = widget.NewEntry()
	view.taskName.SetPlaceHolder("Task name")
	view.taskName.OnSubmitted = func(string) { view.submitTask() }
	view.taskCount = widget.NewEntry()
	view.taskCount.SetText("1")
	view.addTask = widget.NewButton("Add", view.submitTask)
	view.taskRows = container.NewVBox()
	view.emptyTasks = widget.NewLabel("No tasks yet.")

	taskInput := container.NewBorder(nil, nil, nil,
		container.NewHBox(container.NewGridWrap(fyne.NewSize(64, view.taskCount.MinSize().Height), view.taskCount), view.addTask),
		view.taskName,
	)
	taskPanel := container.NewVBox(
		widget.NewLabelWithStyle("Tasks", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		taskInput,
		container.NewVScroll(view.taskRows),
	)

	content := container.NewBorder(tabRow, container.NewPadded(taskPanel), nil, nil, timerPanel)
	return container.NewStack(view.background, container.NewPadded(content))
}

func (view *Window) renderTimer(snapshot timekeeper.Snapshot) {
	if fill, ok := phaseColors[snapshot.Phase]; ok && view.background.FillColor != fill {
		view.background.FillColor = fill
		view.background.Refresh()
	}

	for phase, button := range view.tabs {
		importance := widget.MediumImportance
		if phase == snapshot.Phase {
			importance = widget.HighImportance
		}
		if button.Importance != importance {
			button.Importance = importance
			button.Refresh()
		}
	}

	setText(view.phaseLabel, snapshot.Phase.Title())
	setText(view.clockLabel, timekeeper.FormatClock(snapshot.SecondsRemaining))

	if snapshot.Running {
		view.toggle.SetText("Pause")
	} else {
		view.toggle.SetText("Start")
	}
	view.studyLabel.SetText("Total Study Time: " + timekeeper.FormatStudy(snapshot.StudySeconds))
	view.cycleLabel.SetText(fmt.Sprintf("Completed pomodoros: %d", snapshot.CompletedWorkCycles))
}

func (view *Window) renderTasks() {
	items := view.tasks.Tasks()
	view.taskRows.RemoveAll()
	if len(items) == 0 {
		view.taskRows.Add(view.emptyTasks)
	}
	for index, task := range items {
		check := widget.NewCheck(taskLabel(task), nil)
		check.Checked = task.Completed
		check.OnChanged = func(bool) { view.toggleTask(index) }
		view.taskRows.Add(check)
	}
	view.taskRows.Refresh()
}

func (view *Window) submitTask() {
	planned, err := strconv.Atoi(view.taskCount.Text)
	if err != nil {
		planned = 1
	}
	if err := view.tasks.Add(view.taskName.Text, planned); err != nil {
		if errors.Is(err, tasks.ErrEmptyName) {
			view.logger.Debugf("ignoring task without name")
			return
		}
		view.logger.Warningf("could not add task: %v", err)
		return
	}
	view.taskName.SetText("")
	view.taskCount.SetText("1")
	view.renderTasks()
}

func (view *Window) toggleTask(index int) {
	if err := view.tasks.Toggle(index); err != nil {
		view.logger.Debugf("ignoring toggle of task %d: %v", index, err)
	}
	view.renderTasks()
}

func taskLabel(task tasks.Task) string {
	label := fmt.Sprintf("%s (%d pomodoros)", task.Name, task.PlannedPomodoros)
	if task.Completed {
		label += " - done"
	}
	return label
}

func setText(text *canvas.Text, value string) {
	if text.Text == value {
		return
	}
	text.Text = value
	text.Refresh()
}

type dialogConfirmer struct {
	parent fyne.Window
}

func (confirmer dialogConfirmer) Confirm(message string, done func(bool)) {
	dialog.ShowConfirm("Reset timer", message, done, confirmer.parent)
}
