package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"

	"pomodoro/internal/clock"
	"pomodoro/internal/core/tasks"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/log"
	loglogrus "pomodoro/internal/log/logrus"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerview"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

const (
	appName = "Pomodoro"
	appID   = "com.pomodoro.app"

	loggerTypeDefault = "default"
	loggerTypeJSON    = "json"
)

type options struct {
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	ConfigPath string
	Mute       bool
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	logger := newLogger(opts, os.Stderr)

	service := platform.NewService()
	settingsPath, err := resolveSettingsPath(service, opts.ConfigPath)
	if err != nil {
		logger.Errorf("resolve settings path: %v", err)
		os.Exit(1)
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Infof("another instance is running, asking it to show its window")
			if err := platform.Activate(appName); err != nil {
				logger.Warningf("could not activate running instance: %v", err)
			}
			return
		}
		logger.Errorf("single instance: %v", err)
		os.Exit(1)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		logger.Warningf("using default settings: %v", err)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	keeper := timekeeper.New(settings.Durations(), timekeeper.Config{
		Clock:    clock.System,
		Dispatch: fyne.Do,
		Logger:   logger,
	})
	taskList := tasks.NewList()

	mainWindow := timerview.New(fyneApp, keeper, taskList, timerview.Config{
		Title:  appName,
		Logger: logger,
	})
	keeper.Subscribe(mainWindow.Handle)

	var sound notify.Player = notify.NewTone()
	if opts.Mute {
		sound = notify.Mute
	}
	cues := notify.NewDispatcher(notify.DispatcherConfig{
		Sound:   sound,
		Desktop: notify.NewDesktop(fyneApp, appName),
		Logger:  logger,
	})
	cues.SetEnabled(settings.SoundEnabled, settings.NotificationsEnabled)
	keeper.Subscribe(cues.Handle)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if updated.LaunchAtLogin != settings.LaunchAtLogin {
			if err := platform.SyncAutostart(service, appName, updated.LaunchAtLogin); err != nil {
				logger.Warningf("launch at login: %v", err)
			}
		}
		settings = updated
		keeper.UpdateDurations(settings.Durations())
		cues.SetEnabled(settings.SoundEnabled, settings.NotificationsEnabled)
		if err := storage.SaveSettings(settingsPath, settings); err != nil {
			logger.Errorf("save settings: %v", err)
		}
	})

	quit := func() {
		keeper.Close()
		fyneApp.Quit()
	}

	guard.OnActivate(func() {
		fyne.Do(mainWindow.Show)
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnToggle:      keeper.ToggleRunning,
			OnSwitchPhase: keeper.SwitchPhase,
			OnReset: func() {
				mainWindow.Show()
				mainWindow.RequestReset()
			},
			OnPreferences: prefsWindow.Show,
			OnQuit:        quit,
		})
		trayIcons := newTrayIcons(desktopApp)
		update := func(snapshot timekeeper.Snapshot) {
			trayManager.SetStatus(snapshot.Phase.Title() + " " + timekeeper.FormatClock(snapshot.SecondsRemaining))
			trayManager.SetRunning(snapshot.Running)
			trayIcons.update(snapshot)
		}
		update(keeper.Snapshot())
		keeper.Subscribe(func(event timekeeper.Event) {
			update(event.Snapshot)
		})
		mainWindow.Window().SetCloseIntercept(mainWindow.Window().Hide)
	} else {
		logger.Infof("system tray unsupported on this platform")
		mainWindow.Window().SetCloseIntercept(quit)
	}

	logger.Infof("starting with work=%s short=%s long=%s", settings.Work, settings.ShortBreak, settings.LongBreak)
	mainWindow.Show()
	fyneApp.Run()
}

func parseOptions(args []string) (options, error) {
	var opts options

	cli := kingpin.New("pomodoro", "Pomodoro focus timer.")
	cli.DefaultEnvars()
	cli.Flag("debug", "Enable debug mode.").BoolVar(&opts.Debug)
	cli.Flag("no-log", "Disable logger.").BoolVar(&opts.NoLog)
	cli.Flag("no-color", "Disable logger color.").BoolVar(&opts.NoColor)
	cli.Flag("logger", "Selects the logger type.").Default(loggerTypeDefault).EnumVar(&opts.LoggerType, loggerTypeDefault, loggerTypeJSON)
	cli.Flag("config", "Path to the settings YAML file.").StringVar(&opts.ConfigPath)
	cli.Flag("mute", "Never play sounds, regardless of preferences.").BoolVar(&opts.Mute)

	if _, err := cli.Parse(args); err != nil {
		return opts, fmt.Errorf("invalid command configuration: %w", err)
	}
	return opts, nil
}

// resolveSettingsPath returns the --config path, or the settings file inside
// the OS config directory when none was given.
func resolveSettingsPath(service platform.Service, configPath string) (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return storage.SettingsPath(configDir, appName), nil
}

func newLogger(opts options, out io.Writer) log.Logger {
	if opts.NoLog {
		return log.Noop
	}

	logrusLog := logrus.New()
	logrusLog.Out = out
	if opts.Debug {
		logrusLog.SetLevel(logrus.DebugLevel)
	}

	switch opts.LoggerType {
	case loggerTypeJSON:
		logrusLog.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrusLog.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !opts.NoColor,
			DisableColors: opts.NoColor,
		})
	}

	logger := loglogrus.NewLogrus(logrus.NewEntry(logrusLog)).WithValues(log.Kv{"app": appName})
	logger.Debugf("Debug level is enabled")
	return logger
}

type trayIcons struct {
	app     desktop.App
	current string
}

func newTrayIcons(app desktop.App) *trayIcons {
	return &trayIcons{app: app}
}

func (icons *trayIcons) update(snapshot timekeeper.Snapshot) {
	name := resources.IconActive
	switch {
	case !snapshot.Running:
		name = resources.IconPaused
	case snapshot.Phase != timekeeper.PhaseWork:
		name = resources.IconBreak
	}
	if name == icons.current {
		return
	}
	icons.current = name
	icons.app.SetSystemTrayIcon(resources.MustIcon(name))
}
