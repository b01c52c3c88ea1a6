//go:build windows

package main

import (
	"github.com/rs/zerolog/log"
	"golang.design/x/hotkey/mainthread"

	"letszoom/internal/app"
	"letszoom/internal/config"
	"letszoom/internal/logging"
	"letszoom/internal/winapi"
)

func runApp(debug bool) error {
	var err error
	// Windows and hotkeys stay on the main OS thread.
	mainthread.Init(func() { err = launch(debug) })
	return err
}

func launch(debug bool) error {
	opts := logging.Options{Debug: debug}
	if debug {
		if p, err := logging.DebugLogPath(); err == nil {
			opts.FilePath = p
		}
	}
	closeLog, err := logging.Setup(opts)
	if err != nil {
		log.Warn().Err(err).Msg("debug log unavailable")
	}
	defer closeLog()

	if debug {
		logDPIInfo()
	}

	settings := config.Default()
	path, err := config.GetConfigPath()
	if err != nil {
		log.Warn().Err(err).Msg("settings will not be saved")
		path = ""
	} else if err := settings.Load(path); err != nil {
		log.Warn().Err(err).Msg("load settings, using defaults")
	}

	var runErr error
	mainthread.Call(func() { runErr = app.Run(settings, path, version) })
	if runErr != nil {
		log.Error().Err(runErr).Msg("start failed")
		winapi.MessageBox(0, "LetsZoom could not start.\n\n"+runErr.Error(), "LetsZoom", winapi.MB_OK|winapi.MB_ICONERROR)
	}
	return runErr
}
