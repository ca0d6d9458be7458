package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne"
	"fyne.io/fyne/app"
	"fyne.io/fyne/dialog"
	"fyne.io/fyne/driver/desktop"
	"fyne.io/fyne/theme"
	"fyne.io/fyne/widget"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	formatcards "github.com/drpriver/format-cards-xml"
	"github.com/drpriver/format-cards-xml/log"
)

const (
	appName = "Card Listing Converter"
	appID   = "format-cards-xml-gui"
)

func showErrorf(win fyne.Window, format string, args ...interface{}) {
	msg := fmt.Errorf(format, args...)
	log.Info(msg)
	dialog.ShowError(msg, win)
}

func convertToFile(input, output string, win fyne.Window) {
	count, err := formatcards.Convert(
		formatcards.FileReader(input),
		formatcards.FileWriter(output),
	)
	if err != nil {
		showErrorf(win, "Couldn't convert %s: %w", input, err)
		return
	}

	dialog.ShowInformation(
		"Success",
		fmt.Sprintf("Converted %d card(s) to\n%s", count, output),
		win,
	)
}

func convertToClipboard(input string, win fyne.Window) {
	count, err := formatcards.Convert(
		formatcards.FileReader(input),
		func(listing string) error {
			win.Clipboard().SetContent(listing)
			return nil
		},
	)
	if err != nil {
		showErrorf(win, "Couldn't convert %s: %w", input, err)
		return
	}

	dialog.ShowInformation(
		"Success",
		fmt.Sprintf("Copied %d card(s) to the clipboard", count),
		win,
	)
}

// defaultOutputPath derives an output file name next to the input file.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".txt"
}

func main() {
	zapConf := zap.NewProductionConfig()
	zapConf.Encoding = "console"
	zapConf.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	zapConf.EncoderConfig.EncodeCaller = nil

	// Skip 1 caller, since all log calls go through format-cards-xml/log
	logger, err := zapConf.Build(zap.AddCallerSkip(1))
	if err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer func() {
		// Don't check for errors since logger.Sync() can sometimes fail
		// even if the logs were properly displayed
		// See https://github.com/uber-go/zap/issues/328
		_ = logger.Sync()
	}()

	log.SetLogger(logger.Sugar())

	application := app.NewWithID(appID)

	win := application.NewWindow(appName)
	win.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Menu",
			fyne.NewMenuItem("About", func() {
				dialog.ShowInformation("About", aboutText(), win)
			}),
		), // a quit item will be appended to our first menu
	))
	win.SetMaster()

	inputEntry := widget.NewEntry()
	inputEntry.Disable()

	outputEntry := widget.NewEntry()
	outputEntry.SetPlaceHolder("Output file")

	fileButton := widget.NewButtonWithIcon("File…", theme.FolderOpenIcon(), func() {
		dialog.ShowFileOpen(
			func(reader fyne.URIReadCloser, err error) {
				if err != nil {
					showErrorf(win, "Couldn't open the file: %w", err)
					return
				}
				if reader == nil {
					// Cancelled
					return
				}
				// Only the path is needed here, the conversion re-reads it
				if cerr := reader.Close(); cerr != nil {
					log.Error(cerr)
				}
				file := strings.TrimPrefix(reader.URI().String(), "file://")
				log.Infof("Selected %s", file)
				inputEntry.SetText(file)
				if len(outputEntry.Text) == 0 {
					outputEntry.SetText(defaultOutputPath(file))
				}
			},
			win,
		)
	})

	saveButton := widget.NewButtonWithIcon("Save to file", theme.DocumentSaveIcon(), func() {
		if len(inputEntry.Text) == 0 {
			showErrorf(win, "No input file has been selected")
			return
		}
		if len(outputEntry.Text) == 0 {
			showErrorf(win, "The output file path is empty")
			return
		}
		convertToFile(inputEntry.Text, outputEntry.Text, win)
	})

	copyButton := widget.NewButtonWithIcon("Copy to clipboard", theme.ContentCopyIcon(), func() {
		if len(inputEntry.Text) == 0 {
			showErrorf(win, "No input file has been selected")
			return
		}
		convertToClipboard(inputEntry.Text, win)
	})

	win.SetContent(widget.NewVBox(
		widget.NewLabel("Card XML file:"),
		inputEntry,
		fileButton,
		widget.NewLabel("Output file:"),
		outputEntry,
		widget.NewHBox(saveButton, copyButton),
	))

	quitShortcut := desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: desktop.ControlModifier}
	win.Canvas().AddShortcut(&quitShortcut, func(shortcut fyne.Shortcut) {
		application.Quit()
	})

	win.ShowAndRun()
}
