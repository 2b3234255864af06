// Package mainwindow builds the application window: region list, editor
// canvas, and the session controls around them.
package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"region-editor/internal/config"
	"region-editor/internal/editor"
	"region-editor/internal/imageio"
	"region-editor/internal/region"
	uicanvas "region-editor/ui/canvas"
)

const noActiveRegion = -1

// MainWindow hosts one editing session at a time over the loaded photo.
type MainWindow struct {
	win fyne.Window
	cfg *config.Config
	log *logrus.Logger

	regions    []region.Region
	outputPath string

	canvas     *uicanvas.EditorCanvas
	list       *widget.List
	labelEntry *widget.Entry
	areaLabel  *widget.Label
	status     *widget.Label

	session *editor.Session
	active  int
}

// New builds the window. The photo is loaded separately via LoadPhoto so
// the UI comes up while a large scan decodes.
func New(app fyne.App, cfg *config.Config, log *logrus.Logger, regions []region.Region, outputPath string) *MainWindow {
	mw := &MainWindow{
		win:        app.NewWindow("Region Editor"),
		cfg:        cfg,
		log:        log,
		regions:    regions,
		outputPath: outputPath,
		active:     noActiveRegion,
	}

	mw.canvas = uicanvas.NewEditorCanvas(cfg)
	mw.status = widget.NewLabel("Loading image...")
	mw.areaLabel = widget.NewLabel("")

	mw.canvas.OnWarning(func(msg string) {
		mw.status.SetText(msg)
	})
	mw.canvas.OnModeLabel(func(mode string) {
		mw.status.SetText("Mode: " + mode)
	})

	mw.labelEntry = widget.NewEntry()
	mw.labelEntry.SetPlaceHolder("Surface label")
	mw.labelEntry.OnChanged = func(text string) {
		if mw.active == noActiveRegion {
			return
		}
		mw.regions[mw.active].Label = text
		// The session must see the edit too, or Save would write back
		// the label it opened with.
		if mw.session != nil {
			mw.session.SetLabel(text)
		}
		mw.list.Refresh()
	}

	mw.list = widget.NewList(
		func() int { return len(mw.regions) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(mw.regionTitle(mw.regions[i]))
		},
	)
	mw.list.OnSelected = func(i widget.ListItemID) {
		mw.openRegion(i)
	}

	toolbar := container.NewHBox(
		widget.NewButton("Draw", func() {
			if mw.session != nil {
				mw.session.Controller.SetDrawing(!mw.session.Controller.Drawing())
			}
		}),
		widget.NewButton("Delete Points", func() {
			if mw.session != nil {
				mw.session.Controller.DeleteSelection()
			}
		}),
		widget.NewButton("Restore", func() {
			if mw.session != nil {
				mw.session.RestoreOriginal()
				mw.status.SetText("Boundary restored")
			}
		}),
		widget.NewButton("Save Region", func() { mw.saveRegion() }),
		widget.NewButton("Write File", func() { mw.saveFile() }),
	)

	sidebar := container.NewBorder(
		widget.NewLabel("Regions"), container.NewVBox(mw.labelEntry, mw.areaLabel),
		nil, nil,
		mw.list,
	)

	content := container.NewBorder(
		toolbar, mw.status, sidebar, nil,
		mw.canvas,
	)

	mw.win.SetContent(content)
	mw.win.Resize(fyne.NewSize(1200, 800))
	return mw
}

// Window returns the underlying Fyne window.
func (mw *MainWindow) Window() fyne.Window {
	return mw.win
}

// LoadPhoto decodes the photo in the background. Until it finishes the
// canvas ignores pointer input; on failure it shows an error state.
func (mw *MainWindow) LoadPhoto(path string) {
	go func() {
		photo, err := imageio.Load(path)
		if err != nil {
			mw.log.WithError(err).Error("image load failed")
			mw.canvas.SetPhoto(nil, err)
			mw.status.SetText("Image failed to load; editing disabled")
			return
		}
		mw.log.WithFields(logrus.Fields{
			"path":   path,
			"width":  photo.Size.Width,
			"height": photo.Size.Height,
		}).Info("image loaded")
		mw.canvas.SetPhoto(photo, nil)
		mw.status.SetText("Ready")
	}()
}

// Show displays the window and gives the canvas keyboard focus.
func (mw *MainWindow) Show() {
	mw.win.Show()
	mw.win.Canvas().Focus(mw.canvas)
}

func (mw *MainWindow) regionTitle(r region.Region) string {
	band := region.ConfidenceBand(r.Confidence, mw.cfg.HighConfidence, mw.cfg.MediumConfidence)
	title := fmt.Sprintf("%s [%s] %.1f sqft", r.Label, band, r.AreaSqFt)
	if r.UserModified {
		title += " *"
	}
	return title
}

// openRegion starts an editing session for the region at index,
// discarding any session in progress. Unsaved edits to the previous
// region are dropped; saving is explicit.
func (mw *MainWindow) openRegion(i int) {
	if i < 0 || i >= len(mw.regions) {
		return
	}
	mw.active = i
	r := mw.regions[i]

	mw.session = editor.NewSession(r, mw.cfg.PickRadius,
		func(updated region.Region) {
			mw.regions[i] = updated
			mw.list.Refresh()
		},
		nil,
	)
	mw.session.Bus.On(editor.EventGeometryChanged, func(interface{}) {
		mw.areaLabel.SetText(fmt.Sprintf("Edited area: %.0f px", mw.session.EditedArea()))
	})

	mw.canvas.SetSession(mw.session)
	mw.labelEntry.SetText(r.Label)
	mw.areaLabel.SetText(fmt.Sprintf("Edited area: %.0f px", mw.session.EditedArea()))
	mw.status.SetText("Editing " + r.Label)
	mw.win.Canvas().Focus(mw.canvas)

	mw.log.WithFields(logrus.Fields{
		"region":   r.ID,
		"vertices": len(r.Boundary),
	}).Debug("session opened")
}

// saveRegion writes the edited boundary back into the region list with
// the user-modified flag set.
func (mw *MainWindow) saveRegion() {
	if mw.session == nil {
		return
	}
	updated := mw.session.Save()
	mw.status.SetText("Saved " + updated.Label)
	mw.log.WithField("region", updated.ID).Info("region saved")
}

// saveFile writes all regions to the output path.
func (mw *MainWindow) saveFile() {
	if err := region.Save(mw.outputPath, mw.regions); err != nil {
		mw.log.WithError(err).Error("write failed")
		dialog.ShowError(err, mw.win)
		return
	}
	mw.status.SetText("Wrote " + mw.outputPath)
	mw.log.WithField("path", mw.outputPath).Info("regions written")
}
