package cli

import (
	"os"

	"trade-tracker/internal/errors"
)

// loadSession fills the store from the session interchange blob, if one
// exists. A missing blob is a fresh session. A structurally broken blob is
// reported so commands that depend on the current journal refuse to run
// against a silently emptied one.
func (app *App) loadSession() error {
	path := app.Config.SessionPath(app.ConfigDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "reading session %s", path)
	}

	records, dropped, err := app.Codec.Import(string(data))
	if err != nil {
		return errors.Wrapf(err, "loading session %s", path)
	}
	if dropped > 0 {
		app.Logger.Warn().Int("dropped", dropped).Str("path", path).
			Msg("Session rows dropped on load")
	}
	app.Store.Replace(records)
	return nil
}

// saveSession serializes the store back to the session blob after a
// mutation. The journal itself stays memory-resident; this is only the
// interchange text leg of the data flow.
func (app *App) saveSession() error {
	text, err := app.Codec.Export(app.Store.Records())
	if err != nil {
		return err
	}
	path := app.Config.SessionPath(app.ConfigDir)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "writing session %s", path)
	}
	return nil
}
