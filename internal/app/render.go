package app

import (
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/chemlite/internal/model"
)

// render writes text or the JSON/YAML encoding of data to the App output,
// according to Config.Output.
func (a *App) render(text string, data any) error {
	switch a.cfg.Output {
	case OutputJSON:
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encoding json report: %w", err)
		}
		return nil
	case OutputYAML:
		out, err := model.MarshalYAML(data)
		if err != nil {
			return fmt.Errorf("encoding yaml report: %w", err)
		}
		_, err = a.outW.Write(out)
		return err
	default:
		_, err := fmt.Fprintln(a.outW, text)
		return err
	}
}
