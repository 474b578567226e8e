package filetype

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FormatOutput writes the update result in the requested output format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(response)
	case "table":
		if response.Action == ActionClear {
			_, err := fmt.Fprintf(w, "%s: finder info cleared\n", response.Path)
			return err
		}
		_, err := fmt.Fprintf(w, "%s: %s/%s (ProDOS %s $%04X)\n",
			response.Path, response.FileType, response.Creator, response.ProDOSType, response.ProDOSAuxType)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
