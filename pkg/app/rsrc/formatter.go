package rsrc

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FormatOutput writes the result of a size, put or truncate operation. Cat
// results are the fork itself and are not formatted.
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
		var err error
		switch response.Op {
		case OpPut:
			_, err = fmt.Fprintf(w, "%s: wrote %d bytes\n", response.Path, response.Bytes)
		case OpTruncate:
			_, err = fmt.Fprintf(w, "%s: resource fork is now %d bytes\n", response.Path, response.Size)
		default:
			_, err = fmt.Fprintf(w, "%d\t%s\n", response.Size, response.Path)
		}
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
