package info

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// FormatOutput writes inspection results in the requested output format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "table":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// formatTable formats results as a table
func formatTable(out io.Writer, response *Response) error {
	if len(response.Files) == 0 && len(response.Failures) == 0 {
		fmt.Fprintln(out, "No files found.")
		return nil
	}

	files := make([]FileResult, len(response.Files))
	copy(files, response.Files)
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	if len(files) > 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

		fmt.Fprintf(w, "PATH\tTYPE\tCREATOR\tPRODOS\tAUX\tCLASS\tRSRC\n")
		fmt.Fprintf(w, "----\t----\t-------\t------\t---\t-----\t----\n")

		for _, file := range files {
			if !file.HasFinderInfo {
				fmt.Fprintf(w, "%s\t-\t-\t-\t-\t%s\t%d\n", file.Path, file.Class, file.ResourceForkSize)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%04X\t%s\t%d\n",
				file.Path, file.FileType, file.Creator, file.ProDOSType,
				file.ProDOSAuxType, file.Class, file.ResourceForkSize)
		}

		if err := w.Flush(); err != nil {
			return err
		}
	}

	for _, failure := range response.Failures {
		fmt.Fprintf(out, "%s: %s (%s)\n", failure.Path, failure.Error, failure.Code)
	}

	fmt.Fprintf(out, "\nInspected %d file", response.TotalFound)
	if response.TotalFound != 1 {
		fmt.Fprint(out, "s")
	}
	if len(response.Failures) > 0 {
		fmt.Fprintf(out, ", %d failed", len(response.Failures))
	}
	fmt.Fprintln(out)

	return nil
}

// formatJSON formats results as JSON
func formatJSON(w io.Writer, response *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// formatYAML formats results as YAML
func formatYAML(w io.Writer, response *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}
