package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteTable renders the report as a plain fixed-width text table. Column
// widths track the widest cell so paths of any length stay aligned.
func WriteTable(w io.Writer, rep Report) {
	headers := Headers()

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, result := range rep {
		for i, field := range result.Row() {
			if len(field) > widths[i] {
				widths[i] = len(field)
			}
		}
	}

	writeRow(w, headers, widths)
	separators := make([]string, len(headers))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	writeRow(w, separators, widths)

	for _, result := range rep {
		writeRow(w, result.Row(), widths)
	}
}

func writeRow(w io.Writer, fields []string, widths []int) {
	for i, field := range fields {
		if i == len(fields)-1 {
			// No trailing padding on the last column.
			fmt.Fprintf(w, "%s\n", field)
			return
		}
		fmt.Fprintf(w, "%-*s  ", widths[i], field)
	}
}
