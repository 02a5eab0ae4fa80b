package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bayneri/boxoffice/internal/evaluate"
)

func RenderChartCSV(w io.Writer, result evaluate.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"event", "group", "component", "value"}); err != nil {
		return err
	}
	for _, ev := range result.Events {
		for _, part := range ev.Chart {
			row := []string{ev.ID, part.Group, part.Label, strconv.FormatFloat(part.Value, 'f', 2, 64)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteChartCSV(path string, result evaluate.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderChartCSV(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
