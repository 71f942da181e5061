package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

var csvHeader = []string{
	"ID", "Name", "Bucket", "Progress", "Priority", "Assigned To", "Created By",
	"Created", "Start", "Deadline", "Completed", "Late", "Items", "Labels", "URL",
}

// WriteCSV writes one row per task. List cells are ';' separated like the source export.
func WriteCSV(w io.Writer, req Request) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range req.Tasks {
		data := convertTask(task, req)
		row := []string{
			data.ID,
			data.Name,
			data.Bucket,
			data.Progress,
			data.Priority,
			strings.Join(data.AssignedTo, ";"),
			data.CreatedBy,
			data.CreateDate,
			deref(data.StartDate),
			deref(data.Deadline),
			deref(data.CompleteDate),
			fmt.Sprint(data.Late),
			data.ItemsCompleted,
			strings.Join(data.Labels, ";"),
			data.URL,
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
