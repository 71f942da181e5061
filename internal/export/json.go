package export

import (
	"encoding/json"
	"fmt"
	"io"

	"plannerview/internal/domain"
)

func BuildPlanExport(req Request) *PlanExport {
	tasks := make([]*TaskData, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		tasks = append(tasks, convertTask(task, req))
	}

	view := &domain.SavedView{Config: req.View}
	return &PlanExport{
		Version:    "1.0",
		PlanID:     req.Plan.ID,
		PlanName:   req.Plan.Name,
		ExportDate: formatDate(req.Plan.ExportDate),
		View:       view.GetFilterSummary(),
		Tasks:      tasks,
	}
}

func WriteJSON(w io.Writer, req Request) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(BuildPlanExport(req)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
