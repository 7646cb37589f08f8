package controllers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/models"
	"github.com/blogem/shift-cycles/services"
)

// LayoutController previews layouts of unsaved schedules
type LayoutController struct {
	services *services.Services
	logger   zerolog.Logger
}

// NewLayoutController creates a new layout controller
func NewLayoutController(services *services.Services, logger zerolog.Logger) *LayoutController {
	return &LayoutController{
		services: services,
		logger:   logger,
	}
}

// Preview handles POST /api/layout/preview
func (c *LayoutController) Preview(w http.ResponseWriter, r *http.Request) {
	var form models.ShiftScheduleForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := c.services.Schedule.PreviewLayout(r.Context(), &form)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, NewLayoutView(result))
}

// BlockView is a visual block with its position on a 24-hour timeline
type BlockView struct {
	models.VisualBlock
	OffsetPercent float64 `json:"offset_percent"`
	WidthPercent  float64 `json:"width_percent"`
}

// DayView lists the blocks drawn on one cycle day
type DayView struct {
	Day    models.CycleDay `json:"day"`
	Blocks []BlockView     `json:"blocks"`
}

// LayoutView is the JSON rendering of a computed cycle layout
type LayoutView struct {
	ScheduleID      string    `json:"schedule_id,omitempty"`
	Name            string    `json:"name"`
	CycleLengthDays int       `json:"cycle_length_days"`
	FloatingStart   *int      `json:"floating_start,omitempty"`
	FloatingEnd     *int      `json:"floating_end,omitempty"`
	Days            []DayView `json:"days"`
	Cached          bool      `json:"cached"`
}

// NewLayoutView renders a layout for the API
func NewLayoutView(result *services.CycleLayout) LayoutView {
	view := LayoutView{
		ScheduleID:      result.Schedule.ID,
		Name:            result.Schedule.Name,
		CycleLengthDays: result.Schedule.CycleLengthDays,
		FloatingStart:   result.Schedule.FloatingStart,
		FloatingEnd:     result.Schedule.FloatingEnd,
		Days:            make([]DayView, len(result.Days)),
		Cached:          result.Cached,
	}

	for i, blocks := range result.Days {
		day := DayView{Day: models.CycleDay(i + 1), Blocks: make([]BlockView, len(blocks))}
		for j, block := range blocks {
			day.Blocks[j] = BlockView{
				VisualBlock:   block,
				OffsetPercent: block.OffsetPercent(),
				WidthPercent:  block.WidthPercent(),
			}
		}
		view.Days[i] = day
	}

	return view
}
