package shiftsystem

type ShiftDefinitionResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	StartHour     int    `json:"start_hour"`
	EndHour       int    `json:"end_hour"`
	DurationHours int    `json:"duration_hours"`
	IsNight       bool   `json:"is_night"`
	BreakMinutes  int    `json:"break_minutes"`
	Position      int    `json:"position"`
}

type ShiftSystemResponse struct {
	ID                string                    `json:"id"`
	ProjectID         string                    `json:"project_id"`
	Name              string                    `json:"name"`
	Type              string                    `json:"type"`
	PerShiftHeadcount int                       `json:"per_shift_headcount"`
	Shifts            []ShiftDefinitionResponse `json:"shifts"`
}

func MapToResponse(s ShiftSystem) ShiftSystemResponse {
	resp := ShiftSystemResponse{
		ID:                s.ID,
		ProjectID:         s.ProjectID,
		Name:              s.Name,
		Type:              string(s.Type),
		PerShiftHeadcount: s.PerShiftHeadcount,
		Shifts:            make([]ShiftDefinitionResponse, 0, len(s.Shifts)),
	}
	for _, d := range s.Shifts {
		resp.Shifts = append(resp.Shifts, ShiftDefinitionResponse{
			ID:            d.ID,
			Name:          d.Name,
			Type:          string(d.Type),
			StartHour:     d.StartHour,
			EndHour:       d.EndHour,
			DurationHours: d.DurationHours,
			IsNight:       d.IsNight,
			BreakMinutes:  d.BreakMinutes,
			Position:      d.Position,
		})
	}
	return resp
}
