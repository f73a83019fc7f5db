package service

import (
	"delivery-availability/core/constants"
	"delivery-availability/modules/availability/entity"
	scheduleEntity "delivery-availability/modules/schedule/entity"
)

// aggregate folds a cell's recurring slots into one status. All-available
// and all-unavailable collapse to that status; anything else is MIXED.
func aggregate(slots []scheduleEntity.WeeklySlot) *entity.Resolution {
	if len(slots) == 0 {
		return &entity.Resolution{
			Kind:   entity.KindDefault,
			Status: entity.StatusUnconfigured,
		}
	}

	hasAvailable := false
	hasUnavailable := false
	windows := make([]entity.ResolvedWindow, 0, len(slots))
	for _, slot := range slots {
		switch slot.Status {
		case constants.SlotStatusAvailable:
			hasAvailable = true
		case constants.SlotStatusUnavailable:
			hasUnavailable = true
		}
		windows = append(windows, entity.ResolvedWindow{
			Start:  slot.StartTime,
			End:    slot.EndTime,
			Status: slot.Status,
		})
	}

	status := entity.StatusMixed
	switch {
	case hasAvailable && !hasUnavailable:
		status = entity.StatusAvailable
	case hasUnavailable && !hasAvailable:
		status = entity.StatusUnavailable
	}

	return &entity.Resolution{
		Kind:    entity.KindRegular,
		Status:  status,
		Windows: windows,
	}
}
