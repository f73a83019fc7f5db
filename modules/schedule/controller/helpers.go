package controller

import (
	"strconv"

	"delivery-availability/core/constants"
	"delivery-availability/core/errors"
)

func parseDayParam(raw string) (int, *errors.AppError) {
	day, err := strconv.Atoi(raw)
	if err != nil || day < constants.DayOfWeekMin || day > constants.DayOfWeekMax {
		return 0, errors.NewAppError(errors.ErrInvalidInput, "day must be an integer between 0 and 6", err)
	}
	return day, nil
}
