package impl

import (
	"strconv"

	"tankwatch/internal/domain/entity"
)

const (
	titleTankFull  = "Tank is Full!"
	titleTankEmpty = "Tank is Almost Empty!"
	titlePump      = "Motor Status Update"
)

func fullNotification(autoMode bool) *entity.Notification {
	body := "The tank is full! Please turn OFF the motor."
	if autoMode {
		body = "The tank is full and the motor has been stopped automatically."
	}

	return &entity.Notification{Title: titleTankFull, Body: body}
}

func emptyNotification(level float64, autoMode bool) *entity.Notification {
	prefix := "The water level is low at " + formatLevel(level) + "%. "
	body := prefix + "Please turn ON the motor."
	if autoMode {
		body = prefix + "The motor has been started automatically."
	}

	return &entity.Notification{Title: titleTankEmpty, Body: body}
}

func pumpNotification(pumpOn, autoMode bool) *entity.Notification {
	var body string
	switch {
	case pumpOn && autoMode:
		body = "The motor has been started automatically due to low water level."
	case pumpOn:
		body = "The motor has been turned ON manually."
	case autoMode:
		body = "The motor has been stopped automatically because the tank is full."
	default:
		body = "The motor has been turned OFF manually."
	}

	return &entity.Notification{Title: titlePump, Body: body}
}

// formatLevel prints the shortest exact representation: 4 -> "4", 4.5 -> "4.5".
func formatLevel(level float64) string {
	return strconv.FormatFloat(level, 'f', -1, 64)
}
