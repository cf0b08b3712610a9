package util

import (
	"time"

	"github.com/fatih/color"
)

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func PrintBlue(msg string) {
	color.Blue("%s %s", timestamp(), msg)
}

func PrintGreen(msg string) {
	color.Green("%s %s", timestamp(), msg)
}

func PrintYellow(msg string) {
	color.Yellow("%s %s", timestamp(), msg)
}

func PrintRed(msg string) {
	color.Red("%s %s", timestamp(), msg)
}

func PrintRedNoTimeStamp(msg string) {
	color.Red("%s", msg)
}
