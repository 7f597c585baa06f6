package main

import (
	"os"

	"guestchat/backend/internal/app"
)

// @title        Guest Chat Gateway API
// @version      1.0
// @description  Streaming gateway between the bank's guest chat UI and its tunnelled assistant.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
