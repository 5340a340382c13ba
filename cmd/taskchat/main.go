package main

import "github.com/cleitonmarx/symbiont-taskchat/internal/app"

func main() {
	err := app.NewTaskChatApp().Run()
	if err != nil {
		panic(err)
	}
}
