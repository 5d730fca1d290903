package main

import (
	"fmt"
	"log"
	"os"

	"news_analyzer/internal/app"
	"news_analyzer/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <url> [<url> ...]\n", os.Args[0])
		os.Exit(2)
	}

	config, err := config.LoadConfig("config.yaml")

	if err != nil {
		panic(err)
	}

	app, err := app.NewAnalyzerApp(config)

	if err != nil {
		panic(err)
	}

	err = app.Run(os.Args[1:])

	if err != nil {
		panic(err)
	}

	log.Println("Analysis finished")
}
