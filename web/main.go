package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	config := server.DefaultConfig(8080)
	flag.IntVar(&config.Port, "port", config.Port, "Port to serve on")
	flag.StringVar(&config.StaticDir, "static", config.StaticDir, "Directory of static web files")
	flag.StringVar(&config.ScenesDir, "scenes", "", "Directory of .ini scene files (default: search scenes/ upward)")
	flag.Parse()

	if config.ScenesDir != "" {
		if info, err := os.Stat(config.ScenesDir); err != nil || !info.IsDir() {
			log.Printf("Scenes directory %q is not a directory", config.ScenesDir)
			os.Exit(1)
		}
	}

	webServer := server.NewServerWithConfig(config)

	log.Printf("Whitted Raytracer Web Server")
	if config.ScenesDir != "" {
		log.Printf("Serving scene files from %s", config.ScenesDir)
	}
	log.Printf("Visit http://localhost:%d to start rendering", config.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
