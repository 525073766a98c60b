package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/aadium/TriyamiRender/config"
	"github.com/aadium/TriyamiRender/game"
)

var (
	configPath = flag.String("config", "", "path to a toml settings file")
	dumpConfig = flag.Bool("dump-config", false, "print the effective settings and exit")
	shaderDir  = flag.String("shaders", "", "load shaders from this directory instead of the bundled ones")
	watch      = flag.Bool("watch", false, "reload shaders when files in the shader directory change")
)

func init() {
	// glfw and gl must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	// init
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("could not load settings: %v", err)
	}

	if *shaderDir != "" {
		cfg.Shaders.Dir = *shaderDir
	}
	if *watch {
		cfg.Shaders.Watch = true
	}

	if *dumpConfig {
		if err := config.Write(os.Stdout, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := game.Run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}
