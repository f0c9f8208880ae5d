//
// hivemind - UHP Hive game engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2023-2025 Crystal Spider
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/crystal-spider/hivemind/internal/board"
	"github.com/crystal-spider/hivemind/internal/config"
	"github.com/crystal-spider/hivemind/internal/logging"
	"github.com/crystal-spider/hivemind/internal/search"
	"github.com/crystal-spider/hivemind/internal/uhp"
	"github.com/crystal-spider/hivemind/internal/util"
	"github.com/crystal-spider/hivemind/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchlogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "", "path where to write log files to")
	cpuProfile := flag.Bool("cpuprofile", false, "writes a cpu profile to the working directory")
	perft := flag.Int("perft", 0, "starts perft on the start position with the given depth\nuse -gamestring to provide a different position")
	gameString := flag.String("gamestring", "", "GameString for perft and nps test")
	nps := flag.Int("nps", 0, "starts a nodes per second test searching the given amount of seconds\nuse -gamestring to provide a different position")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		// go tool pprof -http=localhost:8080 hivemind cpu.pprof
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// set config file
	// this needs to be set before config.Setup() is called. Otherwise the default will be used.
	config.ConfFile = *configFile

	// read config file
	config.Setup()

	// After reading the configuration file and the defaults we can now overwrite
	// settings with command line options.
	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchlogLvl]; found {
		config.SearchLogLevel = lvl
	}

	// resetting log level of the standard log - required as most packages
	// include the standard logger as a global var and therefore configure it
	// even before main() is called. These loggers start with the default log
	// level and must be reset to the actual level required.
	logging.GetLog()

	// nps test
	if *nps != 0 {
		s := search.NewSearch()
		b, err := board.New(*gameString)
		if err != nil {
			out.Println("Invalid GameString:", err)
			return
		}
		sl := search.NewSearchLimits()
		sl.TimeControl = true
		sl.MoveTime = time.Duration(*nps) * time.Second
		result := s.FindBestMove(b, *sl)
		out.Println()
		out.Println("NPS : ", util.Nps(s.NodesVisited(), result.SearchTime))
		return
	}

	// perft
	if *perft != 0 {
		perftTest := board.NewPerft()
		perftTest.StartPerftMulti(*gameString, 1, *perft)
		return
	}

	// starting the uhp handler and waiting for communication with
	// the Hive user interface
	u := uhp.NewUhpHandler()
	u.Loop()
}

func printVersionInfo() {
	out.Printf("HiveMind %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
