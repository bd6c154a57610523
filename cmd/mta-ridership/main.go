package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	lib "github.com/theoremus-urban-solutions/mta-ridership"
	"github.com/theoremus-urban-solutions/mta-ridership/formatter"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot|export")
	configPath := flag.String("config", "", "path to config.yml")
	dataPath := flag.String("data", "", "ridership CSV path (overrides config)")
	view := flag.String("view", "monthly", "oneshot view: daily|weekly|monthly|quarterly|annual|kpis|comparison")
	out := flag.String("out", "ridership.xlsx", "export mode output path (.xlsx or .csv)")
	logLevel := flag.String("log-level", "info", "log level [debug, info, warn, error, fatal, panic]")
	flag.Parse()

	if err := lib.InitLogging(*logLevel); err != nil {
		logrus.Fatalf("%v", err)
	}
	if err := lib.LoadAppConfig(*configPath); err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if *dataPath != "" {
		lib.Config.Dataset.Path = *dataPath
	}

	snap, err := lib.BuildSnapshot(lib.Config)
	if err != nil {
		logrus.Fatalf("load ridership data: %v", err)
	}

	switch *mode {
	case "serve":
		store := lib.NewSnapshotStore(snap)
		stop, err := lib.StartRefresher(store, lib.Config)
		if err != nil {
			logrus.Fatalf("start refresher: %v", err)
		}
		defer stop()
		lib.StartServer(store)
		lib.HandleGracefulShutdown()
	case "oneshot":
		payload, err := snap.View(*view)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		fmt.Println(string(formatter.BuildJSON(payload)))
	case "export":
		if strings.HasSuffix(*out, ".csv") {
			f, err := os.Create(*out)
			if err != nil {
				logrus.Fatalf("export csv: %v", err)
			}
			defer f.Close()
			if err := formatter.WriteCSV(f, snap.Scaled.DF()); err != nil {
				logrus.Fatalf("export csv: %v", err)
			}
		} else if err := formatter.WriteWorkbook(*out, snap.WorkbookSheets()); err != nil {
			logrus.Fatalf("export workbook: %v", err)
		}
		logrus.Infof("wrote %s", *out)
	default:
		logrus.Fatalf("unknown mode: %s", *mode)
	}
}
