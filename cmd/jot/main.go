package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"text/tabwriter"

	"jot/internal/app"
	"jot/internal/config"
	"jot/internal/logging"
	"jot/internal/search"
	"jot/internal/store"
	"jot/internal/types"
)

const usageText = `jot is a local note manager.

Usage:
  jot [command] [flags]

Commands:
  ui       run the terminal UI (default)
  ls       list notes
  paths    print data file locations
  version  print build version
  help     show help

Flags:
  -h, --help   show help

Examples:
  jot
  jot ls --filter milk
  jot paths
`

const version = "dev"

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		exitOnErr("ui", runUI(nil))
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	case "ui":
		exitOnErr("ui", runUI(args[1:]))
	case "ls":
		exitOnErr("ls", runLS(args[1:]))
	case "paths":
		exitOnErr("paths", runPaths(args[1:]))
	case "version":
		fmt.Fprintln(os.Stdout, buildVersion())
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
}

func runUI(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	log, closeLog, err := openFileLogger(settings)
	if err != nil {
		return err
	}
	defer closeLog()

	st, closeStore, err := openStore(settings, log)
	if err != nil {
		return err
	}
	defer closeStore()
	if err := st.Load(); err != nil {
		return err
	}
	return app.Run(st, settings, log)
}

func runLS(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	filter := fs.String("filter", "", "only list notes matching this query")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	st, closeStore, err := openStore(settings, logging.Nop())
	if err != nil {
		return err
	}
	defer closeStore()
	if err := st.Load(); err != nil {
		return err
	}

	printNotes(search.Filter(st.Notes(), *filter))
	return nil
}

func runPaths(args []string) error {
	fs := flag.NewFlagSet("paths", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	notesPath, err := config.NotesPath()
	if err != nil {
		return err
	}
	boltPath, err := config.BoltPath()
	if err != nil {
		return err
	}
	logPath, err := config.LogPath()
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(writer, "config\t%s\n", configPath)
	fmt.Fprintf(writer, "notes (file)\t%s\n", notesPath)
	fmt.Fprintf(writer, "notes (bolt)\t%s\n", boltPath)
	fmt.Fprintf(writer, "log\t%s\n", logPath)
	return writer.Flush()
}

func openStore(settings config.Settings, log logging.Logger) (*store.Store, func(), error) {
	if settings.Backend() == config.BackendBolt {
		path, err := config.BoltPath()
		if err != nil {
			return nil, nil, err
		}
		persister, err := store.NewBoltPersister(path)
		if err != nil {
			return nil, nil, err
		}
		return store.New(persister, log), func() { _ = persister.Close() }, nil
	}
	path, err := config.NotesPath()
	if err != nil {
		return nil, nil, err
	}
	return store.New(store.NewFilePersister(path), log), func() {}, nil
}

// openFileLogger writes logs to a file because the UI owns the terminal.
func openFileLogger(settings config.Settings) (logging.Logger, func(), error) {
	path, err := config.LogPath()
	if err != nil {
		return nil, nil, err
	}
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(file, logging.ParseLevel(settings.LogLevel()))
	return log, func() { _ = file.Close() }, nil
}

func printNotes(notes []types.Note) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tCATEGORY\tTAGS")
	for _, note := range notes {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", note.ID, note.Title, note.Category, strings.Join(note.Tags, ","))
	}
	_ = writer.Flush()
}

func exitOnErr(label string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}

	return version
}
