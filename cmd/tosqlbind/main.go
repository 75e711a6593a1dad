/*
Tosqlbind converts values given on the command line to SQL values, binds them
into a SQLite database, and prints what the database stored.

Usage:

	tosqlbind [flags] KIND:LITERAL...
	tosqlbind [flags] --read FILE

Each argument names the kind of a value and gives its literal text, separated
by a colon. The kinds are:

  - null - SQL NULL; takes no literal
  - none - an absent optional value, stored as NULL; takes no literal
  - bool - true or false, stored as 1 or 0
  - int, int64 - a signed 64-bit integer
  - int32 - a signed 32-bit integer
  - uint - an unsigned 64-bit integer; values above the signed 64-bit range are
    rejected
  - real - a 64-bit floating point number
  - text - the rest of the argument, taken as-is
  - blob - bytes, written as hexadecimal
  - uuid - a UUID, stored as its canonical text form
  - time - an RFC 3339 time, stored as Unix seconds

Builds made with the zeroblob tag also accept zeroblob:N, which stores a blob of
N zero bytes.

Each value is stored in its own row with slots numbered from 1, in argument
order. Once stored, the row is read back and printed along with its slot.

The flags are:

	-c, --config PATH
		Use the given file for the configuration instead of './tosql.yml'. The
		file must be in JSON or YAML format. If the default file does not
		exist, default settings are used.

	-o, --out PATH
		Also write the read-back values in REZI binary format to the given file.

	-r, --read PATH
		Instead of binding values, print the values in a file written by
		--out.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/dekarrin/jellog"
	"github.com/dekarrin/tosql/config"
	"github.com/spf13/pflag"
)

const (
	exitSuccess   = 0
	exitError     = 1
	exitPanic     = 2
	exitInterrupt = 3
)

var exitCode = exitSuccess

var (
	flagConf = pflag.StringP("config", "c", "tosql.yml", "Path to configuration file")
	flagOut  = pflag.StringP("out", "o", "", "Write read-back values in REZI format to `PATH`")
	flagRead = pflag.StringP("read", "r", "", "Print the values in a file written with --out and exit")
)

func main() {
	ctx, cancelMainContext := context.WithCancel(context.Background())
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	defer func() {
		signal.Stop(signalChan)
		cancelMainContext()
	}()
	go func() {
		select {
		case <-signalChan: // first signal, cancel context
			cancelMainContext()
		case <-ctx.Done():
		}

		<-signalChan // second signal, hard exit
		os.Exit(exitInterrupt)
	}()

	defer func() {
		if panicErr := recover(); panicErr != nil {
			fmt.Fprintf(os.Stderr, "fatal panic: %v\n", panicErr)
			exitCode = exitPanic
		}
		os.Exit(exitCode)
	}()

	pflag.Parse()

	if *flagRead != "" {
		if err := printDumpFile(*flagRead); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			exitCode = exitError
		}
		return
	}

	logger := jellog.New(jellog.Defaults[string]().WithComponent("tosqlbind"))
	logger.AddHandler(jellog.LvInfo, jellog.NewStderrHandler(nil))

	vals, err := parseArgs(pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}
	if len(vals) < 1 {
		fmt.Fprintf(os.Stderr, "ERROR: no values given; use --help for usage\n")
		exitCode = exitError
		return
	}

	conf, err := loadConfig(*flagConf, pflag.CommandLine.Changed("config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	bindLog, err := conf.Log.Create()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	st, err := conf.DB.Connect(bindLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}
	defer st.Close()

	params, err := bindAll(ctx, st, vals, bindLog)
	if printErr := printParams(os.Stdout, params); printErr != nil {
		logger.Warnf("Could not print results: %v", printErr)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.InsertBreak(jellog.LvAll)
			logger.Info("SIGINT received; stopped before all values were bound")
			exitCode = exitInterrupt
			return
		}
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	if *flagOut != "" {
		if err := writeDumpFile(*flagOut, params); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			exitCode = exitError
			return
		}
		logger.Infof("Wrote %d values to %s", len(params), *flagOut)
	}
}

// loadConfig loads the config in file and fills its defaults. If file does not
// exist and was not explicitly requested, the default config is used instead.
func loadConfig(file string, explicit bool) (config.Config, error) {
	conf, err := config.Load(file)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			conf = config.Config{}
		} else {
			return conf, err
		}
	}

	conf = conf.FillDefaults()
	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("%s: %w", file, err)
	}
	return conf, nil
}
