package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/posener/complete"
	"github.com/sirupsen/logrus"

	"github.com/atlas-ledger/core-go/core"
)

// Environment variable name prefix
const envNamePrefix = "CORECLI_"

var (
	envNames = map[string]string{
		"debug":   "DEBUG",
		"s":       "CORE_SERVER",
		"timeout": "TIMEOUT",
	}
	defaults = map[string]interface{}{
		"debug":   false,
		"s":       core.CoreServerDefault,
		"timeout": 15 * time.Second,

		"filter":       "",
		"start":        int64(0),
		"end":          int64(0),
		"asc":          false,
		"querytimeout": int64(0),
		"pages":        int64(1),

		"alias": "",
		"id":    "",
		"after": "",

		"file": "",
	}
	descriptions = map[string]string{
		"debug":   "Log debug messages",
		"s":       "scheme://host:port for the Core server",
		"timeout": "Timeout for Core server requests, 0 means never timeout",

		"filter":       "Query filter expression",
		"start":        "Earliest transaction timestamp to include, in Unix ms",
		"end":          "Latest transaction timestamp to include, in Unix ms",
		"asc":          "Return oldest transactions first",
		"querytimeout": "Server side query timeout in ms",
		"pages":        "Number of pages to fetch, 0 means all pages",

		"alias": "Consumer alias",
		"id":    "Consumer ID",
		"after": "New cursor position for consumer update",

		"file": "Path of a signed transaction template JSON file, - for stdin",
	}
	globalCompleteFlags = complete.Flags{
		"-debug":   complete.PredictNothing,
		"-s":       complete.PredictAnything,
		"-timeout": complete.PredictAnything,

		"-installcompletion":   complete.PredictNothing,
		"-uninstallcompletion": complete.PredictNothing,
	}

	cmd            string
	consumerAction string

	globalFlagSet   = flag.NewFlagSet("core-cli", flag.ContinueOnError)
	txFlagSet       = flag.NewFlagSet("transactions", flag.ExitOnError)
	consumerFlagSet = flag.NewFlagSet("consumer", flag.ExitOnError)
	submitFlagSet   = flag.NewFlagSet("submit", flag.ExitOnError)

	LogDebug bool

	Client = core.NewClient()

	filter       string
	startTime    int64
	endTime      int64
	ascending    bool
	queryTimeout int64
	pages        int64

	alias string
	id    string
	after string

	file string

	flagIsSet  = map[string]bool{}
	log        *logrus.Entry
	Completion = complete.New(os.Args[0], complete.Command{
		Flags: globalCompleteFlags,
		Sub: complete.Commands{
			"transactions": complete.Command{
				Flags: complete.Flags{
					"-filter":       complete.PredictAnything,
					"-start":        complete.PredictAnything,
					"-end":          complete.PredictAnything,
					"-asc":          complete.PredictNothing,
					"-querytimeout": complete.PredictAnything,
					"-pages":        complete.PredictAnything,
				},
			},
			"consumer": complete.Command{
				Flags: complete.Flags{
					"-alias":  complete.PredictAnything,
					"-id":     complete.PredictAnything,
					"-after":  complete.PredictAnything,
					"-filter": complete.PredictAnything,
				},
				Args: complete.PredictSet(
					"create", "get", "update"),
			},
			"submit": complete.Command{
				Flags: complete.Flags{
					"-file": complete.PredictFiles("*"),
				},
			},
		},
	})
)

func init() {
	flagVar(globalFlagSet, &LogDebug, "debug")
	flagVar(globalFlagSet, &Client.CoreServer, "s")
	flagVar(globalFlagSet, &Client.Timeout, "timeout")

	flagVar(txFlagSet, &filter, "filter")
	flagVar(txFlagSet, &startTime, "start")
	flagVar(txFlagSet, &endTime, "end")
	flagVar(txFlagSet, &ascending, "asc")
	flagVar(txFlagSet, &queryTimeout, "querytimeout")
	flagVar(txFlagSet, &pages, "pages")

	flagVar(consumerFlagSet, &alias, "alias")
	flagVar(consumerFlagSet, &id, "id")
	flagVar(consumerFlagSet, &after, "after")
	flagVar(consumerFlagSet, &filter, "filter")

	flagVar(submitFlagSet, &file, "file")

	// Add flags for self installing the CLI completion tool
	Completion.CLI.InstallName = "installcompletion"
	Completion.CLI.UninstallName = "uninstallcompletion"
	Completion.AddFlags(globalFlagSet)
}
func setFlagIsSet(f *flag.Flag) { flagIsSet[f.Name] = true }

func Parse() string {
	// Options from a .env file are surfaced as environment variables and
	// picked up by loadFromEnv below.
	godotenv.Load()

	args := os.Args[1:]
	globalFlagSet.Parse(args)
	args = globalFlagSet.Args()
	globalFlagSet.Visit(setFlagIsSet)
	setupLogger()
	loadFromEnv(&LogDebug, "debug")
	if LogDebug {
		// Raise the log level now that the environment is known.
		setupLogger()
	}
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "transactions":
		txFlagSet.Parse(args)
		txFlagSet.Visit(setFlagIsSet)
	case "consumer":
		if len(args) > 0 {
			consumerAction = args[0]
			args = args[1:]
		}
		consumerFlagSet.Parse(args)
		consumerFlagSet.Visit(setFlagIsSet)
	case "submit":
		submitFlagSet.Parse(args)
		submitFlagSet.Visit(setFlagIsSet)
	default:
	}

	// Load options from environment variables if they haven't been
	// specified on the command line.
	loadFromEnv(&Client.CoreServer, "s")
	loadFromEnv(&Client.Timeout, "timeout")

	Client.DebugRequest = LogDebug

	return cmd
}

func Validate() error {
	log.Debugf("-s       %#v", Client.CoreServer)
	log.Debugf("-timeout %v ", Client.Timeout)
	debugPrintln()

	switch cmd {
	case "transactions":
	case "consumer":
		switch consumerAction {
		case "create":
			if err := missingFlags("alias"); err != nil {
				return err
			}
		case "get":
			if !flagIsSet["id"] && !flagIsSet["alias"] {
				return fmt.Errorf(
					"You must specify -id OR -alias")
			}
			if flagIsSet["id"] && flagIsSet["alias"] {
				return fmt.Errorf(
					"You may not specify both -id and -alias")
			}
		case "update":
			if !flagIsSet["id"] && !flagIsSet["alias"] {
				return fmt.Errorf(
					"You must specify -id OR -alias")
			}
			if err := missingFlags("after"); err != nil {
				return err
			}
		case "":
			return fmt.Errorf(
				"No consumer action supplied: create|get|update")
		default:
			return fmt.Errorf("Invalid consumer action: %v",
				consumerAction)
		}
	case "submit":
	case "":
		return fmt.Errorf("No command supplied")
	default:
		return fmt.Errorf("Invalid command: %v", cmd)
	}
	return nil
}

func flagVar(f *flag.FlagSet, v interface{}, name string) {
	dflt := defaults[name]
	desc := description(name)
	switch v := v.(type) {
	case *string:
		f.StringVar(v, name, dflt.(string), desc)
	case *time.Duration:
		f.DurationVar(v, name, dflt.(time.Duration), desc)
	case *int64:
		f.Int64Var(v, name, dflt.(int64), desc)
	case *bool:
		f.BoolVar(v, name, dflt.(bool), desc)
	case flag.Value:
		f.Var(v, name, desc)
	}
}

func loadFromEnv(v interface{}, flagName string) {
	if flagIsSet[flagName] {
		return
	}
	eName := envName(flagName)
	eVar := os.Getenv(eName)
	if len(eVar) > 0 {
		switch v := v.(type) {
		case *string:
			*v = eVar
		case *time.Duration:
			duration, err := time.ParseDuration(eVar)
			if err != nil {
				log.Fatalf("Environment Variable %v: "+
					"time.ParseDuration(\"%v\"): %v",
					eName, eVar, err)
			}
			*v = duration
		case *int64:
			val, err := strconv.ParseInt(eVar, 10, 64)
			if err != nil {
				log.Fatalf("Environment Variable %v: "+
					"strconv.ParseInt(\"%v\", 10, 64): %v",
					eName, eVar, err)
			}
			*v = val
		case *bool:
			val, err := strconv.ParseBool(eVar)
			if err != nil {
				log.Fatalf("Environment Variable %v: "+
					"strconv.ParseBool(\"%v\"): %v",
					eName, eVar, err)
			}
			*v = val
		}
	}
}

func debugPrintln() {
	if LogDebug {
		fmt.Println()
	}
}

func envName(flagName string) string {
	return envNamePrefix + envNames[flagName]
}
func description(flagName string) string {
	if _, ok := envNames[flagName]; ok {
		return fmt.Sprintf("%s\nEnvironment variable: %v",
			descriptions[flagName], envName(flagName))
	}
	return descriptions[flagName]
}

func setupLogger() {
	_log := logrus.New()
	_log.Formatter = &logrus.TextFormatter{ForceColors: true,
		DisableTimestamp:       true,
		DisableLevelTruncation: true}
	if LogDebug {
		_log.SetLevel(logrus.DebugLevel)
	}
	log = _log.WithField("pkg", "flag")
}

func missingFlags(names ...string) error {
	missing := []string{}
	for _, n := range names {
		if !flagIsSet[n] {
			missing = append(missing, "-"+n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required flags: %v", missing)
	}
	return nil
}
