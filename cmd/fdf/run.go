package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	floyd "github.com/dpranke/floyd-datafile/go-floyd"
	"github.com/dpranke/floyd-datafile/go-floyd/debug"
	"github.com/dpranke/floyd-datafile/go-floyd/encode"
	"github.com/dpranke/floyd-datafile/go-floyd/parse"
	"github.com/dpranke/floyd-datafile/go-floyd/token"
)

const usageLine = "usage: fdf [options] [FILE]\n    -h/--help for help\n"

type config struct {
	file       *string
	code       *string
	codeSet    bool
	indent     *string
	asJSON     *bool
	strictJSON *bool
	color      *bool
	colorSet   bool
	tokens     *bool
	rejectDup  *bool
	maxDepth   *int
	version    *bool
	debug      *bool
}

func newApp(h *host, cfg *config) *kingpin.Application {
	app := kingpin.New("fdf", "Read a Floyd datafile and print it back out, reformatted.")
	app.HelpFlag.Short('h')
	app.UsageWriter(h.stdout)
	app.ErrorWriter(h.stderr)

	cfg.code = app.Flag("code", "Parse TEXT instead of reading a file.").
		Short('c').PlaceHolder("TEXT").Action(setFlag(&cfg.codeSet)).String()
	cfg.indent = app.Flag("indent", "Indent by N spaces, by a literal string, or not at all with None.").
		Default("4").Envar("FDF_INDENT").PlaceHolder("VALUE").String()
	cfg.asJSON = app.Flag("as-json", "Print the value as JSON.").Bool()
	cfg.strictJSON = app.Flag("strict-json", "Accept only strict JSON input.").Bool()
	cfg.color = app.Flag("color", "Colorize output (default when stdout is a terminal).").
		Action(setFlag(&cfg.colorSet)).Bool()
	cfg.tokens = app.Flag("tokens", "Print the tokens of the input instead of its value.").Bool()
	cfg.rejectDup = app.Flag("reject-duplicate-keys", "Fail on repeated object keys.").Bool()
	cfg.maxDepth = app.Flag("max-depth", "Maximum nesting of arrays and objects.").
		Default(strconv.Itoa(parse.DefaultMaxDepth)).Int()
	cfg.version = app.Flag("version", "Print the version and exit.").Bool()
	cfg.debug = app.Flag("debug", "Log debug information to stderr.").Envar("FDF_DEBUG").Bool()
	cfg.file = app.Arg("FILE", "File to read; standard input when omitted.").String()
	return app
}

// setFlag records that a flag appeared on the command line.
func setFlag(b *bool) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		*b = true
		return nil
	}
}

func run(h *host, args []string) int {
	cfg := &config{}
	app := newApp(h, cfg)

	exited, status := false, 0
	app.Terminate(func(code int) {
		if !exited {
			exited, status = true, code
		}
	})
	if bad := unrecognized(app, args); len(bad) > 0 {
		return usageError(h, "unrecognized arguments: "+strings.Join(bad, " "))
	}
	_, err := app.Parse(joinValues(app, args))
	if exited {
		return status
	}
	if err != nil {
		return usageError(h, err.Error())
	}
	if *cfg.version {
		fmt.Fprintln(h.stdout, floyd.Version)
		return 0
	}

	logger := newLogger(h, *cfg.debug || debug.Tokens() || debug.Parse())
	debug.SetLogger(logger)

	if err := process(h, cfg, logger); err != nil {
		fmt.Fprintf(h.stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func usageError(h *host, msg string) int {
	fmt.Fprintf(h.stderr, "%s\nerror: %s\n", usageLine, msg)
	return 2
}

func newLogger(h *host, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(h.stderr))
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowWarn())
}

func process(h *host, cfg *config, logger log.Logger) error {
	src, name, err := readInput(h, cfg)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "read input", "source", name, "size", humanize.Bytes(uint64(len(src))))

	popts := []parse.ParseOption{parse.MaxDepth(*cfg.maxDepth)}
	if *cfg.strictJSON {
		popts = append(popts, parse.ParseJSON())
	}
	if *cfg.rejectDup {
		popts = append(popts, parse.RejectDuplicateKeys())
	}

	if *cfg.tokens {
		var topts []token.TokenOpt
		if *cfg.strictJSON {
			topts = append(topts, token.TokenJSON())
		}
		toks, err := token.Tokenize(src, topts...)
		if err != nil {
			return err
		}
		return token.FprintTokens(h.stdout, toks)
	}

	v, err := floyd.Loads(string(src), popts...)
	if err != nil {
		return err
	}
	eopts := []encode.EncodeOption{indentOption(*cfg.indent), encode.AsJSON(*cfg.asJSON)}
	useColor := h.isTerminal()
	if cfg.colorSet {
		useColor = *cfg.color
	}
	if useColor {
		eopts = append(eopts, encode.EncodeColors(encode.NewColors()))
	}
	out, err := floyd.Dumps(v, eopts...)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "wrote output", "size", humanize.Bytes(uint64(len(out))))
	_, err = fmt.Fprintln(h.stdout, out)
	return err
}

func readInput(h *host, cfg *config) ([]byte, string, error) {
	if cfg.codeSet {
		return []byte(*cfg.code), "--code", nil
	}
	if *cfg.file != "" && *cfg.file != "-" {
		d, err := h.readFile(*cfg.file)
		return d, *cfg.file, err
	}
	d, err := h.readStdin()
	return d, "stdin", err
}

// indentOption maps the --indent value: None for single line output, an
// integer for that many spaces, anything else used as is.
func indentOption(v string) encode.EncodeOption {
	if v == "None" {
		return encode.NoIndent()
	}
	if n, err := strconv.Atoi(v); err == nil {
		return encode.Indent(n)
	}
	return encode.IndentString(v)
}

// flagTable describes the flags an application defines.
type flagTable struct {
	long       map[string]bool
	short      map[rune]string
	takesValue map[string]bool
}

func newFlagTable(app *kingpin.Application) *flagTable {
	ft := &flagTable{
		long:       map[string]bool{},
		short:      map[rune]string{},
		takesValue: map[string]bool{},
	}
	for _, f := range app.Model().Flags {
		ft.long[f.Name] = true
		ft.takesValue[f.Name] = !f.IsBoolFlag()
		if f.IsBoolFlag() {
			ft.long["no-"+f.Name] = true
		}
		if f.Short != 0 {
			ft.short[f.Short] = f.Name
		}
	}
	return ft
}

// unrecognized returns the flags in args the application does not define.
func unrecognized(app *kingpin.Application, args []string) []string {
	ft := newFlagTable(app)
	var bad []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return bad
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			if !ft.long[name] {
				bad = append(bad, arg)
			} else if ft.takesValue[name] && !hasValue {
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			for j, r := range arg[1:] {
				name, ok := ft.short[r]
				if !ok {
					bad = append(bad, arg)
					break
				}
				if ft.takesValue[name] {
					if j+1 == len(arg)-1 {
						i++
					}
					break
				}
			}
		}
	}
	return bad
}

// joinValues rewrites a flag and its separate value, such as "-c -1", into
// the single argument "--code=-1" so that values starting with '-' are not
// read as flags.
func joinValues(app *kingpin.Application, args []string) []string {
	ft := newFlagTable(app)
	res := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(res, args[i:]...)
		}
		name := ""
		switch {
		case strings.HasPrefix(arg, "--"):
			name = arg[2:]
		case len(arg) == 2 && arg[0] == '-':
			name = ft.short[rune(arg[1])]
		}
		if ft.takesValue[name] && i+1 < len(args) {
			res = append(res, "--"+name+"="+args[i+1])
			i++
			continue
		}
		res = append(res, arg)
	}
	return res
}
