package L

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NOTE: populated at build time with -ldflags (-X)
var printCallerLocation string

type LogLevel byte

const (
	DEBUG LogLevel = iota
	INFO
	NORMAL
	WARN
	ERROR
	PANIC
	SILENT
)

type ColorMode int

const (
	COLOR_MODE_AUTO ColorMode = iota
	COLOR_MODE_ALWAYS
	COLOR_MODE_NEVER
)

// debug - blue
var debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

// info - green
var infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

var noColorStyle = lipgloss.NewStyle()

// warn - yellow
var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

// error,panic - red
var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

const (
	debugPrefix  string = "DBG  "
	infoPrefix   string = "INF  "
	normalPrefix string = "     "
	warnPrefix   string = "WRN  "
	errorPrefix  string = "ERR  "
	panicPrefix  string = "PNC  "
)

// cursor sequences
const (
	C_ESCAPE     string = "\x1B"
	C_CLEAR_LINE string = C_ESCAPE + "[2K\r"
	C_UP         string = C_ESCAPE + "[1A"
)

var (
	level     = INFO
	colorMode = COLOR_MODE_AUTO

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	debugLogger  *log.Logger
	infoLogger   *log.Logger
	normalLogger *log.Logger
	warnLogger   *log.Logger
	errorLogger  *log.Logger
	panicLogger  *log.Logger

	footerMutex = &sync.Mutex{}
	footerText  = ""
	footerLines = 0
	footerLevel = INFO
)

func init() {
	updateLoggerPrefixColors()
}

func colorize(prefix string, style *lipgloss.Style) string {
	return style.Render(prefix)
}

func updateLoggerPrefixColors() {
	switch colorMode {
	case COLOR_MODE_NEVER:
		lipgloss.SetColorProfile(termenv.Ascii)
	case COLOR_MODE_ALWAYS:
		lipgloss.SetColorProfile(termenv.ANSI)
	default:
		lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
	}
	debugLogger = log.New(stdout, colorize(debugPrefix, &debugStyle), log.Lmsgprefix)
	infoLogger = log.New(stdout, colorize(infoPrefix, &infoStyle), log.Lmsgprefix)
	normalLogger = log.New(stdout, colorize(normalPrefix, &noColorStyle), log.Lmsgprefix)
	warnLogger = log.New(stdout, colorize(warnPrefix, &warnStyle), log.Lmsgprefix)
	errorLogger = log.New(stderr, colorize(errorPrefix, &errorStyle), log.Lmsgprefix)
	panicLogger = log.New(stderr, colorize(panicPrefix, &errorStyle), log.Lmsgprefix)
}

// SetOutput redirects all log output, mostly useful in tests.
func SetOutput(out io.Writer, errOut io.Writer) {
	stdout = out
	stderr = errOut
	updateLoggerPrefixColors()
}

func SetLevelFromString(l string) error {
	switch strings.ToLower(l) {
	case "debug":
		level = DEBUG
	case "info":
		level = INFO
	case "normal":
		level = NORMAL
	case "warn":
		level = WARN
	case "error":
		level = ERROR
	case "panic":
		level = PANIC
	case "silent":
		level = SILENT
	default:
		return fmt.Errorf("unsupported log level: %s", l)
	}
	return nil
}

func SetLevel(l LogLevel) error {
	switch l {
	case DEBUG, INFO, WARN, ERROR, PANIC, SILENT:
		level = l
	default:
		return fmt.Errorf("unsupported log level: %d", l)
	}
	return nil
}

func SetColorModeFromString(colorModeStr string) error {
	switch strings.ToLower(colorModeStr) {
	case "always":
		colorMode = COLOR_MODE_ALWAYS
	case "never":
		colorMode = COLOR_MODE_NEVER
	case "auto":
		colorMode = COLOR_MODE_AUTO
	default:
		return fmt.Errorf("unsupported color mode: %s", colorModeStr)
	}
	updateLoggerPrefixColors()
	return nil
}

func (cm ColorMode) String() string {
	switch cm {
	case COLOR_MODE_ALWAYS:
		return "always"
	case COLOR_MODE_NEVER:
		return "never"
	default:
		return "auto"
	}
}

func Debug(v ...any) {
	if level <= DEBUG {
		footerMutex.Lock()
		defer footerMutex.Unlock()
		clearFooter()
		msg := fmt.Sprint(v...)
		if printCallerLocation == "true" {
			printWithCallerLocation(debugLogger, msg)
		} else {
			printMultiline(debugLogger, msg)
		}
		footerLines = printFooter()
	}
}

func Info(v ...any) {
	logAt(INFO, infoLogger, v...)
}

func Warn(v ...any) {
	logAt(WARN, warnLogger, v...)
}

func Error(v ...any) {
	logAt(ERROR, errorLogger, v...)
}

func Panic(v ...any) {
	printMultiline(panicLogger, fmt.Sprint(v...))
	os.Exit(1)
}

func logAt(l LogLevel, logger *log.Logger, v ...any) {
	if level > l {
		return
	}
	footerMutex.Lock()
	defer footerMutex.Unlock()
	clearFooter()
	printMultiline(logger, fmt.Sprint(v...))
	footerLines = printFooter()
}

func GetLogLevel() LogLevel {
	return level
}

func IsVerbose() bool {
	return level < INFO
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case NORMAL:
		return "normal"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	case PANIC:
		return "panic"
	case SILENT:
		return "silent"
	default:
		return "unknown"
	}
}

func Printf(format string, v ...any) (int, error) {
	if level < SILENT {
		return fmt.Fprintf(stdout, format, v...)
	}
	return 0, nil
}

func Print(a ...any) (int, error) {
	if level < SILENT {
		return fmt.Fprint(stdout, a...)
	}
	return 0, nil
}

func Println(a ...any) (int, error) {
	if level < SILENT {
		return fmt.Fprintln(stdout, a...)
	}
	return 0, nil
}

// prints a persistent string "s" at the bottom of the terminal output.
// previous footer is cleared before each log and reprinted after.
// passing "s" as an empty string removes the footer.
func Footer(l LogLevel, s string) {
	footerMutex.Lock()
	defer footerMutex.Unlock()

	clearFooter()
	footerText = strings.TrimSpace(s)
	footerLevel = l
	footerLines = printFooter()
}

func printMultiline(logger *log.Logger, s string) int {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for _, line := range lines {
		logger.Println(line)
	}
	return len(lines)
}

func printWithCallerLocation(logger *log.Logger, s string) {
	logger.SetFlags(log.Lmsgprefix | log.Lshortfile)
	defer logger.SetFlags(log.Lmsgprefix)
	// skip printWithCallerLocation and Debug
	_ = logger.Output(3, s)
}

func clearFooter() {
	for i := 0; i < footerLines; i++ {
		fmt.Fprint(stdout, C_UP+C_CLEAR_LINE)
	}
	footerLines = 0
}

func printFooter() int {
	if footerText == "" || level > footerLevel || level == SILENT {
		return 0
	}
	fmt.Fprintln(stdout, footerText)
	return strings.Count(footerText, "\n") + 1
}
