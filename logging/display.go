package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------
// This section contains all the display functions for the different kinds of
// messages that can be logged.

func (ce *ConfigError) display() {
	PrintErrorMessage(ce.Kind+" Error", errors.New(ce.Message))
}

func (cw *ConfigWarning) display() {
	PrintWarningMessage(cw.Kind+" Warning", cw.Message)
}

var compileMsgStrings = map[int]string{
	LMKImport: "Import",
	LMKModule: "Module",
}

func (cm *CompileMessage) display() {
	cm.displayBanner()
	fmt.Println(cm.Message)

	if cm.Position != nil && cm.FilePath != "" {
		cm.displayCodeSelection()
	}
}

// displayBanner displays the banner on top of all compilation messages
func (cm *CompileMessage) displayBanner() {
	fmt.Print("\n\n-- ")
	kindStr := compileMsgStrings[cm.Kind]
	kindLen := len(kindStr)
	if cm.isError() {
		ErrorStyleBG.Print(kindStr + " Error")
		kindLen += 7
	} else {
		WarnStyleBG.Print(kindStr + " Warning")
		kindLen += 9
	}

	fmt.Print(" ")

	fileName := filepath.Base(cm.FilePath)
	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 1 {
		dashCount = 1
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)
}

// displayCodeSelection displays the erroneous lines (with line numbers) and
// highlights the selected columns.  Lines are 1-based.
func (cm *CompileMessage) displayCodeSelection() {
	f, err := os.Open(cm.FilePath)
	if err != nil {
		// the selection is a courtesy: the message itself was already printed
		return
	}
	defer f.Close()

	pos := cm.Position
	if pos.EndLn < pos.StartLn {
		return
	}

	sc := bufio.NewScanner(f)
	lines := make([]string, pos.EndLn-pos.StartLn+1)
	for lineNumber := 1; sc.Scan(); lineNumber++ {
		if lineNumber >= pos.StartLn && lineNumber <= pos.EndLn {
			lines[lineNumber-pos.StartLn] = strings.ReplaceAll(sc.Text(), "\t", "    ")
		}
	}

	fmt.Println()

	maxLineNumberWidth := len(strconv.Itoa(pos.EndLn)) + 1
	lineNumberFmtStr := "%-" + strconv.Itoa(maxLineNumberWidth) + "v"

	for i, line := range lines {
		InfoColorFG.Print(fmt.Sprintf(lineNumberFmtStr, i+pos.StartLn))
		fmt.Print("|  ")
		fmt.Println(line)

		fmt.Print(strings.Repeat(" ", maxLineNumberWidth), "|  ")

		start := 0
		if i == 0 {
			start = clamp(pos.StartCol, 0, len(line))
		}

		end := len(line)
		if i == len(lines)-1 {
			end = clamp(pos.EndCol, start, len(line))
		}

		fmt.Print(strings.Repeat(" ", start))
		ErrorColorFG.Println(strings.Repeat("^", max(end-start, 1)))
	}

	fmt.Println()
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}

	if n > hi {
		return hi
	}

	return n
}

const internalErrorPostlude = `
This is a bug in the compiler.
Please open an issue on Github: github.com/ComedicChimera/chai`

// displayInternalError displays an internal compiler error banner
func displayInternalError(msg string) {
	fmt.Print("\n\n")
	ErrorStyleBG.Print("Internal Compiler Error ")
	ErrorColorFG.Println(msg)
	InfoColorFG.Println(internalErrorPostlude)
}

// displayFinished displays the closing message
func displayFinished(success bool, errorCount int) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Println(" errors)")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Println(" error)")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Println(" errors)")
	}
}
