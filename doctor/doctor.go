// Package doctor runs non-interactive environment checks for the
// portfolio TUI: terminal capabilities, config file, SMTP credentials and
// clipboard support.
package doctor

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/VICTORTBK/Portfolio/clipboard"
	"github.com/VICTORTBK/Portfolio/content"
)

var (
	passMark = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
)

// Run executes all diagnostic checks and returns an exit code
// (0=all pass, 1=any fail). Warnings do not fail the run.
func Run(configFlag string) int {
	fmt.Println("portfolio doctor - environment diagnostics")
	fmt.Println("==========================================")

	allPass := true

	if !checkTerminal() {
		allPass = false
	}
	if !checkConfig(configFlag) {
		allPass = false
	}
	checkSMTP()
	checkClipboard()

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkTerminal() bool {
	fmt.Println()
	fmt.Println("[1/4] Terminal")

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Printf("  %s: stdout is not a terminal\n", failMark("FAIL"))
		return false
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		fmt.Printf("  %s: could not read terminal size: %v\n", failMark("FAIL"), err)
		return false
	}
	if w < 60 || h < 20 {
		fmt.Printf("  %s: terminal %dx%d is small; 60x20 or larger recommended\n", warnMark("WARN"), w, h)
		return true
	}
	fmt.Printf("  %s: interactive terminal, %dx%d\n", passMark("PASS"), w, h)
	return true
}

func checkConfig(configFlag string) bool {
	fmt.Println()
	fmt.Println("[2/4] Portfolio config")

	path, err := content.ResolvePath(configFlag)
	if err != nil {
		fmt.Printf("  %s: could not resolve config path: %v\n", failMark("FAIL"), err)
		return false
	}
	if _, statErr := os.Stat(path); statErr != nil {
		fmt.Printf("  %s: no config at %s, built-in content will be used\n", warnMark("WARN"), path)
		return true
	}
	c, err := content.Load(path)
	if err != nil {
		fmt.Printf("  %s: %v\n", failMark("FAIL"), err)
		return false
	}
	fmt.Printf("  %s: %s (%d roles, %d projects)\n", passMark("PASS"), path, len(c.Roles), len(c.Projects))
	return true
}

func checkSMTP() {
	fmt.Println()
	fmt.Println("[3/4] Contact form delivery")

	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	if user == "" || pass == "" {
		fmt.Printf("  %s: SMTP_USER/SMTP_PASS not set; submissions are logged but not mailed\n", warnMark("WARN"))
		return
	}
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com (default)"
	}
	fmt.Printf("  %s: SMTP configured via %s\n", passMark("PASS"), host)
}

func checkClipboard() {
	fmt.Println()
	fmt.Println("[4/4] Clipboard")

	if !clipboard.Available() {
		fmt.Printf("  %s: no clipboard backend; copy actions will be disabled\n", warnMark("WARN"))
		return
	}
	fmt.Printf("  %s: clipboard backend available\n", passMark("PASS"))
}
